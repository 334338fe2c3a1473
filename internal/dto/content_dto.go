package dto

import "ai-lessonplanner-be/pkg/artifact"

type GenerateLessonPlanRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	Topic      string   `json:"topic" validate:"required"`
	Subtopic   string   `json:"subtopic,omitempty"`
	Grade      string   `json:"grade" validate:"required"`
	ExecSkills []string `json:"exec_skills,omitempty"`
	Disorder   string   `json:"disorder,omitempty"` // resolved to exec_skills when they are absent
}

type GenerateLessonPlanResponse struct {
	LessonName string                   `json:"lessonName"`
	Subject    string                   `json:"subject"`
	Topic      string                   `json:"topic"`
	GradeLevel string                   `json:"gradeLevel"`
	LessonPlan string                   `json:"lessonPlan"`
	Document   *artifact.LessonDocument `json:"document,omitempty"`
}

type GenerateAssessmentRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	Topic      string   `json:"topic" validate:"required"`
	Subtopic   string   `json:"subtopic,omitempty"`
	Grade      string   `json:"grade" validate:"required"`
	ExecSkills []string `json:"exec_skills,omitempty"`
	Disorder   string   `json:"disorder,omitempty"`
}

type GenerateAssessmentResponse struct {
	Title      string                       `json:"title"`
	Assessment string                       `json:"assessment"`
	GradeLevel string                       `json:"gradeLevel"`
	Topic      string                       `json:"topic"`
	Document   *artifact.AssessmentDocument `json:"document,omitempty"`
}

type GenerateIcebreakerRequest struct {
	Grade     string `json:"grade" validate:"required"`
	Query     string `json:"query,omitempty"`
	Materials string `json:"materials,omitempty"`
	Setting   string `json:"setting,omitempty"`
}

type GenerateIcebreakerResponse struct {
	Activity string                       `json:"activity"`
	Document *artifact.IcebreakerDocument `json:"document,omitempty"`
}

// ContentNotFoundDetail is the body of a not-found outcome: the submitted
// inputs plus a human-readable suggestion for refining them.
type ContentNotFoundDetail struct {
	Message    string            `json:"message"`
	Submitted  map[string]string `json:"submitted"`
	Suggestion string            `json:"suggestion"`
}
