package rag

import (
	"strings"

	"ai-lessonplanner-be/internal/constant"
)

// ContentRequest is the normalized input to content generation. Free-text
// filter fields are trimmed and case-folded by Normalize before use.
type ContentRequest struct {
	Subject    string
	Topic      string
	Subtopic   string
	Grade      string
	ExecSkills []string
	Disorder   string
	Materials  string
	Setting    string
	Query      string
}

// Normalize trims free-text fields, case-folds the grade, and canonicalizes
// the subject against the known subject set. Call before Validate.
func (r *ContentRequest) Normalize() {
	r.Subject = canonicalSubject(strings.TrimSpace(r.Subject))
	r.Topic = strings.TrimSpace(r.Topic)
	r.Subtopic = strings.TrimSpace(r.Subtopic)
	r.Grade = strings.ToLower(strings.TrimSpace(r.Grade))
	r.Disorder = strings.ToLower(strings.TrimSpace(r.Disorder))
	r.Materials = strings.TrimSpace(r.Materials)
	r.Setting = strings.TrimSpace(r.Setting)
	r.Query = strings.TrimSpace(r.Query)

	skills := make([]string, 0, len(r.ExecSkills))
	for _, s := range r.ExecSkills {
		if t := strings.TrimSpace(s); t != "" {
			skills = append(skills, t)
		}
	}
	r.ExecSkills = skills
}

// ResolveExecSkills fills ExecSkills from the disorder lookup table when the
// request does not name skills explicitly. An unknown disorder with no
// explicit skills is a validation failure.
func (r *ContentRequest) ResolveExecSkills() error {
	if len(r.ExecSkills) > 0 {
		return nil
	}
	if r.Disorder == "" {
		return nil
	}
	skills, ok := constant.ExecSkillsForDisorder(r.Disorder)
	if !ok {
		return NewValidationError("disorder", "unknown disorder and no executive skills supplied")
	}
	r.ExecSkills = skills
	return nil
}

// Validate checks the invariants the planner relies on. The subject must
// map to a known collection, and filter fields must not be empty strings
// that would match nothing.
func (r *ContentRequest) Validate() error {
	if r.Subject == "" {
		return NewValidationError("subject", "is required")
	}
	if _, ok := constant.SubjectCollections[r.Subject]; !ok {
		return NewValidationError("subject", "does not map to a known collection")
	}
	if r.Topic == "" {
		return NewValidationError("topic", "is required")
	}
	if r.Grade == "" {
		return NewValidationError("grade", "is required")
	}
	return nil
}

func canonicalSubject(s string) string {
	for known := range constant.SubjectCollections {
		if strings.EqualFold(s, known) {
			return known
		}
	}
	return s
}
