package constant

// Content types served by the generation pipeline
const (
	ContentTypeLessonPlan = "lesson_plan"
	ContentTypeAssessment = "assessment"
	ContentTypeIcebreaker = "icebreaker"
)

// Subjects with a dedicated lesson collection and prompt template
const (
	SubjectMaths   = "Maths"
	SubjectScience = "Science"
)

// Vector store collections
const (
	CollectionLessonPlans    = "lesson_plans"
	CollectionScienceLessons = "science_lessons"
	CollectionExecSkills     = "exec_skills"
	CollectionIcebreakers    = "icebreakers"
)

// Document metadata keys used as retrieval filters
const (
	MetadataKeyGrade     = "grade"
	MetadataKeySubject   = "subject"
	MetadataKeyTopic     = "topic"
	MetadataKeySection   = "section"
	MetadataKeyExecSkill = "executive_skill"
)

// Section tags per subject. Maths content follows an intro/steps layout,
// Science follows the 5E instructional model.
var (
	MathsInstructionalSections   = []string{"intro_context", "instructional_steps"}
	ScienceInstructionalSections = []string{"engage", "explain", "explore", "elaborate"}
)

const (
	MathsAssessmentSection   = "assessment"
	ScienceAssessmentSection = "evaluate"
)

// SubjectCollections maps a subject to its lesson collection.
var SubjectCollections = map[string]string{
	SubjectMaths:   CollectionLessonPlans,
	SubjectScience: CollectionScienceLessons,
}

// InstructionalSections returns the section tags holding teachable content
// for a subject. The second return reports whether the subject is known.
func InstructionalSections(subject string) ([]string, bool) {
	switch subject {
	case SubjectMaths:
		return MathsInstructionalSections, true
	case SubjectScience:
		return ScienceInstructionalSections, true
	}
	return nil, false
}

// AssessmentSection returns the section tag holding assessment exemplars
// for a subject.
func AssessmentSection(subject string) (string, bool) {
	switch subject {
	case SubjectMaths:
		return MathsAssessmentSection, true
	case SubjectScience:
		return ScienceAssessmentSection, true
	}
	return "", false
}
