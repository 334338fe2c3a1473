package artifact

// Structured documents handed to the PDF-rendering collaborator. The
// renderer consumes these and returns opaque document bytes; nothing here
// inspects rendering output.

// LessonSection is one ordered section of a lesson plan.
type LessonSection struct {
	Number       int    `json:"number"`
	Title        string `json:"title"`
	Method       string `json:"method"`
	Activities   string `json:"activities"`
	ExecStrategy string `json:"executive_function_strategy"`
}

// LessonDocument is the structured form of a generated lesson plan.
type LessonDocument struct {
	Title     string          `json:"title"`
	Objective string          `json:"objective"`
	Materials string          `json:"materials"`
	Subject   string          `json:"subject"`
	Topic     string          `json:"topic"`
	Grade     string          `json:"grade"`
	Sections  []LessonSection `json:"sections"`
}

// AssessmentQuestion is one ordered question of an assessment.
type AssessmentQuestion struct {
	Number        int    `json:"number"`
	Type          string `json:"question_type"`
	Question      string `json:"question"`
	ExecStrategy  string `json:"executive_function_strategy"`
	Justification string `json:"justification"`
}

// AssessmentDocument is the structured form of a generated assessment.
type AssessmentDocument struct {
	Title     string               `json:"title"`
	Subject   string               `json:"subject"`
	Topic     string               `json:"topic"`
	Grade     string               `json:"grade"`
	Questions []AssessmentQuestion `json:"questions"`
}

// IcebreakerDocument is the structured form of a generated icebreaker.
type IcebreakerDocument struct {
	Title        string   `json:"title"`
	Objective    string   `json:"objective"`
	Materials    string   `json:"materials"`
	Instructions []string `json:"instructions"`
	Debrief      string   `json:"debrief"`
	Tips         string   `json:"tips"`
}
