package constant

// DisorderExecSkills maps a learning disorder to the default executive
// function skills targeted when a request does not name skills explicitly.
// Extend with data, not branches.
var DisorderExecSkills = map[string][]string{
	"dyscalculia": {
		"Enhancing Working Memory",
		"Cultivating Metacognition",
		"Fostering Organization",
		"Promoting, Planning, and Prioritizing",
	},
	"dyslexia": {
		"Task Initiation",
		"Sustained Attention",
		"Metacognition",
		"Organization",
	},
	"autism": {
		"Emotional Control",
		"Flexibility",
		"Goal-Directed Persistence",
		"Time Management",
	},
}

// ExecSkillsForDisorder resolves the default skill set for a disorder.
// Returns a copy so callers cannot mutate the table.
func ExecSkillsForDisorder(disorder string) ([]string, bool) {
	skills, ok := DisorderExecSkills[disorder]
	if !ok {
		return nil, false
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out, true
}
