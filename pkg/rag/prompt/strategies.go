package prompt

// Static pedagogical strategy reference blocks embedded into prompts.
// Fixed constants, not retrieved content.

const mathsStrategies = `Reference strategies for mathematics instruction:
- Use concrete-representational-abstract (CRA) sequencing: physical manipulatives first, then visual models, then symbols.
- Chunk multi-step procedures into explicitly numbered steps with one operation per step.
- Pair every abstract rule with a worked example and a near-identical practice item.
- Use visual scaffolds (number lines, bar models, grids) to externalize working memory load.
- Revisit prerequisite facts briefly before introducing dependent concepts.
- Encourage students to verbalize their reasoning at each step to surface misconceptions early.`

const scienceStrategies = `Reference strategies for science instruction:
- Anchor each concept in an observable phenomenon before introducing vocabulary.
- Use predict-observe-explain cycles so students commit to a hypothesis before seeing outcomes.
- Provide sentence starters for scientific explanations (claim, evidence, reasoning).
- Make abstract processes visible with diagrams, simulations, or physical models.
- Interleave short hands-on tasks with brief reflection prompts to sustain attention.
- Close each activity by connecting findings back to the driving question.`

// strategiesForSubject returns the static strategy block for a subject,
// empty when the subject has no dedicated block.
func strategiesForSubject(subject string) string {
	switch subject {
	case "Maths":
		return mathsStrategies
	case "Science":
		return scienceStrategies
	}
	return ""
}
