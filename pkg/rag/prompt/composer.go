package prompt

import (
	"fmt"
	"strings"

	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/rag/aggregate"
	"ai-lessonplanner-be/pkg/rag/planner"
)

// Composer renders the final instruction text sent to the generation model.
// Template choice is a pure function of (contentType, subject); given the
// same request and context blocks it always produces the same prompt.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// ComposeLessonPlan builds the lesson-plan prompt from the lesson and
// executive-skill context blocks.
func (c *Composer) ComposeLessonPlan(req rag.ContentRequest, blocks map[string]aggregate.ContextBlock) string {
	var b strings.Builder

	c.writeTaskHeader(&b, fmt.Sprintf(
		"Create a complete %s lesson plan on \"%s\" for grade %s students with neurodiverse learning needs.",
		req.Subject, req.Topic, req.Grade,
	))

	c.writeContextBlock(&b, 1, "Source lesson content", blockText(blocks, planner.BlockLesson, planner.FallbackLesson))
	c.writeContextBlock(&b, 2, "Executive function strategies", blockText(blocks, planner.BlockExec, planner.FallbackExec))
	c.writeStrategies(&b, req.Subject)

	b.WriteString("Requirements:\n")
	b.WriteString("- Use ALL of the source lesson content in CONTEXT 1. Do not summarize, shorten, or omit any of it; restructure it into the format below.\n")
	b.WriteString("- Weave the executive function strategies from CONTEXT 2 into the activities where they fit naturally.\n")
	if len(req.ExecSkills) > 0 {
		b.WriteString(fmt.Sprintf("- Target these executive function skills: %s.\n", strings.Join(req.ExecSkills, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("Output format (reproduce these headings exactly):\n\n")
	b.WriteString("**Title:** <lesson title>\n")
	b.WriteString("**Objective:** <what students will be able to do>\n")
	b.WriteString("**Materials:** <comma-separated materials>\n\n")
	b.WriteString("### Section <number>: <section title>\n")
	b.WriteString("**Method:** <how the teacher delivers this section>\n")
	b.WriteString("**Activities:** <what the students do>\n")
	b.WriteString("**Executive Function Strategy:** <the strategy applied in this section>\n\n")
	b.WriteString("Repeat the section block for every section of the lesson.\n")
	c.writeNoneRule(&b)

	return b.String()
}

// ComposeAssessment builds the assessment prompt from the lesson,
// assessment-exemplar, and executive-skill context blocks.
func (c *Composer) ComposeAssessment(req rag.ContentRequest, blocks map[string]aggregate.ContextBlock) string {
	var b strings.Builder

	c.writeTaskHeader(&b, fmt.Sprintf(
		"Create a %s assessment on \"%s\" for grade %s students with neurodiverse learning needs.",
		req.Subject, req.Topic, req.Grade,
	))

	c.writeContextBlock(&b, 1, "Source lesson content", blockText(blocks, planner.BlockLesson, planner.FallbackLesson))
	c.writeContextBlock(&b, 2, "Existing assessment examples", blockText(blocks, planner.BlockAssessment, planner.FallbackAssessment))
	c.writeContextBlock(&b, 3, "Executive function strategies", blockText(blocks, planner.BlockExec, planner.FallbackExec))
	c.writeStrategies(&b, req.Subject)

	b.WriteString("Requirements:\n")
	b.WriteString("- Ground every question in the source lesson content from CONTEXT 1. Do not invent material the lesson does not cover.\n")
	b.WriteString("- Match the style and difficulty of the examples in CONTEXT 2 where they exist.\n")
	b.WriteString("- Apply one executive function strategy from CONTEXT 3 to each question and justify the choice.\n\n")

	b.WriteString("Output format (reproduce these headings exactly):\n\n")
	b.WriteString("### Question <number>\n")
	b.WriteString("**Question Type:** <multiple choice | short answer | open response>\n")
	b.WriteString("**Question:** <the question text>\n")
	b.WriteString("**Executive Function Strategy:** <the strategy applied>\n")
	b.WriteString("**Justification:** <why this strategy suits this question>\n\n")
	b.WriteString("Repeat the question block for every question.\n")
	c.writeNoneRule(&b)

	return b.String()
}

// ComposeIcebreaker builds the icebreaker prompt from the icebreaker
// context block.
func (c *Composer) ComposeIcebreaker(req rag.ContentRequest, blocks map[string]aggregate.ContextBlock) string {
	var b strings.Builder

	task := fmt.Sprintf("Create one classroom icebreaker activity for grade %s students with neurodiverse learning needs.", req.Grade)
	if req.Query != "" {
		task = fmt.Sprintf("%s The teacher asked for: %s.", task, req.Query)
	}
	c.writeTaskHeader(&b, task)

	c.writeContextBlock(&b, 1, "Example icebreaker activities", blockText(blocks, planner.BlockIcebreaker, planner.FallbackIcebreaker))

	b.WriteString("Requirements:\n")
	b.WriteString("- Adapt the style of the examples in CONTEXT 1 rather than copying one verbatim.\n")
	if req.Materials != "" {
		b.WriteString(fmt.Sprintf("- Only use these materials: %s.\n", req.Materials))
	}
	if req.Setting != "" {
		b.WriteString(fmt.Sprintf("- The activity must work in this setting: %s.\n", req.Setting))
	}
	b.WriteString("\n")

	b.WriteString("Output format (reproduce these headings exactly):\n\n")
	b.WriteString("**Title:** <activity name>\n")
	b.WriteString("**Objective:** <social or regulation goal of the activity>\n")
	b.WriteString("**Materials:** <comma-separated materials, or None.>\n")
	b.WriteString("**Instructions:**\n")
	b.WriteString("1. <first step>\n")
	b.WriteString("2. <next step>\n")
	b.WriteString("**Debrief:** <questions to ask the class afterwards>\n")
	b.WriteString("**Tips:** <adjustments for students who need extra support>\n")
	c.writeNoneRule(&b)

	return b.String()
}

func (c *Composer) writeTaskHeader(b *strings.Builder, task string) {
	b.WriteString(task)
	b.WriteString("\n\n")
}

func (c *Composer) writeContextBlock(b *strings.Builder, number int, title, text string) {
	b.WriteString(fmt.Sprintf("CONTEXT %d (%s):\n", number, title))
	b.WriteString(text)
	b.WriteString("\n\n")
}

func (c *Composer) writeStrategies(b *strings.Builder, subject string) {
	strategies := strategiesForSubject(subject)
	if strategies == "" {
		return
	}
	b.WriteString(strategies)
	b.WriteString("\n\n")
}

func (c *Composer) writeNoneRule(b *strings.Builder) {
	b.WriteString("If a section has no content, still include the section heading and write \"None.\"\n")
}

func blockText(blocks map[string]aggregate.ContextBlock, label, fallback string) string {
	if block, ok := blocks[label]; ok && block.Text != "" {
		return block.Text
	}
	return fallback
}
