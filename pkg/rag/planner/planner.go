package planner

import (
	"fmt"

	"ai-lessonplanner-be/internal/constant"
	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/store"
)

// QuerySpec is one unit of retrieval work against a named collection.
// Constructed fresh per retrieval call, never persisted.
type QuerySpec struct {
	Collection string
	QueryText  string
	Filters    []store.Filter
	Limit      int
}

// BlockSpec groups the queries that feed one labeled context block. The
// exec-skill fan-out puts N queries into a single block; most blocks carry
// exactly one.
type BlockSpec struct {
	Label    string
	Queries  []QuerySpec
	Fallback string
}

// Context block labels consumed by the prompt composer.
const (
	BlockLesson     = "lesson_context"
	BlockAssessment = "assessment_context"
	BlockExec       = "exec_context"
	BlockIcebreaker = "icebreaker_context"
)

// Fallback block text when retrieval returns zero fragments. Designed
// degradation, not an error.
const (
	FallbackLesson     = "No lesson content found."
	FallbackAssessment = "No assessment found."
	FallbackExec       = "No strategy notes found."
	FallbackIcebreaker = "No icebreakers found."
)

const (
	lessonResultLimit     = 5
	execResultLimit       = 2
	icebreakerResultLimit = 4
)

// Planner converts a normalized ContentRequest into the block specs each
// content type needs. Queries are intentionally narrow: strict metadata
// filters bound prompt size, similarity only ranks within the filtered set.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// LessonPlan plans retrieval for lesson-plan generation: one instructional
// query plus the executive-skill fan-out.
func (p *Planner) LessonPlan(req rag.ContentRequest) []BlockSpec {
	return []BlockSpec{
		p.instructionalBlock(req),
		p.execBlock(req),
	}
}

// Assessment plans retrieval for assessment generation: instructional
// content, existing assessment exemplars, and the executive-skill fan-out.
func (p *Planner) Assessment(req rag.ContentRequest) []BlockSpec {
	collection := constant.SubjectCollections[req.Subject]
	section, _ := constant.AssessmentSection(req.Subject)

	assessmentBlock := BlockSpec{
		Label:    BlockAssessment,
		Fallback: FallbackAssessment,
		Queries: []QuerySpec{{
			Collection: collection,
			QueryText:  assessmentQueryText(req),
			Limit:      lessonResultLimit,
			Filters: []store.Filter{
				store.Eq(constant.MetadataKeyGrade, req.Grade),
				store.Eq(constant.MetadataKeySection, section),
			},
		}},
	}

	return []BlockSpec{
		p.instructionalBlock(req),
		assessmentBlock,
		p.execBlock(req),
	}
}

// Icebreaker plans a single unfiltered query against the icebreaker
// collection. Materials and setting hints sharpen ranking via the query
// text rather than metadata filters.
func (p *Planner) Icebreaker(req rag.ContentRequest) []BlockSpec {
	queryText := req.Query
	if queryText == "" {
		queryText = fmt.Sprintf("Icebreaker activities for grade %s", req.Grade)
	}
	if req.Materials != "" {
		queryText = fmt.Sprintf("%s using %s", queryText, req.Materials)
	}
	if req.Setting != "" {
		queryText = fmt.Sprintf("%s in a %s setting", queryText, req.Setting)
	}

	return []BlockSpec{{
		Label:    BlockIcebreaker,
		Fallback: FallbackIcebreaker,
		Queries: []QuerySpec{{
			Collection: constant.CollectionIcebreakers,
			QueryText:  queryText,
			Limit:      icebreakerResultLimit,
		}},
	}}
}

func (p *Planner) instructionalBlock(req rag.ContentRequest) BlockSpec {
	collection := constant.SubjectCollections[req.Subject]
	sections, _ := constant.InstructionalSections(req.Subject)

	return BlockSpec{
		Label:    BlockLesson,
		Fallback: FallbackLesson,
		Queries: []QuerySpec{{
			Collection: collection,
			QueryText:  lessonQueryText(req),
			Limit:      lessonResultLimit,
			Filters: []store.Filter{
				store.Eq(constant.MetadataKeyGrade, req.Grade),
				store.Eq(constant.MetadataKeyTopic, req.Topic),
				store.In(constant.MetadataKeySection, sections...),
			},
		}},
	}
}

// execBlock fans out one query per skill. Results are concatenated in skill
// declaration order by the aggregator.
func (p *Planner) execBlock(req rag.ContentRequest) BlockSpec {
	queries := make([]QuerySpec, len(req.ExecSkills))
	for i, skill := range req.ExecSkills {
		queries[i] = QuerySpec{
			Collection: constant.CollectionExecSkills,
			QueryText:  fmt.Sprintf("Strategies for %s", skill),
			Limit:      execResultLimit,
			Filters: []store.Filter{
				store.Eq(constant.MetadataKeyExecSkill, skill),
			},
		}
	}
	return BlockSpec{
		Label:    BlockExec,
		Fallback: FallbackExec,
		Queries:  queries,
	}
}

func lessonQueryText(req rag.ContentRequest) string {
	return fmt.Sprintf("%s in %s for grade %s", queryTopic(req), req.Subject, req.Grade)
}

// Exemplar ranking wants prior assessments, not instructional prose, so the
// hint names the artifact explicitly.
func assessmentQueryText(req rag.ContentRequest) string {
	return fmt.Sprintf("assessment for %s in %s for grade %s", queryTopic(req), req.Subject, req.Grade)
}

func queryTopic(req rag.ContentRequest) string {
	if req.Subtopic != "" {
		return fmt.Sprintf("%s (%s)", req.Topic, req.Subtopic)
	}
	return req.Topic
}
