package planner

import (
	"testing"

	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestLessonPlan(t *testing.T) {
	p := NewPlanner()
	req := rag.ContentRequest{
		Subject:    "Maths",
		Topic:      "Fractions",
		Grade:      "5",
		ExecSkills: []string{"Enhancing Working Memory", "Task Initiation"},
	}

	blocks := p.LessonPlan(req)
	assert.Len(t, blocks, 2)

	lesson := blocks[0]
	assert.Equal(t, BlockLesson, lesson.Label)
	assert.Equal(t, FallbackLesson, lesson.Fallback)
	assert.Len(t, lesson.Queries, 1)

	q := lesson.Queries[0]
	assert.Equal(t, "lesson_plans", q.Collection)
	assert.Equal(t, "Fractions in Maths for grade 5", q.QueryText)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, []store.Filter{
		store.Eq("grade", "5"),
		store.Eq("topic", "Fractions"),
		store.In("section", "intro_context", "instructional_steps"),
	}, q.Filters)

	exec := blocks[1]
	assert.Equal(t, BlockExec, exec.Label)
	assert.Len(t, exec.Queries, 2, "one query per executive skill")
	assert.Equal(t, "Strategies for Enhancing Working Memory", exec.Queries[0].QueryText)
	assert.Equal(t, "Strategies for Task Initiation", exec.Queries[1].QueryText)
	for _, q := range exec.Queries {
		assert.Equal(t, "exec_skills", q.Collection)
		assert.Equal(t, 2, q.Limit)
	}
	assert.Equal(t, []store.Filter{store.Eq("executive_skill", "Enhancing Working Memory")}, exec.Queries[0].Filters)
}

func TestLessonPlanSubtopicInQueryText(t *testing.T) {
	p := NewPlanner()
	req := rag.ContentRequest{Subject: "Maths", Topic: "Fractions", Subtopic: "Equivalent fractions", Grade: "5"}

	blocks := p.LessonPlan(req)
	assert.Equal(t, "Fractions (Equivalent fractions) in Maths for grade 5", blocks[0].Queries[0].QueryText)
}

func TestAssessment(t *testing.T) {
	p := NewPlanner()

	t.Run("maths uses assessment section", func(t *testing.T) {
		req := rag.ContentRequest{Subject: "Maths", Topic: "Fractions", Grade: "5"}
		blocks := p.Assessment(req)
		assert.Len(t, blocks, 3)

		assert.Equal(t, BlockLesson, blocks[0].Label)
		assert.Equal(t, BlockAssessment, blocks[1].Label)
		assert.Equal(t, BlockExec, blocks[2].Label)

		q := blocks[1].Queries[0]
		assert.Equal(t, "lesson_plans", q.Collection)
		assert.Equal(t, "assessment for Fractions in Maths for grade 5", q.QueryText)
		assert.Equal(t, []store.Filter{
			store.Eq("grade", "5"),
			store.Eq("section", "assessment"),
		}, q.Filters)
	})

	t.Run("science uses evaluate section and 5E sections", func(t *testing.T) {
		req := rag.ContentRequest{Subject: "Science", Topic: "States of Matter", Grade: "4"}
		blocks := p.Assessment(req)

		lessonFilters := blocks[0].Queries[0].Filters
		assert.Contains(t, lessonFilters, store.In("section", "engage", "explain", "explore", "elaborate"))
		assert.Equal(t, "science_lessons", blocks[0].Queries[0].Collection)

		assert.Contains(t, blocks[1].Queries[0].Filters, store.Eq("section", "evaluate"))
		assert.Equal(t, "assessment for States of Matter in Science for grade 4", blocks[1].Queries[0].QueryText)
	})
}

func TestIcebreaker(t *testing.T) {
	p := NewPlanner()

	tests := []struct {
		name      string
		req       rag.ContentRequest
		wantQuery string
	}{
		{
			name:      "default query from grade",
			req:       rag.ContentRequest{Grade: "5"},
			wantQuery: "Icebreaker activities for grade 5",
		},
		{
			name:      "explicit query wins",
			req:       rag.ContentRequest{Grade: "5", Query: "Name games for shy students"},
			wantQuery: "Name games for shy students",
		},
		{
			name:      "materials and setting sharpen the query",
			req:       rag.ContentRequest{Grade: "5", Materials: "paper and pens", Setting: "outdoor"},
			wantQuery: "Icebreaker activities for grade 5 using paper and pens in a outdoor setting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := p.Icebreaker(tt.req)
			assert.Len(t, blocks, 1)
			assert.Equal(t, BlockIcebreaker, blocks[0].Label)
			assert.Len(t, blocks[0].Queries, 1)

			q := blocks[0].Queries[0]
			assert.Equal(t, "icebreakers", q.Collection)
			assert.Equal(t, tt.wantQuery, q.QueryText)
			assert.Equal(t, 4, q.Limit)
			assert.Empty(t, q.Filters, "icebreaker retrieval is unfiltered")
		})
	}
}
