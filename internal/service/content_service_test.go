package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/memory"
	"ai-lessonplanner-be/pkg/llm"
	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/rag/aggregate"
	"ai-lessonplanner-be/pkg/rag/generate"
	"ai-lessonplanner-be/pkg/rag/planner"
	"ai-lessonplanner-be/pkg/rag/prompt"
	"ai-lessonplanner-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

type stubStore struct {
	mu    sync.Mutex
	docs  []store.Document
	calls int
}

func (s *stubStore) GetOrCreateCollection(_ context.Context, name string) (*store.Collection, error) {
	return &store.Collection{Name: name, Space: store.CosineSpace}, nil
}

func (s *stubStore) Query(_ context.Context, _, _ string, _ int, _ ...store.Filter) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.docs, nil
}

func (s *stubStore) Add(_ context.Context, _ string, _ []store.Document) error {
	return nil
}

func (s *stubStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubLLM struct {
	response   string
	calls      int
	lastPrompt string
}

func (s *stubLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	s.calls++
	s.lastPrompt = history[len(history)-1].Content
	return s.response, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type pipeline struct {
	store *stubStore
	model *stubLLM
	cache memory.ArtifactCache
}

func newLessonPlanService(t *testing.T, modelOutput string) (ILessonPlanService, *pipeline) {
	t.Helper()
	p := &pipeline{
		store: &stubStore{docs: []store.Document{{Content: "Fractions are parts of a whole."}}},
		model: &stubLLM{response: modelOutput},
		cache: memory.NewInMemoryArtifactCache(time.Minute),
	}
	svc := NewLessonPlanService(
		planner.NewPlanner(),
		aggregate.NewAggregator(p.store, noopLogger{}),
		prompt.NewComposer(),
		generate.NewClient(p.model, time.Second, noopLogger{}),
		p.cache,
		nil,
		noopLogger{},
	)
	return svc, p
}

const lessonOutput = `**Title:** Understanding Fractions
**Objective:** Name and compare fractions.
**Materials:** paper strips

### Section 1: Introduction
**Method:** Demonstration.
**Activities:** Name halves and quarters.
**Executive Function Strategy:** Worked example stays visible.
`

func TestLessonPlanGenerate(t *testing.T) {
	svc, p := newLessonPlanService(t, lessonOutput)

	res, err := svc.Generate(context.Background(), &dto.GenerateLessonPlanRequest{
		Subject:  "maths",
		Topic:    "Fractions",
		Grade:    "5",
		Disorder: "Dyscalculia",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Fractions (Grade 5)", res.LessonName)
	assert.Equal(t, "Maths", res.Subject, "subject is canonicalized")
	assert.Equal(t, lessonOutput, res.LessonPlan)

	assert.NotNil(t, res.Document)
	assert.Equal(t, "Understanding Fractions", res.Document.Title)
	assert.Len(t, res.Document.Sections, 1)

	// dyscalculia resolves to four skills: one lesson query plus four
	// exec-skill queries.
	assert.Equal(t, 5, p.store.callCount())
	assert.Equal(t, 1, p.model.calls)
	assert.Contains(t, p.model.lastPrompt, "Fractions are parts of a whole.")
}

func TestLessonPlanGenerateServedFromCache(t *testing.T) {
	svc, p := newLessonPlanService(t, lessonOutput)
	req := &dto.GenerateLessonPlanRequest{Subject: "Maths", Topic: "Fractions", Grade: "5"}

	first, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	second, err := svc.Generate(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.model.calls, "second request must not reach the model")
}

func TestLessonPlanGenerateValidationFailure(t *testing.T) {
	svc, p := newLessonPlanService(t, lessonOutput)

	_, err := svc.Generate(context.Background(), &dto.GenerateLessonPlanRequest{
		Subject: "History",
		Topic:   "Romans",
		Grade:   "5",
	})

	var verr *rag.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "subject", verr.Field)

	// Validation failures short-circuit before any retrieval or generation.
	assert.Equal(t, 0, p.store.callCount())
	assert.Equal(t, 0, p.model.calls)
}

func TestLessonPlanGenerateEmptyModelOutput(t *testing.T) {
	svc, _ := newLessonPlanService(t, "")

	_, err := svc.Generate(context.Background(), &dto.GenerateLessonPlanRequest{
		Subject: "Maths",
		Topic:   "Fractions",
		Grade:   "5",
	})

	var nferr *rag.NotFoundError
	assert.True(t, errors.As(err, &nferr))
	assert.Equal(t, "Fractions", nferr.Request.Topic)
	assert.NotEmpty(t, nferr.Suggestion)
}

func TestAssessmentGenerate(t *testing.T) {
	p := &pipeline{
		store: &stubStore{docs: []store.Document{{Content: "Shade 3/4 of a grid."}}},
		model: &stubLLM{response: "### Question 1\n**Question Type:** short answer\n**Question:** Shade 3/4.\n"},
		cache: memory.NewInMemoryArtifactCache(time.Minute),
	}
	svc := NewAssessmentService(
		planner.NewPlanner(),
		aggregate.NewAggregator(p.store, noopLogger{}),
		prompt.NewComposer(),
		generate.NewClient(p.model, time.Second, noopLogger{}),
		p.cache,
		nil,
		noopLogger{},
	)

	res, err := svc.Generate(context.Background(), &dto.GenerateAssessmentRequest{
		Subject:    "Maths",
		Topic:      "Fractions",
		Grade:      "5",
		ExecSkills: []string{"Fostering Organization"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Maths Assessment: Fractions (Grade 5)", res.Title)
	assert.Len(t, res.Document.Questions, 1)

	// lesson + assessment exemplar + one exec-skill query
	assert.Equal(t, 3, p.store.callCount())
}

func TestIcebreakerGenerate(t *testing.T) {
	p := &pipeline{
		store: &stubStore{docs: []store.Document{{Content: "Silent line-up by birthday."}}},
		model: &stubLLM{response: "**Title:** Silent Line-Up\n**Instructions:**\n1. Line up by birthday.\n"},
		cache: memory.NewInMemoryArtifactCache(time.Minute),
	}
	svc := NewIcebreakerService(
		planner.NewPlanner(),
		aggregate.NewAggregator(p.store, noopLogger{}),
		prompt.NewComposer(),
		generate.NewClient(p.model, time.Second, noopLogger{}),
		p.cache,
		nil,
		noopLogger{},
	)

	t.Run("grade is required", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), &dto.GenerateIcebreakerRequest{Setting: "classroom"})
		var verr *rag.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "grade", verr.Field)
		assert.Equal(t, 0, p.store.callCount())
	})

	t.Run("happy path", func(t *testing.T) {
		res, err := svc.Generate(context.Background(), &dto.GenerateIcebreakerRequest{
			Grade:   "5",
			Setting: "classroom",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Silent Line-Up", res.Document.Title)
		assert.Equal(t, []string{"Line up by birthday."}, res.Document.Instructions)
		assert.Equal(t, 1, p.store.callCount(), "single unfiltered icebreaker query")
	})
}
