package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/rag/planner"
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

// fakeStore answers queries from a canned map keyed by query text.
type fakeStore struct {
	mu      sync.Mutex
	results map[string][]store.Document
	errors  map[string]error
	calls   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		results: make(map[string][]store.Document),
		errors:  make(map[string]error),
	}
}

func (f *fakeStore) GetOrCreateCollection(_ context.Context, name string) (*store.Collection, error) {
	return &store.Collection{Name: name, Space: store.CosineSpace}, nil
}

func (f *fakeStore) Query(_ context.Context, collection, queryText string, _ int, _ ...store.Filter) ([]store.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, queryText)
	if err, ok := f.errors[queryText]; ok {
		return nil, err
	}
	return f.results[queryText], nil
}

func (f *fakeStore) Add(_ context.Context, _ string, _ []store.Document) error {
	return nil
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func block(label, fallback string, queries ...planner.QuerySpec) planner.BlockSpec {
	return planner.BlockSpec{Label: label, Fallback: fallback, Queries: queries}
}

func query(text string) planner.QuerySpec {
	return planner.QuerySpec{Collection: "exec_skills", QueryText: text, Limit: 2}
}

func TestExecuteJoinsFragments(t *testing.T) {
	fs := newFakeStore()
	fs.results["first"] = []store.Document{
		{Content: "fragment one"},
		{Content: "fragment two"},
	}

	a := NewAggregator(fs, noopLogger{})
	blocks, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("lesson_context", "No lesson content found.", query("first")),
	})

	assert.NoError(t, err)
	assert.Equal(t, "fragment one\n\nfragment two", blocks["lesson_context"].Text)
}

func TestExecuteFallbackOnEmptyResult(t *testing.T) {
	fs := newFakeStore()

	a := NewAggregator(fs, noopLogger{})
	blocks, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("lesson_context", "No lesson content found.", query("anything")),
	})

	assert.NoError(t, err)
	assert.Equal(t, "No lesson content found.", blocks["lesson_context"].Text)
}

func TestExecuteKeepsQueryDeclarationOrder(t *testing.T) {
	fs := newFakeStore()
	fs.results["skill a"] = []store.Document{{Content: "A"}}
	fs.results["skill b"] = []store.Document{{Content: "B"}}

	a := NewAggregator(fs, noopLogger{})

	forward, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("exec_context", "No strategy notes found.", query("skill a"), query("skill b")),
	})
	assert.NoError(t, err)
	assert.Equal(t, "A\n\nB", forward["exec_context"].Text)

	// Reversing the query order reverses the block text.
	reversed, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("exec_context", "No strategy notes found.", query("skill b"), query("skill a")),
	})
	assert.NoError(t, err)
	assert.Equal(t, "B\n\nA", reversed["exec_context"].Text)
}

func TestExecuteWrapsStoreFailure(t *testing.T) {
	fs := newFakeStore()
	fs.errors["broken"] = fmt.Errorf("connection refused")

	a := NewAggregator(fs, noopLogger{})
	_, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("exec_context", "No strategy notes found.", query("broken")),
	})

	var rerr *rag.RetrievalError
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, "exec_skills", rerr.Collection)
}

func TestExecuteSkipsEmptyFragments(t *testing.T) {
	fs := newFakeStore()
	fs.results["mixed"] = []store.Document{
		{Content: "kept"},
		{Content: ""},
		{Content: "also kept"},
	}

	a := NewAggregator(fs, noopLogger{})
	blocks, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("lesson_context", "No lesson content found.", query("mixed")),
	})

	assert.NoError(t, err)
	assert.Equal(t, "kept\n\nalso kept", blocks["lesson_context"].Text)
}

func TestExecuteRunsEveryQuery(t *testing.T) {
	fs := newFakeStore()
	fs.results["skill a"] = []store.Document{{Content: "A"}}

	a := NewAggregator(fs, noopLogger{})
	_, err := a.Execute(context.Background(), []planner.BlockSpec{
		block("exec_context", "No strategy notes found.",
			query("skill a"), query("skill b"), query("skill c")),
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, fs.callCount())
}
