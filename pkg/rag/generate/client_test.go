package generate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/llm"
	"ai-lessonplanner-be/pkg/rag"

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

type fakeProvider struct {
	response string
	err      error

	gotHistory []llm.Message
	gotOptions llm.Options
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.gotHistory = history
	for _, opt := range options {
		opt(&f.gotOptions)
	}
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestGenerate(t *testing.T) {
	provider := &fakeProvider{response: "**Title:** Fractions"}
	client := NewClient(provider, 0, noopLogger{})

	text, err := client.Generate(context.Background(), "make a lesson")

	assert.NoError(t, err)
	assert.Equal(t, "**Title:** Fractions", text)

	// System persona always leads the history.
	assert.Len(t, provider.gotHistory, 2)
	assert.Equal(t, "system", provider.gotHistory[0].Role)
	assert.Equal(t, systemPersona, provider.gotHistory[0].Content)
	assert.Equal(t, "make a lesson", provider.gotHistory[1].Content)

	assert.Equal(t, float64(temperature), provider.gotOptions.Temperature)
	assert.Equal(t, maxTokens, provider.gotOptions.MaxTokens)
}

func TestGenerateProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("rate limited")}
	client := NewClient(provider, 0, noopLogger{})

	_, err := client.Generate(context.Background(), "make a lesson")

	var perr *rag.ProviderError
	assert.True(t, errors.As(err, &perr))
	assert.ErrorContains(t, err, "rate limited")
}

// ctxBoundProvider blocks until the request deadline fires, the way a stalled
// upstream would.
type ctxBoundProvider struct{}

func (ctxBoundProvider) Chat(ctx context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (p ctxBoundProvider) Generate(ctx context.Context, _ string, _ ...llm.Option) (string, error) {
	return p.Chat(ctx, nil)
}

func TestGenerateTimeout(t *testing.T) {
	t.Run("deadline error from provider", func(t *testing.T) {
		provider := &fakeProvider{err: context.DeadlineExceeded}
		client := NewClient(provider, 0, noopLogger{})

		_, err := client.Generate(context.Background(), "make a lesson")

		var terr *rag.TimeoutError
		assert.True(t, errors.As(err, &terr))
		assert.Equal(t, "generation", terr.Stage)

		var perr *rag.ProviderError
		assert.False(t, errors.As(err, &perr), "timeouts must not classify as provider failures")
	})

	t.Run("stalled provider hits the request deadline", func(t *testing.T) {
		client := NewClient(ctxBoundProvider{}, time.Millisecond, noopLogger{})

		_, err := client.Generate(context.Background(), "make a lesson")

		var terr *rag.TimeoutError
		assert.True(t, errors.As(err, &terr))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestGenerateEmptyOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty string", response: ""},
		{name: "whitespace only", response: "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{response: tt.response}
			client := NewClient(provider, 0, noopLogger{})

			_, err := client.Generate(context.Background(), "make a lesson")
			assert.ErrorIs(t, err, ErrEmpty)
		})
	}
}
