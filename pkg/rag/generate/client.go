package generate

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/llm"
	"ai-lessonplanner-be/pkg/rag"
)

// Fixed sampling parameters: creative but bounded output.
const (
	temperature    = 0.7
	maxTokens      = 2000
	systemPersona  = "You are a supportive and creative educational assistant."
	defaultTimeout = 90 * time.Second
)

// ErrEmpty signals the model returned no usable text. Callers map this to
// a not-found outcome carrying the original request.
var ErrEmpty = &emptyGenerationError{}

type emptyGenerationError struct{}

func (e *emptyGenerationError) Error() string {
	return "model returned empty content"
}

// Client invokes the language model with a composed prompt and fixed
// sampling parameters. One synchronous call per orchestrated generation.
type Client struct {
	provider llm.LLMProvider
	timeout  time.Duration
	logger   logger.ILogger
}

func NewClient(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

// Generate sends the prompt and classifies the outcome: deadline expiry
// surfaces as TimeoutError, other provider failures as ProviderError, and
// empty output as ErrEmpty.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	history := []llm.Message{
		{Role: "system", Content: systemPersona},
		{Role: "user", Content: prompt},
	}

	text, err := c.provider.Chat(ctx, history,
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		c.logger.Error("generate", "provider call failed", map[string]interface{}{
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &rag.TimeoutError{Stage: "generation", Err: err}
		}
		return "", &rag.ProviderError{Err: err}
	}

	if strings.TrimSpace(text) == "" {
		c.logger.Warn("generate", "model returned empty content", map[string]interface{}{
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return "", ErrEmpty
	}

	c.logger.Info("generate", "generation complete", map[string]interface{}{
		"chars":      len(text),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return text, nil
}
