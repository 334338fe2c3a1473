package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
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

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         rag.NewValidationError("subject", "must be one of Maths, Science"),
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "invalid request: subject: must be one of Maths, Science",
		},
		{
			name:        "not found error",
			err:         &rag.NotFoundError{Request: rag.ContentRequest{Subject: "Maths", Topic: "Fractions", Grade: "5"}},
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "content not found",
		},
		{
			name:        "timeout error",
			err:         &rag.TimeoutError{Stage: "generation", Err: context.DeadlineExceeded},
			wantStatus:  fiber.StatusGatewayTimeout,
			wantMessage: "generation timed out",
		},
		{
			name:        "provider error",
			err:         &rag.ProviderError{Err: errors.New("quota exhausted")},
			wantStatus:  fiber.StatusBadGateway,
			wantMessage: "generation provider unavailable",
		},
		{
			name:        "retrieval error",
			err:         &rag.RetrievalError{Collection: "exec_skills", Err: errors.New("connection refused")},
			wantStatus:  fiber.StatusServiceUnavailable,
			wantMessage: "context store unavailable",
		},
		{
			name:        "unclassified error",
			err:         errors.New("boom"),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware(noopLogger{}))
			app.Get("/generate", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/generate", nil))
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)

			var body ErrorBody
			assert.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
