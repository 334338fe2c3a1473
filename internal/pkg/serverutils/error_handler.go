package serverutils

import (
	"errors"

	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandlerMiddleware maps the content pipeline's error taxonomy onto
// HTTP statuses. Business outcomes (validation, not-found) carry detail the
// caller can act on; operational failures carry a stable category and an
// opaque diagnostic reference instead of internal error text.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *rag.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(
				ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		}

		var notFoundErr *rag.NotFoundError
		if errors.As(err, &notFoundErr) {
			detail := dto.ContentNotFoundDetail{
				Message:    "No content could be generated for the submitted inputs.",
				Submitted:  submittedFields(notFoundErr.Request),
				Suggestion: notFoundErr.Suggestion,
			}
			return ctx.Status(fiber.StatusNotFound).JSON(
				ErrorResponseWithDetail(fiber.StatusNotFound, "content not found", detail))
		}

		var timeoutErr *rag.TimeoutError
		if errors.As(err, &timeoutErr) {
			ref := logFailure(log, "pipeline stage timed out", err, ctx)
			return ctx.Status(fiber.StatusGatewayTimeout).JSON(
				ErrorResponseWithDetail(fiber.StatusGatewayTimeout, "generation timed out", fiber.Map{"reference": ref}))
		}

		var providerErr *rag.ProviderError
		if errors.As(err, &providerErr) {
			ref := logFailure(log, "generation provider failure", err, ctx)
			return ctx.Status(fiber.StatusBadGateway).JSON(
				ErrorResponseWithDetail(fiber.StatusBadGateway, "generation provider unavailable", fiber.Map{"reference": ref}))
		}

		var retrievalErr *rag.RetrievalError
		if errors.As(err, &retrievalErr) {
			ref := logFailure(log, "retrieval failure", err, ctx)
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(
				ErrorResponseWithDetail(fiber.StatusServiceUnavailable, "context store unavailable", fiber.Map{"reference": ref}))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(
				ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		ref := logFailure(log, "unexpected failure", err, ctx)
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponseWithDetail(fiber.StatusInternalServerError, "internal server error", fiber.Map{"reference": ref}))
	}
}

func logFailure(log logger.ILogger, message string, err error, ctx *fiber.Ctx) string {
	ref := uuid.NewString()
	log.Error("http", message, map[string]interface{}{
		"reference": ref,
		"path":      ctx.Path(),
		"method":    ctx.Method(),
		"error":     err.Error(),
	})
	return ref
}

func submittedFields(req rag.ContentRequest) map[string]string {
	fields := map[string]string{
		"subject": req.Subject,
		"topic":   req.Topic,
		"grade":   req.Grade,
	}
	if req.Subtopic != "" {
		fields["subtopic"] = req.Subtopic
	}
	if req.Disorder != "" {
		fields["disorder"] = req.Disorder
	}
	if req.Query != "" {
		fields["query"] = req.Query
	}
	return fields
}
