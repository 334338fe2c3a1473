package controller

import (
	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/serverutils"
	"ai-lessonplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	ListCollections(ctx *fiber.Ctx) error
}

type documentController struct {
	ingestService service.IIngestService
}

func NewDocumentController(ingestService service.IIngestService) IDocumentController {
	return &documentController{
		ingestService: ingestService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Ingest)
	h.Get("collections", c.ListCollections)
}

func (c *documentController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.Ingest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Document accepted for ingestion", res))
}

func (c *documentController) ListCollections(ctx *fiber.Ctx) error {
	res, err := c.ingestService.ListCollections(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list collections", res))
}
