package controller

import (
	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/serverutils"
	"ai-lessonplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIcebreakerController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type icebreakerController struct {
	icebreakerService service.IIcebreakerService
}

func NewIcebreakerController(icebreakerService service.IIcebreakerService) IIcebreakerController {
	return &icebreakerController{
		icebreakerService: icebreakerService,
	}
}

func (c *icebreakerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/icebreaker/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
}

func (c *icebreakerController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateIcebreakerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.icebreakerService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate icebreaker", res))
}
