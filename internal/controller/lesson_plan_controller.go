package controller

import (
	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/serverutils"
	"ai-lessonplanner-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILessonPlanController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type lessonPlanController struct {
	lessonPlanService service.ILessonPlanService
}

func NewLessonPlanController(lessonPlanService service.ILessonPlanService) ILessonPlanController {
	return &lessonPlanController{
		lessonPlanService: lessonPlanService,
	}
}

func (c *lessonPlanController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lesson-plan/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
}

func (c *lessonPlanController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateLessonPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.lessonPlanService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate lesson plan", res))
}
