package controller

import (
	"encoding/json"

	"assessment-advisor-be/internal/constant"
	"assessment-advisor-be/internal/dto"
	"assessment-advisor-be/internal/pkg/serverutils"
	"assessment-advisor-be/internal/service"
	"assessment-advisor-be/web"

	"github.com/gofiber/fiber/v2"
)

type IRecommendController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type recommendController struct {
	recommendService service.IRecommendService
}

func NewRecommendController(recommendService service.IRecommendService) IRecommendController {
	return &recommendController{
		recommendService: recommendService,
	}
}

// RegisterRoutes mounts the public surface at the root, not under /api. The
// paths and response shapes are a fixed contract with existing clients.
func (c *recommendController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Post("/recommend", c.Recommend)
	r.Get("/health", c.Health)
}

func (c *recommendController) Home(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(web.IndexHTML)
}

func (c *recommendController) Recommend(ctx *fiber.Ctx) error {
	if !ctx.Is("json") {
		return serverutils.NewUnsupportedMediaType(constant.MsgNotJSON)
	}

	// BodyParser is bypassed here: a malformed body must map to the fixed
	// 400 message, not to fiber's own parse error.
	var req dto.RecommendRequest
	if err := json.Unmarshal(ctx.Body(), &req); err != nil {
		return serverutils.NewInvalidInput(constant.MsgInvalidBody)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewInvalidInput(constant.MsgInvalidBody)
	}

	answer, err := c.recommendService.Recommend(ctx.Context(), req.Question)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.RecommendResponse{Answer: answer})
}

func (c *recommendController) Health(ctx *fiber.Ctx) error {
	status := c.recommendService.Health()

	if status.Failed {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status: "unhealthy",
			Reason: status.Reason,
		})
	}

	// Uninitialized counts as healthy: the chain is built lazily on the
	// first recommendation.
	return ctx.JSON(dto.HealthResponse{Status: "ok"})
}
