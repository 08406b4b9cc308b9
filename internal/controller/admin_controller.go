package controller

import (
	"assessment-advisor-be/internal/dto"
	"assessment-advisor-be/internal/pkg/serverutils"
	"assessment-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Reindex(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("reindex", c.Reindex)
	h.Get("logs", c.GetLogs)
	h.Get("stats", c.Stats)
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	accepted, err := c.adminService.Reindex(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Reindex queued", dto.ReindexResponse{
		Accepted: accepted,
	}))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.adminService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", logs))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	stats, err := c.adminService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", stats))
}
