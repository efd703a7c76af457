package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/middleware"
)

type DashboardController struct {
	Service DashboardService
}

func NewDashboardController(service DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// MissingReports godoc
func (ctrl *DashboardController) MissingReports(c *fiber.Ctx) error {
	period := c.Query("period")

	report, err := ctrl.Service.MissingReports(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// GetOverview godoc
func (ctrl *DashboardController) GetOverview(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	overview, err := ctrl.Service.GetOverview(c.UserContext(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(overview)
}
