package export

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/middleware"
)

type ExportController struct {
	Service ExportService
}

func NewExportController(service ExportService) *ExportController {
	return &ExportController{Service: service}
}

func filterFromQuery(c *fiber.Ctx) submission.ListFilter {
	return submission.ListFilter{
		Location:   c.Query("location"),
		MonthYear:  c.Query("month_year"),
		TemplateID: c.Query("template_id"),
		Status:     submission.Status(c.Query("status")),
	}
}

// ExportCSV godoc
func (ctrl *ExportController) ExportCSV(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	data, filename, err := ctrl.Service.ExportCSV(c.UserContext(), claims.UserID, filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportExcel godoc
func (ctrl *ExportController) ExportExcel(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	data, filename, err := ctrl.Service.ExportExcel(c.UserContext(), claims.UserID, filterFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
