package stats

import (
	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/middleware"
)

type StatsController struct {
	Service StatsService
}

func NewStatsController(service StatsService) *StatsController {
	return &StatsController{Service: service}
}

func queryFrom(c *fiber.Ctx) StatisticsQuery {
	return StatisticsQuery{
		GroupBy:    Dimension(c.Query("group_by", string(ByLocation))),
		Location:   c.Query("location"),
		MonthYear:  c.Query("month_year"),
		TemplateID: c.Query("template_id"),
		Status:     submission.Status(c.Query("status")),
	}
}

// GetStatistics godoc
func (ctrl *StatsController) GetStatistics(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := queryFrom(c)
	if !query.GroupBy.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown grouping dimension",
		})
	}

	result, err := ctrl.Service.GetStatistics(c.UserContext(), claims.UserID, query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// AnalyzeCustomField godoc
func (ctrl *StatsController) AnalyzeCustomField(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		Field      string       `json:"field"`
		Mode       AnalysisMode `json:"mode"`
		Location   string       `json:"location,omitempty"`
		MonthYear  string       `json:"month_year,omitempty"`
		TemplateID string       `json:"template_id,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Field name is required",
		})
	}
	if !req.Mode.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown analysis mode",
		})
	}

	query := StatisticsQuery{
		Location:   req.Location,
		MonthYear:  req.MonthYear,
		TemplateID: req.TemplateID,
	}

	result, err := ctrl.Service.AnalyzeCustomField(c.UserContext(), claims.UserID, query, req.Field, req.Mode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// ListCustomFields godoc
func (ctrl *StatsController) ListCustomFields(c *fiber.Ctx) error {
	templateID := c.Query("template_id")
	if templateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "template_id is required",
		})
	}

	fields, err := ctrl.Service.ListCustomFields(c.UserContext(), templateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Template not found",
		})
	}
	return c.JSON(fiber.Map{"fields": fields})
}
