package template

import (
	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/middleware"
)

type TemplateController struct {
	Service TemplateService
}

func NewTemplateController(service TemplateService) *TemplateController {
	return &TemplateController{Service: service}
}

// CreateTemplate godoc
func (ctrl *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Template name is required",
		})
	}

	tpl, err := ctrl.Service.CreateTemplate(c.UserContext(), req, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(tpl)
}

// GetTemplate godoc
func (ctrl *TemplateController) GetTemplate(c *fiber.Ctx) error {
	tpl, err := ctrl.Service.GetTemplate(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Template not found",
		})
	}
	return c.JSON(tpl)
}

// ListTemplates godoc
func (ctrl *TemplateController) ListTemplates(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	templates, err := ctrl.Service.ListTemplates(c.UserContext(), claims.Role, claims.AssignedLocation)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(templates)
}

// UpdateTemplate godoc
func (ctrl *TemplateController) UpdateTemplate(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateTemplate(c.UserContext(), c.Params("id"), req, claims.UserID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Template updated successfully"})
}

// DeleteTemplate godoc
func (ctrl *TemplateController) DeleteTemplate(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteTemplate(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Template deleted successfully"})
}

// RestoreTemplate godoc
func (ctrl *TemplateController) RestoreTemplate(c *fiber.Ctx) error {
	if err := ctrl.Service.RestoreTemplate(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Template restored successfully"})
}
