package location

import (
	"github.com/gofiber/fiber/v2"

	common_models "go-reporthub/internal/common/models"
)

type LocationController struct {
	Service LocationService
}

func NewLocationController(service LocationService) *LocationController {
	return &LocationController{Service: service}
}

type upsertLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateLocation godoc
func (ctrl *LocationController) CreateLocation(c *fiber.Ctx) error {
	var req upsertLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Location name is required",
		})
	}

	loc, err := ctrl.Service.CreateLocation(c.UserContext(), req.Name, req.Description)
	if err != nil {
		if err == ErrLocationNameTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(loc)
}

// GetLocation godoc
func (ctrl *LocationController) GetLocation(c *fiber.Ctx) error {
	loc, err := ctrl.Service.GetLocation(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Location not found",
		})
	}
	return c.JSON(loc)
}

// ListLocations godoc
func (ctrl *LocationController) ListLocations(c *fiber.Ctx) error {
	filter := common_models.ActiveOnly
	if c.Query("include_deleted") == "true" {
		filter = common_models.AllStates
	}

	locations, err := ctrl.Service.ListLocations(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(locations)
}

// UpdateLocation godoc
func (ctrl *LocationController) UpdateLocation(c *fiber.Ctx) error {
	var req upsertLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateLocation(c.UserContext(), c.Params("id"), req.Name, req.Description); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location updated successfully"})
}

// DeleteLocation godoc
func (ctrl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteLocation(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location deleted successfully"})
}

// RestoreLocation godoc
func (ctrl *LocationController) RestoreLocation(c *fiber.Ctx) error {
	if err := ctrl.Service.RestoreLocation(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location restored successfully"})
}
