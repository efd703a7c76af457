package settings

import (
	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	Service SettingsService
}

func NewSettingsController(service SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// GetSetting godoc
func (ctrl *SettingsController) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	setting, err := ctrl.Service.GetSetting(c.UserContext(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if setting == nil {
		return c.JSON(fiber.Map{"key": key, "value": nil})
	}
	return c.JSON(setting)
}

// UpdateSetting godoc
func (ctrl *SettingsController) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var body struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.SetSetting(c.UserContext(), key, body.Value); err != nil {
		if err == ErrBadDeadline {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Setting updated successfully"})
}
