package user

import (
	"github.com/gofiber/fiber/v2"

	common_models "go-reporthub/internal/common/models"
)

type UserController struct {
	Service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{Service: service}
}

// CreateUser godoc
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username, password and role are required",
		})
	}

	usr, err := ctrl.Service.CreateUser(c.UserContext(), req)
	if err != nil {
		if err == ErrUsernameTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(usr)
}

// GetUser godoc
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	usr, err := ctrl.Service.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(usr)
}

// ListUsers godoc
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	filter := common_models.ActiveOnly
	if c.Query("include_deleted") == "true" {
		filter = common_models.AllStates
	}

	users, err := ctrl.Service.ListUsers(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(users)
}

// UpdateUser godoc
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateUser(c.UserContext(), c.Params("id"), req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// ApproveUser godoc
func (ctrl *UserController) ApproveUser(c *fiber.Ctx) error {
	if err := ctrl.Service.ApproveUser(c.UserContext(), c.Params("id")); err != nil {
		if err == ErrNotPending {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User approved successfully"})
}

// DeleteUser godoc
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// RestoreUser godoc
func (ctrl *UserController) RestoreUser(c *fiber.Ctx) error {
	if err := ctrl.Service.RestoreUser(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User restored successfully"})
}
