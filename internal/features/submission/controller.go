package submission

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"
)

type SubmissionController struct {
	Service SubmissionService
}

func NewSubmissionController(service SubmissionService) *SubmissionController {
	return &SubmissionController{Service: service}
}

func statusFor(err error) int {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrSubmissionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrViewOnly), errors.Is(err, ErrOutOfScopeLocation), errors.Is(err, role.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotAssigned), errors.Is(err, ErrConfirmRequired),
		errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrBadMonthYear):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verrs,
		})
	}
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// CreateSubmission godoc
func (ctrl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sub, err := ctrl.Service.CreateSubmission(c.UserContext(), req, claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GetSubmission godoc
func (ctrl *SubmissionController) GetSubmission(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	sub, err := ctrl.Service.GetSubmission(c.UserContext(), c.Params("id"), claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sub)
}

// ListSubmissions godoc
func (ctrl *SubmissionController) ListSubmissions(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	filter := ListFilter{
		Location:   c.Query("location"),
		MonthYear:  c.Query("month_year"),
		TemplateID: c.Query("template_id"),
		Status:     Status(c.Query("status")),
		UserID:     c.Query("user_id"),
	}

	subs, err := ctrl.Service.ListSubmissions(c.UserContext(), filter, claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(subs)
}

// UpdateSubmission godoc
func (ctrl *SubmissionController) UpdateSubmission(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateSubmission(c.UserContext(), c.Params("id"), req, claims.UserID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Submission updated successfully"})
}

// DeleteSubmission godoc
func (ctrl *SubmissionController) DeleteSubmission(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	confirm := c.Query("confirm") == "true"
	if err := ctrl.Service.DeleteSubmission(c.UserContext(), c.Params("id"), claims.UserID, confirm); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
