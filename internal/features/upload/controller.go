package upload

import (
	"github.com/gofiber/fiber/v2"

	"go-reporthub/internal/middleware"
)

type UploadController struct {
	Service UploadService
}

func NewUploadController(service UploadService) *UploadController {
	return &UploadController{Service: service}
}

// UploadFile godoc
func (ctrl *UploadController) UploadFile(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	src, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer src.Close()

	file, err := ctrl.Service.Store(
		c.UserContext(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		src,
		claims.UserID,
	)
	if err != nil {
		switch err {
		case ErrFileTooLarge, ErrTypeNotAllowed:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}

// ServeFile godoc
func (ctrl *UploadController) ServeFile(c *fiber.Ctx) error {
	path, file, err := ctrl.Service.Resolve(c.UserContext(), c.Params("filename"))
	if err != nil {
		switch err {
		case ErrBadFileName:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case ErrFileNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.SendFile(path)
}
