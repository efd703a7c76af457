package upload

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UploadApi struct {
	Controller *UploadController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewUploadApi(controller *UploadController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &UploadApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *UploadApi) Setup(app *fiber.App) {
	group := app.Group("/api", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/upload", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenSubmit), a.Controller.UploadFile)
	group.Get("/files/:filename", a.Controller.ServeFile)
}
