package template

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TemplateApi struct {
	Controller *TemplateController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewTemplateApi(controller *TemplateController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &TemplateApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *TemplateApi) Setup(app *fiber.App) {
	group := app.Group("/api/templates", middleware.AuthMiddleware(a.Config.SkipAuth))

	// Listing is scoped per role inside the service; every authenticated
	// user may call it.
	group.Get("/", a.Controller.ListTemplates)
	group.Get("/:id", a.Controller.GetTemplate)

	guard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenTemplates)
	group.Post("/", guard, a.Controller.CreateTemplate)
	group.Put("/:id", guard, a.Controller.UpdateTemplate)
	group.Delete("/:id", guard, a.Controller.DeleteTemplate)
	group.Post("/:id/restore", guard, a.Controller.RestoreTemplate)
}
