package settings

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SettingsApi struct {
	Controller *SettingsController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewSettingsApi(controller *SettingsController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &SettingsApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *SettingsApi) Setup(app *fiber.App) {
	group := app.Group("/api/admin/settings", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/:key", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenDashboard), a.Controller.GetSetting)
	group.Put("/:key", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenUsers), a.Controller.UpdateSetting)
}
