package dashboard

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	Controller *DashboardController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewDashboardApi(controller *DashboardController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &DashboardApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenDashboard), a.Controller.GetOverview)
	group.Get("/missing-reports", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenDashboard), a.Controller.MissingReports)
}
