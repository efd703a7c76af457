package export

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	Controller *ExportController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewExportApi(controller *ExportController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &ExportApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/csv", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenReports), a.Controller.ExportCSV)
	group.Get("/excel", middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenReports), a.Controller.ExportExcel)
}
