package stats

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type StatsApi struct {
	Controller *StatsController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewStatsApi(controller *StatsController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &StatsApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *StatsApi) Setup(app *fiber.App) {
	group := app.Group("/api/statistics", middleware.AuthMiddleware(a.Config.SkipAuth))

	guard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenStatistics)
	group.Get("/", guard, a.Controller.GetStatistics)
	group.Post("/generate-custom-field", guard, a.Controller.AnalyzeCustomField)
	group.Get("/custom-fields", guard, a.Controller.ListCustomFields)
}
