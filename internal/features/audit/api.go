package audit

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// users page token; declared locally because importing the role feature
// from here would close an import cycle through the user feature.
const usersPageToken = "users"

type AuditApi struct {
	Controller *AuditController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewAuditApi(controller *AuditController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &AuditApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *AuditApi) Setup(app *fiber.App) {
	group := app.Group("/api/audit-logs", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", middleware.RequirePage(a.Checker, a.Config.SkipAuth, usersPageToken), a.Controller.ListLogs)
}
