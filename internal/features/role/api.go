package role

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	Controller *RoleController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewRoleApi(controller *RoleController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &RoleApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *RoleApi) Setup(app *fiber.App) {
	group := app.Group("/api/roles", middleware.AuthMiddleware(a.Config.SkipAuth))

	// Any authenticated user can read their own resolved permissions.
	group.Get("/permissions/me", a.Controller.MyPermissions)

	guard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, TokenRoles)
	group.Get("/", guard, a.Controller.ListRoles)
	group.Post("/", guard, a.Controller.CreateRole)
	group.Get("/:id", guard, a.Controller.GetRole)
	group.Put("/:id", guard, a.Controller.UpdateRole)
	group.Delete("/:id", guard, a.Controller.DeleteRole)
}
