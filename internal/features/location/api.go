package location

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LocationApi struct {
	Controller *LocationController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewLocationApi(controller *LocationController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &LocationApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *LocationApi) Setup(app *fiber.App) {
	group := app.Group("/api/locations", middleware.AuthMiddleware(a.Config.SkipAuth))

	// Listing stays open to all authenticated users; submission forms
	// need the location names.
	group.Get("/", a.Controller.ListLocations)

	guard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenLocations)
	group.Post("/", guard, a.Controller.CreateLocation)
	group.Get("/:id", guard, a.Controller.GetLocation)
	group.Put("/:id", guard, a.Controller.UpdateLocation)
	group.Delete("/:id", guard, a.Controller.DeleteLocation)
	group.Post("/:id/restore", guard, a.Controller.RestoreLocation)
}
