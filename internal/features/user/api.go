package user

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// users page token; declared locally to avoid importing the role
// feature, which imports this package.
const usersPageToken = "users"

type UserApi struct {
	Controller *UserController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewUserApi(controller *UserController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &UserApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users", middleware.AuthMiddleware(a.Config.SkipAuth))

	guard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, usersPageToken)
	group.Get("/", guard, a.Controller.ListUsers)
	group.Post("/", guard, a.Controller.CreateUser)
	group.Get("/:id", guard, a.Controller.GetUser)
	group.Put("/:id", guard, a.Controller.UpdateUser)
	group.Post("/:id/approve", guard, a.Controller.ApproveUser)
	group.Delete("/:id", guard, a.Controller.DeleteUser)
	group.Post("/:id/restore", guard, a.Controller.RestoreUser)
}
