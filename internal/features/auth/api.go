package auth

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	Controller *AuthController
	Config     *config.Config
}

func NewAuthApi(controller *AuthController, cfg *config.Config) api.Route {
	return &AuthApi{
		Controller: controller,
		Config:     cfg,
	}
}

func (a *AuthApi) Setup(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/login", a.Controller.Login)
	group.Post("/register", a.Controller.Register)
	group.Get("/me", middleware.AuthMiddleware(a.Config.SkipAuth), a.Controller.Me)
}
