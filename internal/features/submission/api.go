package submission

import (
	"go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SubmissionApi struct {
	Controller *SubmissionController
	Config     *config.Config
	Checker    middleware.PermissionChecker
}

func NewSubmissionApi(controller *SubmissionController, cfg *config.Config, checker middleware.PermissionChecker) api.Route {
	return &SubmissionApi{
		Controller: controller,
		Config:     cfg,
		Checker:    checker,
	}
}

func (a *SubmissionApi) Setup(app *fiber.App) {
	group := app.Group("/api/submissions", middleware.AuthMiddleware(a.Config.SkipAuth))

	submitGuard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenSubmit)
	reportGuard := middleware.RequirePage(a.Checker, a.Config.SkipAuth, role.TokenReports)

	group.Post("/", submitGuard, a.Controller.CreateSubmission)
	group.Get("/", a.Controller.ListSubmissions)
	group.Get("/:id", a.Controller.GetSubmission)
	group.Put("/:id", reportGuard, a.Controller.UpdateSubmission)
	group.Delete("/:id", reportGuard, a.Controller.DeleteSubmission)
}
