package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-reporthub/internal/common/api"
	"go-reporthub/internal/config"
	"go-reporthub/internal/database"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/auth"
	"go-reporthub/internal/features/dashboard"
	"go-reporthub/internal/features/export"
	"go-reporthub/internal/features/location"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/settings"
	"go-reporthub/internal/features/stats"
	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/features/template"
	"go-reporthub/internal/features/upload"
	"go-reporthub/internal/features/user"
	"go-reporthub/internal/logger"
	"go-reporthub/internal/middleware"
	"go-reporthub/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, metrics *middleware.Metrics) *fiber.App {
	utils.SetSecret(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			middleware.NewMetrics,
			NewFiberServer,
			database.NewDatabase,

			// Repositories
			audit.NewAuditRepository,
			user.NewUserRepository,
			role.NewRoleRepository,
			location.NewLocationRepository,
			template.NewTemplateRepository,
			submission.NewSubmissionRepository,
			settings.NewSettingsRepository,
			upload.NewUploadRepository,

			// Services
			audit.NewAuditService,
			user.NewUserService,
			auth.NewAuthService,
			role.NewRoleService,
			location.NewLocationService,
			template.NewTemplateService,
			submission.NewSubmissionService,
			settings.NewSettingsService,
			stats.NewStatsService,
			dashboard.NewDashboardService,
			upload.NewUploadService,
			export.NewExportService,

			// Interface adapters to break circular dependencies
			func(r user.UserRepository) audit.UserFinder { return r },
			func(s role.RoleService) middleware.PermissionChecker { return s },

			// Controllers
			auth.NewAuthController,
			user.NewUserController,
			role.NewRoleController,
			location.NewLocationController,
			template.NewTemplateController,
			submission.NewSubmissionController,
			settings.NewSettingsController,
			stats.NewStatsController,
			dashboard.NewDashboardController,
			upload.NewUploadController,
			export.NewExportController,
			audit.NewAuditController,

			// API routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(role.NewRoleApi),
			AsRoute(location.NewLocationApi),
			AsRoute(template.NewTemplateApi),
			AsRoute(submission.NewSubmissionApi),
			AsRoute(settings.NewSettingsApi),
			AsRoute(stats.NewStatsApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(upload.NewUploadApi),
			AsRoute(export.NewExportApi),
			AsRoute(audit.NewAuditApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
