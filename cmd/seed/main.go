package main

import (
	"context"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/config"
	"go-reporthub/internal/database"
	"go-reporthub/internal/features/location"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/user"
	"go-reporthub/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var sampleLocations = []location.Location{
	{Name: "Central Hub", Description: "Main service location in city center"},
	{Name: "North Branch", Description: "Northern district service hub"},
	{Name: "South Branch", Description: "Southern district service hub"},
	{Name: "East Branch", Description: "Eastern district service hub"},
	{Name: "West Branch", Description: "Western district service hub"},
}

// Seed bootstraps the system roles, the default admin account, and the
// sample locations. Re-runnable: existing entries are updated or skipped.
func Seed(
	lc fx.Lifecycle,
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	locationRepo location.LocationRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Starting database seeding...")

				seedRoles(ctx, roleRepo, logger)
				seedAdmin(ctx, userRepo, logger)
				seedLocations(ctx, locationRepo, logger)

				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func seedRoles(ctx context.Context, repo role.RoleRepository, logger *zap.Logger) {
	for _, r := range role.SystemRoles() {
		existing, err := repo.FindByName(ctx, r.Name)
		if err != nil {
			logger.Error("Failed to look up role", zap.String("role", r.Name), zap.Error(err))
			continue
		}
		if existing != nil {
			logger.Info("Role exists, skipping", zap.String("role", r.Name))
			continue
		}

		r.ID = primitive.NewObjectID()
		r.CreatedAt = time.Now()
		r.UpdatedAt = time.Now()
		if err := repo.Create(ctx, &r); err != nil {
			logger.Error("Failed to create role", zap.String("role", r.Name), zap.Error(err))
			continue
		}
		logger.Info("Role created", zap.String("role", r.Name))
	}
}

func seedAdmin(ctx context.Context, repo user.UserRepository, logger *zap.Logger) {
	existing, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		logger.Error("Failed to look up admin user", zap.Error(err))
		return
	}
	if existing != nil {
		logger.Info("Admin user exists, resetting state")
		_ = repo.Update(ctx, existing.ID.Hex(), bson.M{
			"status":     user.StatusActive,
			"state":      common_models.StateActive,
			"updated_at": time.Now(),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash admin password", zap.Error(err))
		return
	}

	admin := &user.User{
		ID:        primitive.NewObjectID(),
		Username:  "admin",
		Password:  string(hash),
		Role:      role.RoleAdmin,
		Status:    user.StatusActive,
		State:     common_models.StateActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Create(ctx, admin); err != nil {
		logger.Error("Failed to create admin user", zap.Error(err))
		return
	}
	logger.Info("Admin user created", zap.String("username", "admin"))
}

func seedLocations(ctx context.Context, repo location.LocationRepository, logger *zap.Logger) {
	for _, sample := range sampleLocations {
		existing, err := repo.FindByName(ctx, sample.Name)
		if err != nil {
			logger.Error("Failed to look up location", zap.String("location", sample.Name), zap.Error(err))
			continue
		}
		if existing != nil {
			continue
		}

		loc := &location.Location{
			ID:          primitive.NewObjectID(),
			Name:        sample.Name,
			Description: sample.Description,
			State:       common_models.StateActive,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := repo.Create(ctx, loc); err != nil {
			logger.Error("Failed to create location", zap.String("location", sample.Name), zap.Error(err))
			continue
		}
		logger.Info("Location created", zap.String("location", sample.Name))
	}
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			role.NewRoleRepository,
			user.NewUserRepository,
			location.NewLocationRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
