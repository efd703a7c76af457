package location

import (
	"context"
	"errors"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrLocationNameTaken = errors.New("location name already exists")

type LocationService interface {
	CreateLocation(ctx context.Context, name, description string) (*Location, error)
	GetLocation(ctx context.Context, id string) (*Location, error)
	ListLocations(ctx context.Context, filter common_models.StateFilter) ([]Location, error)
	UpdateLocation(ctx context.Context, id string, name, description string) error
	DeleteLocation(ctx context.Context, id string) error
	RestoreLocation(ctx context.Context, id string) error
}

type LocationServiceImpl struct {
	Repo         LocationRepository
	AuditService audit.AuditService
}

func NewLocationService(repo LocationRepository, auditService audit.AuditService) LocationService {
	return &LocationServiceImpl{
		Repo:         repo,
		AuditService: auditService,
	}
}

func (s *LocationServiceImpl) CreateLocation(ctx context.Context, name, description string) (*Location, error) {
	existing, err := s.Repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLocationNameTaken
	}

	loc := &Location{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		State:       common_models.StateActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.Repo.Create(ctx, loc); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "locations", loc.ID.Hex(), map[string]common_models.Change{
		"name": {New: loc.Name},
	})

	return loc, nil
}

func (s *LocationServiceImpl) GetLocation(ctx context.Context, id string) (*Location, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *LocationServiceImpl) ListLocations(ctx context.Context, filter common_models.StateFilter) ([]Location, error) {
	return s.Repo.List(ctx, filter)
}

func (s *LocationServiceImpl) UpdateLocation(ctx context.Context, id string, name, description string) error {
	update := bson.M{"updated_at": time.Now()}
	if name != "" {
		update["name"] = name
	}
	if description != "" {
		update["description"] = description
	}

	err := s.Repo.Update(ctx, id, update)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "locations", id, nil)
	}
	return err
}

func (s *LocationServiceImpl) DeleteLocation(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateDeleted, common_models.AuditActionDelete)
}

func (s *LocationServiceImpl) RestoreLocation(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateActive, common_models.AuditActionRestore)
}

func (s *LocationServiceImpl) setState(ctx context.Context, id string, next common_models.LifecycleState, action common_models.AuditAction) error {
	loc, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	newState, err := loc.State.Transition(next)
	if err != nil {
		return err
	}

	err = s.Repo.Update(ctx, id, bson.M{"state": newState, "updated_at": time.Now()})
	if err == nil {
		_ = s.AuditService.LogChange(ctx, action, "locations", id, map[string]common_models.Change{
			"state": {Old: loc.State, New: newState},
		})
	}
	return err
}
