package template

import (
	"context"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/role"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTemplateRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Fields            []Field  `json:"fields"`
	AssignedLocations []string `json:"assigned_locations"`
}

type TemplateService interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest, createdBy string) (*Template, error)
	GetTemplate(ctx context.Context, id string) (*Template, error)
	ListTemplates(ctx context.Context, roleName, assignedLocation string) ([]Template, error)
	UpdateTemplate(ctx context.Context, id string, req CreateTemplateRequest, updatedBy string) error
	DeleteTemplate(ctx context.Context, id string) error
	RestoreTemplate(ctx context.Context, id string) error
}

type TemplateServiceImpl struct {
	Repo         TemplateRepository
	AuditService audit.AuditService
}

func NewTemplateService(repo TemplateRepository, auditService audit.AuditService) TemplateService {
	return &TemplateServiceImpl{
		Repo:         repo,
		AuditService: auditService,
	}
}

func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, req CreateTemplateRequest, createdBy string) (*Template, error) {
	if err := ValidateSchema(req.Fields); err != nil {
		return nil, err
	}

	tpl := &Template{
		ID:                primitive.NewObjectID(),
		Name:              req.Name,
		Description:       req.Description,
		Fields:            req.Fields,
		AssignedLocations: req.AssignedLocations,
		CreatedBy:         createdBy,
		State:             common_models.StateActive,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if tpl.AssignedLocations == nil {
		tpl.AssignedLocations = []string{}
	}

	if err := s.Repo.Create(ctx, tpl); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "templates", tpl.ID.Hex(), map[string]common_models.Change{
		"name": {New: tpl.Name},
	})

	return tpl, nil
}

func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id string) (*Template, error) {
	return s.Repo.FindByID(ctx, id)
}

// ListTemplates scopes the listing by role: admins see every active
// template, location-bound users only the ones assigned to their location.
func (s *TemplateServiceImpl) ListTemplates(ctx context.Context, roleName, assignedLocation string) ([]Template, error) {
	if roleName == role.RoleAdmin {
		return s.Repo.List(ctx, common_models.ActiveOnly)
	}
	return s.Repo.ListForLocation(ctx, assignedLocation)
}

func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id string, req CreateTemplateRequest, updatedBy string) error {
	if err := ValidateSchema(req.Fields); err != nil {
		return err
	}

	old, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	update := bson.M{
		"name":               req.Name,
		"description":        req.Description,
		"fields":             req.Fields,
		"assigned_locations": req.AssignedLocations,
		"updated_at":         time.Now(),
	}

	err = s.Repo.Update(ctx, id, update)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "templates", id, map[string]common_models.Change{
			"name": {Old: old.Name, New: req.Name},
		})
	}
	return err
}

func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateDeleted, common_models.AuditActionDelete)
}

func (s *TemplateServiceImpl) RestoreTemplate(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateActive, common_models.AuditActionRestore)
}

func (s *TemplateServiceImpl) setState(ctx context.Context, id string, next common_models.LifecycleState, action common_models.AuditAction) error {
	tpl, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	newState, err := tpl.State.Transition(next)
	if err != nil {
		return err
	}

	err = s.Repo.Update(ctx, id, bson.M{"state": newState, "updated_at": time.Now()})
	if err == nil {
		_ = s.AuditService.LogChange(ctx, action, "templates", id, map[string]common_models.Change{
			"state": {Old: tpl.State, New: newState},
		})
	}
	return err
}
