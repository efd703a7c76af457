package role

import (
	"context"
	"errors"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSystemRole       = errors.New("system roles cannot be renamed or deleted")
	ErrRoleNameTaken    = errors.New("role name already exists")
	ErrPermissionDenied = errors.New("permission denied")
)

type RoleService interface {
	CreateRole(ctx context.Context, role *Role) (*Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
	UpdateRole(ctx context.Context, id string, name, displayName, description string, permissions []PageToken) error
	DeleteRole(ctx context.Context, id string) error

	// Permission resolution for the route guards and query scoping.
	ResolvePermissions(ctx context.Context, userID string) ([]PageToken, error)
	CanAccess(ctx context.Context, userID string, token PageToken) (bool, error)
	EffectiveLocation(ctx context.Context, userID string, requested string) (string, error)
}

type RoleServiceImpl struct {
	RoleRepo     RoleRepository
	UserRepo     user.UserRepository
	AuditService audit.AuditService
}

func NewRoleService(roleRepo RoleRepository, userRepo user.UserRepository, auditService audit.AuditService) RoleService {
	return &RoleServiceImpl{
		RoleRepo:     roleRepo,
		UserRepo:     userRepo,
		AuditService: auditService,
	}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, role *Role) (*Role, error) {
	existing, err := s.RoleRepo.FindByName(ctx, role.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleNameTaken
	}

	role.ID = primitive.NewObjectID()
	role.IsSystemRole = false
	role.CreatedAt = time.Now()
	role.UpdatedAt = time.Now()
	if role.Permissions == nil {
		role.Permissions = []PageToken{}
	}

	if err := s.RoleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "roles", role.ID.Hex(), map[string]common_models.Change{
		"name": {New: role.Name},
	})

	return role, nil
}

func (s *RoleServiceImpl) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	return s.RoleRepo.FindByID(ctx, id)
}

func (s *RoleServiceImpl) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	return s.RoleRepo.FindByName(ctx, name)
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]Role, error) {
	return s.RoleRepo.List(ctx)
}

// UpdateRole changes a role. A system role keeps its identity: renaming it
// fails, but permission-set updates go through.
func (s *RoleServiceImpl) UpdateRole(ctx context.Context, id string, name, displayName, description string, permissions []PageToken) error {
	existing, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.IsSystemRole && name != "" && name != existing.Name {
		return ErrSystemRole
	}

	update := bson.M{"updated_at": time.Now()}
	if name != "" {
		update["name"] = name
	}
	if displayName != "" {
		update["display_name"] = displayName
	}
	if description != "" {
		update["description"] = description
	}
	if permissions != nil {
		update["permissions"] = permissions
	}

	err = s.RoleRepo.Update(ctx, id, update)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "roles", id, map[string]common_models.Change{
			"permissions": {Old: existing.Permissions, New: permissions},
		})
	}
	return err
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	existing, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsSystemRole {
		return ErrSystemRole
	}

	err = s.RoleRepo.Delete(ctx, id)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "roles", id, map[string]common_models.Change{
			"name": {Old: existing.Name},
		})
	}
	return err
}

func (s *RoleServiceImpl) ResolvePermissions(ctx context.Context, userID string) ([]PageToken, error) {
	u, roles, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Resolve(u, roles), nil
}

func (s *RoleServiceImpl) CanAccess(ctx context.Context, userID string, token PageToken) (bool, error) {
	u, roles, err := s.snapshot(ctx, userID)
	if err != nil {
		return false, err
	}
	return CanAccess(u, roles, token), nil
}

func (s *RoleServiceImpl) EffectiveLocation(ctx context.Context, userID string, requested string) (string, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return ScopeLocation(u, requested), nil
}

func (s *RoleServiceImpl) snapshot(ctx context.Context, userID string) (*user.User, map[string]Role, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	list, err := s.RoleRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	roles := make(map[string]Role, len(list))
	for _, r := range list {
		roles[r.Name] = r
	}
	return u, roles, nil
}
