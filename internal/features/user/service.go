package user

import (
	"context"
	"errors"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrNotPending    = errors.New("user is not pending approval")
)

type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	Register(ctx context.Context, username, password string) (*User, error)
	ApproveUser(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, filter common_models.StateFilter) ([]User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) error
	DeleteUser(ctx context.Context, id string) error
	RestoreUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	Repo         UserRepository
	AuditService audit.AuditService
}

func NewUserService(repo UserRepository, auditService audit.AuditService) UserService {
	return &UserServiceImpl{
		Repo:         repo,
		AuditService: auditService,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	existing, err := s.Repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:               primitive.NewObjectID(),
		Username:         req.Username,
		Password:         string(hash),
		Role:             req.Role,
		AssignedLocation: req.AssignedLocation,
		PagePermissions:  req.PagePermissions,
		Status:           StatusActive,
		State:            common_models.StateActive,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "users", user.ID.Hex(), map[string]common_models.Change{
		"username": {New: user.Username},
		"role":     {New: user.Role},
	})

	return user, nil
}

// Register creates a pending account that an admin must approve.
func (s *UserServiceImpl) Register(ctx context.Context, username, password string) (*User, error) {
	existing, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Password:  string(hash),
		Role:      "data_entry",
		Status:    StatusPending,
		State:     common_models.StateActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) ApproveUser(ctx context.Context, id string) error {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Status != StatusPending {
		return ErrNotPending
	}

	err = s.Repo.Update(ctx, id, bson.M{"status": StatusActive, "updated_at": time.Now()})
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionApprove, "users", id, map[string]common_models.Change{
			"status": {Old: StatusPending, New: StatusActive},
		})
	}
	return err
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, filter common_models.StateFilter) ([]User, error) {
	return s.Repo.List(ctx, filter)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) error {
	update := bson.M{"updated_at": time.Now()}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		update["password"] = string(hash)
	}
	if req.Role != nil {
		update["role"] = *req.Role
	}
	if req.AssignedLocation != nil {
		update["assigned_location"] = *req.AssignedLocation
	}
	if req.PagePermissions != nil {
		update["page_permissions"] = *req.PagePermissions
	}

	err := s.Repo.Update(ctx, id, update)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "users", id, nil)
	}
	return err
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateDeleted, common_models.AuditActionDelete)
}

func (s *UserServiceImpl) RestoreUser(ctx context.Context, id string) error {
	return s.setState(ctx, id, common_models.StateActive, common_models.AuditActionRestore)
}

func (s *UserServiceImpl) setState(ctx context.Context, id string, next common_models.LifecycleState, action common_models.AuditAction) error {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	newState, err := user.State.Transition(next)
	if err != nil {
		return err
	}

	err = s.Repo.Update(ctx, id, bson.M{"state": newState, "updated_at": time.Now()})
	if err == nil {
		_ = s.AuditService.LogChange(ctx, action, "users", id, map[string]common_models.Change{
			"state": {Old: user.State, New: newState},
		})
	}
	return err
}
