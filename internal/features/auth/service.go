package auth

import (
	"context"
	"errors"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/user"
	"go-reporthub/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending approval")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// LoginResult carries the signed token plus the user it belongs to so
// clients can render without a second round trip.
type LoginResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, password string) (*user.User, error)
	CurrentUser(ctx context.Context, userID string) (*user.User, error)
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	UserService  user.UserService
	AuditService audit.AuditService
}

func NewAuthService(userRepo user.UserRepository, userService user.UserService, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		UserService:  userService,
		AuditService: auditService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	usr, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if usr.State == common_models.StateDeleted {
		return nil, ErrAccountDisabled
	}
	if usr.Status == user.StatusPending {
		return nil, ErrPendingApproval
	}

	token, err := utils.GenerateToken(usr.ID, usr.Username, usr.Role, usr.AssignedLocation)
	if err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionLogin, "users", usr.ID.Hex(), nil)

	return &LoginResult{Token: token, User: usr}, nil
}

// Register creates a pending account; an admin approves it before the
// first login succeeds.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*user.User, error) {
	return s.UserService.Register(ctx, username, password)
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	return s.UserRepo.FindByID(ctx, userID)
}
