package auth

import (
	"context"
	"testing"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/user"
	"go-reporthub/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*user.User
}

func (m *memUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	return nil, nil
}

func (m *memUserRepo) FindUsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.users[username], nil
}

func (m *memUserRepo) List(ctx context.Context, filter common_models.StateFilter) ([]user.User, error) {
	return nil, nil
}

func (m *memUserRepo) Update(ctx context.Context, id string, update bson.M) error { return nil }

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, entity string, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func newLoginService(users ...*user.User) AuthService {
	repo := &memUserRepo{users: map[string]*user.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return &AuthServiceImpl{UserRepo: repo, AuditService: noopAudit{}}
}

func account(username, password, status string, state common_models.LifecycleState) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &user.User{
		ID:               primitive.NewObjectID(),
		Username:         username,
		Password:         string(hash),
		Role:             "manager",
		AssignedLocation: "Central Hub",
		Status:           status,
		State:            state,
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	usr := account("alice", "secret123", user.StatusActive, common_models.StateActive)
	svc := newLoginService(usr)

	result, err := svc.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := utils.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != usr.ID.Hex() {
		t.Errorf("claims user id = %q, want %q", claims.UserID, usr.ID.Hex())
	}
	if claims.Role != "manager" || claims.AssignedLocation != "Central Hub" {
		t.Errorf("claims = %+v, want role and location carried over", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newLoginService(account("alice", "secret123", user.StatusActive, common_models.StateActive))

	if _, err := svc.Login(context.Background(), "alice", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "secret123"); err != ErrInvalidCredentials {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginBlocksPendingAndDisabledAccounts(t *testing.T) {
	svc := newLoginService(
		account("pending", "secret123", user.StatusPending, common_models.StateActive),
		account("deleted", "secret123", user.StatusActive, common_models.StateDeleted),
	)

	if _, err := svc.Login(context.Background(), "pending", "secret123"); err != ErrPendingApproval {
		t.Errorf("pending account: got %v, want ErrPendingApproval", err)
	}
	if _, err := svc.Login(context.Background(), "deleted", "secret123"); err != ErrAccountDisabled {
		t.Errorf("deleted account: got %v, want ErrAccountDisabled", err)
	}
}
