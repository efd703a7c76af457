package role

import (
	"context"
	"testing"

	common_models "go-reporthub/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRoleRepo struct {
	roles   map[string]*Role
	updated map[string]bson.M
	deleted []string
}

func newMockRoleRepo(roles ...*Role) *mockRoleRepo {
	m := &mockRoleRepo{roles: map[string]*Role{}, updated: map[string]bson.M{}}
	for _, r := range roles {
		m.roles[r.ID.Hex()] = r
	}
	return m
}

func (m *mockRoleRepo) Create(ctx context.Context, role *Role) error {
	m.roles[role.ID.Hex()] = role
	return nil
}

func (m *mockRoleRepo) FindByID(ctx context.Context, id string) (*Role, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, context.Canceled
}

func (m *mockRoleRepo) FindByName(ctx context.Context, name string) (*Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepo) List(ctx context.Context) ([]Role, error) {
	var out []Role
	for _, r := range m.roles {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRoleRepo) Update(ctx context.Context, id string, update bson.M) error {
	m.updated[id] = update
	return nil
}

func (m *mockRoleRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, entity string, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func TestUpdateRoleSystemRoleRenameRejected(t *testing.T) {
	admin := &Role{ID: primitive.NewObjectID(), Name: "admin", IsSystemRole: true}
	repo := newMockRoleRepo(admin)
	svc := &RoleServiceImpl{RoleRepo: repo, AuditService: noopAudit{}}

	err := svc.UpdateRole(context.Background(), admin.ID.Hex(), "superadmin", "", "", nil)
	if err != ErrSystemRole {
		t.Fatalf("expected ErrSystemRole, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Error("update should not have reached the repository")
	}
}

func TestUpdateRoleSystemRolePermissionsAllowed(t *testing.T) {
	admin := &Role{ID: primitive.NewObjectID(), Name: "admin", IsSystemRole: true}
	repo := newMockRoleRepo(admin)
	svc := &RoleServiceImpl{RoleRepo: repo, AuditService: noopAudit{}}

	perms := []PageToken{TokenDashboard, TokenUsers}
	if err := svc.UpdateRole(context.Background(), admin.ID.Hex(), "", "", "", perms); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update, ok := repo.updated[admin.ID.Hex()]
	if !ok {
		t.Fatal("expected an update to be written")
	}
	if _, ok := update["permissions"]; !ok {
		t.Error("permissions should be part of the update")
	}
	if _, ok := update["name"]; ok {
		t.Error("name must not change on a system role")
	}
}

func TestDeleteRoleSystemRoleRejected(t *testing.T) {
	admin := &Role{ID: primitive.NewObjectID(), Name: "admin", IsSystemRole: true}
	repo := newMockRoleRepo(admin)
	svc := &RoleServiceImpl{RoleRepo: repo, AuditService: noopAudit{}}

	if err := svc.DeleteRole(context.Background(), admin.ID.Hex()); err != ErrSystemRole {
		t.Fatalf("expected ErrSystemRole, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("delete should not have reached the repository")
	}
}

func TestCreateRoleDuplicateName(t *testing.T) {
	existing := &Role{ID: primitive.NewObjectID(), Name: "reviewer"}
	repo := newMockRoleRepo(existing)
	svc := &RoleServiceImpl{RoleRepo: repo, AuditService: noopAudit{}}

	_, err := svc.CreateRole(context.Background(), &Role{Name: "reviewer"})
	if err != ErrRoleNameTaken {
		t.Fatalf("expected ErrRoleNameTaken, got %v", err)
	}
}

func TestCreateRoleNeverSystem(t *testing.T) {
	repo := newMockRoleRepo()
	svc := &RoleServiceImpl{RoleRepo: repo, AuditService: noopAudit{}}

	created, err := svc.CreateRole(context.Background(), &Role{Name: "reviewer", IsSystemRole: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.IsSystemRole {
		t.Error("user-created roles must not be system roles")
	}
}
