package submission

import (
	"context"
	"testing"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/template"
	"go-reporthub/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memSubmissionRepo struct {
	subs    map[string]*Submission
	deleted []string
}

func newMemSubmissionRepo(subs ...*Submission) *memSubmissionRepo {
	m := &memSubmissionRepo{subs: map[string]*Submission{}}
	for _, s := range subs {
		m.subs[s.ID.Hex()] = s
	}
	return m
}

func (m *memSubmissionRepo) Create(ctx context.Context, sub *Submission) error {
	m.subs[sub.ID.Hex()] = sub
	return nil
}

func (m *memSubmissionRepo) FindByID(ctx context.Context, id string) (*Submission, error) {
	if s, ok := m.subs[id]; ok {
		return s, nil
	}
	return nil, context.Canceled
}

func (m *memSubmissionRepo) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	var out []Submission
	for _, s := range m.subs {
		if filter.Location != "" && s.ServiceLocation != filter.Location {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *memSubmissionRepo) Update(ctx context.Context, id string, update bson.M) error {
	return nil
}

func (m *memSubmissionRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.subs, id)
	return nil
}

type memTemplateRepo struct {
	templates map[string]*template.Template
}

func (m *memTemplateRepo) Create(ctx context.Context, tpl *template.Template) error { return nil }

func (m *memTemplateRepo) FindByID(ctx context.Context, id string) (*template.Template, error) {
	if t, ok := m.templates[id]; ok {
		return t, nil
	}
	return nil, context.Canceled
}

func (m *memTemplateRepo) List(ctx context.Context, filter common_models.StateFilter) ([]template.Template, error) {
	return nil, nil
}

func (m *memTemplateRepo) ListForLocation(ctx context.Context, location string) ([]template.Template, error) {
	return nil, nil
}

func (m *memTemplateRepo) Update(ctx context.Context, id string, update bson.M) error { return nil }

type memUserRepo struct {
	users map[string]*user.User
}

func (m *memUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (m *memUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, context.Canceled
}

func (m *memUserRepo) FindByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	return nil, nil
}

func (m *memUserRepo) FindUsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
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

func newTestService() (*SubmissionServiceImpl, *memSubmissionRepo, *memUserRepo, *memTemplateRepo) {
	tpl := &template.Template{
		ID:                primitive.NewObjectID(),
		Name:              "Census",
		Fields:            []template.Field{{Name: "count", Type: template.FieldTypeNumber, Required: true}},
		AssignedLocations: []string{"Clinic A"},
		State:             common_models.StateActive,
	}

	subRepo := newMemSubmissionRepo()
	tplRepo := &memTemplateRepo{templates: map[string]*template.Template{tpl.ID.Hex(): tpl}}
	userRepo := &memUserRepo{users: map[string]*user.User{}}

	svc := &SubmissionServiceImpl{
		Repo:         subRepo,
		TemplateRepo: tplRepo,
		UserRepo:     userRepo,
		AuditService: noopAudit{},
	}
	return svc, subRepo, userRepo, tplRepo
}

func addUser(repo *memUserRepo, role, location string) string {
	u := &user.User{ID: primitive.NewObjectID(), Username: role, Role: role, AssignedLocation: location}
	repo.users[u.ID.Hex()] = u
	return u.ID.Hex()
}

func templateID(repo *memTemplateRepo) string {
	for id := range repo.templates {
		return id
	}
	return ""
}

func TestCreateSubmissionScopesLocation(t *testing.T) {
	svc, _, userRepo, tplRepo := newTestService()
	managerID := addUser(userRepo, "manager", "Clinic A")

	sub, err := svc.CreateSubmission(context.Background(), CreateSubmissionRequest{
		TemplateID:      templateID(tplRepo),
		ServiceLocation: "Clinic B",
		MonthYear:       "2026-03",
		FormData:        map[string]string{"count": "5"},
	}, managerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ServiceLocation != "Clinic A" {
		t.Errorf("location = %q, want the submitter's own Clinic A", sub.ServiceLocation)
	}
	if sub.Status != StatusSubmitted {
		t.Errorf("status = %q, want submitted", sub.Status)
	}
}

func TestCreateSubmissionRejectsUnassignedTemplate(t *testing.T) {
	svc, _, userRepo, tplRepo := newTestService()
	managerID := addUser(userRepo, "manager", "Clinic B")

	_, err := svc.CreateSubmission(context.Background(), CreateSubmissionRequest{
		TemplateID:      templateID(tplRepo),
		ServiceLocation: "Clinic B",
		MonthYear:       "2026-03",
		FormData:        map[string]string{"count": "5"},
	}, managerID)
	if err != ErrNotAssigned {
		t.Fatalf("expected ErrNotAssigned, got %v", err)
	}
}

func TestCreateSubmissionBadMonth(t *testing.T) {
	svc, _, userRepo, tplRepo := newTestService()
	managerID := addUser(userRepo, "manager", "Clinic A")

	_, err := svc.CreateSubmission(context.Background(), CreateSubmissionRequest{
		TemplateID: templateID(tplRepo),
		MonthYear:  "March 2026",
		FormData:   map[string]string{"count": "5"},
	}, managerID)
	if err != ErrBadMonthYear {
		t.Fatalf("expected ErrBadMonthYear, got %v", err)
	}
}

func TestCreateSubmissionValidationFailure(t *testing.T) {
	svc, _, userRepo, tplRepo := newTestService()
	managerID := addUser(userRepo, "manager", "Clinic A")

	_, err := svc.CreateSubmission(context.Background(), CreateSubmissionRequest{
		TemplateID: templateID(tplRepo),
		MonthYear:  "2026-03",
		FormData:   map[string]string{"count": "abc"},
	}, managerID)

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T (%v)", err, err)
	}
	if len(verrs) != 1 || verrs[0].Field != "count" {
		t.Errorf("errors = %v", verrs)
	}
}

func TestUpdateSubmissionDataEntryViewOnly(t *testing.T) {
	svc, subRepo, userRepo, tplRepo := newTestService()
	entryID := addUser(userRepo, "data_entry", "Clinic A")

	sub := &Submission{ID: primitive.NewObjectID(), TemplateID: templateID(tplRepo), ServiceLocation: "Clinic A", Status: StatusSubmitted}
	_ = subRepo.Create(context.Background(), sub)

	err := svc.UpdateSubmission(context.Background(), sub.ID.Hex(), UpdateSubmissionRequest{}, entryID)
	if err != ErrViewOnly {
		t.Fatalf("expected ErrViewOnly, got %v", err)
	}
}

func TestUpdateSubmissionOutOfScope(t *testing.T) {
	svc, subRepo, userRepo, tplRepo := newTestService()
	managerID := addUser(userRepo, "manager", "Clinic B")

	sub := &Submission{ID: primitive.NewObjectID(), TemplateID: templateID(tplRepo), ServiceLocation: "Clinic A", Status: StatusSubmitted}
	_ = subRepo.Create(context.Background(), sub)

	err := svc.UpdateSubmission(context.Background(), sub.ID.Hex(), UpdateSubmissionRequest{}, managerID)
	if err != ErrOutOfScopeLocation {
		t.Fatalf("expected ErrOutOfScopeLocation, got %v", err)
	}
}

func TestDeleteSubmissionRequiresAdminAndConfirm(t *testing.T) {
	svc, subRepo, userRepo, tplRepo := newTestService()
	adminID := addUser(userRepo, "admin", "")
	managerID := addUser(userRepo, "manager", "Clinic A")

	sub := &Submission{ID: primitive.NewObjectID(), TemplateID: templateID(tplRepo), ServiceLocation: "Clinic A"}
	_ = subRepo.Create(context.Background(), sub)

	if err := svc.DeleteSubmission(context.Background(), sub.ID.Hex(), managerID, true); err == nil {
		t.Fatal("non-admin delete should fail")
	}
	if err := svc.DeleteSubmission(context.Background(), sub.ID.Hex(), adminID, false); err != ErrConfirmRequired {
		t.Fatalf("expected ErrConfirmRequired, got %v", err)
	}
	if err := svc.DeleteSubmission(context.Background(), sub.ID.Hex(), adminID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subRepo.deleted) != 1 {
		t.Errorf("expected one hard delete, got %d", len(subRepo.deleted))
	}
}
