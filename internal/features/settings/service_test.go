package settings

import (
	"context"
	"testing"
	"time"

	common_models "go-reporthub/internal/common/models"
)

type memSettingsRepo struct {
	store map[string]*Setting
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{store: map[string]*Setting{}}
}

func (m *memSettingsRepo) GetByKey(ctx context.Context, key string) (*Setting, error) {
	return m.store[key], nil
}

func (m *memSettingsRepo) Upsert(ctx context.Context, setting *Setting) error {
	m.store[setting.Key] = setting
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, entity string, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func TestSetSettingValidatesDeadline(t *testing.T) {
	svc := &SettingsServiceImpl{Repo: newMemSettingsRepo(), AuditService: noopAudit{}}

	if err := svc.SetSetting(context.Background(), KeyReportDeadline, "not-a-date"); err != ErrBadDeadline {
		t.Fatalf("expected ErrBadDeadline, got %v", err)
	}
	if err := svc.SetSetting(context.Background(), KeyReportDeadline, "2026-03-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetSettingOtherKeysFreeForm(t *testing.T) {
	svc := &SettingsServiceImpl{Repo: newMemSettingsRepo(), AuditService: noopAudit{}}

	if err := svc.SetSetting(context.Background(), "welcome_banner", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	setting, err := svc.GetSetting(context.Background(), "welcome_banner")
	if err != nil || setting == nil || setting.Value != "hello" {
		t.Fatalf("setting = %+v, err = %v", setting, err)
	}
}

func TestReportDeadline(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := &SettingsServiceImpl{Repo: repo, AuditService: noopAudit{}}

	// Unset: nil without error.
	deadline, err := svc.ReportDeadline(context.Background())
	if err != nil || deadline != nil {
		t.Fatalf("unset deadline: got %v, %v", deadline, err)
	}

	if err := svc.SetSetting(context.Background(), KeyReportDeadline, "2026-03-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline, err = svc.ReportDeadline(context.Background())
	if err != nil || deadline == nil {
		t.Fatalf("set deadline: got %v, %v", deadline, err)
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}

	// A corrupt stored value reads as unset.
	repo.store[KeyReportDeadline] = &Setting{Key: KeyReportDeadline, Value: "garbage"}
	deadline, err = svc.ReportDeadline(context.Background())
	if err != nil || deadline != nil {
		t.Fatalf("corrupt deadline: got %v, %v", deadline, err)
	}
}
