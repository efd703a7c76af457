package settings

import (
	"context"
	"errors"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/pkg/utils"
)

var ErrBadDeadline = errors.New("report deadline must be a YYYY-MM-DD date")

type SettingsService interface {
	GetSetting(ctx context.Context, key string) (*Setting, error)
	SetSetting(ctx context.Context, key string, value string) error
	ReportDeadline(ctx context.Context) (*time.Time, error)
}

type SettingsServiceImpl struct {
	Repo         SettingsRepository
	AuditService audit.AuditService
}

func NewSettingsService(repo SettingsRepository, auditService audit.AuditService) SettingsService {
	return &SettingsServiceImpl{
		Repo:         repo,
		AuditService: auditService,
	}
}

func (s *SettingsServiceImpl) GetSetting(ctx context.Context, key string) (*Setting, error) {
	return s.Repo.GetByKey(ctx, key)
}

// SetSetting upserts a key. The report deadline value is validated as a
// date; other keys are free-form strings.
func (s *SettingsServiceImpl) SetSetting(ctx context.Context, key string, value string) error {
	if key == KeyReportDeadline {
		if _, err := time.Parse(DeadlineLayout, value); err != nil {
			return ErrBadDeadline
		}
	}

	old, _ := s.Repo.GetByKey(ctx, key)

	setting := &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims); ok {
		setting.UpdatedBy = claims.UserID
	}

	err := s.Repo.Upsert(ctx, setting)
	if err == nil {
		var oldValue interface{}
		if old != nil {
			oldValue = old.Value
		}
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionSettings, "settings", key, map[string]common_models.Change{
			key: {Old: oldValue, New: value},
		})
	}
	return err
}

// ReportDeadline returns the configured deadline, or nil when unset.
// A stored value that fails to parse is treated as unset.
func (s *SettingsServiceImpl) ReportDeadline(ctx context.Context) (*time.Time, error) {
	setting, err := s.Repo.GetByKey(ctx, KeyReportDeadline)
	if err != nil {
		return nil, err
	}
	if setting == nil || setting.Value == "" {
		return nil, nil
	}

	deadline, err := time.Parse(DeadlineLayout, setting.Value)
	if err != nil {
		return nil, nil
	}
	return &deadline, nil
}
