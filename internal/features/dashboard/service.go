package dashboard

import (
	"context"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/location"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/settings"
	"go-reporthub/internal/features/stats"
	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/features/user"
)

// Overview is the landing-page summary: submission totals for the
// user's visible scope plus entity counts.
type Overview struct {
	Summary        stats.Summary           `json:"summary"`
	LocationCount  int                     `json:"location_count"`
	RecentActivity []submission.Submission `json:"recent_activity"`
}

type DashboardService interface {
	MissingReports(ctx context.Context, period string) (*ComplianceReport, error)
	GetOverview(ctx context.Context, userID string) (*Overview, error)
}

type DashboardServiceImpl struct {
	LocationRepo    location.LocationRepository
	SubmissionRepo  submission.SubmissionRepository
	UserRepo        user.UserRepository
	SettingsService settings.SettingsService
}

func NewDashboardService(
	locationRepo location.LocationRepository,
	submissionRepo submission.SubmissionRepository,
	userRepo user.UserRepository,
	settingsService settings.SettingsService,
) DashboardService {
	return &DashboardServiceImpl{
		LocationRepo:    locationRepo,
		SubmissionRepo:  submissionRepo,
		UserRepo:        userRepo,
		SettingsService: settingsService,
	}
}

func (s *DashboardServiceImpl) MissingReports(ctx context.Context, period string) (*ComplianceReport, error) {
	deadline, err := s.SettingsService.ReportDeadline(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.LocationRepo.List(ctx, common_models.ActiveOnly)
	if err != nil {
		return nil, err
	}

	subs, err := s.SubmissionRepo.List(ctx, submission.ListFilter{MonthYear: period})
	if err != nil {
		return nil, err
	}

	report := MissingReports(locations, subs, deadline, period)
	return &report, nil
}

// GetOverview returns the submission summary for the user's visible
// scope. Location-bound users see their own location's numbers only.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context, userID string) (*Overview, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	subs, err := s.SubmissionRepo.List(ctx, submission.ListFilter{
		Location: role.ScopeLocation(u, ""),
	})
	if err != nil {
		return nil, err
	}

	locations, err := s.LocationRepo.List(ctx, common_models.ActiveOnly)
	if err != nil {
		return nil, err
	}

	recent := subs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &Overview{
		Summary:        stats.Summarize(subs),
		LocationCount:  len(locations),
		RecentActivity: recent,
	}, nil
}
