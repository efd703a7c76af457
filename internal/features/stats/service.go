package stats

import (
	"context"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/submission"
	"go-reporthub/internal/features/template"
	"go-reporthub/internal/features/user"
)

// StatisticsQuery narrows the submission set before aggregation. The
// caller-supplied Location is subject to scoping: location-bound users
// always get their own location.
type StatisticsQuery struct {
	GroupBy    Dimension
	Location   string
	MonthYear  string
	TemplateID string
	Status     submission.Status
}

// StatisticsResult pairs the per-group breakdown with the overall summary.
type StatisticsResult struct {
	Groups  []GroupResult `json:"groups"`
	Summary Summary       `json:"summary"`
}

// FieldInfo describes one analyzable field of a template.
type FieldInfo struct {
	Name  string             `json:"name"`
	Label string             `json:"label"`
	Type  template.FieldType `json:"type"`
}

type StatsService interface {
	GetStatistics(ctx context.Context, userID string, query StatisticsQuery) (*StatisticsResult, error)
	AnalyzeCustomField(ctx context.Context, userID string, query StatisticsQuery, field string, mode AnalysisMode) (*FieldAnalysis, error)
	ListCustomFields(ctx context.Context, templateID string) ([]FieldInfo, error)
}

type StatsServiceImpl struct {
	SubmissionRepo submission.SubmissionRepository
	TemplateRepo   template.TemplateRepository
	UserRepo       user.UserRepository
}

func NewStatsService(
	submissionRepo submission.SubmissionRepository,
	templateRepo template.TemplateRepository,
	userRepo user.UserRepository,
) StatsService {
	return &StatsServiceImpl{
		SubmissionRepo: submissionRepo,
		TemplateRepo:   templateRepo,
		UserRepo:       userRepo,
	}
}

func (s *StatsServiceImpl) GetStatistics(ctx context.Context, userID string, query StatisticsQuery) (*StatisticsResult, error) {
	subs, err := s.fetchScoped(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	meta, err := s.metadata(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := Aggregate(subs, query.GroupBy, meta)
	if err != nil {
		return nil, err
	}

	return &StatisticsResult{
		Groups:  groups,
		Summary: Summarize(subs),
	}, nil
}

func (s *StatsServiceImpl) AnalyzeCustomField(ctx context.Context, userID string, query StatisticsQuery, field string, mode AnalysisMode) (*FieldAnalysis, error) {
	subs, err := s.fetchScoped(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return AnalyzeField(subs, field, mode)
}

func (s *StatsServiceImpl) ListCustomFields(ctx context.Context, templateID string) ([]FieldInfo, error) {
	tpl, err := s.TemplateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	fields := make([]FieldInfo, 0, len(tpl.Fields))
	for _, f := range tpl.Fields {
		fields = append(fields, FieldInfo{Name: f.Name, Label: f.Label, Type: f.Type})
	}
	return fields, nil
}

// fetchScoped loads the filtered submission snapshot with the requested
// location replaced by the user's own for location-bound users.
func (s *StatsServiceImpl) fetchScoped(ctx context.Context, userID string, query StatisticsQuery) ([]submission.Submission, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.SubmissionRepo.List(ctx, submission.ListFilter{
		Location:   role.ScopeLocation(u, query.Location),
		MonthYear:  query.MonthYear,
		TemplateID: query.TemplateID,
		Status:     query.Status,
	})
}

// metadata builds the label snapshot over all lifecycle states so that
// submissions against deleted templates still aggregate under a name
// when one exists, and under a placeholder when it does not.
func (s *StatsServiceImpl) metadata(ctx context.Context) (Metadata, error) {
	meta := Metadata{
		TemplateNames: make(map[string]string),
		Usernames:     make(map[string]string),
		UserRoles:     make(map[string]string),
	}

	templates, err := s.TemplateRepo.List(ctx, common_models.AllStates)
	if err != nil {
		return meta, err
	}
	for _, t := range templates {
		meta.TemplateNames[t.ID.Hex()] = t.Name
	}

	users, err := s.UserRepo.List(ctx, common_models.AllStates)
	if err != nil {
		return meta, err
	}
	for _, u := range users {
		meta.Usernames[u.ID.Hex()] = u.Username
		meta.UserRoles[u.ID.Hex()] = u.Role
	}

	return meta, nil
}
