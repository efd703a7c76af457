package submission

import (
	"context"
	"errors"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/audit"
	"go-reporthub/internal/features/role"
	"go-reporthub/internal/features/template"
	"go-reporthub/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrNotAssigned        = errors.New("template is not assigned to this location")
	ErrViewOnly           = errors.New("data entry users cannot edit submissions")
	ErrConfirmRequired    = errors.New("deleting a submission requires explicit confirmation")
	ErrOutOfScopeLocation = errors.New("cannot act on submissions for another location")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrSubmissionNotFound = errors.New("submission not found")
)

type SubmissionService interface {
	CreateSubmission(ctx context.Context, req CreateSubmissionRequest, userID string) (*Submission, error)
	GetSubmission(ctx context.Context, id string, userID string) (*Submission, error)
	ListSubmissions(ctx context.Context, filter ListFilter, userID string) ([]Submission, error)
	UpdateSubmission(ctx context.Context, id string, req UpdateSubmissionRequest, userID string) error
	DeleteSubmission(ctx context.Context, id string, userID string, confirm bool) error
}

type SubmissionServiceImpl struct {
	Repo         SubmissionRepository
	TemplateRepo template.TemplateRepository
	UserRepo     user.UserRepository
	AuditService audit.AuditService
}

func NewSubmissionService(
	repo SubmissionRepository,
	templateRepo template.TemplateRepository,
	userRepo user.UserRepository,
	auditService audit.AuditService,
) SubmissionService {
	return &SubmissionServiceImpl{
		Repo:         repo,
		TemplateRepo: templateRepo,
		UserRepo:     userRepo,
		AuditService: auditService,
	}
}

func (s *SubmissionServiceImpl) CreateSubmission(ctx context.Context, req CreateSubmissionRequest, userID string) (*Submission, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !ValidMonthYear(req.MonthYear) {
		return nil, ErrBadMonthYear
	}

	// Location-bound users always submit for their own location.
	effectiveLocation := role.ScopeLocation(u, req.ServiceLocation)
	if effectiveLocation == "" {
		return nil, ErrOutOfScopeLocation
	}

	tpl, err := s.TemplateRepo.FindByID(ctx, req.TemplateID)
	if err != nil {
		return nil, ErrTemplateNotFound
	}
	if u.Role != role.RoleAdmin && !tpl.IsAssignedTo(effectiveLocation) {
		return nil, ErrNotAssigned
	}

	if errs := ValidateAll(tpl, req.FormData); len(errs) > 0 {
		return nil, errs
	}

	sub := &Submission{
		ID:              primitive.NewObjectID(),
		TemplateID:      req.TemplateID,
		ServiceLocation: effectiveLocation,
		MonthYear:       req.MonthYear,
		FormData:        req.FormData,
		Attachments:     req.Attachments,
		Status:          StatusSubmitted,
		SubmittedBy:     userID,
		SubmittedAt:     time.Now(),
		UpdatedAt:       time.Now(),
	}
	if sub.FormData == nil {
		sub.FormData = map[string]string{}
	}

	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "submissions", sub.ID.Hex(), map[string]common_models.Change{
		"template_id": {New: sub.TemplateID},
		"location":    {New: sub.ServiceLocation},
		"month_year":  {New: sub.MonthYear},
	})

	return sub, nil
}

func (s *SubmissionServiceImpl) GetSubmission(ctx context.Context, id string, userID string) (*Submission, error) {
	sub, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSubmissionNotFound
	}

	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if scoped := role.ScopeLocation(u, sub.ServiceLocation); scoped != sub.ServiceLocation {
		return nil, ErrOutOfScopeLocation
	}

	return sub, nil
}

// ListSubmissions applies location scoping before the query runs: a
// location-bound user's requested location filter is overridden by their
// own location.
func (s *SubmissionServiceImpl) ListSubmissions(ctx context.Context, filter ListFilter, userID string) ([]Submission, error) {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter.Location = role.ScopeLocation(u, filter.Location)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.Repo.List(ctx, filter)
}

// UpdateSubmission accepts edits from any role except data_entry.
// Status transitions are unrestricted: an approved submission may move
// back to submitted if an authorized editor says so.
func (s *SubmissionServiceImpl) UpdateSubmission(ctx context.Context, id string, req UpdateSubmissionRequest, userID string) error {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role == role.RoleDataEntry {
		return ErrViewOnly
	}

	sub, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return ErrSubmissionNotFound
	}
	if scoped := role.ScopeLocation(u, sub.ServiceLocation); scoped != sub.ServiceLocation {
		return ErrOutOfScopeLocation
	}

	update := bson.M{"updated_at": time.Now()}
	changes := map[string]common_models.Change{}

	if req.FormData != nil {
		// Validate against the schema when the template still exists;
		// submissions against a deleted template stay editable.
		if tpl, terr := s.TemplateRepo.FindByID(ctx, sub.TemplateID); terr == nil {
			if errs := ValidateAll(tpl, req.FormData); len(errs) > 0 {
				return errs
			}
		}
		update["form_data"] = req.FormData
		changes["form_data"] = common_models.Change{Old: sub.FormData, New: req.FormData}
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return ErrInvalidStatus
		}
		update["status"] = *req.Status
		changes["status"] = common_models.Change{Old: sub.Status, New: *req.Status}
	}

	err = s.Repo.Update(ctx, id, update)
	if err == nil && len(changes) > 0 {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "submissions", id, changes)
	}
	return err
}

// DeleteSubmission hard-deletes. Admin only, and the caller must confirm.
func (s *SubmissionServiceImpl) DeleteSubmission(ctx context.Context, id string, userID string, confirm bool) error {
	u, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role != role.RoleAdmin {
		return role.ErrPermissionDenied
	}
	if !confirm {
		return ErrConfirmRequired
	}

	err = s.Repo.Delete(ctx, id)
	if err == nil {
		_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "submissions", id, nil)
	}
	return err
}
