package submission

import (
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusReviewed  Status = "reviewed"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

var statuses = map[Status]bool{
	StatusSubmitted: true,
	StatusReviewed:  true,
	StatusApproved:  true,
	StatusRejected:  true,
}

func (s Status) Valid() bool {
	return statuses[s]
}

var monthYearPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var ErrBadMonthYear = errors.New("month_year must use the YYYY-MM format")

// ValidMonthYear reports whether a period key is well formed.
func ValidMonthYear(period string) bool {
	return monthYearPattern.MatchString(period)
}

// Submission is one filled instance of a template for one location and
// one month-year period. FormData maps field names to raw string values
// (a filename reference for file fields).
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID      string             `bson:"template_id" json:"template_id"`
	ServiceLocation string             `bson:"service_location" json:"service_location"`
	MonthYear       string             `bson:"month_year" json:"month_year"`
	FormData        map[string]string  `bson:"form_data" json:"form_data"`
	Attachments     []string           `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Status          Status             `bson:"status" json:"status"`
	SubmittedBy     string             `bson:"submitted_by" json:"submitted_by"`
	SubmittedAt     time.Time          `bson:"submitted_at" json:"submitted_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateSubmissionRequest struct {
	TemplateID      string            `json:"template_id"`
	ServiceLocation string            `json:"service_location"`
	MonthYear       string            `json:"month_year"`
	FormData        map[string]string `json:"form_data"`
	Attachments     []string          `json:"attachments,omitempty"`
}

type UpdateSubmissionRequest struct {
	FormData map[string]string `json:"form_data,omitempty"`
	Status   *Status           `json:"status,omitempty"`
}

// ListFilter narrows a submission query. Zero values mean "no filter".
type ListFilter struct {
	Location   string
	MonthYear  string
	TemplateID string
	Status     Status
	UserID     string
}
