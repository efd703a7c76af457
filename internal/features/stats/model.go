package stats

// Dimension selects the grouping axis for an aggregation run.
type Dimension string

const (
	ByLocation Dimension = "location"
	ByTemplate Dimension = "template"
	ByMonth    Dimension = "month"
	ByUser     Dimension = "user"
	ByStatus   Dimension = "status"
	ByRole     Dimension = "role"
)

var dimensions = map[Dimension]bool{
	ByLocation: true,
	ByTemplate: true,
	ByMonth:    true,
	ByUser:     true,
	ByStatus:   true,
	ByRole:     true,
}

func (d Dimension) Valid() bool {
	return dimensions[d]
}

// AnalysisMode selects the custom-field summary kind.
type AnalysisMode string

const (
	ModeFrequency AnalysisMode = "frequency"
	ModeNumerical AnalysisMode = "numerical"
	ModeTrend     AnalysisMode = "trend"
)

var analysisModes = map[AnalysisMode]bool{
	ModeFrequency: true,
	ModeNumerical: true,
	ModeTrend:     true,
}

func (m AnalysisMode) Valid() bool {
	return analysisModes[m]
}

// GroupResult is one row of an aggregation: the per-status counts
// partition TotalSubmissions exactly.
type GroupResult struct {
	Category         string `json:"category"`
	TotalSubmissions int    `json:"total_submissions"`
	ApprovedCount    int    `json:"approved_count"`
	ReviewedCount    int    `json:"reviewed_count"`
	SubmittedCount   int    `json:"submitted_count"`
	RejectedCount    int    `json:"rejected_count"`
	UniqueUserCount  int    `json:"unique_user_count"`
}

// Summary is the overall totals block for a filtered submission set.
type Summary struct {
	TotalSubmissions int     `json:"total_submissions"`
	TotalApproved    int     `json:"total_approved"`
	TotalReviewed    int     `json:"total_reviewed"`
	TotalSubmitted   int     `json:"total_submitted"`
	TotalRejected    int     `json:"total_rejected"`
	ApprovalRate     float64 `json:"approval_rate"`
}

// FrequencyBucket is one distinct value's share of a custom field.
type FrequencyBucket struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NumericalSummary aggregates the parseable numeric values of a field.
// Count is the effective number of values used; non-numeric values are
// skipped, not errors.
type NumericalSummary struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
}

// ValueCount is one (value, count) pair inside a trend month.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TrendPoint is one month's distribution of a custom field.
type TrendPoint struct {
	Month            string       `json:"month"`
	TotalSubmissions int          `json:"total_submissions"`
	Values           []ValueCount `json:"values"`
}

// FieldAnalysis is the result envelope for analyze-custom-field; only
// the member matching Mode is populated.
type FieldAnalysis struct {
	Field     string            `json:"field"`
	Mode      AnalysisMode      `json:"mode"`
	Frequency []FrequencyBucket `json:"frequency,omitempty"`
	Numerical *NumericalSummary `json:"numerical,omitempty"`
	Trend     []TrendPoint      `json:"trend,omitempty"`
}

// Metadata carries the entity snapshots aggregation needs to label
// groups. Missing entries get "Unknown X" placeholders rather than
// dropping submissions.
type Metadata struct {
	TemplateNames map[string]string // template id -> display name
	Usernames     map[string]string // user id -> username
	UserRoles     map[string]string // user id -> role name
}
