package stats

import (
	"testing"

	"go-reporthub/internal/features/submission"
)

func sub(location, templateID, month, userID string, status submission.Status) submission.Submission {
	return submission.Submission{
		TemplateID:      templateID,
		ServiceLocation: location,
		MonthYear:       month,
		SubmittedBy:     userID,
		Status:          status,
	}
}

func TestAggregateByLocation(t *testing.T) {
	subs := []submission.Submission{
		sub("Location A", "t1", "2026-01", "u1", submission.StatusApproved),
		sub("Location A", "t1", "2026-01", "u2", submission.StatusSubmitted),
		sub("Location A", "t1", "2026-02", "u1", submission.StatusRejected),
		sub("Location B", "t1", "2026-01", "u3", submission.StatusReviewed),
	}

	groups, err := Aggregate(subs, ByLocation, Metadata{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Descending total puts Location A first.
	a := groups[0]
	if a.Category != "Location A" {
		t.Fatalf("first group = %q, want Location A", a.Category)
	}
	if a.TotalSubmissions != 3 || a.ApprovedCount != 1 || a.SubmittedCount != 1 || a.RejectedCount != 1 {
		t.Errorf("Location A counts wrong: %+v", a)
	}
	if a.UniqueUserCount != 2 {
		t.Errorf("Location A unique users = %d, want 2", a.UniqueUserCount)
	}

	b := groups[1]
	if b.Category != "Location B" || b.TotalSubmissions != 1 || b.ReviewedCount != 1 {
		t.Errorf("Location B counts wrong: %+v", b)
	}
}

func TestAggregateStatusPartitionIsExhaustive(t *testing.T) {
	subs := []submission.Submission{
		sub("L", "t", "2026-01", "u1", submission.StatusApproved),
		sub("L", "t", "2026-01", "u2", submission.StatusReviewed),
		sub("L", "t", "2026-01", "u3", submission.StatusRejected),
		sub("L", "t", "2026-01", "u4", submission.StatusSubmitted),
		sub("L", "t", "2026-01", "u5", "weird"),
	}

	groups, err := Aggregate(subs, ByLocation, Metadata{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := groups[0]
	parts := g.ApprovedCount + g.ReviewedCount + g.RejectedCount + g.SubmittedCount
	if parts != g.TotalSubmissions {
		t.Errorf("status counts sum to %d, want %d", parts, g.TotalSubmissions)
	}
}

func TestAggregateTieBreakByLabel(t *testing.T) {
	subs := []submission.Submission{
		sub("Beta", "t", "2026-01", "u1", submission.StatusSubmitted),
		sub("Alpha", "t", "2026-01", "u2", submission.StatusSubmitted),
	}

	groups, _ := Aggregate(subs, ByLocation, Metadata{})
	if groups[0].Category != "Alpha" || groups[1].Category != "Beta" {
		t.Errorf("equal totals should sort by label: %v, %v", groups[0].Category, groups[1].Category)
	}
}

func TestAggregateUnknownPlaceholders(t *testing.T) {
	meta := Metadata{
		TemplateNames: map[string]string{"t1": "Census"},
		Usernames:     map[string]string{"u1": "alice"},
		UserRoles:     map[string]string{"u1": "manager"},
	}
	subs := []submission.Submission{
		sub("L", "t1", "2026-01", "u1", submission.StatusSubmitted),
		sub("L", "gone", "2026-01", "ghost", submission.StatusSubmitted),
	}

	byTemplate, _ := Aggregate(subs, ByTemplate, meta)
	if !hasCategory(byTemplate, "Census") || !hasCategory(byTemplate, "Unknown Template") {
		t.Errorf("template groups = %v", categories(byTemplate))
	}

	byUser, _ := Aggregate(subs, ByUser, meta)
	if !hasCategory(byUser, "alice") || !hasCategory(byUser, "Unknown User") {
		t.Errorf("user groups = %v", categories(byUser))
	}

	byRole, _ := Aggregate(subs, ByRole, meta)
	if !hasCategory(byRole, "manager") || !hasCategory(byRole, "Unknown Role") {
		t.Errorf("role groups = %v", categories(byRole))
	}
}

func TestAggregateUnknownDimension(t *testing.T) {
	if _, err := Aggregate(nil, Dimension("bogus"), Metadata{}); err == nil {
		t.Error("expected an error for an unknown dimension")
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	groups, err := Aggregate(nil, ByMonth, Metadata{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestSummarize(t *testing.T) {
	subs := []submission.Submission{
		sub("L", "t", "2026-01", "u1", submission.StatusApproved),
		sub("L", "t", "2026-01", "u2", submission.StatusApproved),
		sub("L", "t", "2026-01", "u3", submission.StatusSubmitted),
	}

	s := Summarize(subs)
	if s.TotalSubmissions != 3 || s.TotalApproved != 2 || s.TotalSubmitted != 1 {
		t.Errorf("summary counts wrong: %+v", s)
	}
	if s.ApprovalRate != 66.7 {
		t.Errorf("approval rate = %v, want 66.7", s.ApprovalRate)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalSubmissions != 0 || s.ApprovalRate != 0 {
		t.Errorf("empty summary should be all zeros: %+v", s)
	}
}

func hasCategory(groups []GroupResult, category string) bool {
	for _, g := range groups {
		if g.Category == category {
			return true
		}
	}
	return false
}

func categories(groups []GroupResult) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Category
	}
	return out
}
