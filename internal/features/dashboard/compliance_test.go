package dashboard

import (
	"testing"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/location"
	"go-reporthub/internal/features/submission"
)

func loc(name string, state common_models.LifecycleState) location.Location {
	return location.Location{Name: name, State: state}
}

func reportFor(locName, month string, status submission.Status) submission.Submission {
	return submission.Submission{ServiceLocation: locName, MonthYear: month, Status: status}
}

func TestMissingReportsNilDeadline(t *testing.T) {
	locations := []location.Location{loc("A", common_models.StateActive)}

	report := MissingReports(locations, nil, nil, "2026-03")

	if report.Deadline != nil {
		t.Error("deadline should stay nil")
	}
	if report.TotalMissing != 0 || len(report.MissingLocations) != 0 {
		t.Errorf("no deadline means no missing locations, got %+v", report)
	}
	if report.MissingLocations == nil {
		t.Error("missing_locations should serialize as an empty list, not null")
	}
}

func TestMissingReportsAnyStatusCounts(t *testing.T) {
	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	locations := []location.Location{
		loc("A", common_models.StateActive),
		loc("B", common_models.StateActive),
		loc("C", common_models.StateActive),
	}
	subs := []submission.Submission{
		reportFor("A", "2026-03", submission.StatusRejected),
		reportFor("B", "2026-02", submission.StatusApproved),
	}

	report := MissingReports(locations, subs, &deadline, "2026-03")

	// A reported (rejected still counts); B's report is for another
	// period; C never reported.
	if report.TotalMissing != 2 {
		t.Fatalf("total missing = %d, want 2", report.TotalMissing)
	}
	if report.MissingLocations[0] != "B" || report.MissingLocations[1] != "C" {
		t.Errorf("missing = %v, want [B C]", report.MissingLocations)
	}
	if report.Deadline == nil || *report.Deadline != "2026-03-10" {
		t.Errorf("deadline = %v, want 2026-03-10", report.Deadline)
	}
}

func TestMissingReportsExcludesDeletedLocations(t *testing.T) {
	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	locations := []location.Location{
		loc("Open", common_models.StateActive),
		loc("Closed", common_models.StateDeleted),
	}

	report := MissingReports(locations, nil, &deadline, "2026-03")

	if report.TotalLocations != 1 {
		t.Errorf("total locations = %d, want 1", report.TotalLocations)
	}
	for _, name := range report.MissingLocations {
		if name == "Closed" {
			t.Error("deleted location must not be expected to report")
		}
	}
}

func TestMissingReportsDefaultsToCurrentMonth(t *testing.T) {
	deadline := time.Now()
	report := MissingReports(nil, nil, &deadline, "")

	if report.Period != time.Now().Format("2006-01") {
		t.Errorf("period = %q, want current month", report.Period)
	}
}
