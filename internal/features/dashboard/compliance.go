package dashboard

import (
	"sort"
	"time"

	common_models "go-reporthub/internal/common/models"
	"go-reporthub/internal/features/location"
	"go-reporthub/internal/features/settings"
	"go-reporthub/internal/features/submission"
)

// ComplianceReport lists the locations that have not reported for a
// period. A nil deadline means compliance tracking is off and the
// missing list is empty by definition.
type ComplianceReport struct {
	Period           string   `json:"period"`
	Deadline         *string  `json:"deadline"`
	MissingLocations []string `json:"missing_locations"`
	TotalMissing     int      `json:"total_missing"`
	TotalLocations   int      `json:"total_locations"`
}

// MissingReports computes which active locations have no submission for
// the period. A submission in any status counts as reported; a rejected
// report is still a report. Deleted locations are not expected to
// report and never appear as missing. An empty period defaults to the
// current month.
func MissingReports(locations []location.Location, subs []submission.Submission, deadline *time.Time, period string) ComplianceReport {
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	report := ComplianceReport{
		Period:           period,
		MissingLocations: []string{},
	}

	if deadline == nil {
		return report
	}
	d := deadline.Format(settings.DeadlineLayout)
	report.Deadline = &d

	reported := make(map[string]bool)
	for _, sub := range subs {
		if sub.MonthYear == period {
			reported[sub.ServiceLocation] = true
		}
	}

	for _, loc := range locations {
		if loc.State == common_models.StateDeleted {
			continue
		}
		report.TotalLocations++
		if !reported[loc.Name] {
			report.MissingLocations = append(report.MissingLocations, loc.Name)
		}
	}

	sort.Strings(report.MissingLocations)
	report.TotalMissing = len(report.MissingLocations)
	return report
}
