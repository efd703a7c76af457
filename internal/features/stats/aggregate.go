package stats

import (
	"fmt"
	"math"
	"sort"

	"go-reporthub/internal/features/submission"
)

const (
	unknownTemplate = "Unknown Template"
	unknownLocation = "Unknown Location"
	unknownUser     = "Unknown User"
	unknownRole     = "Unknown Role"
)

// Aggregate partitions submissions by the chosen dimension and returns
// one GroupResult per distinct value, ordered by descending total with
// label-ascending tiebreak. Aggregation is total over the input: a
// submission referencing a deleted template or location lands in an
// "Unknown" bucket instead of being dropped.
func Aggregate(subs []submission.Submission, dim Dimension, meta Metadata) ([]GroupResult, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("unknown grouping dimension '%s'", dim)
	}

	groups := make(map[string]*GroupResult)
	groupUsers := make(map[string]map[string]bool)

	for _, sub := range subs {
		label := groupLabel(sub, dim, meta)

		g, ok := groups[label]
		if !ok {
			g = &GroupResult{Category: label}
			groups[label] = g
			groupUsers[label] = make(map[string]bool)
		}

		g.TotalSubmissions++
		switch sub.Status {
		case submission.StatusApproved:
			g.ApprovedCount++
		case submission.StatusReviewed:
			g.ReviewedCount++
		case submission.StatusRejected:
			g.RejectedCount++
		default:
			// submitted, plus anything unrecognized, counts as submitted
			// so the per-status partition stays exhaustive.
			g.SubmittedCount++
		}
		groupUsers[label][sub.SubmittedBy] = true
	}

	results := make([]GroupResult, 0, len(groups))
	for label, g := range groups {
		g.UniqueUserCount = len(groupUsers[label])
		results = append(results, *g)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSubmissions != results[j].TotalSubmissions {
			return results[i].TotalSubmissions > results[j].TotalSubmissions
		}
		return results[i].Category < results[j].Category
	})

	return results, nil
}

func groupLabel(sub submission.Submission, dim Dimension, meta Metadata) string {
	switch dim {
	case ByLocation:
		if sub.ServiceLocation == "" {
			return unknownLocation
		}
		return sub.ServiceLocation
	case ByTemplate:
		if name, ok := meta.TemplateNames[sub.TemplateID]; ok {
			return name
		}
		return unknownTemplate
	case ByMonth:
		return sub.MonthYear
	case ByUser:
		if name, ok := meta.Usernames[sub.SubmittedBy]; ok {
			return name
		}
		return unknownUser
	case ByRole:
		if name, ok := meta.UserRoles[sub.SubmittedBy]; ok {
			return name
		}
		return unknownRole
	default: // ByStatus
		return string(sub.Status)
	}
}

// Summarize computes the overall totals and approval rate for a
// submission set. The rate is a percentage rounded to one decimal and
// defined as 0 for an empty set.
func Summarize(subs []submission.Submission) Summary {
	s := Summary{TotalSubmissions: len(subs)}
	for _, sub := range subs {
		switch sub.Status {
		case submission.StatusApproved:
			s.TotalApproved++
		case submission.StatusReviewed:
			s.TotalReviewed++
		case submission.StatusRejected:
			s.TotalRejected++
		default:
			s.TotalSubmitted++
		}
	}

	if s.TotalSubmissions > 0 {
		s.ApprovalRate = round1(100 * float64(s.TotalApproved) / float64(s.TotalSubmissions))
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
