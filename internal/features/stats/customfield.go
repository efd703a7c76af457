package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"go-reporthub/internal/features/submission"
)

// emptyBucket labels missing/blank values in frequency and trend output.
const emptyBucket = "Empty"

// AnalyzeField runs one custom-field analysis over a filtered submission
// set. Field names are only known at runtime per template, so this works
// generically over the form_data maps.
func AnalyzeField(subs []submission.Submission, field string, mode AnalysisMode) (*FieldAnalysis, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown analysis mode '%s'", mode)
	}

	result := &FieldAnalysis{Field: field, Mode: mode}

	switch mode {
	case ModeFrequency:
		result.Frequency = frequency(subs, field)
	case ModeNumerical:
		result.Numerical = numerical(subs, field)
	case ModeTrend:
		result.Trend = trend(subs, field)
	}

	return result, nil
}

// fieldDefined reports whether any submission carries the field key at
// all. When none does, frequency and trend return empty bucket lists
// rather than a lone all-Empty bucket.
func fieldDefined(subs []submission.Submission, field string) bool {
	for _, sub := range subs {
		if _, ok := sub.FormData[field]; ok {
			return true
		}
	}
	return false
}

func frequency(subs []submission.Submission, field string) []FrequencyBucket {
	if !fieldDefined(subs, field) {
		return []FrequencyBucket{}
	}

	counts := make(map[string]int)
	for _, sub := range subs {
		val := sub.FormData[field]
		if val == "" {
			counts[emptyBucket]++
		} else {
			counts[val]++
		}
	}

	total := len(subs)
	buckets := make([]FrequencyBucket, 0, len(counts))
	for val, count := range counts {
		buckets = append(buckets, FrequencyBucket{
			Value:      val,
			Count:      count,
			Percentage: round1(100 * float64(count) / float64(total)),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Value < buckets[j].Value
	})

	return buckets
}

func numerical(subs []submission.Submission, field string) *NumericalSummary {
	var values []float64
	for _, sub := range subs {
		raw, ok := sub.FormData[field]
		if !ok || raw == "" {
			continue
		}
		// Non-numeric values are skipped, not errors.
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			values = append(values, v)
		}
	}

	summary := &NumericalSummary{Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	summary.Min = values[0]
	summary.Max = values[0]
	for _, v := range values {
		summary.Sum += v
		if v < summary.Min {
			summary.Min = v
		}
		if v > summary.Max {
			summary.Max = v
		}
	}
	summary.Average = summary.Sum / float64(len(values))

	if len(values) > 1 {
		var sqDiff float64
		for _, v := range values {
			d := v - summary.Average
			sqDiff += d * d
		}
		summary.StdDev = math.Sqrt(sqDiff / float64(len(values)-1))
	}

	return summary
}

func trend(subs []submission.Submission, field string) []TrendPoint {
	if !fieldDefined(subs, field) {
		return []TrendPoint{}
	}

	byMonth := make(map[string][]submission.Submission)
	for _, sub := range subs {
		byMonth[sub.MonthYear] = append(byMonth[sub.MonthYear], sub)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Strings(months)

	points := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		monthSubs := byMonth[month]
		counts := make(map[string]int)
		for _, sub := range monthSubs {
			val := sub.FormData[field]
			if val == "" {
				counts[emptyBucket]++
			} else {
				counts[val]++
			}
		}

		values := make([]ValueCount, 0, len(counts))
		for val, count := range counts {
			values = append(values, ValueCount{Value: val, Count: count})
		}
		sort.Slice(values, func(i, j int) bool {
			if values[i].Count != values[j].Count {
				return values[i].Count > values[j].Count
			}
			return values[i].Value < values[j].Value
		})

		points = append(points, TrendPoint{
			Month:            month,
			TotalSubmissions: len(monthSubs),
			Values:           values,
		})
	}

	return points
}
