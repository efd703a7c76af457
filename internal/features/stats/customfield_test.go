package stats

import (
	"math"
	"testing"

	"go-reporthub/internal/features/submission"
)

func subWithData(month string, data map[string]string) submission.Submission {
	return submission.Submission{MonthYear: month, FormData: data}
}

func TestAnalyzeFieldNumerical(t *testing.T) {
	subs := []submission.Submission{
		subWithData("2026-01", map[string]string{"score": "10"}),
		subWithData("2026-01", map[string]string{"score": "20"}),
		subWithData("2026-01", map[string]string{"score": "x"}),
		subWithData("2026-02", map[string]string{"score": "30"}),
	}

	result, err := AnalyzeField(subs, "score", ModeNumerical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := result.Numerical
	if n == nil {
		t.Fatal("numerical summary missing")
	}
	if n.Count != 3 {
		t.Errorf("count = %d, want 3 (non-numeric skipped)", n.Count)
	}
	if n.Sum != 60 || n.Average != 20 || n.Min != 10 || n.Max != 30 {
		t.Errorf("summary wrong: %+v", n)
	}
	if math.Abs(n.StdDev-10) > 1e-9 {
		t.Errorf("sample stddev = %v, want 10", n.StdDev)
	}
}

func TestAnalyzeFieldNumericalNoValues(t *testing.T) {
	subs := []submission.Submission{
		subWithData("2026-01", map[string]string{"score": "abc"}),
	}

	result, err := AnalyzeField(subs, "score", ModeNumerical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := result.Numerical
	if n.Count != 0 || n.Sum != 0 || n.Average != 0 || n.StdDev != 0 {
		t.Errorf("expected zeroed summary, got %+v", n)
	}
}

func TestAnalyzeFieldFrequency(t *testing.T) {
	subs := []submission.Submission{
		subWithData("2026-01", map[string]string{"category": "routine"}),
		subWithData("2026-01", map[string]string{"category": "routine"}),
		subWithData("2026-01", map[string]string{"category": "urgent"}),
		subWithData("2026-01", map[string]string{"category": ""}),
	}

	result, err := AnalyzeField(subs, "category", ModeFrequency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buckets := result.Frequency
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d: %v", len(buckets), buckets)
	}

	if buckets[0].Value != "routine" || buckets[0].Count != 2 || buckets[0].Percentage != 50 {
		t.Errorf("top bucket wrong: %+v", buckets[0])
	}

	// Blank values land in the Empty bucket.
	if !hasBucket(buckets, "Empty", 1) {
		t.Errorf("missing Empty bucket: %v", buckets)
	}
}

func TestAnalyzeFieldFrequencyUndefinedField(t *testing.T) {
	subs := []submission.Submission{
		subWithData("2026-01", map[string]string{"other": "x"}),
	}

	result, err := AnalyzeField(subs, "category", ModeFrequency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Frequency) != 0 {
		t.Errorf("field defined nowhere should yield no buckets, got %v", result.Frequency)
	}
}

func TestAnalyzeFieldTrend(t *testing.T) {
	subs := []submission.Submission{
		subWithData("2026-02", map[string]string{"category": "urgent"}),
		subWithData("2026-01", map[string]string{"category": "routine"}),
		subWithData("2026-01", map[string]string{"category": "routine"}),
		subWithData("2025-12", map[string]string{"category": "routine"}),
	}

	result, err := AnalyzeField(subs, "category", ModeTrend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := result.Trend
	if len(points) != 3 {
		t.Fatalf("expected 3 months, got %d", len(points))
	}

	// Chronological order.
	wantMonths := []string{"2025-12", "2026-01", "2026-02"}
	for i, want := range wantMonths {
		if points[i].Month != want {
			t.Errorf("points[%d].Month = %q, want %q", i, points[i].Month, want)
		}
	}

	jan := points[1]
	if jan.TotalSubmissions != 2 {
		t.Errorf("2026-01 total = %d, want 2", jan.TotalSubmissions)
	}
	if len(jan.Values) != 1 || jan.Values[0].Value != "routine" || jan.Values[0].Count != 2 {
		t.Errorf("2026-01 values wrong: %v", jan.Values)
	}
}

func TestAnalyzeFieldUnknownMode(t *testing.T) {
	if _, err := AnalyzeField(nil, "score", AnalysisMode("median")); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func hasBucket(buckets []FrequencyBucket, value string, count int) bool {
	for _, b := range buckets {
		if b.Value == value && b.Count == count {
			return true
		}
	}
	return false
}
