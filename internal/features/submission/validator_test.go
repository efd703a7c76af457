package submission

import (
	"testing"

	"go-reporthub/internal/features/template"
)

func testTemplate() *template.Template {
	return &template.Template{
		Name: "Monthly Patient Count",
		Fields: []template.Field{
			{Name: "count", Label: "Patient Count", Type: template.FieldTypeNumber, Required: true},
			{Name: "visit_date", Label: "Visit Date", Type: template.FieldTypeDate},
			{Name: "category", Label: "Category", Type: template.FieldTypeSelect, Options: []string{"routine", "urgent"}},
			{Name: "notes", Label: "Notes", Type: template.FieldTypeTextArea},
			{Name: "report_file", Label: "Report File", Type: template.FieldTypeFile},
		},
	}
}

func TestValidate(t *testing.T) {
	tpl := testTemplate()

	tests := []struct {
		name       string
		formData   map[string]string
		wantErr    bool
		wantField  string
		wantReason string
	}{
		{
			name:     "valid full form",
			formData: map[string]string{"count": "7", "visit_date": "2026-03-15", "category": "routine", "notes": "ok"},
		},
		{
			name:       "missing required field",
			formData:   map[string]string{"visit_date": "2026-03-15"},
			wantErr:    true,
			wantField:  "count",
			wantReason: "missing required field",
		},
		{
			name:       "required field blank",
			formData:   map[string]string{"count": ""},
			wantErr:    true,
			wantField:  "count",
			wantReason: "missing required field",
		},
		{
			name:       "non-numeric number",
			formData:   map[string]string{"count": "abc"},
			wantErr:    true,
			wantField:  "count",
			wantReason: "not numeric",
		},
		{
			name:     "negative and decimal numbers accepted",
			formData: map[string]string{"count": "-3.5"},
		},
		{
			name:      "bad date format",
			formData:  map[string]string{"count": "1", "visit_date": "15/03/2026"},
			wantErr:   true,
			wantField: "visit_date",
		},
		{
			name:      "select value outside options",
			formData:  map[string]string{"count": "1", "category": "emergency"},
			wantErr:   true,
			wantField: "category",
		},
		{
			name:     "optional fields may be absent",
			formData: map[string]string{"count": "1"},
		},
		{
			name:     "file value is opaque",
			formData: map[string]string{"count": "1", "report_file": "whatever.bin"},
		},
		{
			name:     "unknown keys ignored",
			formData: map[string]string{"count": "1", "stray": "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tpl, tt.formData)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				// Validation is pure: the same pair validates again.
				if err := Validate(tpl, tt.formData); err != nil {
					t.Fatalf("revalidation failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("failing field = %q, want %q", verr.Field, tt.wantField)
			}
			if tt.wantReason != "" && verr.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", verr.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateAllCollectsEveryError(t *testing.T) {
	tpl := testTemplate()

	errs := ValidateAll(tpl, map[string]string{
		"visit_date": "not-a-date",
		"category":   "emergency",
	})

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors (count, visit_date, category), got %d: %v", len(errs), errs)
	}

	// Errors come back in template field order.
	wantFields := []string{"count", "visit_date", "category"}
	for i, want := range wantFields {
		if errs[i].Field != want {
			t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, want)
		}
	}
}

func TestValidateAllNilOnValid(t *testing.T) {
	tpl := testTemplate()
	if errs := ValidateAll(tpl, map[string]string{"count": "10"}); errs != nil {
		t.Errorf("expected nil, got %v", errs)
	}
}

func TestValidMonthYear(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "1999-06"}
	invalid := []string{"2026-13", "2026-00", "2026-1", "26-01", "2026/01", "", "2026-01-15"}

	for _, v := range valid {
		if !ValidMonthYear(v) {
			t.Errorf("%q should be valid", v)
		}
	}
	for _, v := range invalid {
		if ValidMonthYear(v) {
			t.Errorf("%q should be invalid", v)
		}
	}
}
