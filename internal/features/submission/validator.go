package submission

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-reporthub/internal/features/template"
)

// ValidationError reports one schema/value mismatch in a candidate
// form_data map. Recoverable; surfaced to the submitter with field-level
// detail.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Reason)
}

// ValidationErrors is the batch-mode result: every failing field in
// template order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return strings.Join(parts, "; ")
}

// Validate checks form_data against the template schema and stops at the
// first error. Field names present in form_data but absent from the
// schema are ignored.
func Validate(t *template.Template, formData map[string]string) error {
	for _, field := range t.Fields {
		if verr := checkField(field, formData); verr != nil {
			return verr
		}
	}
	return nil
}

// ValidateAll collects every field error instead of stopping at the first.
// Returns nil when the form data is valid.
func ValidateAll(t *template.Template, formData map[string]string) ValidationErrors {
	var errs ValidationErrors
	for _, field := range t.Fields {
		if verr := checkField(field, formData); verr != nil {
			errs = append(errs, *verr)
		}
	}
	return errs
}

func checkField(field template.Field, formData map[string]string) *ValidationError {
	val, exists := formData[field.Name]

	if field.Required && (!exists || val == "") {
		return &ValidationError{Field: field.Name, Reason: "missing required field"}
	}

	// Optional and absent/blank: nothing left to check.
	if !exists || val == "" {
		return nil
	}

	switch field.Type {
	case template.FieldTypeNumber:
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return &ValidationError{Field: field.Name, Reason: "not numeric"}
		}
	case template.FieldTypeDate:
		if _, err := time.Parse("2006-01-02", val); err != nil {
			return &ValidationError{Field: field.Name, Reason: "not a valid date (use YYYY-MM-DD)"}
		}
	case template.FieldTypeSelect:
		if !field.HasOption(val) {
			return &ValidationError{Field: field.Name, Reason: fmt.Sprintf("'%s' is not one of the allowed options", val)}
		}
	case template.FieldTypeFile:
		// Opaque filename reference; the upload collaborator owns blob
		// existence, not this validator.
	}

	return nil
}
