package template

import (
	"strings"
	"testing"
)

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr string
	}{
		{
			name: "valid schema",
			fields: []Field{
				{Name: "count", Label: "Count", Type: FieldTypeNumber, Required: true},
				{Name: "category", Label: "Category", Type: FieldTypeSelect, Options: []string{"a", "b"}},
			},
		},
		{
			name:   "empty field list is valid",
			fields: nil,
		},
		{
			name: "missing field name",
			fields: []Field{
				{Label: "Count", Type: FieldTypeNumber},
			},
			wantErr: "has no name",
		},
		{
			name: "duplicate field names",
			fields: []Field{
				{Name: "count", Type: FieldTypeNumber},
				{Name: "count", Type: FieldTypeText},
			},
			wantErr: "duplicate field name",
		},
		{
			name: "unknown field type",
			fields: []Field{
				{Name: "x", Type: FieldType("checkbox")},
			},
			wantErr: "unknown type",
		},
		{
			name: "select without options",
			fields: []Field{
				{Name: "category", Type: FieldTypeSelect},
			},
			wantErr: "has no options",
		},
		{
			name: "non-select with options",
			fields: []Field{
				{Name: "count", Type: FieldTypeNumber, Options: []string{"1"}},
			},
			wantErr: "cannot carry options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.fields)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want one containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsAssignedTo(t *testing.T) {
	tpl := &Template{AssignedLocations: []string{"Central Hub", "North Branch"}}

	if !tpl.IsAssignedTo("Central Hub") {
		t.Error("Central Hub should be assigned")
	}
	if tpl.IsAssignedTo("West Branch") {
		t.Error("West Branch should not be assigned")
	}
}

func TestFieldByName(t *testing.T) {
	tpl := &Template{Fields: []Field{{Name: "count", Type: FieldTypeNumber}}}

	if _, ok := tpl.FieldByName("count"); !ok {
		t.Error("count should be found")
	}
	if _, ok := tpl.FieldByName("missing"); ok {
		t.Error("missing should not be found")
	}
}
