package template

import (
	"fmt"
	"time"

	common_models "go-reporthub/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeTextArea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeFile     FieldType = "file"
)

var fieldTypes = map[FieldType]bool{
	FieldTypeText:     true,
	FieldTypeNumber:   true,
	FieldTypeDate:     true,
	FieldTypeTextArea: true,
	FieldTypeSelect:   true,
	FieldTypeFile:     true,
}

// Field is one typed, labeled slot within a template's schema. Options
// exist only for select fields.
type Field struct {
	Name     string    `json:"name" bson:"name"`
	Label    string    `json:"label" bson:"label"`
	Type     FieldType `json:"type" bson:"type"`
	Required bool      `json:"required" bson:"required"`
	Options  []string  `json:"options,omitempty" bson:"options,omitempty"`
}

// HasOption reports whether v is one of the select field's options.
func (f Field) HasOption(v string) bool {
	for _, opt := range f.Options {
		if opt == v {
			return true
		}
	}
	return false
}

// Template is a named, ordered schema of form fields defining one kind
// of recurring monthly data collection.
type Template struct {
	ID                primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	Name              string                       `bson:"name" json:"name"`
	Description       string                       `bson:"description,omitempty" json:"description,omitempty"`
	Fields            []Field                      `bson:"fields" json:"fields"`
	AssignedLocations []string                     `bson:"assigned_locations" json:"assigned_locations"`
	CreatedBy         string                       `bson:"created_by" json:"created_by"`
	State             common_models.LifecycleState `bson:"state" json:"state"`
	CreatedAt         time.Time                    `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time                    `bson:"updated_at" json:"updated_at"`
}

// FieldByName returns the field definition for a stable key, if present.
func (t *Template) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsAssignedTo reports whether a location may submit this template.
func (t *Template) IsAssignedTo(location string) bool {
	for _, l := range t.AssignedLocations {
		if l == location {
			return true
		}
	}
	return false
}

// ValidateSchema checks the structural invariants of a template's field
// list: field names are unique within the template (they key the
// submission value map), every type is known, and options are carried by
// select fields only.
func ValidateSchema(fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field with label '%s' has no name", f.Label)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field name '%s'", f.Name)
		}
		seen[f.Name] = true

		if !fieldTypes[f.Type] {
			return fmt.Errorf("field '%s' has unknown type '%s'", f.Name, f.Type)
		}

		if f.Type == FieldTypeSelect {
			if len(f.Options) == 0 {
				return fmt.Errorf("select field '%s' has no options", f.Name)
			}
		} else if len(f.Options) > 0 {
			return fmt.Errorf("field '%s' of type '%s' cannot carry options", f.Name, f.Type)
		}
	}
	return nil
}
