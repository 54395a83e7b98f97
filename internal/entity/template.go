package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateFieldType constrains how a template field value is validated.
type TemplateFieldType string

const (
	FieldTypeText   TemplateFieldType = "text"
	FieldTypeNumber TemplateFieldType = "number"
	FieldTypeDate   TemplateFieldType = "date"
	FieldTypeSelect TemplateFieldType = "select"
)

// TemplateField is one declared target field on a form template.
type TemplateField struct {
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Required bool              `json:"required"`
	Type     TemplateFieldType `json:"type"`
	Options  []string          `json:"options,omitempty"` // for select fields
	Order    int               `json:"order"`
}

// FormTemplate declares the target fields a filled form needs. Templates are
// versioned copy-on-write: editing a template in use by in-flight mappings
// produces a new version rather than mutating the old one.
type FormTemplate struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Version   int             `json:"version"`
	Fields    []TemplateField `json:"fields"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FieldByName returns the declared field with the given name.
func (t *FormTemplate) FieldByName(name string) (TemplateField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return TemplateField{}, false
}

// RequiredFields returns the names of all required fields in declared order.
func (t *FormTemplate) RequiredFields() []string {
	var out []string
	for _, f := range t.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
