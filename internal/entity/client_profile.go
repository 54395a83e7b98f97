package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldSourceRef records which document and extraction attempt produced a
// profile field value. The list on a field is append-only.
type FieldSourceRef struct {
	DocumentID  uuid.UUID `json:"document_id"`
	ExtractedAt time.Time `json:"extracted_at"`
	Confidence  float64   `json:"confidence"` // 0..100
}

// ProfileField is one durable field on a client profile.
type ProfileField struct {
	Value          string           `json:"value"`
	Confidence     float64          `json:"confidence"` // 0..100
	ManuallyEdited bool             `json:"manually_edited"`
	FieldSources   []FieldSourceRef `json:"field_sources,omitempty"`
}

// ClientProfile is the durable per-client aggregate of extracted field values.
type ClientProfile struct {
	ID        uuid.UUID               `json:"id"`
	ClientID  string                  `json:"client_id"`
	Fields    map[string]ProfileField `json:"fields"`
	Version   int                     `json:"version"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// FieldGroup buckets profile fields for display.
type FieldGroup string

const (
	GroupIdentity FieldGroup = "identity"
	GroupContact  FieldGroup = "contact"
	GroupDates    FieldGroup = "dates"
	GroupNumbers  FieldGroup = "numbers"
	GroupOther    FieldGroup = "other"
)
