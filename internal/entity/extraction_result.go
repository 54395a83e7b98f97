package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionResult captures one extraction attempt for a document. Rows are
// retained for audit even after the fields are merged into a profile.
type ExtractionResult struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	JobID      uuid.UUID `json:"job_id"`
	Attempt    int       `json:"attempt"`
	Fields     *FieldSet `json:"fields,omitempty"`
	Confidence float64   `json:"confidence"` // 0..100, document aggregate
	Pages      int       `json:"pages"`
	// FailedPages holds zero-based indexes of pages OCR could not process.
	FailedPages []int  `json:"failed_pages,omitempty"`
	ModelName   string `json:"model_name,omitempty"`
	ElapsedMS   int64  `json:"elapsed_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentClassification is the classifier verdict for one document.
type DocumentClassification struct {
	Category          string                 `json:"category"`
	Confidence        float64                `json:"confidence"` // 0..100
	NeedsConfirmation bool                   `json:"needs_confirmation"`
	Alternatives      []CategoryAlternative  `json:"alternatives,omitempty"`
}

// CategoryAlternative is a runner-up category, sorted descending by confidence.
type CategoryAlternative struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}
