package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/constants"
)

// PipelineJob is one end-to-end asynchronous execution of the
// extraction-to-merge state machine for one document. Rows are mutated
// exclusively by the orchestrator.
type PipelineJob struct {
	ID          uuid.UUID          `json:"id"`
	DocumentID  uuid.UUID          `json:"document_id"`
	ClientID    string             `json:"client_id"`
	TemplateID  *uuid.UUID         `json:"template_id,omitempty"`
	State       constants.JobState `json:"state"`
	Attempt     int                `json:"attempt"`
	MaxAttempts int                `json:"max_attempts"`
	Progress    int                `json:"progress"` // 0..100

	Classification *DocumentClassification `json:"classification,omitempty"`
	Mappings       []FieldMapping          `json:"mappings,omitempty"`
	LastAssessment *QualityAssessment      `json:"last_assessment,omitempty"`

	ErrorCode    constants.ErrorCode `json:"error_code,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`

	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
