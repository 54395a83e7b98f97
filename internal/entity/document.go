package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents one immutable ingested raw document.
type Document struct {
	ID          uuid.UUID `json:"id"`
	ClientID    string    `json:"client_id"`
	SourcePath  string    `json:"source_path"`
	FileExt     string    `json:"file_ext"`
	Format      string    `json:"format"` // constants.PDF | constants.IMAGE
	ContentHash string    `json:"content_hash"` // hex-encoded sha256
	PageCount   int       `json:"page_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
