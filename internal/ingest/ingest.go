package ingest

import (
	"time"
)

// IngestionResult is the per-file outcome of an ingest call.
type IngestionResult struct {
	SourcePath   string    `json:"source_path"`
	DocumentID   string    `json:"document_id,omitempty"`
	Deduplicated bool      `json:"deduplicated"`
	HashHex      string    `json:"hash_hex,omitempty"`
	FileExt      string    `json:"file_ext,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at,omitempty"`
	Err          string    `json:"error,omitempty"`
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned      int `json:"scanned"`
	Matched      int `json:"matched"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	Deduplicated int `json:"deduplicated"`
}
