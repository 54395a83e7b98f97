package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/repository"
)

// FSIngestor reads documents from the local filesystem. The same bytes for
// the same client are ingested exactly once, keyed by content hash.
type FSIngestor struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{docs: docs, logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, clientID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension %q", ext)
	}

	sum, err := hashFile(abs)
	if err != nil {
		return out, err
	}
	hashHex := hex.EncodeToString(sum)

	if existing, err := i.docs.FindByHash(ctx, clientID, hashHex); err != nil {
		return out, err
	} else if existing != nil {
		i.logger.InfoContext(ctx, "ingest.deduplicated",
			"client_id", clientID, "path", abs, "document_id", existing.ID)
		return IngestionResult{
			SourcePath:   existing.SourcePath,
			DocumentID:   existing.ID.String(),
			Deduplicated: true,
			HashHex:      hashHex,
			FileExt:      existing.FileExt,
			UploadedAt:   existing.UploadedAt,
		}, nil
	}

	doc, err := i.docs.Create(ctx, &entity.Document{
		ClientID:    clientID,
		SourcePath:  abs,
		FileExt:     ext,
		Format:      constants.MapExtToFormat("." + ext),
		ContentHash: hashHex,
	})
	if err != nil {
		return out, err
	}

	i.logger.InfoContext(ctx, "ingest.stored",
		"client_id", clientID, "path", abs, "document_id", doc.ID, "format", doc.Format)
	return IngestionResult{
		SourcePath: doc.SourcePath,
		DocumentID: doc.ID.String(),
		HashHex:    hashHex,
		FileExt:    doc.FileExt,
		UploadedAt: doc.UploadedAt,
	}, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each eligible file. Per-file failures are recorded, not
// fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, clientID, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, clientID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
