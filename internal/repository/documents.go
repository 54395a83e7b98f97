package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/gen/ent"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// FindByHash returns the already-ingested document with the same content
	// for this client, if any.
	FindByHash(ctx context.Context, clientID, contentHash string) (*entity.Document, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	if log == nil {
		log = slog.Default()
	}
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetClientID(d.ClientID).
		SetSourcePath(d.SourcePath).
		SetFileExt(d.FileExt).
		SetFormat(d.Format).
		SetContentHash(d.ContentHash).
		SetPageCount(d.PageCount).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "client_id", d.ClientID, "error", err)
		return nil, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Query().Where(document.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) FindByHash(ctx context.Context, clientID, contentHash string) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(document.ClientID(clientID), document.ContentHash(contentHash)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(document.ClientID(clientID)).
		Order(document.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("document list failed", "client_id", clientID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, documentFromRow(row))
	}
	return out, nil
}

func documentFromRow(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          row.ID,
		ClientID:    row.ClientID,
		SourcePath:  row.SourcePath,
		FileExt:     row.FileExt,
		Format:      row.Format,
		ContentHash: row.ContentHash,
		PageCount:   row.PageCount,
		UploadedAt:  row.UploadedAt,
	}
}
