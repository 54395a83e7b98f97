package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docufill/docpipe/gen/ent"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/internal/entity"
)

type ResultRepository interface {
	Create(ctx context.Context, res *entity.ExtractionResult) (*entity.ExtractionResult, error)
	LatestForJob(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionResult, error)
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error)
}

type resultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewResultRepository(entc *ent.Client, log *slog.Logger) ResultRepository {
	if log == nil {
		log = slog.Default()
	}
	return &resultRepo{ent: entc, log: log}
}

func (r *resultRepo) Create(ctx context.Context, res *entity.ExtractionResult) (*entity.ExtractionResult, error) {
	var fieldsJSON json.RawMessage
	if res.Fields != nil {
		b, err := json.Marshal(res.Fields.Fields())
		if err != nil {
			return nil, fmt.Errorf("encode fields: %w", err)
		}
		fieldsJSON = b
	}

	create := r.ent.ExtractionResult.Create().
		SetDocumentID(res.DocumentID).
		SetJobID(res.JobID).
		SetAttempt(res.Attempt).
		SetFields(fieldsJSON).
		SetConfidence(res.Confidence).
		SetPages(res.Pages).
		SetElapsedMs(res.ElapsedMS)
	if len(res.FailedPages) > 0 {
		create = create.SetFailedPages(res.FailedPages)
	}
	if res.ModelName != "" {
		create = create.SetModelName(res.ModelName)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("extraction_result create failed", "job_id", res.JobID, "error", err)
		return nil, err
	}
	return resultFromRow(row)
}

func (r *resultRepo) LatestForJob(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionResult, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(extractionresult.JobID(jobID)).
		Order(extractionresult.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return resultFromRow(row)
}

func (r *resultRepo) LatestForDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(extractionresult.DocumentID(documentID)).
		Order(extractionresult.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return resultFromRow(row)
}

func resultFromRow(row *ent.ExtractionResult) (*entity.ExtractionResult, error) {
	res := &entity.ExtractionResult{
		ID:          row.ID,
		DocumentID:  row.DocumentID,
		JobID:       row.JobID,
		Attempt:     row.Attempt,
		Confidence:  row.Confidence,
		Pages:       row.Pages,
		FailedPages: row.FailedPages,
		ElapsedMS:   row.ElapsedMs,
		CreatedAt:   row.CreatedAt,
	}
	if row.ModelName != nil {
		res.ModelName = *row.ModelName
	}
	if len(row.Fields) > 0 {
		var fields []entity.ExtractedField
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, fmt.Errorf("decode fields for result %s: %w", row.ID, err)
		}
		res.Fields = entity.FieldSetFromSlice(fields)
	}
	return res, nil
}
