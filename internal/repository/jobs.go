package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/gen/ent"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/docufill/docpipe/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, documentID uuid.UUID, clientID string, templateID *uuid.UUID, maxAttempts int) (*entity.PipelineJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineJob, error)
	// SetState persists the state transition and its progress before the
	// stage runs, so a crashed worker resumes from the recorded stage.
	SetState(ctx context.Context, id uuid.UUID, state constants.JobState) error
	SetAttempt(ctx context.Context, id uuid.UUID, attempt int) error
	SaveClassification(ctx context.Context, id uuid.UUID, c *entity.DocumentClassification) error
	SaveMappings(ctx context.Context, id uuid.UUID, mappings []entity.FieldMapping) error
	SaveAssessment(ctx context.Context, id uuid.UUID, a *entity.QualityAssessment) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, code constants.ErrorCode, message string) error
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	// ListUnfinished returns jobs in non-terminal states, oldest first, for
	// resume after a restart.
	ListUnfinished(ctx context.Context) ([]*entity.PipelineJob, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.PipelineJob, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, documentID uuid.UUID, clientID string, templateID *uuid.UUID, maxAttempts int) (*entity.PipelineJob, error) {
	create := r.ent.PipelineJob.Create().
		SetDocumentID(documentID).
		SetClientID(clientID).
		SetState(string(constants.JobStateQueued)).
		SetProgress(constants.JobStateQueued.Progress()).
		SetMaxAttempts(maxAttempts)
	if templateID != nil {
		create = create.SetTemplateID(*templateID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("pipeline_job create failed", "document_id", documentID, "error", err)
		return nil, err
	}
	r.log.Info("pipeline_job created", "job_id", row.ID, "document_id", documentID, "client_id", clientID)
	return jobFromRow(row)
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PipelineJob, error) {
	row, err := r.ent.PipelineJob.Query().Where(pipelinejob.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return jobFromRow(row)
}

func (r *jobRepo) SetState(ctx context.Context, id uuid.UUID, state constants.JobState) error {
	_, err := r.ent.PipelineJob.UpdateOneID(id).
		SetState(string(state)).
		SetProgress(state.Progress()).
		Save(ctx)
	if err != nil {
		r.log.Error("pipeline_job state update failed", "job_id", id, "state", string(state), "error", err)
	}
	return err
}

func (r *jobRepo) SetAttempt(ctx context.Context, id uuid.UUID, attempt int) error {
	_, err := r.ent.PipelineJob.UpdateOneID(id).SetAttempt(attempt).Save(ctx)
	return err
}

func (r *jobRepo) SaveClassification(ctx context.Context, id uuid.UUID, c *entity.DocumentClassification) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode classification: %w", err)
	}
	_, err = r.ent.PipelineJob.UpdateOneID(id).SetClassification(b).Save(ctx)
	return err
}

func (r *jobRepo) SaveMappings(ctx context.Context, id uuid.UUID, mappings []entity.FieldMapping) error {
	b, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("encode mappings: %w", err)
	}
	_, err = r.ent.PipelineJob.UpdateOneID(id).SetMappings(b).Save(ctx)
	return err
}

func (r *jobRepo) SaveAssessment(ctx context.Context, id uuid.UUID, a *entity.QualityAssessment) error {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	_, err = r.ent.PipelineJob.UpdateOneID(id).SetLastAssessment(b).Save(ctx)
	return err
}

func (r *jobRepo) MarkDone(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.PipelineJob.UpdateOneID(id).
		SetState(string(constants.JobStateDone)).
		SetProgress(constants.JobStateDone.Progress()).
		ClearErrorCode().
		ClearErrorMessage().
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("pipeline_job finish failed", "job_id", id, "error", err)
	}
	return err
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, code constants.ErrorCode, message string) error {
	_, err := r.ent.PipelineJob.UpdateOneID(id).
		SetState(string(constants.JobStateFailed)).
		SetErrorCode(string(code)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("pipeline_job fail-update failed", "job_id", id, "error", err)
	}
	return err
}

func (r *jobRepo) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.PipelineJob.UpdateOneID(id).
		SetState(string(constants.JobStateCancelled)).
		SetErrorCode(string(constants.ErrCodeCancelled)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	return err
}

func (r *jobRepo) ListUnfinished(ctx context.Context) ([]*entity.PipelineJob, error) {
	terminal := []string{
		string(constants.JobStateDone),
		string(constants.JobStateFailed),
		string(constants.JobStateCancelled),
	}
	rows, err := r.ent.PipelineJob.Query().
		Where(pipelinejob.StateNotIn(terminal...)).
		Order(pipelinejob.ByStartedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return jobsFromRows(rows)
}

func (r *jobRepo) ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.PipelineJob, error) {
	q := r.ent.PipelineJob.Query().
		Where(pipelinejob.ClientID(clientID)).
		Order(pipelinejob.ByStartedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	return jobsFromRows(rows)
}

func jobsFromRows(rows []*ent.PipelineJob) ([]*entity.PipelineJob, error) {
	out := make([]*entity.PipelineJob, 0, len(rows))
	for _, row := range rows {
		j, err := jobFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

func jobFromRow(row *ent.PipelineJob) (*entity.PipelineJob, error) {
	j := &entity.PipelineJob{
		ID:          row.ID,
		DocumentID:  row.DocumentID,
		ClientID:    row.ClientID,
		TemplateID:  row.TemplateID,
		State:       constants.JobState(row.State),
		Attempt:     row.Attempt,
		MaxAttempts: row.MaxAttempts,
		Progress:    row.Progress,
		StartedAt:   row.StartedAt,
		FinishedAt:  row.FinishedAt,
	}
	if row.ErrorCode != nil {
		j.ErrorCode = constants.ErrorCode(*row.ErrorCode)
	}
	if row.ErrorMessage != nil {
		j.ErrorMessage = *row.ErrorMessage
	}
	if len(row.Classification) > 0 {
		var c entity.DocumentClassification
		if err := json.Unmarshal(row.Classification, &c); err != nil {
			return nil, fmt.Errorf("decode classification for job %s: %w", row.ID, err)
		}
		j.Classification = &c
	}
	if len(row.Mappings) > 0 {
		if err := json.Unmarshal(row.Mappings, &j.Mappings); err != nil {
			return nil, fmt.Errorf("decode mappings for job %s: %w", row.ID, err)
		}
	}
	if len(row.LastAssessment) > 0 {
		var a entity.QualityAssessment
		if err := json.Unmarshal(row.LastAssessment, &a); err != nil {
			return nil, fmt.Errorf("decode assessment for job %s: %w", row.ID, err)
		}
		j.LastAssessment = &a
	}
	return j, nil
}
