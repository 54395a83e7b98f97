package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/internal/async"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/repository"
)

// Service is the submission surface over the orchestrator: it creates job
// rows, feeds the worker queue, and exposes status, watch and cancel.
type Service struct {
	orch        *Orchestrator
	queue       async.Queue
	jobs        repository.JobRepository
	docs        repository.DocumentRepository
	maxAttempts int
	logger      *slog.Logger
}

func NewService(orch *Orchestrator, queue async.Queue, jobs repository.JobRepository, docs repository.DocumentRepository, maxAttempts int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Service{
		orch:        orch,
		queue:       queue,
		jobs:        jobs,
		docs:        docs,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Submit creates a job for an ingested document and queues it. The call
// returns as soon as the job row exists; processing is asynchronous.
func (s *Service) Submit(ctx context.Context, documentID uuid.UUID, templateID *uuid.UUID) (*entity.PipelineJob, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", documentID, err)
	}

	job, err := s.jobs.Create(ctx, doc.ID, doc.ClientID, templateID, s.maxAttempts)
	if err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *Service) Status(ctx context.Context, jobID uuid.UUID) (*entity.PipelineJob, error) {
	return s.jobs.GetByID(ctx, jobID)
}

func (s *Service) Cancel(ctx context.Context, jobID uuid.UUID) error {
	return s.orch.Cancel(ctx, jobID)
}

func (s *Service) ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.PipelineJob, error) {
	return s.jobs.ListByClient(ctx, clientID, limit)
}

// Watch returns the current snapshot plus a channel of subsequent updates.
// The caller must invoke stop when done.
func (s *Service) Watch(ctx context.Context, jobID uuid.UUID) (*entity.PipelineJob, <-chan *entity.PipelineJob, func(), error) {
	// subscribe before the snapshot read so no transition can slip between
	updates, stop := s.orch.Notifier().Subscribe(jobID)
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		stop()
		return nil, nil, nil, err
	}
	return job, updates, stop, nil
}

// Resume re-enqueues every job left in a non-terminal state by a previous
// run. Jobs restart from the first stage; rerun stages overwrite their
// previous output and the merge records at most one source per document,
// so a half-finished pass is safe to repeat.
func (s *Service) Resume(ctx context.Context) (int, error) {
	unfinished, err := s.jobs.ListUnfinished(ctx)
	if err != nil {
		return 0, err
	}
	for _, job := range unfinished {
		if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
			return 0, err
		}
		s.logger.Info("pipeline.resume", "job_id", job.ID, "state", string(job.State), "attempt", job.Attempt)
	}
	if len(unfinished) > 0 {
		s.logger.Info("pipeline.resume.complete", "jobs", len(unfinished))
	}
	return len(unfinished), nil
}
