package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/classify"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/extract"
	"github.com/docufill/docpipe/internal/mapper"
	"github.com/docufill/docpipe/internal/merge"
	"github.com/docufill/docpipe/internal/ocr"
	"github.com/docufill/docpipe/internal/qa"
	"github.com/docufill/docpipe/internal/repository"
	"github.com/docufill/docpipe/internal/resilience"
)

// Orchestrator drives one document through the state machine:
// queued → classifying → extracting → mapping → qa → merging → done,
// detouring through error_recovery on stage failures. Each transition is
// persisted before the stage runs so a crash resumes at the recorded stage
// rather than losing the job.
type Orchestrator struct {
	jobs      repository.JobRepository
	docs      repository.DocumentRepository
	results   repository.ResultRepository
	templates repository.TemplateRepository

	ocr        *ocr.Extractor
	classifier *classify.Classifier
	extractor  *extract.Extractor
	mapper     *mapper.Mapper
	assessor   *qa.Assessor
	merger     *merge.Engine

	notifier *Notifier
	logger   *slog.Logger
	retry    resilience.RetryConfig

	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

type Deps struct {
	Jobs      repository.JobRepository
	Docs      repository.DocumentRepository
	Results   repository.ResultRepository
	Templates repository.TemplateRepository

	OCR        *ocr.Extractor
	Classifier *classify.Classifier
	Extractor  *extract.Extractor
	Mapper     *mapper.Mapper
	Assessor   *qa.Assessor
	Merger     *merge.Engine

	Notifier *Notifier
	Logger   *slog.Logger
	Retry    resilience.RetryConfig
}

func NewOrchestrator(d Deps) *Orchestrator {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Notifier == nil {
		d.Notifier = NewNotifier()
	}
	return &Orchestrator{
		jobs:       d.Jobs,
		docs:       d.Docs,
		results:    d.Results,
		templates:  d.Templates,
		ocr:        d.OCR,
		classifier: d.Classifier,
		extractor:  d.Extractor,
		mapper:     d.Mapper,
		assessor:   d.Assessor,
		merger:     d.Merger,
		notifier:   d.Notifier,
		logger:     d.Logger,
		retry:      d.Retry,
		cancels:    make(map[uuid.UUID]context.CancelFunc),
	}
}

func (o *Orchestrator) Notifier() *Notifier { return o.notifier }

// runOptions tune one pass through the stages; error recovery flips them
// between attempts.
type runOptions struct {
	// disableModel falls back to rule-only extraction after a model failure.
	disableModel bool
}

// ProcessJob runs the job to a terminal state. The returned error reflects
// processing failure; job-state bookkeeping has already happened by then.
func (o *Orchestrator) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	ctx, cancel := context.WithCancel(ctx)
	o.mu.Lock()
	o.cancels[jobID] = cancel
	o.mu.Unlock()
	defer func() {
		cancel()
		o.mu.Lock()
		delete(o.cancels, jobID)
		o.mu.Unlock()
	}()

	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.State.Terminal() {
		// cancelled while still queued
		return nil
	}
	doc, err := o.docs.GetByID(ctx, job.DocumentID)
	if err != nil {
		return err
	}

	opts := runOptions{}
	for {
		runErr := o.runOnce(ctx, job, doc, opts)
		if runErr == nil {
			return nil
		}
		if errors.Is(runErr, context.Canceled) {
			return o.cancelJob(job)
		}

		job.Attempt++
		if err := o.jobs.SetAttempt(ctx, job.ID, job.Attempt); err != nil {
			return err
		}

		// Unreadable input is fatal: no backoff and no strategy change
		// can decode it, so the job fails on the spot.
		var fatal *common.ExtractionError
		if errors.As(runErr, &fatal) {
			return o.failJob(ctx, job, runErr)
		}
		if job.Attempt >= job.MaxAttempts {
			return o.failJob(ctx, job, runErr)
		}

		if err := o.transition(ctx, job, constants.JobStateErrorRecovery); err != nil {
			if errors.Is(err, context.Canceled) {
				return o.cancelJob(job)
			}
			return err
		}

		if resilience.IsTransient(runErr) {
			delay := resilience.Backoff(o.retry, job.Attempt-1)
			o.logger.WarnContext(ctx, "pipeline.recovery.backoff",
				"job_id", job.ID, "attempt", job.Attempt, "delay", delay, "error", runErr)
			select {
			case <-ctx.Done():
				return o.cancelJob(job)
			case <-time.After(delay):
			}
		} else {
			// deterministic failure: retrying the same strategy cannot
			// help, so drop to rule-only extraction
			opts.disableModel = true
			o.logger.WarnContext(ctx, "pipeline.recovery.fallback",
				"job_id", job.ID, "attempt", job.Attempt, "rules_only", true, "error", runErr)
		}
	}
}

// Cancel stops a running job, or marks a queued one cancelled directly.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) error {
	o.mu.Lock()
	cancel, running := o.cancels[jobID]
	o.mu.Unlock()
	if running {
		cancel()
		return nil
	}

	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.State.Terminal() {
		return nil
	}
	return o.cancelJob(job)
}

func (o *Orchestrator) cancelJob(job *entity.PipelineJob) error {
	// deliberately not the request context: the job row must record the
	// cancellation even though the run context is gone
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := o.jobs.MarkCancelled(ctx, job.ID); err != nil {
		o.logger.Error("pipeline.cancel.persist_failed", "job_id", job.ID, "error", err)
		return err
	}
	job.State = constants.JobStateCancelled
	job.ErrorCode = constants.ErrCodeCancelled
	now := time.Now()
	job.FinishedAt = &now
	o.publish(job)
	o.logger.Info("pipeline.cancelled", "job_id", job.ID)
	return nil
}

func (o *Orchestrator) failJob(ctx context.Context, job *entity.PipelineJob, cause error) error {
	code := common.CodeFor(cause)
	if err := o.jobs.MarkFailed(ctx, job.ID, code, cause.Error()); err != nil {
		return err
	}
	job.State = constants.JobStateFailed
	job.ErrorCode = code
	job.ErrorMessage = cause.Error()
	now := time.Now()
	job.FinishedAt = &now
	o.publish(job)
	o.logger.ErrorContext(ctx, "pipeline.failed",
		"job_id", job.ID, "attempts", job.Attempt, "code", string(code), "error", cause)
	return cause
}

// transition persists the state change, mirrors it on the in-memory job and
// notifies watchers.
func (o *Orchestrator) transition(ctx context.Context, job *entity.PipelineJob, state constants.JobState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.jobs.SetState(ctx, job.ID, state); err != nil {
		return err
	}
	job.State = state
	job.Progress = state.Progress()
	o.publish(job)
	o.logger.InfoContext(ctx, "pipeline.stage",
		"job_id", job.ID, "state", string(state), "attempt", job.Attempt)
	return nil
}

func (o *Orchestrator) publish(job *entity.PipelineJob) {
	snapshot := *job
	o.notifier.Publish(&snapshot)
}
