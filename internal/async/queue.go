package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued pipeline run.
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor executes one pipeline job to a terminal state. State handling
// and error recording happen inside; the queue only cares about dispatch.
type Processor interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) error
}
