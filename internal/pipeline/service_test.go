package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/async"
	"github.com/docufill/docpipe/internal/entity"
)

func docFixture() *entity.Document {
	return &entity.Document{
		ClientID:    "client-1",
		SourcePath:  "passport.pdf",
		FileExt:     "pdf",
		Format:      constants.PDF,
		ContentHash: "deadbeef",
	}
}

// syncQueue processes jobs inline so tests need no worker goroutines.
type syncQueue struct {
	proc     async.Processor
	enqueued []uuid.UUID
}

func (q *syncQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.enqueued = append(q.enqueued, job.JobID)
	return q.proc.ProcessJob(ctx, job.JobID)
}

func (q *syncQueue) Shutdown(context.Context) {}

func newServiceFixture(t *testing.T) (*Service, *orcFixture, *syncQueue) {
	t.Helper()
	f := newOrcFixture(t)
	q := &syncQueue{proc: f.orch}
	svc := NewService(f.orch, q, f.jobs, f.docs, 3, nil)
	return svc, f, q
}

func TestServiceSubmit_RunsJobToDone(t *testing.T) {
	svc, f, q := newServiceFixture(t)
	doc, err := f.docs.Create(context.Background(), docFixture())
	require.NoError(t, err)

	job, err := svc.Submit(context.Background(), doc.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{job.ID}, q.enqueued)

	status, err := svc.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateDone, status.State)
}

func TestServiceSubmit_UnknownDocument(t *testing.T) {
	svc, _, q := newServiceFixture(t)
	_, err := svc.Submit(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Empty(t, q.enqueued)
}

func TestServiceWatch_SnapshotAndStop(t *testing.T) {
	svc, f, _ := newServiceFixture(t)
	doc, err := f.docs.Create(context.Background(), docFixture())
	require.NoError(t, err)
	job, err := svc.Submit(context.Background(), doc.ID, nil)
	require.NoError(t, err)

	snap, updates, stop, err := svc.Watch(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, snap.ID)

	stop()
	_, open := <-updates
	assert.False(t, open)
}

func TestServiceResume_RequeuesUnfinished(t *testing.T) {
	svc, f, q := newServiceFixture(t)
	doc, err := f.docs.Create(context.Background(), docFixture())
	require.NoError(t, err)

	// simulate a job left behind by a crashed run
	job, err := f.jobs.Create(context.Background(), doc.ID, "client-1", nil, 3)
	require.NoError(t, err)
	require.NoError(t, f.jobs.SetState(context.Background(), job.ID, constants.JobStateExtracting))

	n, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uuid.UUID{job.ID}, q.enqueued)
	assert.Equal(t, constants.JobStateDone, f.jobs.get(job.ID).State)
}
