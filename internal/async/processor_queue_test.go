package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
}

func newCountingProcessor(expect int) *countingProcessor {
	return &countingProcessor{done: make(chan struct{}, expect)}
}

func (p *countingProcessor) ProcessJob(_ context.Context, jobID uuid.UUID) error {
	p.mu.Lock()
	p.seen = append(p.seen, jobID)
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func (p *countingProcessor) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-p.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

type blockingProcessor struct {
	started sync.Once
	ready   chan struct{}
	release chan struct{}
}

func (p *blockingProcessor) ProcessJob(context.Context, uuid.UUID) error {
	p.started.Do(func() {
		if p.ready != nil {
			close(p.ready)
		}
	})
	<-p.release
	return nil
}

func (p *blockingProcessor) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-p.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first job")
	}
}

func TestProcessorQueue_ProcessesEnqueuedJobs(t *testing.T) {
	proc := newCountingProcessor(3)
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))
	defer q.Shutdown(context.Background())

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: id, SubmittedAt: time.Now()}))
	}
	proc.waitFor(t, 3)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, ids, proc.seen)
}

func TestProcessorQueue_ShutdownDrains(t *testing.T) {
	proc := newCountingProcessor(4)
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 4; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	}
	q.Shutdown(context.Background())

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.seen, 4, "queued jobs finish before shutdown returns")
}

func TestProcessorQueue_EnqueueAfterShutdownIsRejected(t *testing.T) {
	proc := newCountingProcessor(1)
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	require.ErrorIs(t, err, ErrQueueClosed)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.seen)
}

func TestProcessorQueue_FullBufferHonoursContext(t *testing.T) {
	block := make(chan struct{})
	proc := &blockingProcessor{ready: make(chan struct{}), release: block}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(1))
	defer func() {
		close(block)
		q.Shutdown(context.Background())
	}()

	// first job occupies the worker, second fills the buffer
	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	proc.waitStarted(t)
	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{JobID: uuid.New()})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcessorQueue_ShutdownTwice(t *testing.T) {
	q := NewProcessorQueue(newCountingProcessor(1), nil, WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
