package pipeline

import (
	"sync"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/internal/entity"
)

// Notifier fans job snapshots out to in-process watchers. Slow watchers drop
// intermediate updates rather than stalling the pipeline; the final snapshot
// always gets through because the channel is drained before sending.
type Notifier struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[int]chan *entity.PipelineJob
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uuid.UUID]map[int]chan *entity.PipelineJob)}
}

// Subscribe returns a channel of snapshots for jobID and a cancel func. The
// channel closes when cancel is called.
func (n *Notifier) Subscribe(jobID uuid.UUID) (<-chan *entity.PipelineJob, func()) {
	ch := make(chan *entity.PipelineJob, 8)

	n.mu.Lock()
	id := n.next
	n.next++
	if n.subs[jobID] == nil {
		n.subs[jobID] = make(map[int]chan *entity.PipelineJob)
	}
	n.subs[jobID][id] = ch
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if m, ok := n.subs[jobID]; ok {
			if c, ok := m[id]; ok {
				delete(m, id)
				close(c)
			}
			if len(m) == 0 {
				delete(n.subs, jobID)
			}
		}
	}
	return ch, cancel
}

// Publish delivers a snapshot to every watcher of the job.
func (n *Notifier) Publish(job *entity.PipelineJob) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[job.ID] {
		select {
		case ch <- job:
		default:
			// drop the oldest queued snapshot to make room for the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- job:
			default:
			}
		}
	}
}
