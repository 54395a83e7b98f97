package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

func snapshot(id uuid.UUID, state constants.JobState) *entity.PipelineJob {
	return &entity.PipelineJob{ID: id, State: state}
}

func TestNotifier_PublishReachesSubscriber(t *testing.T) {
	n := NewNotifier()
	jobID := uuid.New()

	ch, cancel := n.Subscribe(jobID)
	defer cancel()

	n.Publish(snapshot(jobID, constants.JobStateClassifying))

	select {
	case got := <-ch:
		assert.Equal(t, constants.JobStateClassifying, got.State)
	default:
		t.Fatal("expected a snapshot")
	}
}

func TestNotifier_PerJobIsolation(t *testing.T) {
	n := NewNotifier()
	a, b := uuid.New(), uuid.New()

	chA, cancelA := n.Subscribe(a)
	defer cancelA()
	chB, cancelB := n.Subscribe(b)
	defer cancelB()

	n.Publish(snapshot(a, constants.JobStateExtracting))

	assert.Len(t, chA, 1)
	assert.Len(t, chB, 0)
}

func TestNotifier_MultipleSubscribers(t *testing.T) {
	n := NewNotifier()
	jobID := uuid.New()

	ch1, cancel1 := n.Subscribe(jobID)
	defer cancel1()
	ch2, cancel2 := n.Subscribe(jobID)
	defer cancel2()

	n.Publish(snapshot(jobID, constants.JobStateMapping))

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestNotifier_SlowSubscriberDropsOldest(t *testing.T) {
	n := NewNotifier()
	jobID := uuid.New()

	ch, cancel := n.Subscribe(jobID)
	defer cancel()

	states := []constants.JobState{
		constants.JobStateQueued,
		constants.JobStateClassifying,
		constants.JobStateExtracting,
		constants.JobStateMapping,
		constants.JobStateQA,
		constants.JobStateMerging,
		constants.JobStateDone,
	}
	// overflow the buffer without draining
	for i := 0; i < 12; i++ {
		n.Publish(snapshot(jobID, states[i%len(states)]))
	}
	n.Publish(snapshot(jobID, constants.JobStateDone))

	var last *entity.PipelineJob
	for {
		select {
		case s := <-ch:
			last = s
			continue
		default:
		}
		break
	}
	require.NotNil(t, last)
	assert.Equal(t, constants.JobStateDone, last.State, "newest snapshot survives overflow")
}

func TestNotifier_CancelClosesChannel(t *testing.T) {
	n := NewNotifier()
	jobID := uuid.New()

	ch, cancel := n.Subscribe(jobID)
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel must not panic or deliver
	n.Publish(snapshot(jobID, constants.JobStateDone))
}

func TestNotifier_CancelIsIdempotent(t *testing.T) {
	n := NewNotifier()
	_, cancel := n.Subscribe(uuid.New())
	cancel()
	cancel()
}
