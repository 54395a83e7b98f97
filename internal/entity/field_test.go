package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSet_PutKeepsHigherConfidence(t *testing.T) {
	s := NewFieldSet()
	s.Put(ExtractedField{Name: "Email", Value: "low@example.com", Confidence: 60})
	s.Put(ExtractedField{Name: "Email", Value: "high@example.com", Confidence: 85})

	f, ok := s.Get("Email")
	assert.True(t, ok)
	assert.Equal(t, "high@example.com", f.Value)
	assert.Equal(t, 1, s.Len())
}

func TestFieldSet_PutTieBreaksOnPosition(t *testing.T) {
	s := NewFieldSet()
	s.Put(ExtractedField{Name: "Email", Value: "later@example.com", Confidence: 85, Position: 200})
	s.Put(ExtractedField{Name: "Email", Value: "earlier@example.com", Confidence: 85, Position: 10})

	f, _ := s.Get("Email")
	assert.Equal(t, "earlier@example.com", f.Value)
}

func TestFieldSet_PutLowerConfidenceIgnored(t *testing.T) {
	s := NewFieldSet()
	s.Put(ExtractedField{Name: "Email", Value: "keep@example.com", Confidence: 85})
	s.Put(ExtractedField{Name: "Email", Value: "drop@example.com", Confidence: 60})

	f, _ := s.Get("Email")
	assert.Equal(t, "keep@example.com", f.Value)
}

func TestFieldSet_PutIfAbsent(t *testing.T) {
	s := NewFieldSet()
	s.PutIfAbsent(ExtractedField{Name: "Name", Value: "first", Confidence: 10})
	s.PutIfAbsent(ExtractedField{Name: "Name", Value: "second", Confidence: 100})

	f, _ := s.Get("Name")
	assert.Equal(t, "first", f.Value)
}

func TestFieldSet_OrderIsInsertionOrder(t *testing.T) {
	s := NewFieldSet()
	s.Put(ExtractedField{Name: "C"})
	s.Put(ExtractedField{Name: "A"})
	s.Put(ExtractedField{Name: "B"})
	s.Put(ExtractedField{Name: "A", Confidence: 50}) // update, not reorder

	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestFieldSet_AggregateConfidence(t *testing.T) {
	s := NewFieldSet()
	assert.Equal(t, 0.0, s.AggregateConfidence())

	s.Put(ExtractedField{Name: "A", Confidence: 100})
	s.Put(ExtractedField{Name: "B", Confidence: 50})
	assert.InDelta(t, 75, s.AggregateConfidence(), 1e-9)
}

func TestFieldSetFromSlice_RoundTrip(t *testing.T) {
	s := NewFieldSet()
	s.Put(ExtractedField{Name: "B", Value: "2", Confidence: 70})
	s.Put(ExtractedField{Name: "A", Value: "1", Confidence: 90})

	rebuilt := FieldSetFromSlice(s.Fields())
	assert.Equal(t, s.Fields(), rebuilt.Fields())
}
