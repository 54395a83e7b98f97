package entity

import (
	"github.com/docufill/docpipe/constants"
)

// BoundingBox locates a recognized field region on a page.
type BoundingBox struct {
	Page int     `json:"page"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// ExtractedField is one recognized field value. Instances are never mutated
// after creation; a user correction creates a new field with Source "user".
type ExtractedField struct {
	Name       string                `json:"name"`
	Value      string                `json:"value"`
	Confidence float64               `json:"confidence"` // 0..100
	Source     constants.FieldSource `json:"source"`
	Position   int                   `json:"position,omitempty"` // byte offset of the match in page text
	Box        *BoundingBox          `json:"bounding_box,omitempty"`
}

// FieldSet is an ordered set of extracted fields keyed by field name.
// Order follows first insertion, so page-union keeps first-page-wins ordering.
type FieldSet struct {
	names  []string
	fields map[string]ExtractedField
}

func NewFieldSet() *FieldSet {
	return &FieldSet{fields: make(map[string]ExtractedField)}
}

// Put inserts f; an existing entry for the same name is kept only if the
// incoming one loses the confidence-then-position tie-break.
func (s *FieldSet) Put(f ExtractedField) {
	existing, ok := s.fields[f.Name]
	if !ok {
		s.names = append(s.names, f.Name)
		s.fields[f.Name] = f
		return
	}
	if f.Confidence > existing.Confidence ||
		(f.Confidence == existing.Confidence && f.Position < existing.Position) {
		s.fields[f.Name] = f
	}
}

// PutIfAbsent inserts f only when no field with that name exists (first-page-wins).
func (s *FieldSet) PutIfAbsent(f ExtractedField) {
	if _, ok := s.fields[f.Name]; ok {
		return
	}
	s.names = append(s.names, f.Name)
	s.fields[f.Name] = f
}

func (s *FieldSet) Get(name string) (ExtractedField, bool) {
	f, ok := s.fields[name]
	return f, ok
}

func (s *FieldSet) Len() int {
	return len(s.names)
}

// Fields returns the fields in insertion order.
func (s *FieldSet) Fields() []ExtractedField {
	out := make([]ExtractedField, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.fields[n])
	}
	return out
}

// AggregateConfidence is the unweighted mean field confidence, 0 when empty.
func (s *FieldSet) AggregateConfidence() float64 {
	if len(s.names) == 0 {
		return 0
	}
	var sum float64
	for _, n := range s.names {
		sum += s.fields[n].Confidence
	}
	return sum / float64(len(s.names))
}

// FieldSetFromSlice rebuilds a set from a persisted slice, preserving order.
func FieldSetFromSlice(fields []ExtractedField) *FieldSet {
	s := NewFieldSet()
	for _, f := range fields {
		s.PutIfAbsent(f)
	}
	return s
}
