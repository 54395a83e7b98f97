package mapper

import (
	"log/slog"
	"sort"

	"github.com/docufill/docpipe/internal/entity"
)

// DefaultSimilarityThreshold is the minimum name similarity for an automatic
// mapping, on the [0,1] similarity scale.
const DefaultSimilarityThreshold = 0.6

// Mapper assigns extracted fields to form-template fields by name
// similarity. Mapping is deterministic: the same inputs always produce the
// same assignments.
type Mapper struct {
	threshold float64
	logger    *slog.Logger
}

func NewMapper(threshold float64, logger *slog.Logger) *Mapper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{threshold: threshold, logger: logger}
}

type candidate struct {
	targetIdx int
	sourceIdx int
	score     float64
}

// Map produces exactly one FieldMapping per template field, in template
// order. Each extracted field feeds at most one target; when several pairs
// compete, higher similarity wins, then template order, then source
// position. Targets nothing matched above the threshold come back unmapped
// with the no-data placeholder value.
func (m *Mapper) Map(tmpl *entity.FormTemplate, fields *entity.FieldSet) []entity.FieldMapping {
	sources := fields.Fields()

	var cands []candidate
	for ti, tf := range tmpl.Fields {
		for si, sf := range sources {
			score := Similarity(sf.Name, tf.Name)
			if score >= m.threshold {
				cands = append(cands, candidate{targetIdx: ti, sourceIdx: si, score: score})
			}
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.targetIdx != b.targetIdx {
			return a.targetIdx < b.targetIdx
		}
		return a.sourceIdx < b.sourceIdx
	})

	targetTaken := make(map[int]bool, len(tmpl.Fields))
	sourceTaken := make(map[int]bool, len(sources))
	chosen := make(map[int]candidate, len(tmpl.Fields))
	for _, c := range cands {
		if targetTaken[c.targetIdx] || sourceTaken[c.sourceIdx] {
			continue
		}
		targetTaken[c.targetIdx] = true
		sourceTaken[c.sourceIdx] = true
		chosen[c.targetIdx] = c
	}

	mappings := make([]entity.FieldMapping, 0, len(tmpl.Fields))
	for ti, tf := range tmpl.Fields {
		c, ok := chosen[ti]
		if !ok {
			mappings = append(mappings, entity.FieldMapping{
				TargetField:     tf.Name,
				Confidence:      0,
				RequiredMissing: tf.Required,
			})
			continue
		}
		sf := sources[c.sourceIdx]
		mappings = append(mappings, entity.FieldMapping{
			SourceField: sf.Name,
			SourceValue: sf.Value,
			TargetField: tf.Name,
			Confidence:  c.score * 100,
		})
	}
	return mappings
}

// SetOverride pins a user-provided value on the target field's mapping. The
// automatic assignment is preserved so ResetOverride can restore it exactly.
// It returns false when the template has no such target field.
func SetOverride(mappings []entity.FieldMapping, targetField, value string) bool {
	for i := range mappings {
		if mappings[i].TargetField != targetField {
			continue
		}
		m := &mappings[i]
		if !m.IsOverridden {
			m.PriorSourceField = m.SourceField
			m.PriorSourceValue = m.SourceValue
			m.PriorConfidence = m.Confidence
		}
		m.IsOverridden = true
		m.OverrideValue = value
		m.RequiredMissing = false
		return true
	}
	return false
}

// ResetOverride drops a user override and restores the prior automatic
// mapping verbatim. Resetting a mapping that was never overridden is a no-op.
func ResetOverride(mappings []entity.FieldMapping, targetField string, required bool) bool {
	for i := range mappings {
		if mappings[i].TargetField != targetField {
			continue
		}
		m := &mappings[i]
		if !m.IsOverridden {
			return true
		}
		m.IsOverridden = false
		m.OverrideValue = ""
		m.SourceField = m.PriorSourceField
		m.SourceValue = m.PriorSourceValue
		m.Confidence = m.PriorConfidence
		m.PriorSourceField = ""
		m.PriorSourceValue = ""
		m.PriorConfidence = 0
		m.RequiredMissing = required && m.SourceField == ""
		return true
	}
	return false
}
