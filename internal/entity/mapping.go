package entity

// NoDataAvailable is the placeholder surfaced for template fields no
// extracted field matched above the similarity threshold.
const NoDataAvailable = "No data available"

// FieldMapping associates one extracted source field with one template field.
type FieldMapping struct {
	SourceField   string  `json:"source_field,omitempty"` // empty when unmapped
	SourceValue   string  `json:"source_value,omitempty"`
	TargetField   string  `json:"target_field"`
	Confidence    float64 `json:"confidence"` // 0..100
	IsOverridden  bool    `json:"is_overridden"`
	OverrideValue string  `json:"override_value,omitempty"`

	// Prior automatic mapping, kept so a reset restores it verbatim.
	PriorSourceField string  `json:"prior_source_field,omitempty"`
	PriorSourceValue string  `json:"prior_source_value,omitempty"`
	PriorConfidence  float64 `json:"prior_confidence,omitempty"`

	RequiredMissing bool `json:"required_missing,omitempty"`
}

// Mapped reports whether the mapping carries a usable value.
func (m FieldMapping) Mapped() bool {
	return m.IsOverridden || m.SourceField != ""
}

// EffectiveValue is the value a form filler should use for the target field.
func (m FieldMapping) EffectiveValue() string {
	if m.IsOverridden {
		return m.OverrideValue
	}
	if m.SourceField == "" {
		return NoDataAvailable
	}
	return m.SourceValue
}

// QualityIssue is one validator finding attached to a QualityAssessment.
type QualityIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QualityAssessment is the QA stage verdict. It is recomputed on every pass;
// only the most recent one is kept on the job record for diagnostics.
type QualityAssessment struct {
	IsValid          bool           `json:"is_valid"`
	OverallScore     float64        `json:"overall_score"` // 0..100
	Issues           []QualityIssue `json:"issues,omitempty"`
	NeedsHumanReview bool           `json:"needs_human_review"`
	Transient        bool           `json:"transient"` // failure cause may change on retry
}
