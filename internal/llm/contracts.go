package llm

// FieldAnswer is the per-field shape we want from the model: the value as it
// appears in the document plus a self-reported confidence.
type FieldAnswer struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence,omitempty"` // 0..100
}

// FieldDocument is the full structured output: one answer per field name the
// model could read. Fields it could not find are simply absent.
type FieldDocument map[string]FieldAnswer
