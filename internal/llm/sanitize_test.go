package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(StripCodeFence([]byte("```json\n{\"a\":1}\n```"))))
	assert.Equal(t, `{"a":1}`, string(StripCodeFence([]byte("```\n{\"a\":1}\n```"))))
	assert.Equal(t, `{"a":1}`, string(StripCodeFence([]byte(`{"a":1}`))))
	assert.Equal(t, "plain text", string(StripCodeFence([]byte("plain text"))))
}

func sanitize(t *testing.T, raw string, allowed []string) (FieldDocument, []string) {
	t.Helper()
	b, dropped, err := NormalizeAndSanitizeJSON([]byte(raw), allowed, nil)
	require.NoError(t, err)
	var doc FieldDocument
	require.NoError(t, json.Unmarshal(b, &doc))
	return doc, dropped
}

func TestSanitize_DropsUnknownKeys(t *testing.T) {
	doc, dropped := sanitize(t,
		`{"Full Name": {"value": "Jane Roe", "confidence": 90}, "Hobby": {"value": "chess"}}`,
		[]string{"Full Name"})

	require.Contains(t, doc, "Full Name")
	assert.NotContains(t, doc, "Hobby")
	assert.Equal(t, []string{"Hobby(unknown)"}, dropped)
}

func TestSanitize_CoercesBareString(t *testing.T) {
	doc, _ := sanitize(t, `{"Full Name": "Jane Roe"}`, []string{"Full Name"})
	assert.Equal(t, "Jane Roe", doc["Full Name"].Value)
	assert.Equal(t, 0.0, doc["Full Name"].Confidence)
}

func TestSanitize_CoercesNumericValue(t *testing.T) {
	doc, _ := sanitize(t, `{"Amount Due": 120.50}`, []string{"Amount Due"})
	assert.Equal(t, "120.5", doc["Amount Due"].Value)

	doc, _ = sanitize(t, `{"Amount Due": {"value": 42}}`, []string{"Amount Due"})
	assert.Equal(t, "42", doc["Amount Due"].Value)
}

func TestSanitize_RescalesUnitConfidence(t *testing.T) {
	doc, _ := sanitize(t, `{"Full Name": {"value": "Jane", "confidence": 0.85}}`, []string{"Full Name"})
	assert.InDelta(t, 85, doc["Full Name"].Confidence, 1e-9)
}

func TestSanitize_ClampsConfidence(t *testing.T) {
	doc, _ := sanitize(t, `{"A": {"value": "x", "confidence": 150}, "B": {"value": "y", "confidence": -5}}`, []string{"A", "B"})
	assert.Equal(t, 100.0, doc["A"].Confidence)
	assert.Equal(t, 0.0, doc["B"].Confidence)
}

func TestSanitize_DropsNullAndEmpty(t *testing.T) {
	doc, dropped := sanitize(t,
		`{"A": null, "B": "", "C": {"value": "  "}, "D": {"value": "kept"}}`,
		[]string{"A", "B", "C", "D"})

	assert.Len(t, doc, 1)
	assert.Equal(t, "kept", doc["D"].Value)
	assert.Len(t, dropped, 3)
}

func TestSanitize_InvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte("not json at all"), nil, nil)
	assert.Error(t, err)
}

func TestSanitize_FencedInput(t *testing.T) {
	doc, _ := sanitize(t, "```json\n{\"A\": {\"value\": \"x\"}}\n```", []string{"A"})
	assert.Equal(t, "x", doc["A"].Value)
}
