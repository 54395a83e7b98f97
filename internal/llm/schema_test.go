package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docufill/docpipe/internal/extract"
)

func schemaFields() []extract.FieldTemplate {
	return []extract.FieldTemplate{
		{Name: "Full Name", Kind: extract.KindName},
		{Name: "Date of Birth", Kind: extract.KindDate},
		{Name: "Email", Kind: extract.KindEmail},
		{Name: "Amount Due", Kind: extract.KindNumber},
		{Name: "Passport No", Kind: extract.KindIDNum},
	}
}

func validate(t *testing.T, doc string) error {
	t.Helper()
	return ValidateJSONAgainstSchema(BuildFieldsJSONSchema(schemaFields()), []byte(doc))
}

func TestSchema_ValidDocument(t *testing.T) {
	err := validate(t, `{
		"Full Name": {"value": "Jane Roe", "confidence": 92},
		"Date of Birth": {"value": "1990-04-12"},
		"Email": {"value": "jane@example.com", "confidence": 85}
	}`)
	assert.NoError(t, err)
}

func TestSchema_OmittedFieldsAllowed(t *testing.T) {
	// Nothing is required at the top level; an empty answer set is legal.
	assert.NoError(t, validate(t, `{}`))
}

func TestSchema_UnknownFieldRejected(t *testing.T) {
	assert.Error(t, validate(t, `{"Hobby": {"value": "chess"}}`))
}

func TestSchema_BadDateRejected(t *testing.T) {
	assert.Error(t, validate(t, `{"Date of Birth": {"value": "12 Apr 1990"}}`))
}

func TestSchema_BadEmailRejected(t *testing.T) {
	assert.Error(t, validate(t, `{"Email": {"value": "not-an-email"}}`))
}

func TestSchema_BadNumberRejected(t *testing.T) {
	assert.Error(t, validate(t, `{"Amount Due": {"value": "a lot"}}`))
	assert.NoError(t, validate(t, `{"Amount Due": {"value": "120.50"}}`))
}

func TestSchema_IDLengthBounds(t *testing.T) {
	assert.Error(t, validate(t, `{"Passport No": {"value": "X1"}}`))
	assert.NoError(t, validate(t, `{"Passport No": {"value": "X1234567"}}`))
}

func TestSchema_MissingValueRejected(t *testing.T) {
	assert.Error(t, validate(t, `{"Full Name": {"confidence": 90}}`))
}

func TestSchema_ConfidenceBoundsEnforced(t *testing.T) {
	assert.Error(t, validate(t, `{"Full Name": {"value": "Jane", "confidence": 150}}`))
}

func TestSchema_InvalidJSON(t *testing.T) {
	assert.Error(t, validate(t, `{broken`))
}
