package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

func testTemplate() *entity.FormTemplate {
	return &entity.FormTemplate{
		Name:    "visa-application",
		Version: 1,
		Fields: []entity.TemplateField{
			{Name: "full_name", Label: "Full Name", Required: true, Type: entity.FieldTypeText, Order: 0},
			{Name: "date_of_birth", Label: "Date of Birth", Required: true, Type: entity.FieldTypeDate, Order: 1},
			{Name: "passport_number", Label: "Passport No.", Required: true, Type: entity.FieldTypeText, Order: 2},
			{Name: "email", Label: "Email", Required: false, Type: entity.FieldTypeText, Order: 3},
		},
	}
}

func testFields() *entity.FieldSet {
	fs := entity.NewFieldSet()
	fs.Put(entity.ExtractedField{Name: "name", Value: "Jane Roe", Confidence: 100, Source: constants.SourceRule})
	fs.Put(entity.ExtractedField{Name: "dob", Value: "1990-04-12", Confidence: 85, Source: constants.SourceRule})
	fs.Put(entity.ExtractedField{Name: "document number", Value: "X1234567", Confidence: 75, Source: constants.SourceRule})
	fs.Put(entity.ExtractedField{Name: "email", Value: "jane@example.com", Confidence: 85, Source: constants.SourceRule})
	return fs
}

func TestMap_OneMappingPerTemplateField(t *testing.T) {
	m := NewMapper(0, nil)
	tmpl := testTemplate()

	mappings := m.Map(tmpl, testFields())
	require.Len(t, mappings, len(tmpl.Fields))
	for i, fm := range mappings {
		assert.Equal(t, tmpl.Fields[i].Name, fm.TargetField)
	}
}

func TestMap_SynonymsResolve(t *testing.T) {
	m := NewMapper(0, nil)
	mappings := m.Map(testTemplate(), testFields())

	byTarget := make(map[string]entity.FieldMapping)
	for _, fm := range mappings {
		byTarget[fm.TargetField] = fm
	}

	assert.Equal(t, "name", byTarget["full_name"].SourceField)
	assert.Equal(t, "Jane Roe", byTarget["full_name"].SourceValue)
	assert.Equal(t, "dob", byTarget["date_of_birth"].SourceField)
	assert.Equal(t, "document number", byTarget["passport_number"].SourceField)
	assert.Equal(t, "email", byTarget["email"].SourceField)
	assert.Equal(t, 100.0, byTarget["email"].Confidence)
}

func TestMap_UnmappedRequiredFlagged(t *testing.T) {
	m := NewMapper(0, nil)
	fs := entity.NewFieldSet()
	fs.Put(entity.ExtractedField{Name: "email", Value: "jane@example.com", Confidence: 85})

	mappings := m.Map(testTemplate(), fs)
	byTarget := make(map[string]entity.FieldMapping)
	for _, fm := range mappings {
		byTarget[fm.TargetField] = fm
	}

	nameMapping := byTarget["full_name"]
	assert.True(t, nameMapping.RequiredMissing)
	assert.False(t, nameMapping.Mapped())
	assert.Equal(t, entity.NoDataAvailable, nameMapping.EffectiveValue())
	assert.Equal(t, 0.0, nameMapping.Confidence)

	// email is optional, so an unmapped optional field carries no flag.
	assert.False(t, byTarget["email"].RequiredMissing)
}

func TestMap_SingleAssignment(t *testing.T) {
	// One extracted field must not feed two targets.
	m := NewMapper(0, nil)
	tmpl := &entity.FormTemplate{Fields: []entity.TemplateField{
		{Name: "full name", Required: true},
		{Name: "name", Required: true},
	}}
	fs := entity.NewFieldSet()
	fs.Put(entity.ExtractedField{Name: "name", Value: "Jane Roe", Confidence: 90})

	mappings := m.Map(tmpl, fs)
	require.Len(t, mappings, 2)

	mapped := 0
	for _, fm := range mappings {
		if fm.SourceField != "" {
			mapped++
		}
	}
	assert.Equal(t, 1, mapped)
	// Exact match wins over the synonym match.
	assert.Equal(t, "name", mappings[1].SourceField)
	assert.Equal(t, "", mappings[0].SourceField)
}

func TestMap_Deterministic(t *testing.T) {
	m := NewMapper(0, nil)
	tmpl := testTemplate()

	first := m.Map(tmpl, testFields())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Map(tmpl, testFields()))
	}
}

func TestMap_ConfidenceScale(t *testing.T) {
	m := NewMapper(0, nil)
	for _, fm := range m.Map(testTemplate(), testFields()) {
		assert.GreaterOrEqual(t, fm.Confidence, 0.0)
		assert.LessOrEqual(t, fm.Confidence, 100.0)
	}
}

func TestSetOverride_PreservesPriorMapping(t *testing.T) {
	m := NewMapper(0, nil)
	mappings := m.Map(testTemplate(), testFields())

	var before entity.FieldMapping
	for _, fm := range mappings {
		if fm.TargetField == "passport_number" {
			before = fm
		}
	}
	require.NotEmpty(t, before.SourceField)

	ok := SetOverride(mappings, "passport_number", "Z9999999")
	require.True(t, ok)

	var after entity.FieldMapping
	for _, fm := range mappings {
		if fm.TargetField == "passport_number" {
			after = fm
		}
	}
	assert.True(t, after.IsOverridden)
	assert.Equal(t, "Z9999999", after.OverrideValue)
	assert.Equal(t, "Z9999999", after.EffectiveValue())
	assert.Equal(t, before.SourceField, after.PriorSourceField)
	assert.Equal(t, before.Confidence, after.PriorConfidence)
}

func TestSetOverride_TwiceKeepsOriginalPrior(t *testing.T) {
	mappings := []entity.FieldMapping{{
		TargetField: "email",
		SourceField: "email",
		SourceValue: "auto@example.com",
		Confidence:  80,
	}}

	require.True(t, SetOverride(mappings, "email", "first@example.com"))
	require.True(t, SetOverride(mappings, "email", "second@example.com"))

	assert.Equal(t, "second@example.com", mappings[0].OverrideValue)
	assert.Equal(t, "auto@example.com", mappings[0].PriorSourceValue)
}

func TestSetOverride_ClearsRequiredMissing(t *testing.T) {
	mappings := []entity.FieldMapping{{TargetField: "full_name", RequiredMissing: true}}
	require.True(t, SetOverride(mappings, "full_name", "Jane Roe"))
	assert.False(t, mappings[0].RequiredMissing)
}

func TestSetOverride_UnknownTarget(t *testing.T) {
	mappings := []entity.FieldMapping{{TargetField: "email"}}
	assert.False(t, SetOverride(mappings, "nope", "x"))
}

func TestResetOverride_RestoresVerbatim(t *testing.T) {
	m := NewMapper(0, nil)
	mappings := m.Map(testTemplate(), testFields())

	var original entity.FieldMapping
	for _, fm := range mappings {
		if fm.TargetField == "date_of_birth" {
			original = fm
		}
	}

	require.True(t, SetOverride(mappings, "date_of_birth", "2000-01-01"))
	require.True(t, ResetOverride(mappings, "date_of_birth", true))

	var restored entity.FieldMapping
	for _, fm := range mappings {
		if fm.TargetField == "date_of_birth" {
			restored = fm
		}
	}
	assert.Equal(t, original, restored)
}

func TestResetOverride_UnmappedRequiredRestoresFlag(t *testing.T) {
	mappings := []entity.FieldMapping{{TargetField: "full_name", RequiredMissing: true}}
	require.True(t, SetOverride(mappings, "full_name", "Jane Roe"))
	require.True(t, ResetOverride(mappings, "full_name", true))

	assert.False(t, mappings[0].IsOverridden)
	assert.True(t, mappings[0].RequiredMissing)
	assert.Equal(t, entity.NoDataAvailable, mappings[0].EffectiveValue())
}

func TestResetOverride_NoopWithoutOverride(t *testing.T) {
	mappings := []entity.FieldMapping{{TargetField: "email", SourceField: "email", SourceValue: "a@b.c", Confidence: 70}}
	require.True(t, ResetOverride(mappings, "email", false))
	assert.Equal(t, "a@b.c", mappings[0].SourceValue)
}
