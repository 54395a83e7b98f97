package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

func assessTemplate() *entity.FormTemplate {
	return &entity.FormTemplate{
		Name:    "id-intake",
		Version: 1,
		Fields: []entity.TemplateField{
			{Name: "full_name", Required: true, Type: entity.FieldTypeText},
			{Name: "date_of_birth", Required: true, Type: entity.FieldTypeDate},
			{Name: "issue_date", Type: entity.FieldTypeDate},
			{Name: "expiry_date", Type: entity.FieldTypeDate},
			{Name: "passport_number", Type: entity.FieldTypeText},
		},
	}
}

func mapped(target, source, value string, conf float64) entity.FieldMapping {
	return entity.FieldMapping{
		TargetField: target,
		SourceField: source,
		SourceValue: value,
		Confidence:  conf,
	}
}

func TestAssess_AllGood(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", 95),
		mapped("date_of_birth", "dob", "1990-04-12", 90),
		mapped("issue_date", "issued on", "2020-01-15", 85),
		mapped("expiry_date", "valid until", "2030-01-14", 85),
		mapped("passport_number", "document number", "X1234567", 92),
	}
	cls := &entity.DocumentClassification{Category: string(constants.Passport), Confidence: 90}

	res := a.Assess(assessTemplate(), mappings, cls)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Issues)
	assert.False(t, res.NeedsHumanReview)
	assert.Greater(t, res.OverallScore, float64(ReviewThreshold))
}

func TestAssess_ScoreBlend(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", 80),
		mapped("date_of_birth", "dob", "1990-04-12", 60),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	// mean confidence 70, pass rate 1.0: 0.6*70 + 0.4*100 = 82
	assert.InDelta(t, 82, res.OverallScore, 1e-9)
}

func TestAssess_RequiredMissing(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		{TargetField: "full_name", RequiredMissing: true},
		mapped("date_of_birth", "dob", "1990-04-12", 90),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)
	assert.True(t, res.NeedsHumanReview)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, CodeRequiredMissing, res.Issues[0].Code)
	assert.Equal(t, "full_name", res.Issues[0].Field)
}

func TestAssess_BadDateValue(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("date_of_birth", "dob", "not a date", 90),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, CodeBadDate, res.Issues[0].Code)
}

func TestAssess_LowConfidenceMapping(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", FieldConfidenceFloor-1),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)

	found := false
	for _, i := range res.Issues {
		if i.Code == CodeLowConfidence {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssess_LowConfidenceOnlyIsTransient(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", FieldConfidenceFloor-1),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)
	assert.True(t, res.Transient, "low extraction confidence can clear on retry")
}

func TestAssess_MixedIssuesAreNotTransient(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", FieldConfidenceFloor-1),
		mapped("date_of_birth", "dob", "not a date", 90),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)
	assert.False(t, res.Transient)
}

func TestAssess_OverriddenValueSkipsConfidenceFloor(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{{
		TargetField:   "full_name",
		IsOverridden:  true,
		OverrideValue: "Jane Roe",
		Confidence:    0,
	}}

	res := a.Assess(assessTemplate(), mappings, nil)
	for _, i := range res.Issues {
		assert.NotEqual(t, CodeLowConfidence, i.Code)
	}
}

func TestAssess_ExpiryBeforeIssue(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("issue_date", "issued on", "2030-01-15", 90),
		mapped("expiry_date", "valid until", "2020-01-14", 90),
	}

	res := a.Assess(assessTemplate(), mappings, nil)
	assert.False(t, res.IsValid)

	found := false
	for _, i := range res.Issues {
		if i.Code == CodeDateOrder && i.Field == "expiry_date" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssess_BirthAfterIssue(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("date_of_birth", "dob", "2021-04-12", 90),
		mapped("issue_date", "issued on", "2020-01-15", 90),
	}

	res := a.Assess(assessTemplate(), mappings, nil)

	found := false
	for _, i := range res.Issues {
		if i.Code == CodeDateOrder && i.Field == "issue_date" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssess_UncertainClassificationForcesReview(t *testing.T) {
	a := NewAssessor(nil)
	mappings := []entity.FieldMapping{
		mapped("full_name", "name", "Jane Roe", 95),
	}
	cls := &entity.DocumentClassification{
		Category:          string(constants.Unknown),
		Confidence:        50,
		NeedsConfirmation: true,
	}

	res := a.Assess(assessTemplate(), mappings, cls)
	assert.True(t, res.IsValid)
	assert.True(t, res.NeedsHumanReview)
}

func TestAssess_EmptyMappings(t *testing.T) {
	a := NewAssessor(nil)
	res := a.Assess(assessTemplate(), nil, nil)
	// Nothing mapped, nothing checked: score is pure pass-rate weight.
	assert.True(t, res.IsValid)
	assert.InDelta(t, 40, res.OverallScore, 1e-9)
	assert.True(t, res.NeedsHumanReview)
}
