package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/internal/entity"
)

func TestParseDate(t *testing.T) {
	good := []string{
		"1990-04-12",
		"12/04/1990",
		"04/12/1990",
		"12.04.1990",
		"12-04-1990",
		"12 Apr 1990",
		"2 January 1990",
		"Apr 12, 1990",
		"  1990-04-12  ",
	}
	for _, v := range good {
		_, ok := parseDate(v)
		assert.True(t, ok, "should parse: %q", v)
	}

	bad := []string{"", "yesterday", "1990/13/40", "12341234", "april"}
	for _, v := range bad {
		_, ok := parseDate(v)
		assert.False(t, ok, "should not parse: %q", v)
	}
}

func TestValidNumber(t *testing.T) {
	assert.True(t, validNumber("42"))
	assert.True(t, validNumber("3.14"))
	assert.True(t, validNumber("1,234.56"))
	assert.True(t, validNumber("$99.90"))
	assert.True(t, validNumber(" -7 "))

	assert.False(t, validNumber("abc"))
	assert.False(t, validNumber("12a"))
	assert.False(t, validNumber(""))
}

func TestValidOption(t *testing.T) {
	opts := []string{"Single", "Married", "Divorced"}
	assert.True(t, validOption("Married", opts))
	assert.True(t, validOption("married", opts))
	assert.True(t, validOption("  Single ", opts))
	assert.False(t, validOption("Widowed", opts))
	assert.False(t, validOption("", opts))
}

func TestValidIDValue(t *testing.T) {
	assert.True(t, validIDValue("X1234567"))
	assert.True(t, validIDValue("ab 123-456"))
	assert.True(t, validIDValue("CH00 1234 5678"))

	assert.False(t, validIDValue("x1"))          // too short
	assert.False(t, validIDValue("x#123456"))    // bad charset
	assert.False(t, validIDValue(""))
}

func TestLooksLikeIDField(t *testing.T) {
	assert.True(t, looksLikeIDField("passport_number"))
	assert.True(t, looksLikeIDField("document no"))
	assert.True(t, looksLikeIDField("iban"))
	assert.False(t, looksLikeIDField("full_name"))
	assert.False(t, looksLikeIDField("notes"))
}

func TestValidateField(t *testing.T) {
	cases := []struct {
		name  string
		field entity.TemplateField
		value string
		code  string // "" means pass
	}{
		{"good date", entity.TemplateField{Name: "dob", Type: entity.FieldTypeDate}, "1990-04-12", ""},
		{"bad date", entity.TemplateField{Name: "dob", Type: entity.FieldTypeDate}, "soon", CodeBadDate},
		{"good number", entity.TemplateField{Name: "amount", Type: entity.FieldTypeNumber}, "120.50", ""},
		{"bad number", entity.TemplateField{Name: "amount", Type: entity.FieldTypeNumber}, "many", CodeBadNumber},
		{"good option", entity.TemplateField{Name: "status", Type: entity.FieldTypeSelect, Options: []string{"A", "B"}}, "b", ""},
		{"bad option", entity.TemplateField{Name: "status", Type: entity.FieldTypeSelect, Options: []string{"A", "B"}}, "C", CodeBadOption},
		{"good id", entity.TemplateField{Name: "passport_number", Type: entity.FieldTypeText}, "X1234567", ""},
		{"bad id", entity.TemplateField{Name: "passport_number", Type: entity.FieldTypeText}, "@@", CodeBadIDFormat},
		{"plain text passes", entity.TemplateField{Name: "remarks", Type: entity.FieldTypeText}, "@@ anything", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issue := validateField(tc.field, tc.value)
			if tc.code == "" {
				assert.Nil(t, issue)
				return
			}
			require.NotNil(t, issue)
			assert.Equal(t, tc.code, issue.Code)
			assert.Equal(t, tc.field.Name, issue.Field)
		})
	}
}
