package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_ExactAfterNormalization(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Full Name", "full_name"))
	assert.Equal(t, 1.0, Similarity("  Date of Birth ", "date-of-birth"))
	assert.Equal(t, 1.0, Similarity("EMAIL", "email"))
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"dob", "date of birth"},
		{"surname", "last name"},
		{"passport no", "document number"},
		{"holder name", "full name"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-9, "pair %v", p)
	}
}

func TestSimilarity_SynonymGroups(t *testing.T) {
	// Large edit distance, same concept.
	assert.GreaterOrEqual(t, Similarity("dob", "date of birth"), 0.95)
	assert.GreaterOrEqual(t, Similarity("surname", "family name"), 0.95)
	assert.GreaterOrEqual(t, Similarity("gender", "sex"), 0.95)
	assert.GreaterOrEqual(t, Similarity("expiry date", "valid until"), 0.95)
}

func TestSimilarity_Substring(t *testing.T) {
	s := Similarity("name", "applicant full name")
	assert.GreaterOrEqual(t, s, 0.70)
}

func TestSimilarity_Unrelated(t *testing.T) {
	assert.Less(t, Similarity("email", "expiry date"), 0.6)
	assert.Less(t, Similarity("phone", "nationality"), 0.6)
}

func TestSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "name"))
	assert.Equal(t, 0.0, Similarity("name", "  "))
	assert.Equal(t, 0.0, Similarity("!!!", "name"))
}

func TestSimilarity_Bounds(t *testing.T) {
	names := []string{"full name", "dob", "email address", "passport number", "issue date", "x"}
	for _, a := range names {
		for _, b := range names {
			s := Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "date of birth", normalizeName("Date_of-Birth"))
	assert.Equal(t, "passport no", normalizeName("  Passport   No.  "))
	assert.Equal(t, "", normalizeName("***"))
}

func TestWordJaccard_DuplicateWords(t *testing.T) {
	// Repeated words must not inflate the overlap.
	assert.InDelta(t, 1.0, wordJaccard("name name", "name"), 1e-9)
	assert.InDelta(t, 1.0/3, wordJaccard("first name", "last name"), 1e-9)
}
