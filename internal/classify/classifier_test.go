package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
)

const passportText = `
REPUBLIC OF EXAMPLIA
PASSPORT
Surname: ROE
Given Names: JANE
Nationality: EXAMPLIAN
Place of Birth: SPRINGFIELD
Date of Issue: 15 JAN 2020
Date of Expiry: 14 JAN 2030
P<EXAROE<<JANE<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<
`

const bankStatementText = `
First Examplian Bank
Account Statement
Period: 01/01/2026 - 31/01/2026
IBAN: EX00 1234 5678 9012
Opening Balance: 1,200.00
Closing Balance: 980.50
Withdrawals: 3
Deposits: 1
`

func TestClassify_Passport(t *testing.T) {
	c := New(nil)
	res := c.Classify(passportText)

	assert.Equal(t, string(constants.Passport), res.Category)
	assert.False(t, res.NeedsConfirmation)
	assert.GreaterOrEqual(t, res.Confidence, float64(ConfirmationThreshold))
}

func TestClassify_BankStatement(t *testing.T) {
	c := New(nil)
	res := c.Classify(bankStatementText)

	assert.Equal(t, string(constants.BankStatement), res.Category)
	assert.GreaterOrEqual(t, res.Confidence, float64(ConfirmationThreshold))
}

func TestClassify_EmptyText(t *testing.T) {
	c := New(nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		res := c.Classify(text)
		assert.Equal(t, string(constants.Unknown), res.Category)
		assert.Equal(t, 0.0, res.Confidence)
		assert.True(t, res.NeedsConfirmation)
	}
}

func TestClassify_NoKeywordMatch(t *testing.T) {
	c := New(nil)
	res := c.Classify("lorem ipsum dolor sit amet, a text about nothing in particular")

	assert.Equal(t, string(constants.Unknown), res.Category)
	assert.Equal(t, 0.0, res.Confidence)
	assert.True(t, res.NeedsConfirmation)
}

func TestClassify_AmbiguousTextFlagsConfirmation(t *testing.T) {
	c := New(nil)
	// Keywords from two categories with similar weight.
	res := c.Classify("visa sponsor iban opening balance")

	assert.True(t, res.NeedsConfirmation)
	assert.NotEmpty(t, res.Alternatives)
}

func TestClassify_AlternativesRankedDescending(t *testing.T) {
	c := New(nil)
	res := c.Classify(passportText + "\nnationality id number national id card")
	require.NotEmpty(t, res.Alternatives)

	prev := res.Confidence
	for _, alt := range res.Alternatives {
		assert.LessOrEqual(t, alt.Confidence, prev)
		prev = alt.Confidence
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(nil)
	first := c.Classify(bankStatementText)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(bankStatementText))
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(nil)
	upper := c.Classify(strings.ToUpper(bankStatementText))
	assert.Equal(t, string(constants.BankStatement), upper.Category)
}
