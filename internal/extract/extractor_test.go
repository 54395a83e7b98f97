package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

// fakeCompleter returns canned fields and records what it was asked for.
type fakeCompleter struct {
	fields []entity.ExtractedField
	err    error
	calls  []CompletionRequest
}

func (f *fakeCompleter) CompleteFields(_ context.Context, req CompletionRequest) ([]entity.ExtractedField, error) {
	f.calls = append(f.calls, req)
	return f.fields, f.err
}

func (f *fakeCompleter) ModelName() string { return "fake-model" }

const passportPage = `PASSPORT
Passport No: X1234567
Surname and Given Names: ROE, JANE
Date of Birth: 12 Apr 1990
Nationality: Examplian
Date of Issue: 15 Jan 2020
Date of Expiry: 14 Jan 2030
`

func TestExtract_LabeledFields(t *testing.T) {
	e := NewExtractor(nil, nil)

	set, err := e.Extract(context.Background(), Request{
		Pages:    []string{passportPage},
		Category: constants.Passport,
	})
	require.NoError(t, err)

	f, ok := set.Get("Passport No")
	require.True(t, ok)
	assert.Equal(t, "X1234567", f.Value)
	assert.Equal(t, 100.0, f.Confidence)
	assert.Equal(t, constants.SourceRule, f.Source)

	dob, ok := set.Get("Date of Birth")
	require.True(t, ok)
	assert.Equal(t, "12 Apr 1990", dob.Value)

	name, ok := set.Get("Full Name")
	require.True(t, ok)
	assert.Equal(t, "ROE, JANE", name.Value)
}

func TestExtract_EntityFallback(t *testing.T) {
	e := NewExtractor(nil, nil)

	// No labels, but an email and a phone pattern appear in free text.
	set, err := e.Extract(context.Background(), Request{
		Pages:    []string{"reach jane.roe@example.com or +41 79 123 45 67 for questions"},
		Category: constants.Unknown,
	})
	require.NoError(t, err)

	email, ok := set.Get("Email")
	require.True(t, ok)
	assert.Equal(t, "jane.roe@example.com", email.Value)
	assert.Less(t, email.Confidence, 100.0)

	_, ok = set.Get("Phone")
	assert.True(t, ok)
}

func TestExtract_FirstPageWins(t *testing.T) {
	e := NewExtractor(nil, nil)

	set, err := e.Extract(context.Background(), Request{
		Pages: []string{
			"Passport No: X1111111\n",
			"Passport No: X2222222\n",
		},
		Category: constants.Passport,
	})
	require.NoError(t, err)

	f, ok := set.Get("Passport No")
	require.True(t, ok)
	assert.Equal(t, "X1111111", f.Value)
}

func TestExtract_EmptyPages(t *testing.T) {
	e := NewExtractor(nil, nil)

	set, err := e.Extract(context.Background(), Request{
		Pages:    []string{"", "   \n  "},
		Category: constants.Passport,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestExtract_CompleterFillsMissingOnly(t *testing.T) {
	fc := &fakeCompleter{fields: []entity.ExtractedField{
		{Name: "Place of Birth", Value: "Springfield", Confidence: 70},
	}}
	e := NewExtractor(fc, nil)

	set, err := e.Extract(context.Background(), Request{
		Pages:    []string{passportPage},
		Category: constants.Passport,
	})
	require.NoError(t, err)
	require.Len(t, fc.calls, 1)

	// Fields the rule layers found must not be asked for again.
	for _, m := range fc.calls[0].Missing {
		assert.NotEqual(t, "Passport No", m.Name)
		assert.NotEqual(t, "Date of Birth", m.Name)
	}

	pob, ok := set.Get("Place of Birth")
	require.True(t, ok)
	assert.Equal(t, "Springfield", pob.Value)
	assert.Equal(t, constants.SourceLLM, pob.Source)
}

func TestExtract_CompleterSkippedWhenNothingMissing(t *testing.T) {
	fc := &fakeCompleter{}
	e := NewExtractor(fc, nil)

	page := passportPage + "Place of Birth: Springfield\nAuthority: Ministry of Examples\nSex: F\n"
	_, err := e.Extract(context.Background(), Request{
		Pages:    []string{page},
		Category: constants.Passport,
	})
	require.NoError(t, err)
	assert.Empty(t, fc.calls)
}

func TestExtract_DisableModel(t *testing.T) {
	fc := &fakeCompleter{}
	e := NewExtractor(fc, nil)

	_, err := e.Extract(context.Background(), Request{
		Pages:        []string{passportPage},
		Category:     constants.Passport,
		DisableModel: true,
	})
	require.NoError(t, err)
	assert.Empty(t, fc.calls)
}

func TestExtract_CompleterErrorKeepsRuleFields(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("model unavailable")}
	e := NewExtractor(fc, nil)

	set, err := e.Extract(context.Background(), Request{
		Pages:    []string{passportPage},
		Category: constants.Passport,
	})
	assert.Error(t, err)

	// The partial rule-layer result survives the model failure.
	_, ok := set.Get("Passport No")
	assert.True(t, ok)
}

func TestExtract_VisionContextPassedThrough(t *testing.T) {
	fc := &fakeCompleter{}
	e := NewExtractor(fc, nil)

	_, err := e.Extract(context.Background(), Request{
		Pages:          []string{"Name: Jane Roe"},
		Category:       constants.Passport,
		FilePath:       "/data/scan.heic",
		OCRConfidence:  35,
		ContentHashHex: "abc123",
	})
	require.NoError(t, err)
	require.Len(t, fc.calls, 1)
	assert.Equal(t, "/data/scan.heic", fc.calls[0].FilePath)
	assert.Equal(t, 35.0, fc.calls[0].OCRConfidence)
	assert.Equal(t, "abc123", fc.calls[0].ContentHashHex)
}

func TestExtract_ModelName(t *testing.T) {
	assert.Equal(t, "fake-model", NewExtractor(&fakeCompleter{}, nil).ModelName())
	assert.Equal(t, "", NewExtractor(nil, nil).ModelName())
}

func TestTemplatesFor_UnknownFallback(t *testing.T) {
	assert.Equal(t, TemplatesFor(constants.Unknown), TemplatesFor(constants.DocCategory("SomethingElse")))
	assert.NotEmpty(t, TemplatesFor(constants.Passport))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "X1234567", cleanValue("  X1234567. "))
	assert.Equal(t, "Jane Roe", cleanValue("Jane Roe;"))
	assert.Equal(t, "", cleanValue(" .,; "))
}
