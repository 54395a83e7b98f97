package ocr

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/resilience"
)

type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

func (f runnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f(ctx, name, args...)
}

func testExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	if r != nil {
		e.WithRunner(r)
	}
	return e
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs", "a\t\tb", "a b"},
		{"multi space", "a    b", "a b"},
		{"blank runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "a   \nb", "a\nb"},
		{"surrounding whitespace", "  a b  ", "a b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestHeuristicConfidence_BaseForGarbage(t *testing.T) {
	assert.InDelta(t, 20, heuristicConfidence("zz qq"), 0.001)
}

func TestHeuristicConfidence_SignalsAccumulate(t *testing.T) {
	base := heuristicConfidence("zz qq")
	withDate := heuristicConfidence("meeting on 12/05/2021")
	assert.InDelta(t, base+20, withDate, 0.001)

	withID := heuristicConfidence("ref AB1234567 zz")
	assert.InDelta(t, base+15, withID, 0.001)

	withLabel := heuristicConfidence("date of birth unknown")
	assert.InDelta(t, base+15, withLabel, 0.001)
}

func TestHeuristicConfidence_AllSignals(t *testing.T) {
	txt := strings.Join([]string{
		"PASSPORT",
		"Name: JANE ROE",
		"Date of Birth: 12/04/1990",
		"Passport No: AB1234567",
		"P<UTOROE<<JANE<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<",
		"Additional remarks line to push the text over the length threshold for scoring.",
	}, "\n")
	require.Greater(t, len(txt), 120)
	assert.InDelta(t, 95, heuristicConfidence(txt), 0.001)
}

func TestSplitPDFPages(t *testing.T) {
	t.Run("splits on form feed", func(t *testing.T) {
		assert.Equal(t, []string{"one", "two"}, splitPDFPages("one\ftwo", 2))
	})
	t.Run("pads to reported count", func(t *testing.T) {
		assert.Equal(t, []string{"one", "", ""}, splitPDFPages("one", 3))
	})
	t.Run("trims beyond reported count", func(t *testing.T) {
		assert.Equal(t, []string{"one"}, splitPDFPages("one\ftwo", 1))
	})
}

func TestMeanPageConfidence(t *testing.T) {
	pages := []Page{
		{Index: 1, Confidence: 90},
		{Index: 2, Confidence: 50},
		{Index: 3, Err: errors.New("boom"), Confidence: 999},
	}
	assert.InDelta(t, 70, meanPageConfidence(pages), 0.001)

	allFailed := []Page{{Index: 1, Err: errors.New("boom")}}
	assert.Zero(t, meanPageConfidence(allFailed))
	assert.Zero(t, meanPageConfidence(nil))
}

func TestUsableTextLayer(t *testing.T) {
	assert.False(t, usableTextLayer("   \n  "))
	assert.False(t, usableTextLayer("short scan residue"))
	assert.True(t, usableTextLayer(strings.Repeat("a", minTextLayerChars)))
}

func TestExtractionResult_TextSkipsFailedPages(t *testing.T) {
	res := ExtractionResult{Pages: []Page{
		{Index: 1, Text: "first"},
		{Index: 2, Err: errors.New("boom"), Text: "ignored"},
		{Index: 3, Text: "third"},
	}}
	assert.Equal(t, "first\n\f\nthird", res.Text())
	assert.Equal(t, 2, res.OKPages())
}

func TestFlagLowConfidence(t *testing.T) {
	e := testExtractor(t, nil)
	res := ExtractionResult{Pages: []Page{
		{Index: 1, Confidence: 90},
		{Index: 2, Confidence: 10},
		{Index: 3, Err: errors.New("boom"), Confidence: 0},
	}}
	e.flagLowConfidence(context.Background(), &res)

	assert.False(t, res.Pages[0].LowConfidence)
	assert.True(t, res.Pages[1].LowConfidence)
	assert.False(t, res.Pages[2].LowConfidence, "failed pages are not flagged")
}

func TestTesseractTSVConfidence(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\ttext\tconf",
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\tPASSPORT\t90",
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t\t-1",
		"5\t1\t1\t1\t2\t1\t10\t40\t50\t20\tJANE\t80",
		"short\tline",
		"",
	}, "\n")
	e := testExtractor(t, runnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		assert.Equal(t, "tesseract", name)
		assert.Contains(t, args, "tsv")
		return []byte(tsv), nil, nil
	}))

	conf, warns, err := e.tesseractTSVConfidence(context.Background(), "page-1.png")
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.InDelta(t, 85, conf, 0.001)
}

func TestTesseractTSVConfidence_NoWords(t *testing.T) {
	e := testExtractor(t, runnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte("header\n"), nil, nil
	}))
	conf, _, err := e.tesseractTSVConfidence(context.Background(), "page-1.png")
	require.NoError(t, err)
	assert.Zero(t, conf)
}

func TestExtractPDF_TextLayer(t *testing.T) {
	layer := "Full Name: JANE ROE\nPassport No: AB1234567\n\fsecond page body with enough characters\f"
	e := testExtractor(t, runnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		require.Equal(t, "pdftotext", name)
		return []byte(layer), nil, nil
	}))

	res, err := e.extractPDF(context.Background(), "scan.pdf")
	require.NoError(t, err)

	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, "pdf-text", res.Method)
	assert.False(t, res.WasConvertedFromPDF)
	require.Len(t, res.Pages, 3)
	assert.Equal(t, 1, res.Pages[0].Index)
	assert.InDelta(t, textLayerConfidence, res.Pages[0].Confidence, 0.001)
	assert.InDelta(t, textLayerConfidence, res.Pages[1].Confidence, 0.001)
	assert.Zero(t, res.Pages[2].Confidence, "empty trailing page carries no confidence")
	assert.InDelta(t, 2.0*textLayerConfidence/3.0, res.Confidence, 0.001)
}

func TestExtractPDF_CorruptFileIsFatal(t *testing.T) {
	e := testExtractor(t, runnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return nil, []byte("Syntax Error: file damaged"), errors.New("exit status 1")
	}))

	_, err := e.extractPDF(context.Background(), "broken.pdf")
	var exErr *common.ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.False(t, resilience.IsTransient(err))
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := testExtractor(t, nil)
	_, err := e.Extract(context.Background(), "notes.txt")
	var exErr *common.ExtractionError
	require.ErrorAs(t, err, &exErr)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab...(truncated)", truncate("abcdef", 2))
}

func TestDocumentIDContext(t *testing.T) {
	ctx := WithDocumentID(context.Background(), "doc-1")
	id, ok := DocumentIDFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "doc-1", id)

	_, ok = DocumentIDFromCtx(context.Background())
	assert.False(t, ok)
}

func TestCacheArtifact_WritesUnderContentHash(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page-1.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o644))

	cache := filepath.Join(dir, "cache")
	e := NewExtractor(Config{ArtifactCacheDir: cache}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	ctx := WithContentHash(context.Background(), "deadbeef")
	e.cacheArtifact(ctx, src)

	b, err := os.ReadFile(filepath.Join(cache, "deadbeef.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), b)
}

func TestCacheArtifact_NoHashIsNoop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page-1.png")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0o644))

	cache := filepath.Join(dir, "cache")
	e := NewExtractor(Config{ArtifactCacheDir: cache}, slog.New(slog.NewTextHandler(testWriter{t}, nil)))

	e.cacheArtifact(context.Background(), src)

	_, err := os.Stat(filepath.Join(cache, "deadbeef.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLowestConfidencePage(t *testing.T) {
	images := []string{"a.png", "b.png", "c.png"}
	pages := []Page{
		{Index: 1, Confidence: 55},
		{Index: 2, Confidence: 20, Err: errors.New("ocr failed")},
		{Index: 3, Confidence: 30},
	}
	assert.Equal(t, "c.png", lowestConfidencePage(images, pages))
	assert.Equal(t, "", lowestConfidencePage(nil, nil))
}
