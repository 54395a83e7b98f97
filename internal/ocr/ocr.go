package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Magick    string // binary name or absolute path; if empty -> "magick"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir         string
	HeicConverter       string // "heif-convert" | "magick" | "sips"
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	// LowConfidenceThreshold is on the 0..100 scale. Pages below it are
	// flagged low-confidence; the flag drives the vision fallback upstream.
	LowConfidenceThreshold float64

	ArtifactCacheDir string
}

// Page is the extraction outcome for one page. A failed page keeps its slot
// so the remaining pages still contribute to the document.
type Page struct {
	Index         int     // 1-based
	Text          string
	Confidence    float64 // 0..100
	LowConfidence bool
	Err           error
}

type ExtractionResult struct {
	Pages      []Page
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	// Confidence is the mean over successfully processed pages, 0..100.
	Confidence float64
	// WasConvertedFromPDF is true for pages that were rasterized before OCR.
	WasConvertedFromPDF bool
}

// Text joins successful pages with a form-feed separator.
func (r ExtractionResult) Text() string {
	var out string
	for _, p := range r.Pages {
		if p.Err != nil {
			continue
		}
		if out != "" {
			out += "\n\f\n"
		}
		out += p.Text
	}
	return out
}

// OKPages counts successfully processed pages.
func (r ExtractionResult) OKPages() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Magick == "" {
		cfg.Magick = "magick"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.LowConfidenceThreshold <= 0 {
		cfg.LowConfidenceThreshold = 40
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the external-command runner. Tests use it to stub
// tesseract and poppler.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting ocr extraction", "path", path, "method", "auto", "ext", ext)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		e.flagLowConfidence(ctx, &res)
		return res, err
	case constants.IMAGE:
		var warns []string
		if constants.IsHEICExt(ext) {
			out, w, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
			warns = append(warns, w...)
			if err != nil {
				e.logger.Error("heic conversion failed", "path", path, "error", err)
				if cleanup != nil {
					cleanup()
				}
				return ExtractionResult{SourceType: constants.IMAGE, Warnings: warns},
					common.NewExtractionError("heic conversion", err)
			}
			defer cleanup()
			e.cacheArtifact(ctx, out)
			path = out
		}
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		res.Warnings = append(res.Warnings, warns...)
		e.flagLowConfidence(ctx, &res)
		return res, err
	default:
		e.logger.Error("unsupported ocr extension", "extension", ext)
		return ExtractionResult{}, common.NewExtractionError(
			fmt.Sprintf("unsupported extension %q", ext), nil)
	}
}

// cacheArtifact keeps a rendered PNG past the temp-dir cleanup, keyed by
// the document's content hash, so the vision fallback can attach it for
// sources the model providers cannot decode.
func (e *Extractor) cacheArtifact(ctx context.Context, src string) {
	hash, ok := ContentHashFromCtx(ctx)
	if !ok || hash == "" || e.cfg.ArtifactCacheDir == "" {
		return
	}
	dst := filepath.Join(e.cfg.ArtifactCacheDir, hash+".png")
	b, err := os.ReadFile(src)
	if err == nil {
		if err = os.MkdirAll(e.cfg.ArtifactCacheDir, 0o755); err == nil {
			err = os.WriteFile(dst, b, 0o644)
		}
	}
	if err != nil {
		e.logger.Warn("artifact cache write failed", "path", dst, "error", err)
		return
	}
	e.logger.Debug("artifact cached", "path", dst)
}

// flagLowConfidence marks pages under the threshold and emits the
// low-confidence event. The log carries no extracted text.
func (e *Extractor) flagLowConfidence(ctx context.Context, res *ExtractionResult) {
	docID, _ := DocumentIDFromCtx(ctx)
	for i := range res.Pages {
		p := &res.Pages[i]
		if p.Err != nil {
			continue
		}
		if p.Confidence < e.cfg.LowConfidenceThreshold {
			p.LowConfidence = true
			e.logger.Warn("ocr.page.low_confidence",
				"document_id", docID,
				"page", p.Index,
				"confidence", p.Confidence,
				"file_type", res.SourceType,
				"was_converted_from_pdf", res.WasConvertedFromPDF,
			)
		}
	}
}
