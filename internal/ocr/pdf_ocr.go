package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
)

// textLayerConfidence is assigned to pages read from a real PDF text layer;
// there is no recognition step to be uncertain about, only layout noise.
const textLayerConfidence = 90

// minTextLayerChars decides whether a PDF page has a usable text layer or is
// a scan that needs rasterized OCR.
const minTextLayerChars = 32

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		// pdftotext rejects corrupt files outright; that is fatal, not a
		// reason to try rasterizing the same bytes.
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns},
			common.NewExtractionError("pdf text extraction", err)
	}

	if usableTextLayer(text) {
		res := ExtractionResult{
			SourceType: constants.PDF,
			Method:     "pdf-text",
			Language:   e.cfg.TesseractLang,
			Warnings:   warns,
		}
		for i, pg := range splitPDFPages(text, pages) {
			pg = Normalize(pg)
			conf := float64(0)
			if pg != "" {
				conf = textLayerConfidence
			}
			res.Pages = append(res.Pages, Page{Index: i + 1, Text: pg, Confidence: conf})
		}
		res.Confidence = meanPageConfidence(res.Pages)
		return res, nil
	}

	// Scanned PDF: rasterize and OCR page by page.
	res, err := e.pdfToOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	return res, err
}

func usableTextLayer(text string) bool {
	return len(strings.TrimSpace(text)) >= minTextLayerChars
}

// splitPDFPages splits pdftotext output on the form-feed page separator,
// padding to the reported page count so page indexes stay stable.
func splitPDFPages(text string, pages int) []string {
	parts := strings.Split(text, "\f")
	for len(parts) < pages {
		parts = append(parts, "")
	}
	if pages > 0 && len(parts) > pages {
		parts = parts[:pages]
	}
	return parts
}

func meanPageConfidence(pages []Page) float64 {
	var sum float64
	var n int
	for _, p := range pages {
		if p.Err != nil {
			continue
		}
		sum += p.Confidence
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{
		SourceType:          constants.PDF,
		Method:              "pdf-ocr",
		Language:            e.cfg.TesseractLang,
		WasConvertedFromPDF: true,
	}

	tmpDir, err := os.MkdirTemp(e.cfg.ArtifactCacheDir, "dp-pp-*")
	if err != nil {
		return res, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		res.Warnings = append(res.Warnings, string(errb))
		return res, common.NewExtractionError("pdf rasterization", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return res, common.NewExtractionError("pdf rasterization", fmt.Errorf("no pages rendered"))
	}

	// A failed page does not abort the document; remaining pages continue and
	// the document confidence reflects only the successful ones.
	for i, img := range matches {
		pg := Page{Index: i + 1}
		txt, w, pageErr := e.tesseractOCR(ctx, img)
		res.Warnings = append(res.Warnings, w...)
		if pageErr != nil {
			pg.Err = pageErr
			res.Pages = append(res.Pages, pg)
			continue
		}
		pg.Text = Normalize(txt)

		var ocrConf float64
		if e.cfg.EnableTSVConfidence {
			if c, tw, confErr := e.tesseractTSVConfidence(ctx, img); confErr == nil {
				ocrConf = c
				res.Warnings = append(res.Warnings, tw...)
			}
		}
		heur := heuristicConfidence(pg.Text)
		if ocrConf > 0 {
			pg.Confidence = 0.7*ocrConf + 0.3*heur
		} else {
			pg.Confidence = heur
		}
		res.Pages = append(res.Pages, pg)
	}

	res.Confidence = meanPageConfidence(res.Pages)
	if res.OKPages() == 0 {
		return res, common.NewExtractionError("pdf ocr", fmt.Errorf("all %d pages failed", len(res.Pages)))
	}
	if res.Confidence < e.cfg.LowConfidenceThreshold {
		if img := lowestConfidencePage(matches, res.Pages); img != "" {
			e.cacheArtifact(ctx, img)
		}
	}
	return res, nil
}

// lowestConfidencePage picks the rendered PNG of the weakest successful
// page, the one worth handing to the vision fallback.
func lowestConfidencePage(images []string, pages []Page) string {
	best := -1
	for i, p := range pages {
		if p.Err != nil || i >= len(images) {
			continue
		}
		if best == -1 || p.Confidence < pages[best].Confidence {
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return images[best]
}
