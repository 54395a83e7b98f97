package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	// Apply the embedded orientation before OCR. The rewritten copy has the
	// orientation tag stripped, so it cannot be rotated a second time.
	oriented, cleanup, warns := e.autoOrient(ctx, path)
	if cleanup != nil {
		defer cleanup()
	}

	txt, warn, err := e.tesseractOCR(ctx, oriented)
	warn = append(warn, warns...)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warn},
			common.NewExtractionError("image ocr", err)
	}
	txt = Normalize(txt)

	// compute confidence (0..100)
	var ocrConf float64
	if e.cfg.EnableTSVConfidence {
		if c, w, err2 := e.tesseractTSVConfidence(ctx, oriented); err2 == nil {
			ocrConf = c
			warn = append(warn, w...)
		} else {
			warn = append(warn, err2.Error())
		}
	}
	heurConf := heuristicConfidence(txt)

	// blend: weight OCR higher if present
	var conf float64
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 100 {
		conf = 100
	}

	return ExtractionResult{
		Pages:      []Page{{Index: 1, Text: txt, Confidence: conf}},
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warn,
		Confidence: conf,
	}, nil
}

// autoOrient writes an orientation-corrected copy of the image into the
// artifact cache. `magick -auto-orient` rotates per the EXIF tag and resets
// it. On any failure the original path is returned and OCR proceeds unrotated.
func (e *Extractor) autoOrient(ctx context.Context, path string) (string, func(), []string) {
	tmpDir, err := os.MkdirTemp(e.cfg.ArtifactCacheDir, "dp-orient-*")
	if err != nil {
		return path, nil, []string{fmt.Sprintf("auto-orient tempdir: %v", err)}
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }
	out := filepath.Join(tmpDir, "oriented"+filepath.Ext(path))

	if _, errb, err := e.runner.Run(ctx, e.cfg.Magick, path, "-auto-orient", out); err != nil {
		cleanup()
		return path, nil, []string{fmt.Sprintf("auto-orient failed: %s", string(errb))}
	}
	if _, statErr := os.Stat(out); statErr != nil {
		cleanup()
		return path, nil, []string{"auto-orient produced no output"}
	}
	return out, cleanup, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns mean word conf in 0..100.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float64, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	// TSV output
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	lines := strings.Split(string(out), "\n")
	// conf column is the last; header line includes "conf"
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		} // defensive
		confStr := cols[len(cols)-1]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	return sum / n, nil, nil
}
