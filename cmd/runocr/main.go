package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/docufill/docpipe/internal/classify"
	"github.com/docufill/docpipe/internal/ocr"
)

// runocr runs the OCR stage and the rule-based classifier against one local
// file, without touching the database. Useful for tuning OCR settings.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <path-to-document>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot stat input file", "path", path, "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		HeicConverter:       os.Getenv("HEIC_CONVERTER"),
		TessdataDir:         os.Getenv("TESSDATA_PREFIX"),
		ArtifactCacheDir:    os.Getenv("ARTIFACT_CACHE_DIR"),
		EnableTSVConfidence: true,
	}, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	dur := time.Since(start)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("ocr OK",
		"path", path,
		"method", res.Method,
		"pages", len(res.Pages),
		"ok_pages", res.OKPages(),
		"confidence", res.Confidence,
		"bytes", len(res.Text()),
		"duration_ms", dur.Milliseconds(),
	)

	cls := classify.New(logger).Classify(res.Text())
	logger.Info("classified",
		"category", cls.Category,
		"confidence", cls.Confidence,
		"needs_confirmation", cls.NeedsConfirmation,
	)
}
