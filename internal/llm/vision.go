package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/docufill/docpipe/constants"
)

// MaxVisionMB caps the image size we are willing to inline as a data URL.
const MaxVisionMB = 8

// VisionGate decides whether the source image should be attached to the
// model request instead of relying on poor OCR text.
type VisionGate struct {
	// ConfidenceThreshold is the OCR confidence (0..100) below which the
	// image path is taken.
	ConfidenceThreshold float64
	// ArtifactCacheDir holds rendered PNGs for HEIC and scanned-PDF
	// sources, keyed by content hash.
	ArtifactCacheDir string
}

// ShouldAttachImage reports whether to attach, and if so returns the image
// as a data URL. HEIC and PDF originals are only attached when a rendered
// PNG is cached; providers decode neither format.
func (g VisionGate) ShouldAttachImage(filePath, contentHashHex string, ocrConfidence float64) (attach bool, dataURL, mimeType string) {
	if filePath == "" || g.ConfidenceThreshold <= 0 {
		return false, "", ""
	}
	format := constants.MapExtToFormat(filepath.Ext(filePath))
	if format != constants.IMAGE && format != constants.PDF {
		return false, "", ""
	}
	if ocrConfidence >= g.ConfidenceThreshold {
		return false, "", ""
	}

	candidate := filePath
	if format == constants.PDF || constants.IsHEICExt(filepath.Ext(filePath)) {
		if g.ArtifactCacheDir == "" || contentHashHex == "" {
			return false, "", ""
		}
		cached := filepath.Join(g.ArtifactCacheDir, contentHashHex+".png")
		st, err := os.Stat(cached)
		if err != nil || st.IsDir() {
			return false, "", ""
		}
		candidate = cached
	}

	if st, err := os.Stat(candidate); err == nil {
		if st.Size() > int64(MaxVisionMB)*1024*1024 {
			return false, "", ""
		}
	}

	u, mt, err := readAsDataURL(candidate)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
