package llm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0o644))
}

func TestShouldAttachImage_LowConfidencePNG(t *testing.T) {
	img := filepath.Join(t.TempDir(), "scan.png")
	writePNG(t, img)

	g := VisionGate{ConfidenceThreshold: 40}
	attach, dataURL, mimeType := g.ShouldAttachImage(img, "", 25)
	assert.True(t, attach)
	assert.Equal(t, "image/png", mimeType)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
}

func TestShouldAttachImage_ConfidentOCRSkips(t *testing.T) {
	img := filepath.Join(t.TempDir(), "scan.png")
	writePNG(t, img)

	g := VisionGate{ConfidenceThreshold: 40}
	attach, _, _ := g.ShouldAttachImage(img, "", 80)
	assert.False(t, attach)
}

func TestShouldAttachImage_ScannedPDFUsesCachedPage(t *testing.T) {
	cache := t.TempDir()
	writePNG(t, filepath.Join(cache, "cafe01.png"))

	g := VisionGate{ConfidenceThreshold: 40, ArtifactCacheDir: cache}
	attach, dataURL, mimeType := g.ShouldAttachImage("/in/scan.pdf", "cafe01", 25)
	assert.True(t, attach)
	assert.Equal(t, "image/png", mimeType)
	assert.NotEmpty(t, dataURL)
}

func TestShouldAttachImage_PDFWithoutCachedPageSkips(t *testing.T) {
	g := VisionGate{ConfidenceThreshold: 40, ArtifactCacheDir: t.TempDir()}
	attach, _, _ := g.ShouldAttachImage("/in/scan.pdf", "cafe01", 25)
	assert.False(t, attach)
}

func TestShouldAttachImage_HEICWithoutConvertedPNGSkips(t *testing.T) {
	g := VisionGate{ConfidenceThreshold: 40, ArtifactCacheDir: t.TempDir()}
	attach, _, _ := g.ShouldAttachImage("/in/photo.heic", "cafe01", 25)
	assert.False(t, attach)
}

func TestShouldAttachImage_UnsupportedFormat(t *testing.T) {
	g := VisionGate{ConfidenceThreshold: 40}
	attach, _, _ := g.ShouldAttachImage("/in/letter.docx", "", 25)
	assert.False(t, attach)
}
