package openai

import (
	"net/http"
	"os"
	"time"
)

// Config for the OpenAI-compatible client.
type Config struct {
	APIKey      string  // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string  // default https://api.openai.com/v1
	Model       string  // text model, e.g. "gpt-4o-mini"
	VisionModel string  // model used when an image is attached; defaults to Model
	Temperature float32 // 0..2
	Timeout     time.Duration

	// LenientOptional enables a sanitize-and-revalidate pass when the raw
	// model output does not validate against the field schema.
	LenientOptional bool

	// VisionConfThreshold is the OCR confidence (0..100) below which the
	// source image is attached instead of the OCR text.
	VisionConfThreshold float64
	// ArtifactCacheDir holds converted PNGs for HEIC originals.
	ArtifactCacheDir string
}

func (c *Config) applyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.VisionModel == "" {
		c.VisionModel = c.Model
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	if c.VisionConfThreshold <= 0 {
		c.VisionConfThreshold = 40
	}
	if !c.LenientOptional {
		c.LenientOptional = true
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
