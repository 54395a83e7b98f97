package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/extract"
	"github.com/docufill/docpipe/internal/llm"
	"github.com/docufill/docpipe/internal/resilience"
)

// Client talks to an OpenAI-compatible chat/completions endpoint and
// implements extract.FieldCompleter.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, http: newHTTPClient(cfg.Timeout), log: logger}
}

var _ extract.FieldCompleter = (*Client)(nil)

// ModelName reports the configured text model.
func (c *Client) ModelName() string { return c.cfg.Model }

// CompleteFields asks the model for the fields the rule layers missed. When
// the OCR confidence is below the vision threshold and the source is an
// image the model can decode, the image is attached instead of the text.
func (c *Client) CompleteFields(ctx context.Context, req extract.CompletionRequest) ([]entity.ExtractedField, error) {
	rid := uuid.New().String()
	start := time.Now()

	gate := llm.VisionGate{
		ConfidenceThreshold: c.cfg.VisionConfThreshold,
		ArtifactCacheDir:    c.cfg.ArtifactCacheDir,
	}
	attach, dataURL, mimeType := gate.ShouldAttachImage(req.FilePath, req.ContentHashHex, req.OCRConfidence)

	model := c.cfg.Model
	if attach {
		model = c.cfg.VisionModel
	}

	c.log.InfoContext(ctx, "llm.fields.start",
		"req_id", rid,
		"model", model,
		"category", string(req.Category),
		"missing_fields", len(req.Missing),
		"text_len", len(req.Text),
		"image_attached", attach,
		"image_mime", mimeType,
		"ocr_confidence", req.OCRConfidence,
	)

	schema := llm.BuildFieldsJSONSchema(req.Missing)
	sys := llm.BuildSystemPrompt(req.Category, req.Missing)
	user := llm.BuildUserPrompt(req.Text, attach)

	var userContent any = user
	if attach {
		userContent = []map[string]any{
			{"type": "text", "text": user},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	}

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": userContent},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.ErrorContext(ctx, "llm.fields.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, common.NewTransientServiceError("llm", fmt.Errorf("decode response: %w", err))
	}
	if len(cc.Choices) == 0 {
		return nil, common.NewTransientServiceError("llm", errors.New("no choices in response"))
	}
	content := llm.StripCodeFence([]byte(strings.TrimSpace(cc.Choices[0].Message.Content)))

	names := make([]string, 0, len(req.Missing))
	for _, f := range req.Missing {
		names = append(names, f.Name)
	}

	if vErr := llm.ValidateJSONAgainstSchema(schema, content); vErr != nil {
		if !c.cfg.LenientOptional {
			return nil, common.NewExtractionError("model output rejected by schema", vErr)
		}
		cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(content, names, c.log)
		if sErr != nil {
			return nil, common.NewExtractionError("model output unparseable", sErr)
		}
		if vErr2 := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr2 != nil {
			return nil, common.NewExtractionError("model output rejected by schema after sanitize", vErr2)
		}
		c.log.WarnContext(ctx, "llm.fields.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds())
		content = cleaned
	}

	var doc llm.FieldDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, common.NewExtractionError("unmarshal field document", err)
	}

	fields := fieldsFromDocument(doc)
	c.log.InfoContext(ctx, "llm.fields.ok",
		"req_id", rid,
		"answered", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds())
	return fields, nil
}

func fieldsFromDocument(doc llm.FieldDocument) []entity.ExtractedField {
	out := make([]entity.ExtractedField, 0, len(doc))
	for name, ans := range doc {
		conf := ans.Confidence
		if conf <= 0 {
			conf = llm.DefaultModelConfidence
		}
		out = append(out, entity.ExtractedField{
			Name:       name,
			Value:      ans.Value,
			Confidence: conf,
			Source:     constants.SourceLLM,
		})
	}
	// map iteration order is random; keep output deterministic
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.NewTransientServiceError("llm", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("llm response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("llm status %d: %s", resp.StatusCode, truncate(buf.String(), 512))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, common.NewTransientServiceError("llm", err)
		}
		return nil, common.NewExtractionError("model request rejected", err)
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
