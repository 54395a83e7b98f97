package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

// CompletionRequest carries everything a model-backed completer needs to
// fill the fields the rule layers missed. FilePath and OCRConfidence let the
// completer decide whether to attach the source image instead of trusting
// poor OCR text.
type CompletionRequest struct {
	Category       constants.DocCategory
	Text           string
	Missing        []FieldTemplate
	FilePath       string
	OCRConfidence  float64 // 0..100
	ContentHashHex string
}

// FieldCompleter fills fields the rule layers could not find, typically by
// asking a language model. Implementations return one ExtractedField per
// field they could answer, with a self-reported confidence on the 0..100
// scale, and simply omit fields they could not.
type FieldCompleter interface {
	CompleteFields(ctx context.Context, req CompletionRequest) ([]entity.ExtractedField, error)
}

// Extractor pulls structured fields out of OCR text using layered
// strategies in increasing cost: label-adjacent matches, generic entity
// patterns, then an optional language-model pass for whatever is still
// missing.
type Extractor struct {
	completer FieldCompleter
	logger    *slog.Logger
}

// Request is one extraction unit: the recognized text of a document, page by
// page, plus its classified category.
type Request struct {
	Pages    []string
	Category constants.DocCategory
	// DisableModel skips the language-model layer and relies on rules only.
	DisableModel bool

	// Passed through to the field completer for its vision fallback.
	FilePath       string
	OCRConfidence  float64
	ContentHashHex string
}

// ModelNamer is implemented by completers that can report which model they
// use, for extraction-result bookkeeping.
type ModelNamer interface {
	ModelName() string
}

func NewExtractor(completer FieldCompleter, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{completer: completer, logger: logger}
}

// ModelName reports the completer's model, or "" for rule-only setups.
func (e *Extractor) ModelName() string {
	if n, ok := e.completer.(ModelNamer); ok {
		return n.ModelName()
	}
	return ""
}

// Extract runs the layered strategies over every page and unions the
// results. When the same field is found on multiple pages the first page
// wins. A document with no recognizable text yields an empty field set and
// no error.
func (e *Extractor) Extract(ctx context.Context, req Request) (*entity.FieldSet, error) {
	templates := TemplatesFor(req.Category)
	set := entity.NewFieldSet()

	for _, page := range req.Pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		pageSet := e.extractPage(page, templates)
		for _, f := range pageSet.Fields() {
			set.PutIfAbsent(f)
		}
	}

	if req.DisableModel || e.completer == nil {
		return set, nil
	}

	text := strings.TrimSpace(strings.Join(req.Pages, "\f"))
	if text == "" {
		return set, nil
	}

	missing := missingTemplates(templates, set)
	if len(missing) == 0 {
		return set, nil
	}

	completed, err := e.completer.CompleteFields(ctx, CompletionRequest{
		Category:       req.Category,
		Text:           text,
		Missing:        missing,
		FilePath:       req.FilePath,
		OCRConfidence:  req.OCRConfidence,
		ContentHashHex: req.ContentHashHex,
	})
	if err != nil {
		return set, fmt.Errorf("model field completion: %w", err)
	}
	for _, f := range completed {
		f.Source = constants.SourceLLM
		set.Put(f)
	}

	e.logger.DebugContext(ctx, "extract.completed",
		"category", string(req.Category),
		"fields", set.Len(),
		"model_fields", len(completed))
	return set, nil
}

// extractPage applies the label and entity layers to a single page of text.
func (e *Extractor) extractPage(text string, templates []FieldTemplate) *entity.FieldSet {
	set := entity.NewFieldSet()
	for _, tpl := range templates {
		if value, pos, ok := matchLabeled(tpl, text); ok {
			set.Put(entity.ExtractedField{
				Name:       tpl.Name,
				Value:      value,
				Confidence: 100,
				Source:     constants.SourceRule,
				Position:   pos,
			})
			continue
		}
		if value, conf, pos, ok := matchEntity(tpl.Kind, text); ok {
			set.Put(entity.ExtractedField{
				Name:       tpl.Name,
				Value:      value,
				Confidence: conf,
				Source:     constants.SourceRule,
				Position:   pos,
			})
		}
	}
	return set
}

// matchLabeled looks for any of the template's label variants followed by a
// separator and captures the rest of the line as the value.
func matchLabeled(tpl FieldTemplate, text string) (value string, pos int, ok bool) {
	for _, label := range tpl.Labels {
		re := labeledPattern(label)
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		raw := text[loc[2]:loc[3]]
		v := cleanValue(raw)
		if v == "" {
			continue
		}
		return v, loc[0], true
	}
	return "", 0, false
}

var (
	labeledMu    sync.RWMutex
	labeledCache = map[string]*regexp.Regexp{}
)

func labeledPattern(label string) *regexp.Regexp {
	labeledMu.RLock()
	re, ok := labeledCache[label]
	labeledMu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(`(?im)\b` + regexp.QuoteMeta(label) + `\b\s*[:#\-]?\s*(\S[^\n]*)`)
	labeledMu.Lock()
	labeledCache[label] = re
	labeledMu.Unlock()
	return re
}

func cleanValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.Trim(v, ".,;|")
	return strings.TrimSpace(v)
}

func missingTemplates(templates []FieldTemplate, set *entity.FieldSet) []FieldTemplate {
	var missing []FieldTemplate
	for _, tpl := range templates {
		if _, ok := set.Get(tpl.Name); !ok {
			missing = append(missing, tpl)
		}
	}
	return missing
}
