package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultModelConfidence is assigned when the model answers a field but
// omits its confidence.
const DefaultModelConfidence = 60

// StripCodeFence removes a Markdown code fence the model sometimes wraps
// around JSON despite instructions.
func StripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// NormalizeAndSanitizeJSON makes near-miss model output validate:
//   - drops keys outside the requested field set
//   - coerces bare string answers into {value: ...} objects
//   - coerces numeric/boolean values to strings and trims them
//   - rescales confidences reported on the 0..1 scale to 0..100 and clamps
//   - drops fields whose value is null or empty
func NormalizeAndSanitizeJSON(raw []byte, allowedFields []string, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(StripCodeFence(raw), &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	allowed := make(map[string]struct{}, len(allowedFields))
	for _, f := range allowedFields {
		allowed[f] = struct{}{}
	}

	var dropped []string
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, ok := allowed[k]; !ok {
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		ans, ok := coerceAnswer(v)
		if !ok {
			dropped = append(dropped, k+"(empty)")
			continue
		}
		out[k] = ans
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.fields.sanitized", "dropped", dropped)
	}
	return b, dropped, nil
}

func coerceAnswer(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, false
		}
		return map[string]any{"value": s}, true
	case float64:
		return map[string]any{"value": trimFloat(t)}, true
	case bool:
		return map[string]any{"value": fmt.Sprintf("%t", t)}, true
	case map[string]any:
		value, ok := coerceValue(t["value"])
		if !ok {
			return nil, false
		}
		ans := map[string]any{"value": value}
		if c, ok := t["confidence"].(float64); ok {
			ans["confidence"] = clampConfidence(c)
		}
		return ans, true
	default:
		return nil, false
	}
}

func coerceValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return trimFloat(t), true
	default:
		return "", false
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func clampConfidence(c float64) float64 {
	if c > 0 && c <= 1 {
		c *= 100
	}
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
