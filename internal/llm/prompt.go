package llm

import (
	"strings"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/extract"
)

const maxPromptChars = 6000

// BuildSystemPrompt composes the system message: the document category, the
// exact fields wanted, and strict-but-practical formatting rules.
func BuildSystemPrompt(category constants.DocCategory, fields []extract.FieldTemplate) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	parts := []string{
		"You are a document field reader. Return ONLY JSON that matches the provided JSON Schema.",
		"The document is a " + categoryLabel(category) + ".",
		"Read these fields if present: " + strings.Join(names, ", ") + ".",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Report each field as an object with 'value' (the text as printed) and 'confidence' (0-100, how certain you are).",
		"Copy values from the document verbatim; never guess or infer values that are not visible.",
		"Never output null. If a field is not present, omit it entirely.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the recognized text. When an image is attached we
// intentionally leave the OCR text out: low-confidence OCR is what sent us
// down the vision path in the first place.
func BuildUserPrompt(text string, imageAttached bool) string {
	var b strings.Builder
	if imageAttached {
		b.WriteString("An image of the document is attached. Read the requested fields directly from the image.\n")
		return b.String()
	}
	b.WriteString("Recognized document text:\n")
	t := strings.TrimSpace(text)
	if len(t) > maxPromptChars {
		b.WriteString(t[:maxPromptChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(t)
	}
	return b.String()
}

func categoryLabel(c constants.DocCategory) string {
	switch c {
	case constants.Passport:
		return "passport"
	case constants.NationalID:
		return "national identity card"
	case constants.DriverLicense:
		return "driver's license"
	case constants.Visa:
		return "visa or entry permit"
	case constants.UtilityBill:
		return "utility bill"
	case constants.BankStatement:
		return "bank statement"
	default:
		return "document of unknown type"
	}
}
