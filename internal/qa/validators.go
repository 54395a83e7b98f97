package qa

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docufill/docpipe/internal/entity"
)

// Issue codes attached to QualityIssue records.
const (
	CodeRequiredMissing = "REQUIRED_MISSING"
	CodeBadDate         = "BAD_DATE"
	CodeBadNumber       = "BAD_NUMBER"
	CodeBadOption       = "BAD_OPTION"
	CodeBadIDFormat     = "BAD_ID_FORMAT"
	CodeDateOrder       = "DATE_ORDER"
	CodeLowConfidence   = "LOW_CONFIDENCE"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02.01.2006",
	"02-01-2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseDate tries the accepted layouts in order. OCR text is messy, so both
// day-first and month-first numeric layouts are attempted; the first that
// parses wins.
func parseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validNumber(value string) bool {
	v := strings.TrimSpace(value)
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimPrefix(v, "$")
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func validOption(value string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(value), o) {
			return true
		}
	}
	return false
}

var reIDValue = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 \-]{4,24}$`)

// looksLikeIDField reports whether a target field name denotes a document
// number, which gets a stricter character-set check.
func looksLikeIDField(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "number") || strings.Contains(n, " no") ||
		strings.HasSuffix(n, "no") || strings.Contains(n, "iban")
}

func validIDValue(value string) bool {
	return reIDValue.MatchString(strings.ToUpper(strings.TrimSpace(value)))
}

// validateField checks one mapped value against its declared type. A nil
// return means the value passed.
func validateField(tf entity.TemplateField, value string) *entity.QualityIssue {
	switch tf.Type {
	case entity.FieldTypeDate:
		if _, ok := parseDate(value); !ok {
			return &entity.QualityIssue{Field: tf.Name, Code: CodeBadDate, Message: "value does not parse as a date: " + value}
		}
	case entity.FieldTypeNumber:
		if !validNumber(value) {
			return &entity.QualityIssue{Field: tf.Name, Code: CodeBadNumber, Message: "value is not numeric: " + value}
		}
	case entity.FieldTypeSelect:
		if !validOption(value, tf.Options) {
			return &entity.QualityIssue{Field: tf.Name, Code: CodeBadOption, Message: "value is not an allowed option: " + value}
		}
	case entity.FieldTypeText:
		if looksLikeIDField(tf.Name) && !validIDValue(value) {
			return &entity.QualityIssue{Field: tf.Name, Code: CodeBadIDFormat, Message: "value does not look like a document number: " + value}
		}
	}
	return nil
}
