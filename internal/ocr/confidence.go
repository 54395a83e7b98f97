package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reIDNo = regexp.MustCompile(`\b[A-Z]{1,3}\d{6,9}\b|\b\d{3}-\d{4}-\d{7}-\d\b`)
	reMRZ  = regexp.MustCompile(`(?m)^[A-Z0-9<]{30,44}$`)
	reLbl  = regexp.MustCompile(`(?i)\b(name|date of birth|nationality|passport|licen[cs]e|expiry|issue)\b`)
)

func hasDatePattern(s string) bool   { return reDate.MatchString(s) }
func hasIDPattern(s string) bool     { return reIDNo.MatchString(s) }
func hasMRZPattern(s string) bool    { return reMRZ.MatchString(s) }
func hasFieldLabels(s string) bool   { return reLbl.MatchString(s) }

// heuristicConfidence scores decoded text on the 0..100 scale from artifacts
// common to identity and statement documents: a date, an ID-number-looking
// token, an MRZ line, recognizable field labels, and enough content overall.
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 20.0 // base
	if hasDatePattern(txt) {
		score += 20
	}
	if hasIDPattern(txt) {
		score += 15
	}
	if hasMRZPattern(txt) {
		score += 15
	}
	if hasFieldLabels(txtL) {
		score += 15
	}
	if len(txt) > 120 {
		score += 10
	} // enough content
	if score > 100 {
		score = 100
	}
	return score
}
