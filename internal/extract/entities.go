package extract

import "regexp"

// entityPattern is a generic, label-independent pattern for one value kind.
// Confidence reflects pattern specificity: an email address is almost never a
// false positive, a bare date sometimes is.
type entityPattern struct {
	re         *regexp.Regexp
	confidence float64
}

var entityPatterns = map[Kind][]entityPattern{
	KindEmail: {
		{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 85},
	},
	KindPhone: {
		// international
		{regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?(?:[\s.-]?\d{2,4}){2,4}`), 80},
		// US style
		{regexp.MustCompile(`\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`), 75},
	},
	KindDate: {
		// ISO
		{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), 80},
		// numeric with separators
		{regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`), 70},
		// spelled-out month
		{regexp.MustCompile(`\b\d{1,2}\s+(?i:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}\b`), 75},
	},
	KindIDNum: {
		{regexp.MustCompile(`\b[A-Z]{1,3}\d{6,9}\b`), 70},
		{regexp.MustCompile(`\b\d{3}-\d{4}-\d{7}-\d\b`), 75},
		{regexp.MustCompile(`\b[A-Z0-9]{8,12}\b`), 60},
	},
	KindNumber: {
		{regexp.MustCompile(`[-+]?\d{1,3}(?:,\d{3})*(?:\.\d+)?`), 60},
	},
	KindName: {
		// two to four capitalized words
		{regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`), 60},
	},
	KindCountry: {
		{regexp.MustCompile(`\b[A-Z]{3}\b`), 60},
		{regexp.MustCompile(`\b[A-Z][a-z]{3,}\b`), 60},
	},
}

// matchEntity returns the first generic match for a kind along with the
// pattern's confidence and the match position. ok is false when the kind has
// no pattern or nothing matched.
func matchEntity(kind Kind, text string) (value string, confidence float64, pos int, ok bool) {
	for _, p := range entityPatterns[kind] {
		if loc := p.re.FindStringIndex(text); loc != nil {
			return text[loc[0]:loc[1]], p.confidence, loc[0], true
		}
	}
	return "", 0, 0, false
}
