package mapper

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var rePunct = regexp.MustCompile(`[^a-z0-9 ]+`)
var reSpace = regexp.MustCompile(`\s+`)

// normalizeName canonicalizes a field name for comparison: lowercase,
// punctuation stripped, whitespace collapsed.
func normalizeName(name string) string {
	n := strings.ToLower(name)
	n = rePunct.ReplaceAllString(n, " ")
	n = reSpace.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// synonymGroups lists names that refer to the same concept even when their
// edit distance is large.
var synonymGroups = [][]string{
	{"full name", "name", "holder name", "customer name", "applicant name"},
	{"first name", "given name", "given names", "forename"},
	{"last name", "surname", "family name"},
	{"date of birth", "dob", "birth date", "birthdate", "born"},
	{"email", "e mail", "email address", "mail"},
	{"phone", "phone number", "mobile", "mobile number", "tel", "telephone", "contact number"},
	{"zip", "zip code", "postal code", "postcode"},
	{"address", "home address", "residential address", "street address", "service address"},
	{"passport no", "passport number", "document number", "document no", "travel document number"},
	{"id number", "id no", "identity number", "national id", "card number"},
	{"license no", "licence no", "license number", "licence number", "dl number"},
	{"nationality", "citizenship", "citizen of", "country"},
	{"expiry date", "expiration date", "date of expiry", "valid until", "expires"},
	{"issue date", "date of issue", "issued on"},
	{"gender", "sex"},
	{"account number", "account no", "acct no"},
}

var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int)
	for i, group := range synonymGroups {
		for _, name := range group {
			idx[name] = i
		}
	}
	return idx
}

const (
	synonymScore   = 0.95
	substringScore = 0.70
	jaccardWeight  = 0.80
)

// Similarity scores how likely two field names refer to the same concept,
// in [0,1]. It takes the strongest of several signals: exact normalized
// match, synonym-group membership, normalized edit distance, substring
// containment, and word overlap.
func Similarity(a, b string) float64 {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	best := 0.0
	if ga, ok := synonymIndex[na]; ok {
		if gb, ok := synonymIndex[nb]; ok && ga == gb {
			best = synonymScore
		}
	}

	if s := editSimilarity(na, nb); s > best {
		best = s
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		if substringScore > best {
			best = substringScore
		}
	}
	if s := jaccardWeight * wordJaccard(na, nb); s > best {
		best = s
	}
	return best
}

func editSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(max)
}

func wordJaccard(a, b string) float64 {
	wa := strings.Fields(a)
	wb := strings.Fields(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	sa := make(map[string]bool, len(wa))
	for _, w := range wa {
		sa[w] = true
	}
	sb := make(map[string]bool, len(wb))
	for _, w := range wb {
		sb[w] = true
	}
	inter := 0
	for w := range sb {
		if sa[w] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}
