package classify

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

// ConfirmationThreshold is on the 0..100 scale; classifications under it are
// flagged for confirmation but never block the pipeline. QA treats such
// documents more strictly downstream.
const ConfirmationThreshold = 80

// keyword carries a weight so strong discriminators (an MRZ line, the word
// "passport") count more than generic ones ("date of birth").
type keyword struct {
	re     *regexp.Regexp
	weight float64
}

func kw(pattern string, weight float64) keyword {
	return keyword{re: regexp.MustCompile(`(?i)` + pattern), weight: weight}
}

var categoryKeywords = map[constants.DocCategory][]keyword{
	constants.Passport: {
		kw(`\bpassport\b`, 3),
		kw(`(?m)^[A-Z0-9<]{30,44}$`, 3), // MRZ
		kw(`\bplace of birth\b`, 1),
		kw(`\bnationality\b`, 1),
		kw(`\bdate of issue\b`, 1),
		kw(`\bdate of expiry\b`, 1),
	},
	constants.NationalID: {
		kw(`\b(national|identity|resident) (id|card)\b`, 3),
		kw(`\bid number\b`, 2),
		kw(`\bemirates id\b`, 3),
		kw(`\bnationality\b`, 1),
	},
	constants.DriverLicense: {
		kw(`\bdriv(er'?s?|ing) licen[cs]e\b`, 3),
		kw(`\blicen[cs]e (no|number)\b`, 2),
		kw(`\bvehicle class\b`, 2),
		kw(`\bendorsements?\b`, 1),
	},
	constants.Visa: {
		kw(`\bvisa\b`, 3),
		kw(`\bentry permit\b`, 3),
		kw(`\bsponsor\b`, 2),
		kw(`\bduration of stay\b`, 2),
	},
	constants.UtilityBill: {
		kw(`\b(electricity|water|gas|utility) bill\b`, 3),
		kw(`\bmeter reading\b`, 2),
		kw(`\bbilling period\b`, 2),
		kw(`\bamount due\b`, 1),
		kw(`\bkwh\b`, 2),
	},
	constants.BankStatement: {
		kw(`\b(bank|account) statement\b`, 3),
		kw(`\bopening balance\b`, 2),
		kw(`\bclosing balance\b`, 2),
		kw(`\biban\b`, 2),
		kw(`\bwithdrawals?\b`, 1),
		kw(`\bdeposits?\b`, 1),
	},
}

// Classifier assigns a document category from extracted text using weighted
// keyword scoring over a closed category set.
type Classifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger}
}

// Classify scores every category and returns the best guess plus the ranked
// alternatives. It never fails: unrecognizable text classifies as Unknown
// with confidence 0.
func (c *Classifier) Classify(text string) entity.DocumentClassification {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.DocumentClassification{
			Category:          string(constants.Unknown),
			Confidence:        0,
			NeedsConfirmation: true,
		}
	}

	type scored struct {
		cat   constants.DocCategory
		score float64
	}
	var scores []scored
	var total float64
	for cat, kws := range categoryKeywords {
		var s float64
		for _, k := range kws {
			if k.re.MatchString(text) {
				s += k.weight
			}
		}
		if s > 0 {
			scores = append(scores, scored{cat: cat, score: s})
			total += s
		}
	}

	if len(scores) == 0 {
		return entity.DocumentClassification{
			Category:          string(constants.Unknown),
			Confidence:        0,
			NeedsConfirmation: true,
		}
	}

	// Descending by score; exact ties break alphabetically so the ranking
	// is deterministic run to run.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].cat < scores[j].cat
	})

	best := scores[0]
	confidence := 100 * best.score / total
	if len(scores) == 1 {
		// A single candidate is only as credible as its keyword coverage.
		confidence = coverageConfidence(best.cat, text)
	}

	out := entity.DocumentClassification{
		Category:          string(best.cat),
		Confidence:        confidence,
		NeedsConfirmation: confidence < ConfirmationThreshold,
	}
	for _, s := range scores[1:] {
		out.Alternatives = append(out.Alternatives, entity.CategoryAlternative{
			Category:   string(s.cat),
			Confidence: 100 * s.score / total,
		})
	}

	c.logger.Debug("document classified",
		"category", out.Category,
		"confidence", out.Confidence,
		"alternatives", len(out.Alternatives),
	)
	return out
}

// coverageConfidence scores how much of a category's keyword weight the text
// actually hit, on the 0..100 scale.
func coverageConfidence(cat constants.DocCategory, text string) float64 {
	kws := categoryKeywords[cat]
	var hit, total float64
	for _, k := range kws {
		total += k.weight
		if k.re.MatchString(text) {
			hit += k.weight
		}
	}
	if total == 0 {
		return 0
	}
	// Floor at 50: at least one keyword matched or we would not be here.
	conf := 50 + 50*hit/total
	if conf > 100 {
		conf = 100
	}
	return conf
}
