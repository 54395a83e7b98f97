package qa

import (
	"log/slog"
	"strings"

	"github.com/docufill/docpipe/internal/entity"
)

const (
	// ReviewThreshold is the overall score below which a human should look
	// at the result even when no validator failed outright.
	ReviewThreshold = 70
	// FieldConfidenceFloor flags individual mappings whose confidence is too
	// low to trust without review.
	FieldConfidenceFloor = 40
)

// Assessor scores mapped extraction results before they reach the profile
// merge. Assessments are pure functions of their inputs.
type Assessor struct {
	logger *slog.Logger
}

func NewAssessor(logger *slog.Logger) *Assessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assessor{logger: logger}
}

// Assess validates every mapping against the template and produces a
// verdict. The overall score blends mapping confidence (60%) with the
// validator pass rate (40%). Any issue makes the result invalid, which
// routes the job into error recovery.
func (a *Assessor) Assess(tmpl *entity.FormTemplate, mappings []entity.FieldMapping, classification *entity.DocumentClassification) entity.QualityAssessment {
	var issues []entity.QualityIssue
	var confSum float64
	var mappedCount, checks, passed int
	requiredMissing := false

	for _, m := range mappings {
		if m.RequiredMissing {
			requiredMissing = true
			issues = append(issues, entity.QualityIssue{
				Field:   m.TargetField,
				Code:    CodeRequiredMissing,
				Message: "required field has no mapped value",
			})
			continue
		}
		if !m.Mapped() {
			continue
		}
		mappedCount++
		confSum += m.Confidence

		tf, ok := tmpl.FieldByName(m.TargetField)
		if !ok {
			continue
		}
		checks++
		if issue := validateField(tf, m.EffectiveValue()); issue != nil {
			issues = append(issues, *issue)
		} else {
			passed++
		}

		if !m.IsOverridden && m.Confidence < FieldConfidenceFloor {
			issues = append(issues, entity.QualityIssue{
				Field:   m.TargetField,
				Code:    CodeLowConfidence,
				Message: "mapping confidence below trust floor",
			})
		}
	}

	issues = append(issues, crossFieldIssues(tmpl, mappings)...)

	meanConf := 0.0
	if mappedCount > 0 {
		meanConf = confSum / float64(mappedCount)
	}
	passRate := 1.0
	if checks > 0 {
		passRate = float64(passed) / float64(checks)
	}
	score := 0.6*meanConf + 0.4*passRate*100

	uncertain := classification != nil && classification.NeedsConfirmation
	assessment := entity.QualityAssessment{
		IsValid:          len(issues) == 0,
		OverallScore:     score,
		Issues:           issues,
		Transient:        onlyLowConfidence(issues),
		NeedsHumanReview: score < ReviewThreshold || uncertain || requiredMissing,
	}
	return assessment
}

// onlyLowConfidence reports whether every issue stems from upstream
// extraction confidence. Those failures can clear on a retry with a
// different strategy, unlike missing fields or format violations.
func onlyLowConfidence(issues []entity.QualityIssue) bool {
	if len(issues) == 0 {
		return false
	}
	for _, is := range issues {
		if is.Code != CodeLowConfidence {
			return false
		}
	}
	return true
}

// crossFieldIssues enforces chronology between date fields: a document is
// issued before it expires, and its holder is born before it is issued.
func crossFieldIssues(tmpl *entity.FormTemplate, mappings []entity.FieldMapping) []entity.QualityIssue {
	dates := map[string]struct {
		field string
		value string
	}{}
	for _, m := range mappings {
		if !m.Mapped() {
			continue
		}
		tf, ok := tmpl.FieldByName(m.TargetField)
		if !ok || tf.Type != entity.FieldTypeDate {
			continue
		}
		switch dateRole(m.TargetField) {
		case "issue":
			dates["issue"] = struct{ field, value string }{m.TargetField, m.EffectiveValue()}
		case "expiry":
			dates["expiry"] = struct{ field, value string }{m.TargetField, m.EffectiveValue()}
		case "birth":
			dates["birth"] = struct{ field, value string }{m.TargetField, m.EffectiveValue()}
		}
	}

	var issues []entity.QualityIssue
	if issue, iok := dates["issue"]; iok {
		if expiry, eok := dates["expiry"]; eok {
			it, ok1 := parseDate(issue.value)
			et, ok2 := parseDate(expiry.value)
			if ok1 && ok2 && !it.Before(et) {
				issues = append(issues, entity.QualityIssue{
					Field:   expiry.field,
					Code:    CodeDateOrder,
					Message: "expiry date is not after issue date",
				})
			}
		}
		if birth, bok := dates["birth"]; bok {
			bt, ok1 := parseDate(birth.value)
			it, ok2 := parseDate(issue.value)
			if ok1 && ok2 && !bt.Before(it) {
				issues = append(issues, entity.QualityIssue{
					Field:   issue.field,
					Code:    CodeDateOrder,
					Message: "issue date is not after date of birth",
				})
			}
		}
	}
	return issues
}

func dateRole(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "birth") || n == "dob":
		return "birth"
	case strings.Contains(n, "expir") || strings.Contains(n, "valid until"):
		return "expiry"
	case strings.Contains(n, "issue"):
		return "issue"
	}
	return ""
}
