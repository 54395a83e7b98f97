package constants

import (
	"strings"
)

// DocCategory is the closed set of document categories the classifier assigns.
type DocCategory string

const (
	Passport      DocCategory = "Passport"
	NationalID    DocCategory = "NationalID"
	DriverLicense DocCategory = "DriverLicense"
	Visa          DocCategory = "Visa"
	UtilityBill   DocCategory = "UtilityBill"
	BankStatement DocCategory = "BankStatement"
	Unknown       DocCategory = "Unknown"
)

var allCategories = []DocCategory{
	Passport,
	NationalID,
	DriverLicense,
	Visa,
	UtilityBill,
	BankStatement,
	Unknown,
}

func CategoriesAsStrings() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps loose user/model input onto the closed category set.
func CanonicalizeCategory(input string) (DocCategory, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocCategory{
		"passport":          Passport,
		"travel document":   Passport,
		"id card":           NationalID,
		"identity card":     NationalID,
		"national id card":  NationalID,
		"emirates id":       NationalID,
		"driving license":   DriverLicense,
		"driving licence":   DriverLicense,
		"drivers license":   DriverLicense,
		"driver's license":  DriverLicense,
		"residence visa":    Visa,
		"entry permit":      Visa,
		"utility bill":      UtilityBill,
		"electricity bill":  UtilityBill,
		"water bill":        UtilityBill,
		"bank statement":    BankStatement,
		"account statement": BankStatement,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Unknown, false
}
