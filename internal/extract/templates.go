package extract

import "github.com/docufill/docpipe/constants"

// Kind selects the generic entity pattern used when no label-adjacent match
// is found for a field.
type Kind string

const (
	KindName    Kind = "name"
	KindDate    Kind = "date"
	KindIDNum   Kind = "id_number"
	KindEmail   Kind = "email"
	KindPhone   Kind = "phone"
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindCountry Kind = "country"
)

// FieldTemplate declares one field the extractor should look for in a
// document of a given category.
type FieldTemplate struct {
	// Name is the canonical extracted-field name.
	Name string
	// Labels are literal label variants that may precede the value in text.
	Labels []string
	// Kind drives the generic entity fallback pattern.
	Kind Kind
}

var commonIdentity = []FieldTemplate{
	{Name: "Full Name", Labels: []string{"full name", "name", "holder name", "given names", "surname and given names"}, Kind: KindName},
	{Name: "Date of Birth", Labels: []string{"date of birth", "dob", "birth date", "born"}, Kind: KindDate},
	{Name: "Nationality", Labels: []string{"nationality", "citizen of", "citizenship"}, Kind: KindCountry},
	{Name: "Gender", Labels: []string{"sex", "gender"}, Kind: KindText},
	{Name: "Issue Date", Labels: []string{"date of issue", "issue date", "issued on", "issued"}, Kind: KindDate},
	{Name: "Expiry Date", Labels: []string{"date of expiry", "expiry date", "expiration date", "valid until", "expires"}, Kind: KindDate},
}

var categoryTemplates = map[constants.DocCategory][]FieldTemplate{
	constants.Passport: append([]FieldTemplate{
		{Name: "Passport No", Labels: []string{"passport no", "passport number", "document no", "document number"}, Kind: KindIDNum},
		{Name: "Place of Birth", Labels: []string{"place of birth"}, Kind: KindText},
		{Name: "Issuing Authority", Labels: []string{"authority", "issuing authority"}, Kind: KindText},
	}, commonIdentity...),
	constants.NationalID: append([]FieldTemplate{
		{Name: "ID Number", Labels: []string{"id number", "id no", "identity number", "card number"}, Kind: KindIDNum},
	}, commonIdentity...),
	constants.DriverLicense: append([]FieldTemplate{
		{Name: "License No", Labels: []string{"license no", "licence no", "license number", "licence number", "dl no"}, Kind: KindIDNum},
		{Name: "Vehicle Class", Labels: []string{"class", "vehicle class", "categories"}, Kind: KindText},
	}, commonIdentity...),
	constants.Visa: append([]FieldTemplate{
		{Name: "Visa Number", Labels: []string{"visa no", "visa number", "entry permit no"}, Kind: KindIDNum},
		{Name: "Sponsor", Labels: []string{"sponsor", "sponsor name"}, Kind: KindText},
		{Name: "Duration of Stay", Labels: []string{"duration of stay"}, Kind: KindText},
	}, commonIdentity...),
	constants.UtilityBill: {
		{Name: "Full Name", Labels: []string{"customer name", "account holder", "name"}, Kind: KindName},
		{Name: "Address", Labels: []string{"service address", "supply address", "address"}, Kind: KindText},
		{Name: "Account Number", Labels: []string{"account no", "account number", "customer no"}, Kind: KindIDNum},
		{Name: "Billing Period", Labels: []string{"billing period", "bill period"}, Kind: KindText},
		{Name: "Amount Due", Labels: []string{"amount due", "total due", "total amount"}, Kind: KindNumber},
		{Name: "Due Date", Labels: []string{"due date", "pay by"}, Kind: KindDate},
	},
	constants.BankStatement: {
		{Name: "Full Name", Labels: []string{"account holder", "customer name", "name"}, Kind: KindName},
		{Name: "Account Number", Labels: []string{"account no", "account number"}, Kind: KindIDNum},
		{Name: "IBAN", Labels: []string{"iban"}, Kind: KindIDNum},
		{Name: "Statement Period", Labels: []string{"statement period", "period"}, Kind: KindText},
		{Name: "Opening Balance", Labels: []string{"opening balance"}, Kind: KindNumber},
		{Name: "Closing Balance", Labels: []string{"closing balance"}, Kind: KindNumber},
	},
	constants.Unknown: {
		{Name: "Full Name", Labels: []string{"full name", "name"}, Kind: KindName},
		{Name: "Date of Birth", Labels: []string{"date of birth", "dob"}, Kind: KindDate},
		{Name: "Email", Labels: []string{"email", "e-mail"}, Kind: KindEmail},
		{Name: "Phone", Labels: []string{"phone", "mobile", "tel"}, Kind: KindPhone},
		{Name: "ID Number", Labels: []string{"id number", "id no", "document no"}, Kind: KindIDNum},
	},
}

// TemplatesFor returns the declared field templates for a category, falling
// back to the generic set for unrecognized categories.
func TemplatesFor(category constants.DocCategory) []FieldTemplate {
	if t, ok := categoryTemplates[category]; ok {
		return t
	}
	return categoryTemplates[constants.Unknown]
}
