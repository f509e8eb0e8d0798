package validators

import (
	"regexp"
	"strings"
)

// Field name constants shared by the form core, the validator, and the UI.
// The reconciler keys its snapshots by these names, and the validator reports
// offenders with them.
const (
	// FieldFirstName targets the client's legal first name.
	FieldFirstName = "first_name"

	// FieldMiddleName targets the client's middle name.
	FieldMiddleName = "middle_name"

	// FieldLastName targets the client's legal last name.
	FieldLastName = "last_name"

	// FieldDateOfBirth targets the client's date of birth.
	FieldDateOfBirth = "date_of_birth"

	// FieldCountryOfBirth targets the client's country of birth.
	FieldCountryOfBirth = "country_of_birth"

	// FieldPrimaryLanguage targets the client's preferred correspondence
	// language.
	FieldPrimaryLanguage = "primary_language"

	// FieldPhone targets the client's contact phone number.
	FieldPhone = "phone"

	// FieldEmail targets the client's contact email address.
	FieldEmail = "email"

	// FieldTaxIDType targets the SSN-or-ITIN selector.
	FieldTaxIDType = "tax_id_type"

	// FieldSSN targets the taxpayer identification number itself.
	FieldSSN = "ssn"

	// FieldTerms targets the terms-of-service acceptance checkbox.
	FieldTerms = "terms_accepted"
)

// requiredFields lists the required-field policy in declaration order. The
// order determines which field receives focus first when several are invalid.
var requiredFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldDateOfBirth,
	FieldCountryOfBirth,
	FieldPrimaryLanguage,
	FieldSSN,
	FieldTerms,
}

// ssnPattern is the only syntactic gate applied to a typed SSN/ITIN. The
// server performs its own authoritative validation on save.
var ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// ValidSSN reports whether s is a syntactically valid SSN/ITIN in the
// canonical 000-00-0000 form.
func ValidSSN(s string) bool {
	return ssnPattern.MatchString(s)
}

// ProfileForm is the validator's view of the intake form at one point in
// time. Values holds the basic (non-sensitive) fields keyed by the Field*
// constants. SSN carries the plaintext the user typed this session, or empty
// if the field was never revealed or edited; SSNMasked carries the server's
// masked display, whose presence proves a value is already on file.
type ProfileForm struct {
	Values        map[string]string
	SSN           string
	SSNMasked     string
	TermsAccepted bool
}

type profileValidator struct{}

// NewProfileValidator constructs the standard required-field validator and
// returns it as the [ProfileValidator] interface.
func NewProfileValidator() ProfileValidator {
	return &profileValidator{}
}

// InvalidFields implements [ProfileValidator]. A basic field offends when its
// trimmed value is empty. The SSN offends when nothing is on file and nothing
// was typed, or when something was typed that does not match the canonical
// format. Terms offend until accepted.
func (v *profileValidator) InvalidFields(form ProfileForm) []string {
	var invalid []string

	for _, f := range requiredFields {
		switch f {
		case FieldSSN:
			if !validFormSSN(form) {
				invalid = append(invalid, f)
			}
		case FieldTerms:
			if !form.TermsAccepted {
				invalid = append(invalid, f)
			}
		default:
			if strings.TrimSpace(form.Values[f]) == "" {
				invalid = append(invalid, f)
			}
		}
	}

	return invalid
}

func validFormSSN(form ProfileForm) bool {
	if form.SSN != "" {
		return ValidSSN(form.SSN)
	}
	return form.SSNMasked != ""
}
