package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ddubrovin/tax-intake-client/internal/profile"
	"github.com/ddubrovin/tax-intake-client/internal/validators"
)

// Input indices on the personal screen. The terms checkbox sits past the last
// text input in the focus cycle.
const (
	idxFirstName = iota
	idxMiddleName
	idxLastName
	idxDateOfBirth
	idxCountryOfBirth
	idxPrimaryLanguage
	idxPhone
	idxEmail
	idxTaxIDType
	idxSSN

	personalInputCount
	focusTerms = personalInputCount
)

// personalFieldByIndex maps input indices to the field names the reconciler
// and validator speak.
var personalFieldByIndex = map[int]string{
	idxFirstName:       validators.FieldFirstName,
	idxMiddleName:      validators.FieldMiddleName,
	idxLastName:        validators.FieldLastName,
	idxDateOfBirth:     validators.FieldDateOfBirth,
	idxCountryOfBirth:  validators.FieldCountryOfBirth,
	idxPrimaryLanguage: validators.FieldPrimaryLanguage,
	idxPhone:           validators.FieldPhone,
	idxEmail:           validators.FieldEmail,
	idxTaxIDType:       validators.FieldTaxIDType,
	idxSSN:             validators.FieldSSN,
}

type formPersonalModel struct {
	inputs     []textinput.Model
	focus      int
	invalid    map[string]bool
	submitting bool
}

func newFormPersonalModel(rec *profile.Reconciler) formPersonalModel {
	inputs := make([]textinput.Model, personalInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	for idx, name := range personalFieldByIndex {
		if idx == idxSSN {
			continue
		}
		inputs[idx].SetValue(rec.Field(name))
	}
	inputs[idxDateOfBirth].Placeholder = "YYYY-MM-DD"
	inputs[idxTaxIDType].Placeholder = "ssn or itin"

	// The identifier stays masked until the user reveals it; the placeholder
	// carries the masked display so an on-file value is visible as such. A
	// committed but unsaved value is seeded back so refocusing resumes the
	// edit instead of wiping it.
	ssn := &inputs[idxSSN]
	ssn.Placeholder = rec.SSN().Display()
	if rec.SSN().IsEditing() || rec.SSN().Raw() != "" {
		ssn.SetValue(rec.SSN().Raw())
	}

	inputs[idxFirstName].Focus()

	return formPersonalModel{
		inputs:  inputs,
		invalid: map[string]bool{},
	}
}

// markInvalid records the offending fields and moves focus to the first one
// that lives on this screen.
func (m formPersonalModel) markInvalid(fields []string) formPersonalModel {
	m.invalid = map[string]bool{}
	for _, f := range fields {
		m.invalid[f] = true
	}

	for idx := 0; idx < personalInputCount; idx++ {
		if m.invalid[personalFieldByIndex[idx]] {
			return m.setFocus(idx)
		}
	}
	if m.invalid[validators.FieldTerms] {
		return m.setFocus(focusTerms)
	}
	return m
}

func (m formPersonalModel) setFocus(focus int) formPersonalModel {
	if m.focus < personalInputCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < personalInputCount {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formPersonalModel) focusNext() formPersonalModel {
	return m.setFocus((m.focus + 1) % (personalInputCount + 1))
}

func (m formPersonalModel) focusPrev() formPersonalModel {
	return m.setFocus((m.focus + personalInputCount) % (personalInputCount + 1))
}

// syncBasic pushes every non-sensitive input value into the reconciler.
func (m formPersonalModel) syncBasic(rec *profile.Reconciler) {
	for idx, name := range personalFieldByIndex {
		if idx == idxSSN {
			continue
		}
		_ = rec.SetField(name, m.inputs[idx].Value())
	}
}

// syncSSN pushes the typed identifier into the masked field. It only applies
// while the field is in editing mode, which a reveal establishes; typed text
// is never adopted behind the field's back.
func (m formPersonalModel) syncSSN(rec *profile.Reconciler) {
	if !rec.SSN().IsEditing() {
		return
	}
	_ = rec.SSN().UpdateValue(m.inputs[idxSSN].Value())
}

func (m formPersonalModel) view(rec *profile.Reconciler) string {
	labels := []string{
		"First name:      ",
		"Middle name:     ",
		"Last name:       ",
		"Date of birth:   ",
		"Country of birth:",
		"Language:        ",
		"Phone:           ",
		"Email:           ",
		"Tax ID type:     ",
		ssnLabel(rec) + ":",
	}

	var b strings.Builder
	for idx := 0; idx < personalInputCount; idx++ {
		b.WriteString(labels[idx])
		b.WriteString(" [")
		b.WriteString(m.inputs[idx].View())
		b.WriteString("]")
		if m.invalid[personalFieldByIndex[idx]] {
			b.WriteString(" " + errorStyle.Render("required"))
		}
		b.WriteString("\n")
	}

	check := "[ ]"
	if rec.TermsAccepted() {
		check = "[x]"
	}
	cursor := "  "
	if m.focus == focusTerms {
		cursor = "> "
	}
	b.WriteString("\n" + cursor + check + " I accept the terms of service (" + rec.Profile().TermsVersion + ")")
	if m.invalid[validators.FieldTerms] {
		b.WriteString(" " + errorStyle.Render("required"))
	}

	if rec.SSN().IsLoading() {
		b.WriteString("\n\nDecrypting...")
	}
	if m.submitting {
		b.WriteString("\n\nSaving...")
	}

	hotKeys := "tab: next  ctrl+r: reveal  ctrl+y: copy  space: toggle terms  enter: save  esc: back"
	return renderPage("Personal Information", b.String(), hotKeys)
}

func ssnLabel(rec *profile.Reconciler) string {
	if rec.Field(validators.FieldTaxIDType) == "itin" {
		return "ITIN"
	}
	return "SSN"
}
