package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ddubrovin/tax-intake-client/internal/profile"
)

const (
	idxPassportNumber = iota
	idxPassportCountry
	idxPassportExpiration

	passportInputCount
)

type formPassportModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormPassportModel(rec *profile.Reconciler) formPassportModel {
	inputs := make([]textinput.Model, passportInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	group := rec.Passport()
	num := group.Number()
	if !num.IsEditing() && num.Raw() != "" {
		// Focus starts on the number; a committed but unsaved value reopens.
		_ = num.ResumeEdit()
	}
	inputs[idxPassportNumber].Placeholder = num.Display()
	if num.IsEditing() {
		inputs[idxPassportNumber].SetValue(num.Raw())
	}
	inputs[idxPassportCountry].SetValue(group.Companion(profile.KeyCountryOfIssue))
	inputs[idxPassportExpiration].SetValue(group.Companion(profile.KeyExpirationDate))
	inputs[idxPassportExpiration].Placeholder = "YYYY-MM-DD"

	inputs[idxPassportNumber].Focus()
	return formPassportModel{inputs: inputs}
}

func (m formPassportModel) adoptRevealed(rec *profile.Reconciler) formPassportModel {
	group := rec.Passport()
	m.inputs[idxPassportNumber].SetValue(group.Number().Raw())
	m.inputs[idxPassportCountry].SetValue(group.Companion(profile.KeyCountryOfIssue))
	m.inputs[idxPassportExpiration].SetValue(group.Companion(profile.KeyExpirationDate))
	return m
}

func (m formPassportModel) setFocus(focus int) formPassportModel {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
	return m
}

func (m formPassportModel) focusNext() formPassportModel {
	return m.setFocus((m.focus + 1) % passportInputCount)
}

func (m formPassportModel) focusPrev() formPassportModel {
	return m.setFocus((m.focus - 1 + passportInputCount) % passportInputCount)
}

func (m formPassportModel) sync(rec *profile.Reconciler) {
	group := rec.Passport()

	number := m.inputs[idxPassportNumber].Value()
	if !group.Number().IsEditing() && number != "" && rec.Profile().PassportMasked == "" {
		_ = group.Number().BeginEdit(context.Background())
	}
	if group.Number().IsEditing() {
		_ = group.Number().UpdateValue(number)
	}

	_ = group.SetCompanion(profile.KeyCountryOfIssue, m.inputs[idxPassportCountry].Value())
	_ = group.SetCompanion(profile.KeyExpirationDate, m.inputs[idxPassportExpiration].Value())
}

func (m formPassportModel) view(rec *profile.Reconciler) string {
	var b strings.Builder
	b.WriteString("Number:   [" + m.inputs[idxPassportNumber].View() + "]\n")
	b.WriteString("Country:  [" + m.inputs[idxPassportCountry].View() + "]\n")
	b.WriteString("Expires:  [" + m.inputs[idxPassportExpiration].View() + "]\n")

	if rec.Passport().IsLoading() {
		b.WriteString("\nDecrypting...")
	}
	if m.submitting {
		b.WriteString("\nSaving...")
	}

	hotKeys := "tab: next  ctrl+r: reveal  ctrl+y: copy  enter: save  esc: back"
	return renderPage("Passport", b.String(), hotKeys)
}
