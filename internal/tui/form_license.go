package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ddubrovin/tax-intake-client/internal/profile"
)

const (
	idxLicenseNumber = iota
	idxLicenseStateCode
	idxLicenseStateName
	idxLicenseExpiration

	licenseInputCount
)

type formLicenseModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormLicenseModel(rec *profile.Reconciler) formLicenseModel {
	inputs := make([]textinput.Model, licenseInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	group := rec.DriverLicense()
	num := group.Number()
	if !num.IsEditing() && num.Raw() != "" {
		// Focus starts on the number; a committed but unsaved value reopens.
		_ = num.ResumeEdit()
	}
	inputs[idxLicenseNumber].Placeholder = num.Display()
	if num.IsEditing() {
		inputs[idxLicenseNumber].SetValue(num.Raw())
	}
	inputs[idxLicenseStateCode].SetValue(group.Companion(profile.KeyStateCode))
	inputs[idxLicenseStateName].SetValue(group.Companion(profile.KeyStateName))
	inputs[idxLicenseExpiration].SetValue(group.Companion(profile.KeyExpirationDate))
	inputs[idxLicenseExpiration].Placeholder = "YYYY-MM-DD"

	inputs[idxLicenseNumber].Focus()
	return formLicenseModel{inputs: inputs}
}

// adoptRevealed refreshes every input from the freshly decrypted group.
func (m formLicenseModel) adoptRevealed(rec *profile.Reconciler) formLicenseModel {
	group := rec.DriverLicense()
	m.inputs[idxLicenseNumber].SetValue(group.Number().Raw())
	m.inputs[idxLicenseStateCode].SetValue(group.Companion(profile.KeyStateCode))
	m.inputs[idxLicenseStateName].SetValue(group.Companion(profile.KeyStateName))
	m.inputs[idxLicenseExpiration].SetValue(group.Companion(profile.KeyExpirationDate))
	return m
}

func (m formLicenseModel) setFocus(focus int) formLicenseModel {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
	return m
}

func (m formLicenseModel) focusNext() formLicenseModel {
	return m.setFocus((m.focus + 1) % licenseInputCount)
}

func (m formLicenseModel) focusPrev() formLicenseModel {
	return m.setFocus((m.focus - 1 + licenseInputCount) % licenseInputCount)
}

// sync pushes the form into the document group. The number only applies once
// the field is in editing mode: either a reveal opened it, or the user is
// entering a license where none was on file.
func (m formLicenseModel) sync(rec *profile.Reconciler) {
	group := rec.DriverLicense()

	number := m.inputs[idxLicenseNumber].Value()
	if !group.Number().IsEditing() && number != "" && rec.Profile().DriverLicenseMasked == "" {
		_ = group.Number().BeginEdit(context.Background())
	}
	if group.Number().IsEditing() {
		_ = group.Number().UpdateValue(number)
	}

	_ = group.SetCompanion(profile.KeyStateCode, m.inputs[idxLicenseStateCode].Value())
	_ = group.SetCompanion(profile.KeyStateName, m.inputs[idxLicenseStateName].Value())
	_ = group.SetCompanion(profile.KeyExpirationDate, m.inputs[idxLicenseExpiration].Value())
}

func (m formLicenseModel) view(rec *profile.Reconciler) string {
	var b strings.Builder
	b.WriteString("Number:     [" + m.inputs[idxLicenseNumber].View() + "]\n")
	b.WriteString("State code: [" + m.inputs[idxLicenseStateCode].View() + "]\n")
	b.WriteString("State name: [" + m.inputs[idxLicenseStateName].View() + "]\n")
	b.WriteString("Expires:    [" + m.inputs[idxLicenseExpiration].View() + "]\n")

	if rec.DriverLicense().IsLoading() {
		b.WriteString("\nDecrypting...")
	}
	if m.submitting {
		b.WriteString("\nSaving...")
	}

	hotKeys := "tab: next  ctrl+r: reveal  ctrl+y: copy  enter: save  esc: back"
	return renderPage("Driver License", b.String(), hotKeys)
}
