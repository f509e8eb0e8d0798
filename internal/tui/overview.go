package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/ddubrovin/tax-intake-client/internal/profile"
)

type overviewModel struct {
	loading bool
	saving  bool
	status  string
	spinner spinner.Model
}

func newOverviewModel() overviewModel {
	return overviewModel{loading: true, spinner: spinner.New()}
}

func (m overviewModel) view(rec *profile.Reconciler, version string) string {
	if m.loading {
		return renderPage("Client Intake", m.spinner.View()+" Loading profile...", "")
	}

	p := rec.Profile()
	name := p.FirstName
	if p.MiddleName != "" {
		name += " " + p.MiddleName
	}
	if p.LastName != "" {
		name += " " + p.LastName
	}

	taxLabel := "SSN"
	if p.TaxIDType == "itin" {
		taxLabel = "ITIN"
	}

	terms := "not accepted"
	if rec.TermsAccepted() {
		terms = "accepted (" + p.TermsVersion + ")"
	}

	data := "Name:            " + valueOrDash(name) + "\n" +
		"Date of birth:   " + valueOrDash(p.DateOfBirth) + "\n" +
		"Country of birth: " + valueOrDash(p.CountryOfBirth) + "\n" +
		"Language:        " + valueOrDash(p.PrimaryLanguage) + "\n" +
		"Phone:           " + valueOrDash(p.Phone) + "\n" +
		"Email:           " + valueOrDash(p.Email) + "\n" +
		"\n" +
		taxLabel + ":             " + valueOrDash(rec.SSN().Display()) + "\n" +
		"Driver license:  " + valueOrDash(rec.DriverLicense().Number().Display()) + "\n" +
		"Passport:        " + valueOrDash(rec.Passport().Number().Display()) + "\n" +
		"Terms:           " + terms

	if rec.IsDirty() {
		data += "\n\n" + dirtyStyle.Render("Unsaved changes")
	}
	if m.saving {
		data += "\n\n" + m.spinner.View() + " Saving..."
	}
	if m.status != "" {
		data += "\n\n" + m.status
	}

	hotKeys := "e: personal  l: driver license  p: passport  s: save  g: refresh"
	return renderPage("Client Intake  ("+version+")", data, hotKeys)
}
