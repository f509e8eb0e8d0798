package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddubrovin/tax-intake-client/internal/profile"
)

type screen int

const (
	screenOverview screen = iota
	screenPersonal
	screenLicense
	screenPassport
)

type appModel struct {
	ctx           context.Context
	rec           *profile.Reconciler
	version       string
	currentScreen screen

	overview overviewModel
	personal formPersonalModel
	license  formLicenseModel
	passport formPassportModel

	showError    bool
	errorOverlay errorOverlayModel
	quitByUser   bool
}

func newAppModel(ctx context.Context, rec *profile.Reconciler, version string) appModel {
	return appModel{
		ctx:           ctx,
		rec:           rec,
		version:       version,
		currentScreen: screenOverview,
		overview:      newOverviewModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.overview.spinner.Tick, m.cmdLoadProfile())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case profileLoadedMsg:
		m.overview.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, nil
	case ssnRevealedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.personal.inputs[idxSSN].SetValue(m.rec.SSN().Raw())
		m.personal = m.personal.setFocus(idxSSN)
		return m, nil
	case licenseRevealedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.license = m.license.adoptRevealed(m.rec)
		return m, nil
	case passportRevealedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.passport = m.passport.adoptRevealed(m.rec)
		return m, nil
	case saveDoneMsg:
		m.setSubmitting(false)
		m.overview.saving = false
		if msg.err != nil {
			var vErr *profile.ValidationError
			if errors.As(msg.err, &vErr) {
				m.personal = newFormPersonalModel(m.rec).markInvalid(vErr.Fields)
				m.currentScreen = screenPersonal
				return m, nil
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenOverview
		m.overview.status = "Saved"
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.overview.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.overview.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.overview.loading || m.overview.saving {
			var cmd tea.Cmd
			m.overview.spinner, cmd = m.overview.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenOverview:
		return m.updateOverview(msg)
	case screenPersonal:
		return m.updatePersonal(msg)
	case screenLicense:
		return m.updateLicense(msg)
	case screenPassport:
		return m.updatePassport(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenOverview:
		body = m.overview.view(m.rec, m.version)
	case screenPersonal:
		body = m.personal.view(m.rec)
	case screenLicense:
		body = m.license.view(m.rec)
	case screenPassport:
		body = m.passport.view(m.rec)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.personal.submitting = v
	m.license.submitting = v
	m.passport.submitting = v
}

func (m appModel) updateOverview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.overview.loading {
		return m, nil
	}

	switch {
	case keyMsg.String() == "q":
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.personal):
		m.personal = newFormPersonalModel(m.rec)
		m.currentScreen = screenPersonal
	case key.Matches(keyMsg, keys.license):
		m.license = newFormLicenseModel(m.rec)
		m.currentScreen = screenLicense
	case key.Matches(keyMsg, keys.passport):
		m.passport = newFormPassportModel(m.rec)
		m.currentScreen = screenPassport
	case key.Matches(keyMsg, keys.save):
		if m.rec.IsSaving() || !m.rec.IsDirty() {
			return m, nil
		}
		m.overview.saving = true
		return m, tea.Batch(m.overview.spinner.Tick, m.cmdSave())
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	}
	return m, nil
}

func (m appModel) updatePersonal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.syncPersonal()
			m.currentScreen = screenOverview
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.blurSSN()
			m.personal = m.personal.focusNext()
			return m, m.maybeRevealSSN()
		case key.Matches(keyMsg, keys.backtab):
			m.blurSSN()
			m.personal = m.personal.focusPrev()
			return m, m.maybeRevealSSN()
		case key.Matches(keyMsg, keys.reveal):
			if m.rec.SSN().IsEditing() || m.rec.SSN().IsLoading() {
				return m, nil
			}
			return m, m.cmdRevealSSN()
		case key.Matches(keyMsg, keys.copy):
			if !m.rec.SSN().IsEditing() {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.rec.SSN().Raw())
		case key.Matches(keyMsg, keys.toggle):
			if m.personal.focus == focusTerms {
				m.rec.SetTermsAccepted(!m.rec.TermsAccepted())
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			if m.personal.focus == focusTerms {
				m.rec.SetTermsAccepted(!m.rec.TermsAccepted())
				return m, nil
			}
			m.syncPersonal()
			if m.rec.IsSaving() {
				return m, nil
			}
			m.personal.submitting = true
			return m, m.cmdSave()
		}
	}

	if m.personal.focus < personalInputCount {
		var cmd tea.Cmd
		m.personal.inputs[m.personal.focus], cmd = m.personal.inputs[m.personal.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateLicense(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.license.sync(m.rec)
			commitIfEditing(m.rec.DriverLicense().Number())
			m.currentScreen = screenOverview
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.blurLicenseNumber()
			m.license = m.license.focusNext()
			m.resumeLicenseNumber()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.blurLicenseNumber()
			m.license = m.license.focusPrev()
			m.resumeLicenseNumber()
			return m, nil
		case key.Matches(keyMsg, keys.reveal):
			group := m.rec.DriverLicense()
			if group.IsLoading() || group.Number().IsEditing() {
				return m, nil
			}
			return m, m.cmdRevealLicense()
		case key.Matches(keyMsg, keys.copy):
			if !m.rec.DriverLicense().Number().IsEditing() {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.rec.DriverLicense().Number().Raw())
		case key.Matches(keyMsg, keys.enter):
			m.license.sync(m.rec)
			commitIfEditing(m.rec.DriverLicense().Number())
			if m.rec.IsSaving() {
				return m, nil
			}
			m.license.submitting = true
			return m, m.cmdSave()
		}
	}

	var cmd tea.Cmd
	m.license.inputs[m.license.focus], cmd = m.license.inputs[m.license.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePassport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.passport.sync(m.rec)
			commitIfEditing(m.rec.Passport().Number())
			m.currentScreen = screenOverview
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.blurPassportNumber()
			m.passport = m.passport.focusNext()
			m.resumePassportNumber()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.blurPassportNumber()
			m.passport = m.passport.focusPrev()
			m.resumePassportNumber()
			return m, nil
		case key.Matches(keyMsg, keys.reveal):
			group := m.rec.Passport()
			if group.IsLoading() || group.Number().IsEditing() {
				return m, nil
			}
			return m, m.cmdRevealPassport()
		case key.Matches(keyMsg, keys.copy):
			if !m.rec.Passport().Number().IsEditing() {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.rec.Passport().Number().Raw())
		case key.Matches(keyMsg, keys.enter):
			m.passport.sync(m.rec)
			commitIfEditing(m.rec.Passport().Number())
			if m.rec.IsSaving() {
				return m, nil
			}
			m.passport.submitting = true
			return m, m.cmdSave()
		}
	}

	var cmd tea.Cmd
	m.passport.inputs[m.passport.focus], cmd = m.passport.inputs[m.passport.focus].Update(msg)
	return m, cmd
}

// syncPersonal pushes the personal screen's state into the reconciler and
// closes any open identifier edit. Leaving the form, and saving it, are both
// blur points: the decrypted baseline must not outlive the edit.
func (m appModel) syncPersonal() {
	m.personal.syncBasic(m.rec)
	m.personal.syncSSN(m.rec)
	commitIfEditing(m.rec.SSN())
}

// blurSSN commits an open identifier edit when focus moves off the field.
func (m appModel) blurSSN() {
	if m.personal.focus != idxSSN {
		return
	}
	m.personal.syncSSN(m.rec)
	commitIfEditing(m.rec.SSN())
}

// maybeRevealSSN opens the identifier for editing when focus lands on it. A
// committed but unsaved value reopens in place; otherwise editing a stored
// value starts with its decrypt.
func (m appModel) maybeRevealSSN() tea.Cmd {
	if m.personal.focus != idxSSN {
		return nil
	}
	f := m.rec.SSN()
	if f.IsEditing() || f.IsLoading() {
		return nil
	}
	if f.Raw() != "" {
		_ = f.ResumeEdit()
		return nil
	}
	return m.cmdRevealSSN()
}

func commitIfEditing(f *profile.MaskedField) {
	if f.IsEditing() {
		f.CommitEdit()
	}
}

// blurLicenseNumber commits an open number edit when focus moves off it.
func (m appModel) blurLicenseNumber() {
	num := m.rec.DriverLicense().Number()
	if m.license.focus != idxLicenseNumber || !num.IsEditing() {
		return
	}
	_ = num.UpdateValue(m.license.inputs[idxLicenseNumber].Value())
	num.CommitEdit()
}

// resumeLicenseNumber reopens a committed but unsaved number when focus
// returns to it.
func (m appModel) resumeLicenseNumber() {
	num := m.rec.DriverLicense().Number()
	if m.license.focus == idxLicenseNumber && !num.IsEditing() && num.Raw() != "" {
		_ = num.ResumeEdit()
	}
}

func (m appModel) blurPassportNumber() {
	num := m.rec.Passport().Number()
	if m.passport.focus != idxPassportNumber || !num.IsEditing() {
		return
	}
	_ = num.UpdateValue(m.passport.inputs[idxPassportNumber].Value())
	num.CommitEdit()
}

func (m appModel) resumePassportNumber() {
	num := m.rec.Passport().Number()
	if m.passport.focus == idxPassportNumber && !num.IsEditing() && num.Raw() != "" {
		_ = num.ResumeEdit()
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return profileLoadedMsg{err: rec.Load(ctx)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return profileLoadedMsg{err: rec.RefreshIfClean(ctx)}
	}
}

func (m appModel) cmdRevealSSN() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return ssnRevealedMsg{err: rec.RevealSSN(ctx)}
	}
}

func (m appModel) cmdRevealLicense() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return licenseRevealedMsg{err: rec.DriverLicense().LoadDecryptedGroup(ctx)}
	}
}

func (m appModel) cmdRevealPassport() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return passportRevealedMsg{err: rec.Passport().LoadDecryptedGroup(ctx)}
	}
}

func (m appModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	rec := m.rec
	return func() tea.Msg {
		return saveDoneMsg{err: rec.Submit(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
