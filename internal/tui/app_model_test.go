package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ddubrovin/tax-intake-client/internal/mock"
	"github.com/ddubrovin/tax-intake-client/internal/profile"
	"github.com/ddubrovin/tax-intake-client/internal/validators"
	"github.com/ddubrovin/tax-intake-client/models"
)

func testProfile() models.ServerProfile {
	return models.ServerProfile{
		FirstName:           "Maria",
		LastName:            "Gonzalez",
		DateOfBirth:         "1987-04-12",
		CountryOfBirth:      "Mexico",
		PrimaryLanguage:     "Spanish",
		Phone:               "+1 703 555 0101",
		Email:               "maria@example.com",
		TaxIDType:           models.TaxIDSSN,
		SSNMasked:           "XXX-XX-6789",
		DriverLicenseMasked: "••••4567",
		TermsAccepted:       true,
		TermsVersion:        models.CurrentTermsVersion,
		UpdatedAt:           time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestApp(t *testing.T) (appModel, *profile.Reconciler, *mock.MockPortalAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalAdapter(ctrl)
	rec := profile.NewReconciler(portal, validators.NewProfileValidator(), nil)
	rec.LoadInitial(testProfile())
	return newAppModel(context.Background(), rec, "test"), rec, portal
}

func pressKey(t *testing.T, m appModel, msg tea.KeyMsg) appModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(appModel)
	require.True(t, ok)
	return next
}

// ── Identifier blur lifecycle ───────────────────────────────────────────────

func TestPersonal_TabAwayCommitsIdentifierEdit(t *testing.T) {
	// Arrange: reveal the identifier and put focus on its input.
	app, rec, portal := newTestApp(t)
	portal.EXPECT().GetDecryptedSSN(gomock.Any()).Return("123-45-6789", nil)
	require.NoError(t, rec.RevealSSN(context.Background()))

	app.currentScreen = screenPersonal
	app.personal = newFormPersonalModel(rec)
	app.personal = app.personal.setFocus(idxSSN)
	app.personal.inputs[idxSSN].SetValue("987-65-4321")

	// Act: move focus past the field.
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyTab})

	// Assert: the edit is closed, the typed value kept, and the decrypted
	// baseline no longer held.
	assert.False(t, rec.SSN().IsEditing())
	assert.Equal(t, "987-65-4321", rec.SSN().Raw())
	_, hasBaseline := rec.SSN().Baseline()
	assert.False(t, hasBaseline)
	assert.True(t, rec.IsDirty())
}

func TestPersonal_EscCommitsIdentifierEdit(t *testing.T) {
	// Arrange
	app, rec, portal := newTestApp(t)
	portal.EXPECT().GetDecryptedSSN(gomock.Any()).Return("123-45-6789", nil)
	require.NoError(t, rec.RevealSSN(context.Background()))

	app.currentScreen = screenPersonal
	app.personal = newFormPersonalModel(rec)
	app.personal = app.personal.setFocus(idxSSN)

	// Act: back to the overview without touching the value.
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyEscape})

	// Assert: no open edit, no baseline, and an untouched reveal is clean.
	assert.Equal(t, screenOverview, app.currentScreen)
	assert.False(t, rec.SSN().IsEditing())
	_, hasBaseline := rec.SSN().Baseline()
	assert.False(t, hasBaseline)
	assert.False(t, rec.IsDirty())
}

func TestPersonal_RefocusResumesWithoutSecondDecrypt(t *testing.T) {
	// Arrange: reveal, edit, tab away so the edit is committed.
	app, rec, portal := newTestApp(t)
	portal.EXPECT().GetDecryptedSSN(gomock.Any()).Return("123-45-6789", nil)
	require.NoError(t, rec.RevealSSN(context.Background()))

	app.currentScreen = screenPersonal
	app.personal = newFormPersonalModel(rec)
	app.personal = app.personal.setFocus(idxSSN)
	app.personal.inputs[idxSSN].SetValue("987-65-4321")
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, rec.SSN().IsEditing())

	// Act: shift+tab back onto the field. No second GetDecryptedSSN is
	// expected; a fetch would fail the test.
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})

	// Assert
	assert.True(t, rec.SSN().IsEditing())
	assert.Equal(t, "987-65-4321", rec.SSN().Raw())
}

func TestLicense_EscCommitsNumberEdit(t *testing.T) {
	// Arrange: reveal the whole document, then leave the screen.
	app, rec, portal := newTestApp(t)
	portal.EXPECT().GetDecryptedDriverLicense(gomock.Any()).Return(models.DriverLicense{
		Number:         "D1234567",
		StateCode:      "VA",
		StateName:      "Virginia",
		ExpirationDate: "2030-01-31",
	}, nil)

	app.currentScreen = screenLicense
	app.license = newFormLicenseModel(rec)
	require.NoError(t, rec.DriverLicense().LoadDecryptedGroup(context.Background()))
	app.license = app.license.adoptRevealed(rec)

	// Act
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyEscape})

	// Assert: the number edit is closed and the unchanged group stays clean.
	assert.Equal(t, screenOverview, app.currentScreen)
	assert.False(t, rec.DriverLicense().Number().IsEditing())
	assert.Equal(t, "D1234567", rec.DriverLicense().Number().Raw())
	assert.False(t, rec.IsDirty())
}

func TestLicense_TabAwayCommitsNumberEdit(t *testing.T) {
	// Arrange
	app, rec, portal := newTestApp(t)
	portal.EXPECT().GetDecryptedDriverLicense(gomock.Any()).Return(models.DriverLicense{
		Number:         "D1234567",
		StateCode:      "VA",
		StateName:      "Virginia",
		ExpirationDate: "2030-01-31",
	}, nil)

	app.currentScreen = screenLicense
	app.license = newFormLicenseModel(rec)
	require.NoError(t, rec.DriverLicense().LoadDecryptedGroup(context.Background()))
	app.license = app.license.adoptRevealed(rec)
	app.license.inputs[idxLicenseNumber].SetValue("E7654321")

	// Act: focus moves to the state code input.
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyTab})

	// Assert
	assert.False(t, rec.DriverLicense().Number().IsEditing())
	assert.Equal(t, "E7654321", rec.DriverLicense().Number().Raw())
	_, hasBaseline := rec.DriverLicense().Number().Baseline()
	assert.False(t, hasBaseline)
}
