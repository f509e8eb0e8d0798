// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ddubrovin/tax-intake-client/internal/mock"
	"github.com/ddubrovin/tax-intake-client/internal/validators"
	"github.com/ddubrovin/tax-intake-client/models"
)

func serverProfile() models.ServerProfile {
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

func newTestReconciler(t *testing.T) (*Reconciler, *mock.MockPortalAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalAdapter(ctrl)
	r := NewReconciler(portal, validators.NewProfileValidator(), nil)
	return r, portal
}

// ── Loading ─────────────────────────────────────────────────────────────────

func TestLoad_InstallsSnapshot(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	portal.EXPECT().GetMe(gomock.Any()).Return(serverProfile(), nil)

	// Act
	err := r.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Maria", r.Field(validators.FieldFirstName))
	assert.True(t, r.TermsAccepted())
	assert.Equal(t, "XXX-XX-6789", r.SSN().Display())
	assert.Equal(t, "••••4567", r.DriverLicense().Number().Display())
	assert.False(t, r.IsDirty())
}

func TestLoad_FetchError(t *testing.T) {
	r, portal := newTestReconciler(t)
	wantErr := errors.New("portal unavailable")
	portal.EXPECT().GetMe(gomock.Any()).Return(models.ServerProfile{}, wantErr)

	err := r.Load(context.Background())

	assert.ErrorIs(t, err, wantErr)
}

// ── Dirty tracking ──────────────────────────────────────────────────────────

func TestIsDirty_BasicFieldEdit(t *testing.T) {
	// Arrange
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	// Act & Assert: an edit dirties, restoring the original cleans.
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))
	assert.True(t, r.IsDirty())

	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0101"))
	assert.False(t, r.IsDirty())
}

func TestIsDirty_WhitespaceOnlyEditIsClean(t *testing.T) {
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	require.NoError(t, r.SetField(validators.FieldFirstName, " Maria "))

	assert.False(t, r.IsDirty())
}

func TestIsDirty_UnchangedRevealIsClean(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	portal.EXPECT().GetDecryptedSSN(gomock.Any()).Return("123-45-6789", nil)

	// Act: reveal, touch nothing, blur.
	require.NoError(t, r.RevealSSN(context.Background()))
	r.SSN().CommitEdit()

	// Assert
	assert.False(t, r.IsDirty())
}

func TestSetField_UnknownName(t *testing.T) {
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	err := r.SetField("shoe_size", "42")

	assert.ErrorIs(t, err, ErrUnknownField)
}

// ── Payload construction ────────────────────────────────────────────────────

func TestBuildUpdatePayload_MinimalDiff(t *testing.T) {
	// Arrange
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))
	require.NoError(t, r.SetField(validators.FieldEmail, "maria@example.com"))

	// Act
	update := r.BuildUpdatePayload()

	// Assert: only the genuinely changed field is present.
	require.NotNil(t, update.Phone)
	assert.Equal(t, "+1 703 555 0202", *update.Phone)
	assert.Nil(t, update.Email)
	assert.Nil(t, update.FirstName)
	assert.Nil(t, update.SSN)
	assert.Nil(t, update.DriverLicense)
	assert.Nil(t, update.Passport)
	assert.Nil(t, update.Terms)
}

func TestBuildUpdatePayload_SSNGate(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  bool
	}{
		{"valid and new", "987-65-4321", true},
		{"valid but masks the same as stored", "123-45-6789", false},
		{"malformed", "987-65-432", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r, portal := newTestReconciler(t)
			r.LoadInitial(serverProfile())
			portal.EXPECT().GetDecryptedSSN(gomock.Any()).Return("123-45-6789", nil)
			require.NoError(t, r.RevealSSN(context.Background()))
			require.NoError(t, r.SSN().UpdateValue(tt.typed))
			r.SSN().CommitEdit()

			// Act
			update := r.BuildUpdatePayload()

			// Assert
			if tt.want {
				require.NotNil(t, update.SSN)
				assert.Equal(t, tt.typed, *update.SSN)
			} else {
				assert.Nil(t, update.SSN)
			}
		})
	}
}

func TestBuildUpdatePayload_DocumentSentWhole(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	portal.EXPECT().GetDecryptedDriverLicense(gomock.Any()).Return(models.DriverLicense{
		Number:         "A1234567",
		StateCode:      "VA",
		StateName:      "VIRGINIA",
		ExpirationDate: "2029-06-30",
	}, nil)
	require.NoError(t, r.DriverLicense().LoadDecryptedGroup(context.Background()))

	// Act: one companion edit pulls the whole merged document in.
	require.NoError(t, r.DriverLicense().SetCompanion(KeyExpirationDate, "2031-06-30"))
	update := r.BuildUpdatePayload()

	// Assert
	require.NotNil(t, update.DriverLicense)
	assert.Equal(t, models.DriverLicense{
		Number:         "A1234567",
		StateCode:      "VA",
		StateName:      "VIRGINIA",
		ExpirationDate: "2031-06-30",
	}, *update.DriverLicense)
	assert.Nil(t, update.Passport)
}

func TestBuildUpdatePayload_TermsOnlyOnAcceptTransition(t *testing.T) {
	// Arrange: server has terms not yet accepted.
	p := serverProfile()
	p.TermsAccepted = false
	p.TermsVersion = ""
	r, _ := newTestReconciler(t)
	r.LoadInitial(p)

	// Act
	r.SetTermsAccepted(true)
	update := r.BuildUpdatePayload()

	// Assert
	require.NotNil(t, update.Terms)
	assert.True(t, update.Terms.Accepted)
	assert.Equal(t, models.CurrentTermsVersion, update.Terms.Version)
}

func TestBuildUpdatePayload_AcceptedTermsNeverResent(t *testing.T) {
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	r.SetTermsAccepted(true)
	update := r.BuildUpdatePayload()

	assert.Nil(t, update.Terms)
}

// ── Submit ──────────────────────────────────────────────────────────────────

func TestSubmit_ValidationBlocksWithoutNetwork(t *testing.T) {
	// Arrange: first name cleared; no portal expectations are set, so any
	// network call fails the test.
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldFirstName, ""))

	// Act
	err := r.Submit(context.Background())

	// Assert: the offender list comes back in policy order.
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validators.FieldFirstName}, vErr.Fields)
}

func TestSubmit_EmptyDiffIsNoOp(t *testing.T) {
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	err := r.Submit(context.Background())

	assert.NoError(t, err)
}

func TestSubmit_SuccessInstallsNewBaseline(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))

	saved := serverProfile()
	saved.Phone = "+1 703 555 0202"
	saved.UpdatedAt = saved.UpdatedAt.Add(time.Hour)
	portal.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update models.ProfileUpdate) (models.ServerProfile, error) {
			require.NotNil(t, update.Phone)
			assert.Equal(t, "+1 703 555 0202", *update.Phone)
			return saved, nil
		})

	// Act
	err := r.Submit(context.Background())

	// Assert: the post-save profile is the new comparison baseline, so a
	// second Submit sends nothing (no further portal expectations).
	require.NoError(t, err)
	assert.False(t, r.IsDirty())
	assert.Equal(t, saved.UpdatedAt, r.Profile().UpdatedAt)
	assert.NoError(t, r.Submit(context.Background()))
}

func TestSubmit_ErrorPreservesEdits(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))

	wantErr := errors.New("portal unavailable")
	portal.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		Return(models.ServerProfile{}, wantErr)

	// Act
	err := r.Submit(context.Background())

	// Assert: the user can fix connectivity and retry without retyping.
	require.ErrorIs(t, err, wantErr)
	assert.True(t, r.IsDirty())
	assert.Equal(t, "+1 703 555 0202", r.Field(validators.FieldPhone))
	assert.False(t, r.IsSaving())
}

func TestSubmit_SecondSaveWhileInFlight(t *testing.T) {
	// Arrange: the portal call re-enters Submit, simulating a second save
	// arriving while the first is in flight.
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))

	var nested error
	saved := serverProfile()
	saved.Phone = "+1 703 555 0202"
	portal.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ProfileUpdate) (models.ServerProfile, error) {
			nested = r.Submit(ctx)
			return saved, nil
		})

	// Act
	err := r.Submit(context.Background())

	// Assert
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSaveInFlight)
}

// ── Background refresh ──────────────────────────────────────────────────────

func TestRefreshIfClean_SkipsWhenDirty(t *testing.T) {
	// No GetMe expectation: a network call would fail the test.
	r, _ := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	require.NoError(t, r.SetField(validators.FieldPhone, "+1 703 555 0202"))

	err := r.RefreshIfClean(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "+1 703 555 0202", r.Field(validators.FieldPhone))
}

func TestRefreshIfClean_RefreshesWhenClean(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())

	fresh := serverProfile()
	fresh.Phone = "+1 703 555 0303"
	portal.EXPECT().GetMe(gomock.Any()).Return(fresh, nil)

	// Act
	err := r.RefreshIfClean(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "+1 703 555 0303", r.Field(validators.FieldPhone))
}

func TestRefreshIfClean_ConcurrentWithEdits(t *testing.T) {
	// Arrange
	r, portal := newTestReconciler(t)
	r.LoadInitial(serverProfile())
	portal.EXPECT().GetMe(gomock.Any()).Return(serverProfile(), nil).AnyTimes()

	// Act: drive background refreshes from one goroutine while the form is
	// edited and inspected from another, the way the refresh job and the UI
	// loop share one reconciler.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = r.RefreshIfClean(context.Background())
		}
	}()

	for i := 0; i < 200; i++ {
		_ = r.SetField(validators.FieldPhone, "+1 703 555 0202")
		_ = r.IsDirty()
		_ = r.SetField(validators.FieldPhone, serverProfile().Phone)
	}
	<-done

	// Assert: no torn state; the snapshot is one of the two consistent ends.
	assert.False(t, r.IsSaving())
	assert.Equal(t, "Maria", r.Field(validators.FieldFirstName))
}
