// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ddubrovin/tax-intake-client/internal/adapter"
	"github.com/ddubrovin/tax-intake-client/internal/logger"
	"github.com/ddubrovin/tax-intake-client/internal/validators"
	"github.com/ddubrovin/tax-intake-client/models"
)

// basicFields lists every tracked non-sensitive scalar in form order.
var basicFields = []string{
	validators.FieldFirstName,
	validators.FieldMiddleName,
	validators.FieldLastName,
	validators.FieldDateOfBirth,
	validators.FieldCountryOfBirth,
	validators.FieldPrimaryLanguage,
	validators.FieldPhone,
	validators.FieldEmail,
	validators.FieldTaxIDType,
}

// Reconciler owns the full lifecycle of the intake form: the initial server
// snapshot, per-field dirty tracking, required-field validation, and the
// minimal-diff payload sent on save. It composes one MaskedField for the
// SSN/ITIN and one DocumentGroup each for the driver's license and passport.
//
// Reconciler is safe for concurrent use: the UI event loop, the command
// goroutines it spawns, and the background refresh job may all drive one
// instance. The lock is never held across a portal call, and the sensitive
// field holders carry their own locks, acquired strictly after the
// reconciler's.
type Reconciler struct {
	portal    adapter.PortalAdapter
	validator validators.ProfileValidator
	logger    *logger.Logger

	mu sync.Mutex

	initial map[string]string
	current map[string]string

	termsInitial bool
	termsCurrent bool

	ssn      *MaskedField
	license  *DocumentGroup
	passport *DocumentGroup

	lastProfile models.ServerProfile
	saving      bool
	gen         uint64
}

// NewReconciler wires the form core to the portal. The SSN field and both
// document groups get loaders backed by the portal's decrypt endpoints.
func NewReconciler(portal adapter.PortalAdapter, validator validators.ProfileValidator, log *logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}

	r := &Reconciler{
		portal:    portal,
		validator: validator,
		logger:    log,
		initial:   map[string]string{},
		current:   map[string]string{},
	}

	r.ssn = NewMaskedField(KindSSN, func(ctx context.Context) (string, error) {
		return portal.GetDecryptedSSN(ctx)
	}, log)

	r.license = NewDocumentGroup(
		"driver_license",
		KindLicense,
		[]string{KeyStateCode, KeyStateName, KeyExpirationDate},
		func(ctx context.Context) (GroupValues, error) {
			doc, err := portal.GetDecryptedDriverLicense(ctx)
			if err != nil {
				return nil, err
			}
			return GroupValues{
				KeyNumber:         doc.Number,
				KeyStateCode:      doc.StateCode,
				KeyStateName:      doc.StateName,
				KeyExpirationDate: doc.ExpirationDate,
			}, nil
		},
		log,
	)

	r.passport = NewDocumentGroup(
		"passport",
		KindPassport,
		[]string{KeyCountryOfIssue, KeyExpirationDate},
		func(ctx context.Context) (GroupValues, error) {
			doc, err := portal.GetDecryptedPassport(ctx)
			if err != nil {
				return nil, err
			}
			return GroupValues{
				KeyNumber:         doc.Number,
				KeyCountryOfIssue: doc.CountryOfIssue,
				KeyExpirationDate: doc.ExpirationDate,
			}, nil
		},
		log,
	)

	return r
}

// SSN exposes the taxpayer identification field.
func (r *Reconciler) SSN() *MaskedField { return r.ssn }

// DriverLicense exposes the driver's license document group.
func (r *Reconciler) DriverLicense() *DocumentGroup { return r.license }

// Passport exposes the passport document group.
func (r *Reconciler) Passport() *DocumentGroup { return r.passport }

// Profile returns the last server snapshot the reconciler is tracking
// against.
func (r *Reconciler) Profile() models.ServerProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastProfile
}

// IsSaving reports whether a save request is in flight.
func (r *Reconciler) IsSaving() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saving
}

// Load fetches the profile from the portal and installs it as the initial
// snapshot, discarding any local state.
func (r *Reconciler) Load(ctx context.Context) error {
	p, err := r.portal.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	r.LoadInitial(p)
	return nil
}

// LoadInitial installs p as the snapshot all dirty comparisons run against.
// Every tracked field resets to the server value, terms reset, and the
// sensitive fields drop any transient plaintext. In-flight reveals and saves
// are invalidated.
func (r *Reconciler) LoadInitial(p models.ServerProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadInitialLocked(p)
}

func (r *Reconciler) loadInitialLocked(p models.ServerProfile) {
	r.gen++
	r.saving = false
	r.lastProfile = p

	snapshot := basicSnapshot(p)
	r.initial = snapshot
	r.current = map[string]string{}
	for k, v := range snapshot {
		r.current[k] = v
	}

	r.termsInitial = p.TermsAccepted
	r.termsCurrent = p.TermsAccepted

	r.ssn.Reset(p.SSNMasked)
	r.license.Reset(p.DriverLicenseMasked)
	r.passport.Reset(p.PassportMasked)
}

func basicSnapshot(p models.ServerProfile) map[string]string {
	return map[string]string{
		validators.FieldFirstName:       p.FirstName,
		validators.FieldMiddleName:      p.MiddleName,
		validators.FieldLastName:        p.LastName,
		validators.FieldDateOfBirth:     p.DateOfBirth,
		validators.FieldCountryOfBirth:  p.CountryOfBirth,
		validators.FieldPrimaryLanguage: p.PrimaryLanguage,
		validators.FieldPhone:           p.Phone,
		validators.FieldEmail:           p.Email,
		validators.FieldTaxIDType:       string(p.TaxIDType),
	}
}

// SetField records a user edit to a tracked basic field. Returns
// ErrUnknownField for names outside the tracked set; sensitive fields and
// terms have their own entry points.
func (r *Reconciler) SetField(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.initial[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	r.current[name] = value
	return nil
}

// Field returns the current value of a tracked basic field.
func (r *Reconciler) Field(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current[name]
}

// SetTermsAccepted records the state of the terms checkbox.
func (r *Reconciler) SetTermsAccepted(accepted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.termsCurrent = accepted
}

// TermsAccepted returns the current state of the terms checkbox.
func (r *Reconciler) TermsAccepted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.termsCurrent
}

// RevealSSN begins an edit of the taxpayer identification field, fetching
// the decrypted value from the portal.
func (r *Reconciler) RevealSSN(ctx context.Context) error {
	return r.ssn.BeginEdit(ctx)
}

// IsDirty reports whether anything on the form differs from the initial
// snapshot. The UI enables Save exactly when this is true.
func (r *Reconciler) IsDirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isDirtyLocked()
}

func (r *Reconciler) isDirtyLocked() bool {
	for _, f := range basicFields {
		if strings.TrimSpace(r.current[f]) != strings.TrimSpace(r.initial[f]) {
			return true
		}
	}
	if r.termsCurrent != r.termsInitial {
		return true
	}
	return r.ssn.HasUnsavedChange() || r.license.HasChanges() || r.passport.HasChanges()
}

// Validate runs the required-field policy against the current form state and
// returns the offenders in policy order (first entry is the field the UI
// should focus). Validation is purely local.
func (r *Reconciler) Validate() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.validateLocked()
}

func (r *Reconciler) validateLocked() []string {
	form := validators.ProfileForm{
		Values:        map[string]string{},
		SSN:           r.ssn.Raw(),
		SSNMasked:     r.lastProfile.SSNMasked,
		TermsAccepted: r.termsCurrent,
	}
	for _, f := range basicFields {
		form.Values[f] = r.current[f]
	}
	return r.validator.InvalidFields(form)
}

// BuildUpdatePayload computes the minimal diff between the current form
// state and the initial snapshot.
//
// A basic field is included only when its trimmed value changed. The SSN is
// included only when syntactically valid and genuinely different from what
// the server holds. A document group is included whole once any of its
// members changed. Terms are included only on the not-accepted to accepted
// transition, stamped with the current terms version.
func (r *Reconciler) BuildUpdatePayload() models.ProfileUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildUpdatePayloadLocked()
}

func (r *Reconciler) buildUpdatePayloadLocked() models.ProfileUpdate {
	var update models.ProfileUpdate

	set := func(dst **string, name string) {
		cur := strings.TrimSpace(r.current[name])
		if cur != strings.TrimSpace(r.initial[name]) {
			v := cur
			*dst = &v
		}
	}
	set(&update.FirstName, validators.FieldFirstName)
	set(&update.MiddleName, validators.FieldMiddleName)
	set(&update.LastName, validators.FieldLastName)
	set(&update.DateOfBirth, validators.FieldDateOfBirth)
	set(&update.CountryOfBirth, validators.FieldCountryOfBirth)
	set(&update.PrimaryLanguage, validators.FieldPrimaryLanguage)
	set(&update.Phone, validators.FieldPhone)
	set(&update.Email, validators.FieldEmail)

	if cur := strings.TrimSpace(r.current[validators.FieldTaxIDType]); cur != strings.TrimSpace(r.initial[validators.FieldTaxIDType]) {
		t := models.TaxIDType(cur)
		update.TaxIDType = &t
	}

	if ssn := r.ssn.Raw(); ssn != "" && validators.ValidSSN(ssn) && r.ssn.HasUnsavedChange() {
		update.SSN = &ssn
	}

	if r.license.HasChanges() {
		values := r.license.CurrentGroupValues()
		update.DriverLicense = &models.DriverLicense{
			Number:         values[KeyNumber],
			StateCode:      values[KeyStateCode],
			StateName:      values[KeyStateName],
			ExpirationDate: values[KeyExpirationDate],
		}
	}

	if r.passport.HasChanges() {
		values := r.passport.CurrentGroupValues()
		update.Passport = &models.Passport{
			Number:         values[KeyNumber],
			CountryOfIssue: values[KeyCountryOfIssue],
			ExpirationDate: values[KeyExpirationDate],
		}
	}

	if !r.termsInitial && r.termsCurrent {
		update.Terms = &models.TermsAcceptance{
			Accepted: true,
			Version:  models.CurrentTermsVersion,
		}
	}

	return update
}

// Submit validates the form, builds the minimal diff, and sends it to the
// portal.
//
// A failing validation returns a *ValidationError and never contacts the
// server. An empty diff is a successful no-op. On transport or server error
// the local state is left exactly as it was, so the user can retry without
// losing edits. On success the returned post-save profile becomes the new
// baseline and all transient plaintext is discarded. A second Submit while
// one is in flight returns ErrSaveInFlight.
func (r *Reconciler) Submit(ctx context.Context) error {
	r.mu.Lock()
	if r.saving {
		r.mu.Unlock()
		return ErrSaveInFlight
	}

	if invalid := r.validateLocked(); len(invalid) > 0 {
		r.mu.Unlock()
		return &ValidationError{Fields: invalid}
	}

	update := r.buildUpdatePayloadLocked()
	if update.IsEmpty() {
		r.mu.Unlock()
		r.logger.Debug().Msg("submit skipped, no changes")
		return nil
	}

	r.saving = true
	gen := r.gen
	r.mu.Unlock()

	saved, err := r.portal.UpdateProfile(ctx, update)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// The form was reloaded mid-save; the result no longer applies.
		return nil
	}
	r.saving = false

	if err != nil {
		r.logger.Warn().Err(err).Msg("profile save failed")
		return fmt.Errorf("save profile: %w", err)
	}

	r.loadInitialLocked(saved)
	return nil
}

// RefreshIfClean re-fetches the profile and installs it as the new baseline,
// but only when the form has no unsaved changes. Background refreshes must
// never clobber user edits.
func (r *Reconciler) RefreshIfClean(ctx context.Context) error {
	r.mu.Lock()
	skip := r.saving || r.isDirtyLocked()
	r.mu.Unlock()
	if skip {
		return nil
	}

	p, err := r.portal.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Edits may have started while the fetch was in flight; install the
	// snapshot only if the form is still clean.
	if r.saving || r.isDirtyLocked() {
		return nil
	}
	r.loadInitialLocked(p)
	return nil
}
