// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package models

// TermsAcceptance records a transition from not-accepted to accepted together
// with the version of the legal text the client saw.
type TermsAcceptance struct {
	Accepted bool   `json:"accepted"`
	Version  string `json:"version"`
}

// ProfileUpdate is the minimal-diff payload sent to the portal on save.
//
// Every field is a pointer: nil means "leave unchanged server-side". The
// client sets a field only when its value genuinely differs from the last
// known server state, so unchanged sensitive values are never re-transmitted.
// Document fields carry the whole document when set; the server never accepts
// a partial license or passport.
type ProfileUpdate struct {
	FirstName       *string    `json:"first_name,omitempty"`
	MiddleName      *string    `json:"middle_name,omitempty"`
	LastName        *string    `json:"last_name,omitempty"`
	DateOfBirth     *string    `json:"date_of_birth,omitempty"`
	CountryOfBirth  *string    `json:"country_of_birth,omitempty"`
	PrimaryLanguage *string    `json:"primary_language,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	TaxIDType       *TaxIDType `json:"tax_id_type,omitempty"`

	// SSN carries a new plaintext SSN/ITIN. Set only when the value is
	// syntactically valid and differs from the decrypted baseline fetched
	// this session.
	SSN *string `json:"ssn,omitempty"`

	// DriverLicense carries the full merged license document when any of its
	// members changed.
	DriverLicense *DriverLicense `json:"driver_license,omitempty"`

	// Passport carries the full merged passport document when any of its
	// members changed.
	Passport *Passport `json:"passport,omitempty"`

	// Terms is set only on the not-accepted to accepted transition.
	Terms *TermsAcceptance `json:"terms,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all. An empty
// update must not be sent to the server.
func (u ProfileUpdate) IsEmpty() bool {
	return u == ProfileUpdate{}
}
