// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package models

import "time"

// TaxIDType identifies which kind of taxpayer identification number the
// client has on file.
type TaxIDType string

const (
	// TaxIDSSN marks a Social Security Number.
	TaxIDSSN TaxIDType = "ssn"
	// TaxIDITIN marks an Individual Taxpayer Identification Number.
	TaxIDITIN TaxIDType = "itin"
)

// CurrentTermsVersion is the version tag recorded when the client accepts the
// service terms. It must change whenever the published legal text changes.
const CurrentTermsVersion = "2026-01"

// ServerProfile is the authoritative profile record returned by the portal.
//
// Sensitive identifiers (SSN/ITIN, driver's license number, passport number)
// are never included in plaintext: the server returns only their masked
// display forms. Plaintext is fetched on demand through the dedicated decrypt
// endpoints and held in memory only for the duration of an edit.
type ServerProfile struct {
	// FirstName is the client's legal first name.
	FirstName string `json:"first_name"`

	// MiddleName is the client's middle name, if any.
	MiddleName string `json:"middle_name"`

	// LastName is the client's legal last name.
	LastName string `json:"last_name"`

	// DateOfBirth is the client's date of birth in YYYY-MM-DD form.
	DateOfBirth string `json:"date_of_birth"`

	// CountryOfBirth is the client's country of birth.
	CountryOfBirth string `json:"country_of_birth"`

	// PrimaryLanguage is the client's preferred language for correspondence.
	PrimaryLanguage string `json:"primary_language"`

	// Phone is the client's contact phone number.
	Phone string `json:"phone"`

	// Email is the client's contact email address.
	Email string `json:"email"`

	// TaxIDType says whether the taxpayer identifier on file is an SSN or an
	// ITIN.
	TaxIDType TaxIDType `json:"tax_id_type"`

	// SSNMasked is the redacted display form of the stored SSN/ITIN
	// (e.g. "XXX-XX-1234"), or empty if none is on file.
	SSNMasked string `json:"ssn_masked"`

	// DriverLicenseMasked is the redacted display form of the stored driver's
	// license number, or empty if none is on file.
	DriverLicenseMasked string `json:"driver_license_masked"`

	// PassportMasked is the redacted display form of the stored passport
	// number, or empty if none is on file.
	PassportMasked string `json:"passport_masked"`

	// TermsAccepted reports whether the client has accepted the current
	// service terms.
	TermsAccepted bool `json:"terms_accepted"`

	// TermsVersion is the version tag of the terms the client accepted.
	TermsVersion string `json:"terms_version"`

	// UpdatedAt is the server-side timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}
