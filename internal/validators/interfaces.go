// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

// Package validators provides input validation for the profile intake form.
//
// Validation results are ordered: [ProfileValidator.InvalidFields] returns
// the offending field names in declaration order of the required-field
// policy, so the UI can scroll to and focus the first invalid field without
// knowing the policy itself.
//
// This package decouples validation logic from the form core and the UI,
// enabling reusable, composable, and testable validation strategies.
package validators

// ProfileValidator checks a profile form against the required-field policy.
type ProfileValidator interface {
	// InvalidFields returns the names of required fields that are currently
	// empty or malformed, in policy order. An empty slice means the form is
	// valid.
	InvalidFields(form ProfileForm) []string
}
