// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

// Package profile implements the client-side editing core for the intake
// form: masked display of encrypted identifiers, decrypt-on-demand reveal,
// dirty tracking, and minimal-diff payload construction.
//
// Three cooperating types:
//
//   - [MaskedField] manages the reveal/edit/mask lifecycle of one sensitive
//     scalar (SSN/ITIN, license number, passport number).
//   - [DocumentGroup] composes a MaskedField with its plain companion fields
//     (issuing state/country, expiration) into one document that is fetched
//     and sent atomically.
//   - [Reconciler] owns the full form lifecycle: initial snapshot, per-field
//     dirty tracking, required-field validation, and construction of the
//     minimal update payload sent on Save.
//
// Plaintext never outlives the session: it is held only in transient
// in-memory state, populated on explicit user-initiated reveal and discarded
// on save success or reset.
package profile
