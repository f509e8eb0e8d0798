// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

// Package adapter provides the transport layer for communicating with the
// intake portal backend.
//
// The primary abstraction is [PortalAdapter], which decouples the profile
// form core from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPortalAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/ddubrovin/tax-intake-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter defines transport-agnostic communication with the intake
// portal. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The decrypt methods exist because sensitive identifiers are stored
// encrypted server-side (AES-256-GCM) and the profile fetch returns only
// their masked display forms; plaintext is requested on demand, one document
// per round trip, and the server always returns a document whole.
type PortalAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// GetMe fetches the full profile of the authenticated client, including
	// the masked display strings for all sensitive identifiers. Returns an
	// error if the request fails or the response cannot be decoded.
	GetMe(ctx context.Context) (models.ServerProfile, error)

	// GetDecryptedSSN fetches the plaintext SSN/ITIN currently on file.
	// Returns an empty string if none is stored.
	GetDecryptedSSN(ctx context.Context) (string, error)

	// GetDecryptedDriverLicense fetches the full decrypted driver's license
	// document (number plus its companion fields) in one round trip.
	GetDecryptedDriverLicense(ctx context.Context) (models.DriverLicense, error)

	// GetDecryptedPassport fetches the full decrypted passport document in
	// one round trip.
	GetDecryptedPassport(ctx context.Context) (models.Passport, error)

	// UpdateProfile sends a minimal-diff profile update. Keys absent from the
	// payload are left unchanged server-side. Returns the fresh post-save
	// profile, which becomes the client's new baseline.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.ServerProfile, error)
}
