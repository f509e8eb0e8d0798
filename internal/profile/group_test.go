// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func licenseGroup(loader GroupRevealFunc) *DocumentGroup {
	return NewDocumentGroup(
		"driver_license",
		KindLicense,
		[]string{KeyStateCode, KeyStateName, KeyExpirationDate},
		loader,
		nil,
	)
}

func licenseLoader() GroupRevealFunc {
	return func(context.Context) (GroupValues, error) {
		return GroupValues{
			KeyNumber:         "A1234567",
			KeyStateCode:      "VA",
			KeyStateName:      "VIRGINIA",
			KeyExpirationDate: "2029-06-30",
		}, nil
	}
}

func TestLoadDecryptedGroup_PopulatesAllMembers(t *testing.T) {
	// Arrange
	g := licenseGroup(licenseLoader())
	g.Reset("••••4567")

	// Act
	err := g.LoadDecryptedGroup(context.Background())

	// Assert: number and companions land together.
	require.NoError(t, err)
	assert.True(t, g.Number().IsEditing())
	assert.Equal(t, "A1234567", g.Number().Raw())
	assert.Equal(t, "VA", g.Companion(KeyStateCode))
	assert.Equal(t, "VIRGINIA", g.Companion(KeyStateName))
	assert.Equal(t, "2029-06-30", g.Companion(KeyExpirationDate))
	assert.False(t, g.HasChanges())
}

func TestLoadDecryptedGroup_FailureChangesNothing(t *testing.T) {
	// Arrange
	wantErr := errors.New("portal unavailable")
	g := licenseGroup(func(context.Context) (GroupValues, error) {
		return nil, wantErr
	})
	g.Reset("••••4567")

	// Act
	err := g.LoadDecryptedGroup(context.Background())

	// Assert: no member adopted anything.
	require.ErrorIs(t, err, wantErr)
	assert.False(t, g.IsLoading())
	assert.False(t, g.Number().IsEditing())
	assert.Empty(t, g.Number().Raw())
	assert.Empty(t, g.Companion(KeyStateCode))
	assert.Equal(t, "••••4567", g.Number().Display())
}

func TestLoadDecryptedGroup_SecondRevealWhileLoading(t *testing.T) {
	// Arrange: the loader re-enters LoadDecryptedGroup, simulating a second
	// reveal arriving while the first is in flight.
	var g *DocumentGroup
	var nested error
	g = licenseGroup(func(ctx context.Context) (GroupValues, error) {
		nested = g.LoadDecryptedGroup(ctx)
		return licenseLoader()(ctx)
	})

	// Act
	err := g.LoadDecryptedGroup(context.Background())

	// Assert
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrRevealInFlight)
}

func TestLoadDecryptedGroup_ResetDuringRevealDropsResult(t *testing.T) {
	// Arrange
	var g *DocumentGroup
	g = licenseGroup(func(ctx context.Context) (GroupValues, error) {
		g.Reset("••••0000")
		return licenseLoader()(ctx)
	})

	// Act
	err := g.LoadDecryptedGroup(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, g.Number().Raw())
	assert.Empty(t, g.Companion(KeyStateCode))
	assert.Equal(t, "••••0000", g.Number().Display())
}

func TestSetCompanion_UnknownKey(t *testing.T) {
	g := licenseGroup(licenseLoader())

	err := g.SetCompanion(KeyCountryOfIssue, "France")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCompanion_EditOverlaysBaseline(t *testing.T) {
	// Arrange
	g := licenseGroup(licenseLoader())
	require.NoError(t, g.LoadDecryptedGroup(context.Background()))

	// Act
	require.NoError(t, g.SetCompanion(KeyStateCode, "MD"))

	// Assert: the edited member wins, the rest keep baseline values.
	assert.Equal(t, "MD", g.Companion(KeyStateCode))
	assert.Equal(t, "VIRGINIA", g.Companion(KeyStateName))

	values := g.CurrentGroupValues()
	assert.Equal(t, GroupValues{
		KeyNumber:         "A1234567",
		KeyStateCode:      "MD",
		KeyStateName:      "VIRGINIA",
		KeyExpirationDate: "2029-06-30",
	}, values)
}

func TestHasChanges_WithBaseline(t *testing.T) {
	// Arrange
	g := licenseGroup(licenseLoader())
	require.NoError(t, g.LoadDecryptedGroup(context.Background()))
	require.False(t, g.HasChanges())

	// Act: one companion edit dirties the whole document.
	require.NoError(t, g.SetCompanion(KeyExpirationDate, "2031-06-30"))

	// Assert
	assert.True(t, g.HasChanges())
}

func TestHasChanges_TrimmedComparison(t *testing.T) {
	g := licenseGroup(licenseLoader())
	require.NoError(t, g.LoadDecryptedGroup(context.Background()))

	require.NoError(t, g.SetCompanion(KeyStateCode, " VA "))

	assert.False(t, g.HasChanges())
}

func TestHasChanges_WithoutBaseline(t *testing.T) {
	// Without a decrypted baseline the server values are unknown, so any
	// non-empty member counts as a change.
	g := licenseGroup(licenseLoader())
	g.Reset("")
	require.False(t, g.HasChanges())

	require.NoError(t, g.SetCompanion(KeyStateCode, "VA"))

	assert.True(t, g.HasChanges())
}

func TestGroupReset_DiscardsEverything(t *testing.T) {
	// Arrange
	g := licenseGroup(licenseLoader())
	require.NoError(t, g.LoadDecryptedGroup(context.Background()))
	require.NoError(t, g.SetCompanion(KeyStateCode, "MD"))

	// Act
	g.Reset("••••9999")

	// Assert
	assert.False(t, g.HasChanges())
	assert.Empty(t, g.Number().Raw())
	assert.Empty(t, g.Companion(KeyStateCode))
	assert.Equal(t, "••••9999", g.Number().Display())
}
