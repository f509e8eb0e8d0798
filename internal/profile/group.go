// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package profile

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/ddubrovin/tax-intake-client/internal/logger"
)

// Companion and member keys within a document group. A group's value map is
// keyed by these; KeyNumber is always the sensitive member handled by the
// group's MaskedField.
const (
	KeyNumber         = "number"
	KeyStateCode      = "state_code"
	KeyStateName      = "state_name"
	KeyExpirationDate = "expiration_date"
	KeyCountryOfIssue = "country_of_issue"
)

// GroupValues maps member keys to their current string values.
type GroupValues map[string]string

// GroupRevealFunc fetches the decrypted values of every member of a document
// group in a single request.
type GroupRevealFunc func(ctx context.Context) (GroupValues, error)

// DocumentGroup composes one sensitive number field with the plain companion
// fields of the same document (issuing state or country, expiration date).
// The group is the unit of both reveal and save: members are fetched together
// in one request and, once any member changes, the whole group is sent back.
//
// Companion values live in three layers. The masked server snapshot seeds
// nothing (companions arrive only with the decrypted fetch); the decrypted
// baseline arrives with LoadDecryptedGroup; user edits overlay the baseline.
// CurrentGroupValues always returns the freshest layer per key.
//
// Methods are safe for concurrent use. The group lock is never held across
// the loader call, and the number field carries its own lock; the group
// acquires them in group-then-field order only.
type DocumentGroup struct {
	name   string
	number *MaskedField
	loader GroupRevealFunc
	logger *logger.Logger

	mu            sync.Mutex
	companionKeys []string
	baseline      GroupValues
	edits         GroupValues
	loading       bool
	gen           uint64
}

// NewDocumentGroup constructs a group named for logging purposes (e.g.
// "driver_license"). kind selects the number field's masking rules;
// companionKeys fixes the set of plain members. loader fetches the whole
// decrypted group; the number field itself never fetches independently.
func NewDocumentGroup(name string, kind FieldKind, companionKeys []string, loader GroupRevealFunc, log *logger.Logger) *DocumentGroup {
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentGroup{
		name:          name,
		number:        NewMaskedField(kind, nil, log),
		loader:        loader,
		logger:        log,
		companionKeys: companionKeys,
		edits:         GroupValues{},
	}
}

// Number exposes the group's sensitive number field for display and editing.
func (g *DocumentGroup) Number() *MaskedField { return g.number }

// IsLoading reports whether a group reveal is in flight.
func (g *DocumentGroup) IsLoading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Reset discards the decrypted baseline, all edits, and any plaintext held by
// the number field, and installs masked as the number's masked display. A
// reveal still in flight is invalidated.
func (g *DocumentGroup) Reset(masked string) {
	g.mu.Lock()
	g.gen++
	g.baseline = nil
	g.edits = GroupValues{}
	g.loading = false
	g.mu.Unlock()
	g.number.Reset(masked)
}

// LoadDecryptedGroup fetches all members of the document in one request and
// installs them atomically: either every member (number included) adopts the
// decrypted value, or on failure nothing changes. A second call while one is
// in flight returns ErrRevealInFlight; a Reset during the fetch drops the
// late result.
func (g *DocumentGroup) LoadDecryptedGroup(ctx context.Context) error {
	g.mu.Lock()
	if g.loading {
		g.mu.Unlock()
		return ErrRevealInFlight
	}
	g.loading = true
	gen := g.gen
	g.mu.Unlock()

	values, err := g.loader(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return nil
	}
	g.loading = false

	if err != nil {
		g.logger.Warn().Err(err).Str("group", g.name).Msg("group reveal failed")
		return fmt.Errorf("reveal %s: %w", g.name, err)
	}

	baseline := GroupValues{}
	for _, key := range g.companionKeys {
		baseline[key] = values[key]
	}
	baseline[KeyNumber] = values[KeyNumber]

	g.baseline = baseline
	g.edits = GroupValues{}
	g.number.adoptDecrypted(values[KeyNumber])
	return nil
}

// SetCompanion records a user edit to one of the group's plain members.
// Returns ErrUnknownField for a key outside the group's companion set.
func (g *DocumentGroup) SetCompanion(key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, k := range g.companionKeys {
		if k == key {
			g.edits[key] = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, key)
}

// Companion returns the freshest value of one plain member: the user's edit
// if present, otherwise the decrypted baseline, otherwise empty.
func (g *DocumentGroup) Companion(key string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.companionLocked(key)
}

func (g *DocumentGroup) companionLocked(key string) string {
	if v, ok := g.edits[key]; ok {
		return v
	}
	if g.baseline != nil {
		return g.baseline[key]
	}
	return ""
}

// CurrentGroupValues assembles the freshest value of every member, number
// included. This is what a save sends when the group has changes.
func (g *DocumentGroup) CurrentGroupValues() GroupValues {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentGroupValuesLocked()
}

func (g *DocumentGroup) currentGroupValuesLocked() GroupValues {
	values := GroupValues{}
	for _, key := range g.companionKeys {
		values[key] = g.companionLocked(key)
	}
	values[KeyNumber] = g.number.Raw()
	return values
}

// HasChanges reports whether any member differs from what the server has
// stored. With a decrypted baseline on hand the comparison is exact
// (trimmed, per member). Without one, the server values are unknown, so any
// non-empty member the user produced counts as a change.
func (g *DocumentGroup) HasChanges() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	current := g.currentGroupValuesLocked()

	if g.baseline == nil {
		for _, v := range current {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
		return false
	}

	trim := func(values GroupValues) GroupValues {
		out := GroupValues{}
		for k, v := range values {
			out[k] = strings.TrimSpace(v)
		}
		return out
	}
	return !maps.Equal(trim(current), trim(g.baseline))
}
