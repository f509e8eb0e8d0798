// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ddubrovin/tax-intake-client/internal/logger"
)

// FieldKind identifies which masking and formatting rules apply to a
// sensitive field. The set is closed; each kind carries its own rules in
// fieldRulesByKind.
type FieldKind string

const (
	// KindSSN covers SSN and ITIN values (digit grouping, X-style mask).
	KindSSN FieldKind = "ssn"
	// KindLicense covers driver's license numbers (uppercase, bullet mask).
	KindLicense FieldKind = "license"
	// KindPassport covers passport numbers (uppercase, bullet mask).
	KindPassport FieldKind = "passport"
	// KindGeneric covers any other sensitive scalar (bullet mask only).
	KindGeneric FieldKind = "generic"
)

// RevealFunc fetches the decrypted plaintext of a field from the server. It
// is invoked at most once per BeginEdit call; failures are surfaced to the
// caller and never retried automatically.
type RevealFunc func(ctx context.Context) (string, error)

const maskPlaceholderSSN = "XXX-XX-XXXX"

type fieldRules struct {
	mask   func(raw string) string
	format func(next string) string
}

// fieldRulesByKind is the single dispatch point for kind-specific behavior.
var fieldRulesByKind = map[FieldKind]fieldRules{
	KindSSN:      {mask: maskSSN, format: formatSSN},
	KindLicense:  {mask: maskDocumentNumber, format: formatDocumentNumber},
	KindPassport: {mask: maskDocumentNumber, format: formatDocumentNumber},
	KindGeneric:  {mask: maskGeneric, format: formatGeneric},
}

// maskSSN renders "XXX-XX-" plus the last four digits of raw, or the fixed
// placeholder when fewer than four digits are present.
func maskSSN(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) < 4 {
		return maskPlaceholderSSN
	}
	return "XXX-XX-" + digits[len(digits)-4:]
}

// maskDocumentNumber renders four bullets plus the last four characters of
// raw, or a fixed run of eight bullets when raw is shorter than four
// characters.
func maskDocumentNumber(raw string) string {
	runes := []rune(raw)
	if len(runes) >= 4 {
		return strings.Repeat("•", 4) + string(runes[len(runes)-4:])
	}
	return strings.Repeat("•", 8)
}

// maskGeneric renders a run of bullets matching the raw length (eight when
// empty), capped at twelve.
func maskGeneric(raw string) string {
	n := len([]rune(raw))
	if n == 0 {
		n = 8
	}
	if n > 12 {
		n = 12
	}
	return strings.Repeat("•", n)
}

// formatSSN keeps only digits (at most nine) and regroups them as
// 000-00-0000 while the user types.
func formatSSN(next string) string {
	digits := digitsOnly(next)
	if len(digits) > 9 {
		digits = digits[:9]
	}

	switch {
	case len(digits) > 5:
		return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
	case len(digits) > 3:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits
	}
}

func formatDocumentNumber(next string) string {
	return strings.ToUpper(strings.TrimSpace(next))
}

func formatGeneric(next string) string {
	return next
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaskedField manages the reveal/edit/mask lifecycle for exactly one
// sensitive scalar field and computes the value safe to display.
//
// Plaintext enters the field only through an explicit BeginEdit (which pulls
// the decrypted baseline from the server) or through user keystrokes, and is
// discarded on Reset. The zero state displays the server-supplied masked
// form.
//
// Methods are safe for concurrent use; the internal lock is never held
// across a loader call, so state reads and Reset stay responsive while a
// reveal is in flight.
type MaskedField struct {
	kind   FieldKind
	loader RevealFunc
	logger *logger.Logger

	mu       sync.Mutex
	raw      string
	masked   string
	baseline *string
	editing  bool
	loading  bool
	gen      uint64
}

// NewMaskedField constructs a MaskedField of the given kind. loader may be
// nil for fields that have no stored server value to reveal; BeginEdit then
// enters editing mode with an empty value. log may be nil.
func NewMaskedField(kind FieldKind, loader RevealFunc, log *logger.Logger) *MaskedField {
	if _, ok := fieldRulesByKind[kind]; !ok {
		kind = KindGeneric
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MaskedField{kind: kind, loader: loader, logger: log}
}

// Kind returns the field's masking/formatting kind.
func (f *MaskedField) Kind() FieldKind { return f.kind }

// IsEditing reports whether the field currently holds a revealed or typed
// plaintext value open for editing.
func (f *MaskedField) IsEditing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

// IsLoading reports whether a reveal request is in flight. The UI must
// disable the reveal control while this is true.
func (f *MaskedField) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Raw returns the plaintext currently held in memory, or an empty string if
// the field was never revealed or typed this session.
func (f *MaskedField) Raw() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw
}

// Baseline returns the decrypted baseline fetched when editing began, and
// whether one exists. The baseline exists only between BeginEdit and
// CommitEdit; it is used purely for change comparison.
func (f *MaskedField) Baseline() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.baseline == nil {
		return "", false
	}
	return *f.baseline, true
}

// Reset discards all transient plaintext and editing state and records
// masked as the server-supplied masked display. Any reveal still in flight
// is invalidated: its eventual result is dropped.
func (f *MaskedField) Reset(masked string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.raw = ""
	f.masked = masked
	f.baseline = nil
	f.editing = false
	f.loading = false
}

// Display returns the value to render. An unsaved raw value always wins over
// a stale server mask: when raw is non-empty it is masked with the field's
// own rule; otherwise the server's masked display (possibly empty) is
// returned. Display never mutates state.
func (f *MaskedField) Display() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raw != "" {
		return fieldRulesByKind[f.kind].mask(f.raw)
	}
	return f.masked
}

// BeginEdit transitions the field into editing mode.
//
// With a loader configured, it fetches the decrypted value, records it as
// both the raw value and the comparison baseline, and enters editing. On
// loader failure the field stays in its pre-reveal state and the wrapped
// error is returned; the caller may invoke BeginEdit again (single attempt,
// no automatic retry). Without a loader, editing starts from an empty value
// with no baseline.
//
// Reveals are serialized per field: a second BeginEdit while one is in
// flight returns ErrRevealInFlight. If the field is Reset while the reveal
// is in flight (e.g. the form unmounted or reloaded), the late result is
// silently dropped.
func (f *MaskedField) BeginEdit(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrRevealInFlight
	}

	if f.loader == nil {
		f.raw = ""
		f.baseline = nil
		f.editing = true
		f.mu.Unlock()
		return nil
	}

	f.loading = true
	gen := f.gen
	f.mu.Unlock()

	value, err := f.loader(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// Reset happened while the reveal was in flight; the result is no
		// longer relevant.
		return nil
	}
	f.loading = false

	if err != nil {
		f.logger.Warn().Err(err).Str("kind", string(f.kind)).Msg("reveal failed")
		return fmt.Errorf("reveal %s: %w", f.kind, err)
	}

	f.raw = value
	baseline := value
	f.baseline = &baseline
	f.editing = true
	return nil
}

// ResumeEdit re-enters editing mode on the value already held in memory,
// e.g. when focus returns to a field whose edit was committed but not yet
// saved. No fetch occurs and no baseline is re-established; resuming with
// nothing held is a blank edit. Returns ErrRevealInFlight while a reveal is
// pending.
func (f *MaskedField) ResumeEdit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return ErrRevealInFlight
	}
	f.editing = true
	return nil
}

// UpdateValue applies the field's formatting rule to next and stores the
// result as the raw value. Returns ErrNotEditing unless editing is active.
func (f *MaskedField) UpdateValue(next string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.editing {
		return ErrNotEditing
	}
	f.raw = fieldRulesByKind[f.kind].format(next)
	return nil
}

// CommitEdit finalizes an edit on blur/defocus and exits editing mode.
//
// An empty (after trimming) raw value is treated as explicit deletion: both
// the raw value and the baseline are cleared. A raw value exactly equal to
// the baseline means the user revealed but changed nothing: the baseline is
// dropped and the raw value kept, so the field compares clean against the
// server mask. Otherwise the value is genuinely changed and the baseline,
// having served its comparison purpose, is discarded.
func (f *MaskedField) CommitEdit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.editing = false }()

	if strings.TrimSpace(f.raw) == "" {
		f.raw = ""
		f.baseline = nil
		return
	}

	f.baseline = nil
}

// HasUnsavedChange reports whether the field holds a value that differs from
// what the server has stored. A raw value equal to the session's decrypted
// baseline, or whose masked form matches the server's masked display, is not
// a change.
func (f *MaskedField) HasUnsavedChange() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raw == "" {
		return false
	}
	if f.baseline != nil && f.raw == *f.baseline {
		return false
	}
	if f.masked == "" {
		return true
	}
	return fieldRulesByKind[f.kind].mask(f.raw) != f.masked
}

// adoptDecrypted installs a group-fetched plaintext as the raw value and
// baseline and enters editing mode. Used by DocumentGroup, whose loader
// returns all document members at once.
func (f *MaskedField) adoptDecrypted(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raw = value
	baseline := value
	f.baseline = &baseline
	f.editing = true
	f.loading = false
}
