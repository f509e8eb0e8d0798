package profile

import (
	"errors"
	"strings"
)

var (
	// ErrRevealInFlight is returned when a reveal is requested while another
	// reveal of the same field or group has not resolved yet. The UI disables
	// the triggering control while a reveal is loading, so hitting this error
	// indicates a stale control state rather than a user mistake.
	ErrRevealInFlight = errors.New("reveal already in flight")

	// ErrSaveInFlight is returned when Submit is called while a previous
	// save has not resolved yet.
	ErrSaveInFlight = errors.New("save already in flight")

	// ErrNotEditing is returned when a value update is applied to a field
	// that has not entered editing mode.
	ErrNotEditing = errors.New("field is not in editing mode")

	// ErrUnknownField is returned for a field or companion key outside the
	// tracked set.
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError reports the required fields that blocked a submit. Fields
// are ordered by the validation policy so the caller can focus the first
// offender. Validation never contacts the server.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required fields missing or malformed: " + strings.Join(e.Fields, ", ")
}
