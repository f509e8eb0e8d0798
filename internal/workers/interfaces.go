// Package workers provides the client's background jobs. Currently there is
// one: a periodic profile refresh that keeps the local snapshot current while
// the form has no unsaved edits.
package workers

import "context"

// Refresher is the operation a refresh job drives. Implementations must be
// safe to call from a background goroutine and must decline to refresh when
// doing so would clobber unsaved local state.
type Refresher interface {
	RefreshIfClean(ctx context.Context) error
}

// RefresherFunc adapts a plain function to the Refresher interface.
type RefresherFunc func(ctx context.Context) error

func (f RefresherFunc) RefreshIfClean(ctx context.Context) error { return f(ctx) }
