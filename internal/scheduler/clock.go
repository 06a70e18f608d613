// Package scheduler provides cancellable tick sources.
//
// A tick source is owned by exactly one component. Owners never start a new
// source without cancelling the previous one; Replace encodes that rule.
package scheduler

import "time"

// Handle is a cancellable tick source. Cancel is idempotent.
type Handle interface {
	Cancel()
	Active() bool
}

// Clock creates tick sources. Every repeats until cancelled; After fires
// once.
type Clock interface {
	Every(d time.Duration, fn func()) Handle
	After(d time.Duration, fn func()) Handle
}

// Replace cancels old (if any) before calling create, so an owner can never
// hold two live tick sources.
func Replace(old Handle, create func() Handle) Handle {
	Cancel(old)
	return create()
}

// Cancel cancels h if it is non-nil.
func Cancel(h Handle) {
	if h != nil {
		h.Cancel()
	}
}
