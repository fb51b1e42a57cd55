package client

import "sync/atomic"

// SaveGuard lets only one save run at a time. A second trigger while the
// first is in flight is rejected instead of queued.
type SaveGuard struct {
	busy atomic.Bool
}

// Run calls fn unless another Run is in progress, in which case it returns
// ErrSaveInProgress without calling fn.
func (g *SaveGuard) Run(fn func() error) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrSaveInProgress
	}
	defer g.busy.Store(false)
	return fn()
}

// Busy reports whether a save is running.
func (g *SaveGuard) Busy() bool {
	return g.busy.Load()
}
