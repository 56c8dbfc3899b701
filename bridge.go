package keychainbridge

import "sync"

// ReleaseFunc frees foreign-owned memory produced by a specific foreign
// call. Entry points that return caller-freed allocations (attribute lists
// and raw item data) hand one of these back alongside the views; the caller
// must invoke it exactly once, after all views into the allocation are done.
//
// The bridge never frees automatically: structurally identical allocations
// come from different entry points that require different matching free
// calls, so tying release to a view's lifetime would risk freeing with the
// wrong function. A ReleaseFunc is always bound to the one correct free call
// for the allocation it covers.
//
// Calling a ReleaseFunc a second time is a no-op returning nil.
type ReleaseFunc func() error

// NopRelease is a ReleaseFunc for results that carry no caller-freed
// memory. It always returns nil.
func NopRelease() error { return nil }

// ReleaseOnce wraps a free call so that only the first invocation runs.
// Entry-point wrappers use it to build the tokens they hand out.
func ReleaseOnce(free func() error) ReleaseFunc {
	var once sync.Once
	return func() error {
		var err error
		once.Do(func() { err = free() })
		return err
	}
}
