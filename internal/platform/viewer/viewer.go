// Package viewer opens generated artifacts in the host's default viewer.
//
// Only some platforms support it; elsewhere Default returns a no-op, so
// callers never branch on the operating system.
package viewer

import "context"

// Opener hands a file to an external viewer.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Nop is an Opener that does nothing.
type Nop struct{}

// Open returns nil.
func (Nop) Open(context.Context, string) error { return nil }

// Default returns the opener for the current platform.
func Default() Opener {
	return platformOpener()
}

// OpenAll hands every path to o, ignoring failures. It stops early only when
// ctx is done.
func OpenAll(ctx context.Context, o Opener, paths ...string) {
	if o == nil {
		return
	}
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		_ = o.Open(ctx, path)
	}
}
