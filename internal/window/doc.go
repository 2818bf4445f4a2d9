// Package window owns the terminal surface the diorama is drawn on.
//
// [Window] wraps a tcell screen with curses-like primitives: Erase clears the back
// buffer, Print writes text at a position, Refresh flushes to the terminal, and
// ReadKey blocks for at most the configured timeout. The package also defines the
// backend-neutral [Key] and [ColorPair] types shared with other surfaces.
//
// # Lifetime
//
// A Window is opened once and must be closed exactly once; Close is idempotent and
// every operation after it fails with [ErrClosed].
package window
