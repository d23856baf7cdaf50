// Package watch: sentinel error set.
// Construction problems (bad globs, unreadable roots) come back wrapped with
// positional detail; the sentinels here cover the lifecycle misuses.

package watch

import "errors"

var (
	// ErrNilHandler indicates New was called without a change handler.
	ErrNilHandler = errors.New("watch: nil handler")

	// ErrAlreadyRunning indicates a second call to Run on the same Watcher.
	ErrAlreadyRunning = errors.New("watch: already running")

	// ErrClosed indicates the underlying notifier shut down while Run was
	// still live.
	ErrClosed = errors.New("watch: notifier closed")
)
