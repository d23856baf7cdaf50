package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultPattern selects the files whose changes trigger the handler when no
// explicit patterns are configured.
const DefaultPattern = "**/*.vel"

// defaultDebounce is the quiet period after the last event before the
// handler fires. Editor save sequences (write a temp file, rename it over
// the target) collapse into a single invocation.
const defaultDebounce = 300 * time.Millisecond

// defaultIgnores filters out paths that change often and never hold
// velocity sources.
var defaultIgnores = []string{
	"**/.git/**",
	"**/*.swp",
	"**/*~",
	"**/.DS_Store",
}

// interesting are the event kinds worth reacting to; everything else
// (attribute changes, mostly) is noise.
const interesting = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Handler receives the deduplicated, sorted list of changed paths, relative
// to the watched root. A returned error is reported and watching continues.
type Handler func(ctx context.Context, changed []string) error

// Watcher reruns a handler whenever matching files under a root change.
// Build one with New, then call Run exactly once.
type Watcher struct {
	root     string
	handler  Handler
	patterns []string
	ignores  []string
	debounce time.Duration
	stderr   io.Writer

	fsw     *fsnotify.Watcher
	started atomic.Bool
}

// Option adjusts a Watcher before it starts.
type Option func(*Watcher)

// WithPatterns replaces the default **/*.vel glob set.
func WithPatterns(patterns ...string) Option {
	return func(w *Watcher) { w.patterns = patterns }
}

// WithIgnore adds ignore globs on top of the built-in set.
func WithIgnore(patterns ...string) Option {
	return func(w *Watcher) { w.ignores = append(w.ignores, patterns...) }
}

// WithDebounce sets the coalescing window. Zero or negative keeps the
// default of 300ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithStderr redirects warning output, os.Stderr by default.
func WithStderr(out io.Writer) Option {
	return func(w *Watcher) { w.stderr = out }
}

// New builds a Watcher rooted at dir and registers every directory under it
// with the notifier. Glob patterns are validated here so a typo fails at
// startup instead of silently matching nothing.
func New(dir string, handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve root: %w", err)
	}

	w := &Watcher{
		root:     root,
		handler:  handler,
		patterns: []string{DefaultPattern},
		ignores:  slices.Clone(defaultIgnores),
		debounce: defaultDebounce,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, pat := range slices.Concat(w.patterns, w.ignores) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("watch: invalid pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := w.addTree(); err != nil {
		_ = w.fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run watches until ctx is cancelled, which is the normal way to stop and
// returns nil. Any other return is a notifier failure. The handler runs on
// this goroutine, so invocations never overlap; events arriving mid-build
// are queued for the next one.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer func() { _ = w.fsw.Close() }()

	// The debounce timer does not touch pending itself. It drops a token
	// in fire, and the loop below drains the set, so all state stays on
	// one goroutine.
	pending := make(map[string]struct{})
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	schedule := func() {
		if timer == nil {
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
			return
		}
		timer.Reset(w.debounce)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fire:
			if len(pending) == 0 {
				continue
			}
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			if err := w.handler(ctx, changed); err != nil {
				fmt.Fprintf(w.stderr, "watch: %v\n", err)
			}

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return ErrClosed
			}
			rel := w.rel(evt.Name)
			if w.ignored(rel) {
				continue
			}
			// Register created directories before pattern filtering; a
			// fresh directory matches no file glob but files written into
			// it later must still be seen.
			if evt.Has(fsnotify.Create) {
				w.addCreated(evt.Name)
			}
			if evt.Op&interesting == 0 || !w.matches(rel) {
				continue
			}
			pending[rel] = struct{}{}
			schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrClosed
			}
			fmt.Fprintf(w.stderr, "watch: %v\n", err)
		}
	}
}

// addTree registers every non-ignored directory under the root. Directories
// are watched wholesale and the glob patterns filter events, not
// registrations, so changing patterns never needs a re-walk.
func (w *Watcher) addTree() error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == w.root {
				return fmt.Errorf("watch: walk %s: %w", w.root, walkErr)
			}
			// Unreadable subdirectories are common (permissions) and
			// should not take the whole watcher down.
			fmt.Fprintf(w.stderr, "watch: skipping %s: %v\n", path, walkErr)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if rel := w.rel(path); rel != "." && w.ignoredDir(rel) {
			return fs.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: watch %s: %w", path, err)
		}
		return nil
	})
}

// addCreated starts watching a directory created after the initial walk, so
// files written inside it are not missed.
func (w *Watcher) addCreated(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if w.ignoredDir(w.rel(path)) {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		fmt.Fprintf(w.stderr, "watch: watch %s: %v\n", path, err)
	}
}

// rel maps an event path back under the root; paths that cannot be made
// relative pass through unchanged.
func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

// ignored reports whether rel matches any ignore glob.
func (w *Watcher) ignored(rel string) bool {
	norm := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if ok, _ := doublestar.Match(pat, norm); ok {
			return true
		}
	}
	return false
}

// ignoredDir is the directory flavor of ignored: "**/.git/**" does not match
// ".git" itself, so the trailing-slash form is tried too before descending.
func (w *Watcher) ignoredDir(rel string) bool {
	return w.ignored(rel) || w.ignored(rel+"/")
}

// matches reports whether rel matches at least one watch glob. An empty
// pattern list matches everything.
func (w *Watcher) matches(rel string) bool {
	if len(w.patterns) == 0 {
		return true
	}
	norm := filepath.ToSlash(rel)
	for _, pat := range w.patterns {
		if ok, _ := doublestar.Match(pat, norm); ok {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore globs.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}
