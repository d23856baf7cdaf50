package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocity-lang/velocity/watch"
)

// collect returns a handler that forwards every invocation's changed list
// into the returned channel.
func collect() (watch.Handler, <-chan []string) {
	calls := make(chan []string, 8)
	return func(_ context.Context, changed []string) error {
		calls <- changed
		return nil
	}, calls
}

// start runs w in the background and returns a stop func that cancels it and
// waits for a clean exit.
func start(t *testing.T, w *watch.Watcher) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop after cancellation")
		}
	}
}

func wantCall(t *testing.T, calls <-chan []string) []string {
	t.Helper()
	select {
	case changed := <-calls:
		return changed
	case <-time.After(5 * time.Second):
		t.Fatal("no handler call")
		return nil
	}
}

func TestWatcher_FiresOnSourceChange(t *testing.T) {
	dir := t.TempDir()
	handler, calls := collect()
	w, err := watch.New(dir, handler, watch.WithDebounce(30*time.Millisecond))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.vel"), []byte("fn main() {}\n"), 0o644))

	assert.Equal(t, []string{"main.vel"}, wantCall(t, calls))
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	handler, calls := collect()
	w, err := watch.New(dir, handler, watch.WithDebounce(150*time.Millisecond))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	for _, name := range []string{"c.vel", "a.vel", "b.vel"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("fn f() {}\n"), 0o644))
	}

	assert.Equal(t, []string{"a.vel", "b.vel", "c.vel"}, wantCall(t, calls),
		"one sorted call for the whole burst")
	select {
	case extra := <-calls:
		t.Errorf("burst produced a second call: %v", extra)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_FiltersNonMatching(t *testing.T) {
	dir := t.TempDir()
	handler, calls := collect()
	w, err := watch.New(dir, handler, watch.WithDebounce(30*time.Millisecond))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.vel"), []byte("fn main() {}\n"), 0o644))

	assert.Equal(t, []string{"main.vel"}, wantCall(t, calls),
		"only velocity sources should reach the handler")
}

func TestWatcher_SeesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	handler, calls := collect()
	w, err := watch.New(dir, handler, watch.WithDebounce(30*time.Millisecond))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	sub := filepath.Join(dir, "lib")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the loop a moment to register the new directory before writing
	// into it; events from an unregistered directory are invisible.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "geometry.vel"), []byte("fn area() {}\n"), 0o644))

	assert.Equal(t, []string{filepath.Join("lib", "geometry.vel")}, wantCall(t, calls))
}

func TestWatcher_HonorsIgnores(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "scratch"), 0o755))

	handler, calls := collect()
	w, err := watch.New(dir, handler,
		watch.WithDebounce(30*time.Millisecond),
		watch.WithIgnore("**/scratch/**"))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch", "tmp.vel"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.vel"), []byte("fn main() {}\n"), 0o644))

	assert.Equal(t, []string{"keep.vel"}, wantCall(t, calls))
}

func TestWatcher_CustomPatterns(t *testing.T) {
	dir := t.TempDir()
	handler, calls := collect()
	w, err := watch.New(dir, handler,
		watch.WithDebounce(30*time.Millisecond),
		watch.WithPatterns("**/*.toml"))
	require.NoError(t, err)
	stop := start(t, w)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.vel"), []byte("fn main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "velocity.toml"), []byte("[build]\n"), 0o644))

	assert.Equal(t, []string{"velocity.toml"}, wantCall(t, calls))
}

func TestNew_RejectsBadPattern(t *testing.T) {
	handler := func(context.Context, []string) error { return nil }

	_, err := watch.New(t.TempDir(), handler, watch.WithPatterns("src/[.vel"))
	assert.ErrorContains(t, err, `invalid pattern "src/[.vel"`)

	_, err = watch.New(t.TempDir(), handler, watch.WithIgnore("[["))
	assert.ErrorContains(t, err, "invalid pattern")
}

func TestNew_RejectsNilHandler(t *testing.T) {
	_, err := watch.New(t.TempDir(), nil)
	assert.ErrorIs(t, err, watch.ErrNilHandler)
}

func TestNew_RejectsMissingRoot(t *testing.T) {
	handler := func(context.Context, []string) error { return nil }
	_, err := watch.New(filepath.Join(t.TempDir(), "absent"), handler)
	assert.ErrorContains(t, err, "walk")
}

func TestRun_RejectsSecondCall(t *testing.T) {
	handler := func(context.Context, []string) error { return nil }
	w, err := watch.New(t.TempDir(), handler)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx), "cancellation is a clean stop")
	assert.ErrorIs(t, w.Run(ctx), watch.ErrAlreadyRunning)
}

func TestDefaultIgnores_IsACopy(t *testing.T) {
	got := watch.DefaultIgnores()
	require.Contains(t, got, "**/.git/**")

	got[0] = "mutated"
	assert.Contains(t, watch.DefaultIgnores(), "**/.git/**")
}
