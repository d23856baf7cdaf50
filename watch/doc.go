// Package watch reruns a build whenever velocity sources change.
//
// A Watcher walks a project root, registers every directory with fsnotify,
// and filters the resulting event stream through doublestar globs: by
// default everything matching **/*.vel, minus VCS metadata and editor
// leftovers. Events are debounced, so a burst of writes (an editor saving,
// a branch switch rewriting the tree) collapses into one handler call that
// receives the sorted set of changed paths.
//
// The handler runs on the watch loop itself. A slow build therefore delays
// the next one instead of overlapping it; changes that land mid-build are
// queued for the following call.
//
//	w, err := watch.New(root, func(ctx context.Context, changed []string) error {
//		_, err := compiler.Compile(ctx, entry)
//		return err
//	})
//	if err != nil {
//		return err
//	}
//	return w.Run(ctx) // blocks until ctx is cancelled
package watch
