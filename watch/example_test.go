package watch_test

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/velocity-lang/velocity/watch"
)

// Scenario: rebuild a project whenever a velocity source under ./src
// changes, until the user interrupts.
func Example() {
	rebuild := func(ctx context.Context, changed []string) error {
		fmt.Println("rebuilding:", changed)
		return nil
	}

	w, err := watch.New("./src", rebuild, watch.WithDebounce(200*time.Millisecond))
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_ = w.Run(ctx) // blocks; Ctrl-C returns nil
}
