package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/velocity-lang/velocity/compiler"
	"github.com/velocity-lang/velocity/watch"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rebuild velocity sources whenever they change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", 0, "quiet period before a rebuild (default from config, else 300ms)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// buildFiles compiles each path (relative to root), rendering rather
	// than returning failures so one broken file never stops the loop.
	buildFiles := func(ctx context.Context, rels []string) {
		for _, rel := range rels {
			path := filepath.Join(root, rel)
			if _, statErr := os.Stat(path); statErr != nil {
				continue // deleted since the event fired; nothing to build
			}
			res, buildErr := compiler.Compile(ctx, path, buildOptions(path)...)
			if buildErr != nil {
				if buildErr = report(errOut, buildErr); buildErr != nil {
					fmt.Fprintln(errOut, styleErr.Render("✗"), rel+":", buildErr)
				}
				continue
			}
			for _, o := range res.Outputs {
				fmt.Fprintln(out, styleOK.Render("✓"), o)
			}
		}
	}

	rebuild := func(ctx context.Context, changed []string) error {
		fmt.Fprintf(out, "\n%s %s\n", styleInfo.Render("→"), summarizeChanged(changed))
		buildFiles(ctx, changed)
		return nil
	}

	// Build everything once up front; the watcher only reports deltas.
	entries, err := doublestar.FilepathGlob(filepath.ToSlash(root) + "/**/*.vel")
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, styleWarn.Render("no velocity sources under"), root)
	}
	rels := make([]string, 0, len(entries))
	for _, e := range entries {
		if rel, relErr := filepath.Rel(root, e); relErr == nil {
			rels = append(rels, rel)
		}
	}
	buildFiles(cmd.Context(), rels)

	debounce := flagDebounce
	if debounce <= 0 {
		debounce = time.Duration(userCfg.GetInt("watch.debounce_ms")) * time.Millisecond
	}
	w, err := watch.New(root, rebuild,
		watch.WithDebounce(debounce),
		watch.WithStderr(errOut),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styleMuted.Render("watching"), root, styleMuted.Render("(Ctrl-C to stop)"))
	return w.Run(cmd.Context())
}

func summarizeChanged(changed []string) string {
	if len(changed) == 1 {
		return changed[0] + " changed"
	}
	return fmt.Sprintf("%d files changed", len(changed))
}
