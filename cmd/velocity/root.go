package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is stamped by release builds via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagNoColor bool

	userCfg = viper.New()
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "velocity"})
)

var rootCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Compile and run velocity programs",
	Long: `velocity compiles .vel sources to Go and runs the result through
the Go toolchain. A program is one file plus the sibling files it imports;
the generated code leans on the runtime packages (seq, format, union,
vmath) for sequences, templates, tagged unions and math.

Builds follow the nearest velocity.toml manifest, and per-user defaults
live in $XDG_CONFIG_HOME/velocity/config.toml.

Examples:
  velocity build main.vel     Write main.go next to the source
  velocity run main.vel       Compile and execute
  velocity check main.vel     Diagnostics only, no output files
  velocity tokens main.vel    Dump the token stream
  velocity watch .            Rebuild on every change`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI styling")
	rootCmd.AddCommand(buildCmd, runCmd, checkCmd, tokensCmd, watchCmd)
}

// initConfig runs after flag parsing and before any command body.
func initConfig() {
	userCfg = loadUserConfig()
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	if flagNoColor || !userCfg.GetBool("ui.color") {
		colorEnabled = false
		disableStyles()
	}
}

// execute runs the CLI through fang for styled help, errors and version
// output; an interrupt cancels the context every command sees.
func execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
