package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/velocity-lang/velocity/compiler"
)

var runCmd = &cobra.Command{
	Use:   "run <file> [args...]",
	Short: "Compile a velocity program and execute it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProgram,
}

func init() {
	// Everything after the file belongs to the program, flags included.
	runCmd.Flags().SetInterspersed(false)
}

func runProgram(cmd *cobra.Command, args []string) error {
	opts := append(buildOptions(args[0]),
		compiler.WithRunArgs(args[1:]...),
		compiler.WithStdout(cmd.OutOrStdout()),
		compiler.WithStderr(cmd.ErrOrStderr()),
	)
	if err := compiler.Run(cmd.Context(), args[0], opts...); err != nil {
		// The program's own failure is already on stderr; just carry its
		// exit code instead of wrapping it in another error line.
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.ExitCode())
		}
		return report(cmd.ErrOrStderr(), err)
	}
	return nil
}
