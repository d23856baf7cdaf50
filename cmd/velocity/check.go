package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velocity-lang/velocity/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and resolve a program, reporting diagnostics only",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := compiler.Check(cmd.Context(), args[0]); err != nil {
		return report(cmd.ErrOrStderr(), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("ok"), args[0])
	return nil
}
