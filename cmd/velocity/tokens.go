package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/velocity-lang/velocity/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a velocity file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	toks, err := lexer.Scan(args[0], string(data))
	if err != nil {
		return report(cmd.ErrOrStderr(), err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, t := range toks {
		fmt.Fprintf(w, "%s\t%s\t%q\n", t.Span, t.Kind, t.Text)
	}
	return w.Flush()
}
