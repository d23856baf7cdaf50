package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velocity-lang/velocity/compiler"
)

var (
	flagOutputDir string
	flagPackage   string
	flagNoFormat  bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile a velocity file and its imports to Go source",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "directory for generated files (default: next to each source)")
	buildCmd.Flags().StringVar(&flagPackage, "package", "", "package clause for generated files")
	buildCmd.Flags().BoolVar(&flagNoFormat, "no-format", false, "skip gofmt on the generated source")
}

func runBuild(cmd *cobra.Command, args []string) error {
	res, err := compiler.Compile(cmd.Context(), args[0], buildOptions(args[0])...)
	if err != nil {
		return report(cmd.ErrOrStderr(), err)
	}
	for _, out := range res.Outputs {
		fmt.Fprintln(cmd.OutOrStdout(), styleOK.Render("wrote"), out)
	}
	return nil
}

// buildOptions turns the build flags and the user configuration into
// compiler options. Flags always win; the configured output_dir applies
// only when the project manifest leaves it unset.
func buildOptions(src string) []compiler.Option {
	var opts []compiler.Option
	dir := flagOutputDir
	if dir == "" {
		dir = fallbackOutputDir(src)
	}
	if dir != "" {
		opts = append(opts, compiler.WithOutputDir(dir))
	}
	if flagPackage != "" {
		opts = append(opts, compiler.WithPackageName(flagPackage))
	}
	if flagNoFormat {
		opts = append(opts, compiler.WithNoFormat())
	}
	return opts
}
