package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/serpent-tools/serpent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Generate flowcharts from Python source code",
	Long: `serpent turns Python source files into Graphviz flowcharts.

It parses each file, follows the control flow statement by statement
(branches, loops, exceptions) and emits a diagram in DOT form, or as
JSON, YAML or a standalone HTML page. With Graphviz installed the
charts can be rasterized to SVG or PNG directly.`,
	Version: version.Short(),
}

// verbose enables extra diagnostics on stderr
var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print extra diagnostics to stderr")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewThemesCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
