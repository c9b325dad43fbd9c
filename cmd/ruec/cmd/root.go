package cmd

import (
	"fmt"
	"os"

	u "github.com/araddon/gou"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
	// GitCommit is set by build flags.
	GitCommit = "unknown"

	// verbose gates the Infof logging wired into each subcommand.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "ruec",
	Short:   "Rue front-end debugging tool",
	Long:    `ruec exposes the Rue lexer and parser for inspection: tokenize a file, dump its concrete syntax tree, or see a rendered diagnostic.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ruec version %%s\nCommit: %s\n", GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage (read, lex, parse) as it runs")
}

// logStage reports a pipeline stage via gou's leveled logger when -v/--verbose
// is set; otherwise it is silent. Grounded on qlbridge's own expr parser
// logging its stage transitions through the same u.Infof/u.Debugf calls.
func logStage(format string, args ...any) {
	if !verbose {
		return
	}
	u.Infof(format, args...)
}

func readInput(evalExpr string, args []string) (src []byte, filename string, err error) {
	if evalExpr != "" {
		return []byte(evalExpr), "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return content, args[0], nil
	}
	return nil, "", fmt.Errorf("either provide a file path or use -e for inline source")
}
