package cmd

import (
	"fmt"

	rue "github.com/Rigidity/rue-lang"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Rue source and dump its concrete syntax tree",
	Long: `Parse a Rue program and print its concrete syntax tree using the
debug pretty-printer: single-child nodes collapse to their child, otherwise
each node prints as "Kind (start-stop)" with children indented below it.

Examples:
  ruec parse script.rue
  ruec parse -e "val x = 5;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}
	logStage("parsing %d bytes from %s", len(src), filename)

	tree, lexErr, parseErr := rue.ParseSource(src, nil, nil)
	if lexErr != nil {
		return fmt.Errorf("%s", rue.RenderError(lexErr, filename, src))
	}
	if parseErr != nil {
		return fmt.Errorf("%s", rue.RenderError(parseErr, filename, src))
	}
	logStage("parsed %s into a %s root", filename, tree.Kind)

	fmt.Println(rue.Stringify(tree))
	return nil
}
