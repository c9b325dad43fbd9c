package cmd

import (
	"fmt"

	rue "github.com/Rigidity/rue-lang"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Rue source file",
	Long: `Tokenize a Rue program and print the resulting tokens.

Examples:
  ruec lex script.rue
  ruec lex -e "val x = 5;"
  ruec lex --show-pos script.rue`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show byte spans alongside each token")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}
	logStage("lexing %d bytes from %s", len(src), filename)

	tokens, lexErr := rue.Lex(src)
	if lexErr != nil {
		return fmt.Errorf("%s", rue.RenderError(lexErr, filename, src))
	}
	logStage("lexed %d tokens from %s", len(tokens), filename)

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok rue.Token) {
	if lexShowPos {
		fmt.Printf("%-24s %-12q @[%d:%d)\n", tok.Kind, tok.Text, tok.Start, tok.Stop)
		return
	}
	fmt.Printf("%-24s %q\n", tok.Kind, tok.Text)
}
