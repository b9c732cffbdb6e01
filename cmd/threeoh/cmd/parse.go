package cmd

import (
	"fmt"

	"github.com/cwbudde/go-threeoh/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a 3.0 program and display the statement trees",
	Long: `Parse one 3.0 program and print each statement as a bracketed
prefix tree, one line of the program per line of output. Useful for seeing
how the lexicon resolved each word before running anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	program, err := parser.New(lex).ParseFile(args[0])
	if err != nil {
		return err
	}
	for _, stmt := range program {
		fmt.Println(stmt.String())
	}
	return nil
}
