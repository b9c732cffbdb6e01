package cmd

import (
	"os"
	"os/signal"

	"github.com/cwbudde/go-threeoh/internal/interp"
	"github.com/cwbudde/go-threeoh/internal/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a 3.0 program file",
	Long: `Parse and execute one 3.0 program.

The program file is plain text; only its whitespace-separated words matter.

Examples:
  # Run a program with the default english lexicon
  threeoh run testdata/tests/hello_plain.txt

  # Run against another lexicon
  threeoh run --language pirate --lexicon-dir /usr/share/threeoh program.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runProgram(_ *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	name := args[0]
	program, err := parser.New(lex).ParseFile(name)
	if err != nil {
		return err
	}

	in := interp.New(lex, os.Stdout, os.Stdin)
	in.Load(name, program)

	// The interrupt is caught here at the driver only; it ends the run
	// cleanly with exit code 0 while the core stays free of traps.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	done := make(chan error, 1)
	go func() { done <- in.Execute(name) }()
	select {
	case err := <-done:
		return err
	case <-sig:
		return nil
	}
}
