package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/go-threeoh/internal/interp"
	"github.com/cwbudde/go-threeoh/internal/parser"
	"github.com/spf13/cobra"
)

var testsDir string

// testCases is the built-in program list, in presentation order.
var testCases = []struct {
	name  string
	title string
}{
	{"hello_plain", "Hello World"},
	{"hello_one", "Hello World on one line"},
	{"hello_obfus", "Hello World obfuscated"},
	{"assign", "Assign and print"},
	{"count", "Counting loop"},
	{"fib", "Fibonacci numbers"},
	{"jump", "Go and return"},
	{"quote", "A quote"},
}

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Run the built-in example programs",
	Long: `Run each of the built-in example programs, printing its title,
its parsed statement trees, and its output.`,
	Args: cobra.NoArgs,
	RunE: runTests,
}

func init() {
	rootCmd.AddCommand(testsCmd)

	testsCmd.Flags().StringVar(&testsDir, "dir", filepath.Join("testdata", "tests"), "directory holding the example programs")
}

func runTests(_ *cobra.Command, _ []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	for _, tc := range testCases {
		fmt.Printf("\n-------------------\n\n%s\n\n", tc.title)

		path := filepath.Join(testsDir, tc.name+".txt")
		program, err := parser.New(lex).ParseFile(path)
		if err != nil {
			exitWithError("%v", err)
		}
		for _, stmt := range program {
			fmt.Println(stmt.String())
		}
		fmt.Println()

		in := interp.New(lex, os.Stdout, os.Stdin)
		in.Load(tc.name, program)
		if err := in.Execute(tc.name); err != nil {
			return err
		}
	}
	return nil
}
