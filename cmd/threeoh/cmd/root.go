package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/go-threeoh/internal/lexicon"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	language   string
	lexiconDir string
)

var rootCmd = &cobra.Command{
	Use:   "threeoh",
	Short: "3.0 interpreter",
	Long: `go-threeoh is a Go implementation of the 3.0 programming language.

A 3.0 program is a sequence of whitespace-separated natural-language words.
Statements are recognized by how close a word's numeric value is to a known
alias, functions by fuzzy spelling over the lexicon's character set, and
every value is a word whose numeric meaning comes from the lexicon's digit
characters. The lexicon file is what turns an arbitrary vocabulary into a
programming language.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "english", "lexicon language name")
	rootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon-dir", "testdata", "directory holding <language>_lex.txt files")
}

// loadLexicon resolves and loads the selected lexicon file.
func loadLexicon() (*lexicon.Lexicon, error) {
	path := filepath.Join(lexiconDir, language+"_lex.txt")
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return lex, nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
