// Package parser turns raw source text into statement trees.
//
// A 3.0 source file is nothing but whitespace-separated words. The first
// word of each statement resolves to a statement keyword by numeric
// distance, so any word begins some statement. Argument words resolve
// against the lexicon's function table by fuzzy matching; a word that
// matches a function opens a nested application with that function's fixed
// arity, and any other word is a leaf.
package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-threeoh/internal/ast"
	"github.com/cwbudde/go-threeoh/internal/lexicon"
)

// errUnderflow signals that the token stream ran out while filling a
// statement's argument slots.
var errUnderflow = errors.New("parser: out of tokens")

// Parser builds programs against one lexicon.
type Parser struct {
	lex *lexicon.Lexicon
}

// New creates a Parser using the given lexicon for keyword resolution.
func New(lex *lexicon.Lexicon) *Parser {
	return &Parser{lex: lex}
}

// ParseFile reads a source file and parses it.
func (p *Parser) ParseFile(path string) ([]ast.Stmt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}
	return p.Parse(string(data)), nil
}

// Parse builds the statement list for one source text. Parsing cannot fail:
// running out of tokens mid-statement discards the partial statement and
// ends the program with a bare exit, so execution terminates cleanly.
func (p *Parser) Parse(source string) []ast.Stmt {
	tokens := strings.Fields(strings.ToLower(source))
	var program []ast.Stmt
	pos := 0
	next := func() (string, bool) {
		if pos >= len(tokens) {
			return "", false
		}
		word := tokens[pos]
		pos++
		return word, true
	}

	for pos < len(tokens) {
		word, _ := next()
		kind := p.lex.StatementOf(word)
		args, err := p.arguments(kind.Arity(), next)
		if err != nil {
			program = append(program, ast.Stmt{Kind: ast.StmtExit})
			break
		}
		program = append(program, ast.Stmt{Kind: kind, Args: args})
	}
	return program
}

// arguments consumes n argument expressions from the token stream,
// recursing into nested function applications.
func (p *Parser) arguments(n int, next func() (string, bool)) ([]ast.Expr, error) {
	args := make([]ast.Expr, 0, n)
	for range n {
		word, ok := next()
		if !ok {
			return nil, errUnderflow
		}
		if fn, isFunc := p.lex.FunctionOf(word); isFunc {
			sub, err := p.arguments(fn.Arity(), next)
			if err != nil {
				return nil, err
			}
			args = append(args, &ast.Call{Fn: fn, Args: sub})
		} else {
			args = append(args, ast.Word(word))
		}
	}
	return args, nil
}
