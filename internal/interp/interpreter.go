// Package interp executes parsed 3.0 programs.
//
// An Interpreter owns a lexicon and a registry of parsed programs. Each
// execution walks one program's statement list with a program counter, a
// return stack fed by go statements, and a variable scope copied from the
// lexicon's constants. Statements mutate that state; expressions evaluate
// to words.
//
// The interpreter performs no error trapping of its own: domain faults in
// word arithmetic surface as runtime panics, exactly as unchecked host
// arithmetic would (the CLI driver decides how much of that to catch).
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/go-threeoh/internal/ast"
	"github.com/cwbudde/go-threeoh/internal/fuzzy"
	"github.com/cwbudde/go-threeoh/internal/lexicon"
	"github.com/cwbudde/go-threeoh/internal/number"
)

// Interpreter executes 3.0 statement trees and manages the runtime state.
type Interpreter struct {
	lex      *lexicon.Lexicon
	programs map[string][]ast.Stmt
	output   io.Writer
	input    *bufio.Reader

	// Per-execution state, reset by Execute.
	program []ast.Stmt
	pc      int
	returns []int
	vars    *fuzzy.Map
}

// New creates an Interpreter over one lexicon. Output from print and
// calculate goes to output; the input function reads lines from input.
func New(lex *lexicon.Lexicon, output io.Writer, input io.Reader) *Interpreter {
	return &Interpreter{
		lex:      lex,
		programs: make(map[string][]ast.Stmt),
		output:   output,
		input:    bufio.NewReader(input),
	}
}

// Load registers a parsed program under a name.
func (in *Interpreter) Load(name string, program []ast.Stmt) {
	in.programs[name] = program
}

// Program returns the registered statement list for a name.
func (in *Interpreter) Program(name string) ([]ast.Stmt, bool) {
	program, ok := in.programs[name]
	return program, ok
}

// Execute runs a registered program to completion. The variable scope
// starts as a copy of the lexicon's constants, so executions are
// independent.
func (in *Interpreter) Execute(name string) error {
	program, ok := in.programs[name]
	if !ok {
		return fmt.Errorf("interp: unknown program %q", name)
	}
	in.program = program
	in.pc = 0
	in.returns = in.returns[:0]
	in.vars = in.lex.NewScope()

	if len(in.program) == 0 {
		return nil
	}
	for {
		line := in.program[in.pc]
		in.pc++
		in.exec(&line)
		if in.pc >= len(in.program) {
			break
		}
	}
	return nil
}

// exec dispatches one statement.
func (in *Interpreter) exec(line *ast.Stmt) {
	switch line.Kind {
	case ast.StmtAssign:
		name, ok := line.Args[0].(ast.Word)
		if !ok {
			panic(fmt.Sprintf("interp: assign target %s is not a word", line.Args[0]))
		}
		_ = in.vars.Insert(string(name), in.eval(line.Args[1]))
	case ast.StmtCalculate:
		word := in.eval(line.Args[0])
		frac := in.sys().Fraction(word)
		if frac.Num == 0 {
			fmt.Fprintln(in.output, frac.Whole)
		} else {
			fmt.Fprintln(in.output, in.sys().Float(word))
		}
	case ast.StmtExit:
		in.pc = len(in.program)
	case ast.StmtGo:
		target := in.sys().Int(in.eval(line.Args[0]))
		in.returns = append(in.returns, in.pc)
		in.pc = int(floorMod(target-1, int64(len(in.program))))
	case ast.StmtIf:
		if in.sys().Num(in.eval(line.Args[0])) == 0 {
			in.pc++
		}
	case ast.StmtPrint:
		fmt.Fprintln(in.output, in.eval(line.Args[0]))
	case ast.StmtReturn:
		if n := len(in.returns); n > 0 {
			in.pc = in.returns[n-1]
			in.returns = in.returns[:n-1]
		}
	default:
		panic(fmt.Sprintf("interp: no handler for statement %q", line.Kind))
	}
}

// eval determines the value of an expression. Applications dispatch to
// their function; a bare word resolves through the variable scope and
// falls back to itself, so unbound words are literals.
func (in *Interpreter) eval(expr ast.Expr) string {
	switch x := expr.(type) {
	case *ast.Call:
		return in.call(x)
	case ast.Word:
		if value, ok := in.vars.Lookup(string(x)); ok {
			return value
		}
		return string(x)
	}
	panic(fmt.Sprintf("interp: unknown expression node %T", expr))
}

func (in *Interpreter) sys() *number.System {
	return in.lex.System()
}

// floorMod is the mathematical modulus: the result takes the sign of the
// divisor, so negative go targets wrap back into the program.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
