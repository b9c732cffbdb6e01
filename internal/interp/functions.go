package interp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-threeoh/internal/ast"
	"github.com/cwbudde/go-threeoh/internal/lexicon"
)

// call evaluates one function application. Arguments are evaluated exactly
// once, in order; and/or return one of the evaluated operand words rather
// than a canonical truth constant.
func (in *Interpreter) call(c *ast.Call) string {
	switch c.Fn {
	case ast.FuncAdd:
		return in.sys().Add(in.eval(c.Args[0]), in.eval(c.Args[1]))
	case ast.FuncSubtract:
		return in.sys().Subtract(in.eval(c.Args[0]), in.eval(c.Args[1]))
	case ast.FuncMultiply:
		return in.sys().Multiply(in.eval(c.Args[0]), in.eval(c.Args[1]))
	case ast.FuncDivide:
		return in.sys().Divide(in.eval(c.Args[0]), in.eval(c.Args[1]))
	case ast.FuncModulus:
		return in.sys().Modulus(in.eval(c.Args[0]), in.eval(c.Args[1]))
	case ast.FuncPower:
		return in.sys().Power(in.eval(c.Args[0]), in.eval(c.Args[1]))

	case ast.FuncAnd:
		left, right := in.eval(c.Args[0]), in.eval(c.Args[1])
		x, y := in.sys().Num(left), in.sys().Num(right)
		switch {
		case x != 0 && y != 0:
			return left
		case x != 0:
			return right
		default:
			return left
		}
	case ast.FuncOr:
		left, right := in.eval(c.Args[0]), in.eval(c.Args[1])
		switch {
		case in.sys().Num(left) != 0:
			return left
		case in.sys().Num(right) != 0:
			return right
		default:
			return left
		}
	case ast.FuncNot:
		value := in.eval(c.Args[0])
		return in.truth(value != "" && in.sys().Num(value) != 0)

	case ast.FuncEqual:
		return in.truth(in.sys().Num(in.eval(c.Args[0])) == in.sys().Num(in.eval(c.Args[1])))
	case ast.FuncGreater:
		return in.truth(in.sys().Num(in.eval(c.Args[0])) > in.sys().Num(in.eval(c.Args[1])))
	case ast.FuncLess:
		return in.truth(in.sys().Num(in.eval(c.Args[0])) < in.sys().Num(in.eval(c.Args[1])))

	case ast.FuncConcatenate:
		return in.eval(c.Args[0]) + in.eval(c.Args[1])
	case ast.FuncLeft:
		text, n := in.textSplit(c)
		return string([]rune(text)[:n])
	case ast.FuncRight:
		text, n := in.textSplit(c)
		return string([]rune(text)[n:])

	case ast.FuncInput:
		fmt.Fprintf(in.output, "%s? ", in.eval(c.Args[0]))
		line, _ := in.input.ReadString('\n')
		return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

	case ast.FuncTrue, ast.FuncFalse, ast.FuncPeriod, ast.FuncSpace:
		word, _ := lexicon.ConstantWord(c.Fn)
		return word
	}
	panic(fmt.Sprintf("interp: no handler for function %q", c.Fn))
}

// textSplit evaluates a left/right call's operands and reduces the length
// word to a split point within the text, wrapping modulo length plus one so
// the whole text is reachable.
func (in *Interpreter) textSplit(c *ast.Call) (string, int) {
	text := in.eval(c.Args[0])
	length := in.sys().Int(in.eval(c.Args[1]))
	n := floorMod(length, int64(len([]rune(text))+1))
	return text, int(n)
}

// truth maps a condition onto the language's truth words.
func (in *Interpreter) truth(ok bool) string {
	if ok {
		return lexicon.TrueWord
	}
	return lexicon.FalseWord
}
