package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-threeoh/internal/ast"
	"github.com/cwbudde/go-threeoh/internal/lexicon"
)

const testLexicon = `digits : abcdefghij
decimals : .
signs : -

assign : assign
calculate : calculate
exit : exit, stop
go : go
if : if
print : print
return : return

add : add
space : space
true : valid
`

func testParser(t *testing.T) *Parser {
	t.Helper()
	lex, err := lexicon.Load(strings.NewReader(testLexicon), "test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return New(lex)
}

// renderProgram flattens a program into one bracketed line per statement.
func renderProgram(program []ast.Stmt) string {
	lines := make([]string, len(program))
	for i, stmt := range program {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}

func TestParsePrograms(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "literal argument",
			source:   "print hello",
			expected: "[print hello]",
		},
		{
			name:     "nested function",
			source:   "assign x add b c",
			expected: "[assign x [add b c]]",
		},
		{
			name:     "zero arity function",
			source:   "print space",
			expected: "[print [space]]",
		},
		{
			name:     "deeply nested",
			source:   "calculate add add b c d",
			expected: "[calculate [add [add b c] d]]",
		},
		{
			name:     "several statements",
			source:   "print hello\nprint world\nstop",
			expected: "[print hello]\n[print world]\n[exit]",
		},
		{
			name:     "zero arity statements",
			source:   "return exit",
			expected: "[return]\n[exit]",
		},
		{
			name:     "uppercase source is lowered",
			source:   "PRINT Hello",
			expected: "[print hello]",
		},
		{
			name:     "fuzzy statement dispatch",
			source:   "sprint hello",
			expected: "[print hello]",
		},
		{
			name:     "fuzzy function dispatch",
			source:   "print adc b c",
			expected: "[print [add b c]]",
		},
	}
	p := testParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderProgram(p.Parse(tt.source))
			if got != tt.expected {
				t.Errorf("Parse(%q):\ngot  %s\nwant %s", tt.source, got, tt.expected)
			}
		})
	}
}

func TestParseUnderflow(t *testing.T) {
	p := testParser(t)
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "statement missing arguments",
			source:   "assign x",
			expected: "[exit]",
		},
		{
			name:     "nested function missing arguments",
			source:   "print add b",
			expected: "[exit]",
		},
		{
			name:     "complete statements survive truncation",
			source:   "print hello assign x",
			expected: "[print hello]\n[exit]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderProgram(p.Parse(tt.source))
			if got != tt.expected {
				t.Errorf("Parse(%q):\ngot  %s\nwant %s", tt.source, got, tt.expected)
			}
		})
	}
}

func TestParseEmptySource(t *testing.T) {
	p := testParser(t)
	if program := p.Parse("  \n\t "); len(program) != 0 {
		t.Errorf("Parse(blank) produced %d statements, want 0", len(program))
	}
}

func TestParseEveryWordStartsAStatement(t *testing.T) {
	p := testParser(t)
	// A word with no digit characters has value zero and lands on the
	// "stop" alias.
	program := p.Parse("zzz")
	if len(program) != 1 || program[0].Kind != ast.StmtExit {
		t.Errorf("Parse(zzz) = %s, want a single [exit]", renderProgram(program))
	}
}

func TestParseFileMissing(t *testing.T) {
	p := testParser(t)
	if _, err := p.ParseFile("no/such/program.txt"); err == nil {
		t.Error("ParseFile on a missing path should fail")
	}
}
