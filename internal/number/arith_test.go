package number

import "testing"

func TestConform(t *testing.T) {
	s := testSystem(t)
	x, y := s.Conform(Fraction{1, 2, 10}, Fraction{2, 34, 100})
	if x != (Fraction{1, 20, 100}) {
		t.Errorf("conformed x = %+v, want {1 20 100}", x)
	}
	if y != (Fraction{2, 34, 100}) {
		t.Errorf("conformed y = %+v, want {2 34 100}", y)
	}
}

func TestAdd(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		a, b     string
		expected string
	}{
		{"b", "c", "d"},          // 1 + 2 = 3
		{"bc", "cd", "df"},       // 12 + 23 = 35
		{"b.c", "c.d", "d.f"},    // 1.2 + 2.3 = 3.5
		{"b.c", "c.de", "d.fe"},  // 1.2 + 2.34 = 3.54
		{"b", "b-", ""},          // 1 + -1 renders empty
		{"hello", "world", "hh"}, // 74 + 3: only digit characters count
	}
	for _, tt := range tests {
		if got := s.Add(tt.a, tt.b); got != tt.expected {
			t.Errorf("Add(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestAddIdentity(t *testing.T) {
	s := testSystem(t)
	for _, word := range []string{"b", "bc", "d.f"} {
		if got := s.Add(word, ""); got != word {
			t.Errorf("Add(%q, \"\") = %q, want %q", word, got, word)
		}
	}
}

func TestSubtract(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		a, b     string
		expected string
	}{
		{"d", "b", "c"},       // 3 - 1 = 2
		{"b", "c", "b-"},      // 1 - 2 = -1
		{"c.f", "b.c", "b.d"}, // 2.5 - 1.2 = 1.3
	}
	for _, tt := range tests {
		if got := s.Subtract(tt.a, tt.b); got != tt.expected {
			t.Errorf("Subtract(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	s := testSystem(t)
	for _, word := range []string{"b", "jj", "c.f"} {
		if got := s.Subtract(word, word); got != "" {
			t.Errorf("Subtract(%q, %q) = %q, want empty", word, word, got)
		}
	}
}

// Multiply folds the conformed scaled values into a numerator over the
// product of the fractional numerators, so only operands with fractional
// digits have a usable denominator.
func TestMultiply(t *testing.T) {
	s := testSystem(t)
	// 1.5 * 2.5: numerator 15*25 = 375 over denominator 5*5 = 25,
	// splitting into a whole part of 15 with nothing left over.
	if got := s.Multiply("b.f", "c.f"); got != "bf" {
		t.Errorf("Multiply(b.f, c.f) = %q, want bf", got)
	}
}

func TestMultiplyWholeOperandsFault(t *testing.T) {
	s := testSystem(t)
	defer func() {
		if recover() == nil {
			t.Error("Multiply on whole operands should fault on the zero denominator")
		}
	}()
	s.Multiply("c", "d")
}

func TestDivide(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		a, b     string
		expected string
	}{
		{"j", "d", "d"},      // 9 / 3 = 3
		{"j", "c", "e"},      // 9 / 2 truncates to 4
		{"j.f", "c", ".eaa"}, // 9.5 / 2: quotient 4.75 widens and truncates
	}
	for _, tt := range tests {
		if got := s.Divide(tt.a, tt.b); got != tt.expected {
			t.Errorf("Divide(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestModulus(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		a, b     string
		expected string
	}{
		{"j", "d", ""},      // 9 mod 3 = 0 renders empty
		{"j", "c", "b"},     // 9 mod 2 = 1
		{"j.f", "c", "b.f"}, // the first operand's fraction survives
	}
	for _, tt := range tests {
		if got := s.Modulus(tt.a, tt.b); got != tt.expected {
			t.Errorf("Modulus(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestPower(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		a, b     string
		expected string
	}{
		{"c", "d", "i"},      // 2 ^ 3 = 8
		{"d", "c", "j"},      // 3 ^ 2 = 9
		{"c", ".f", "b.ebe"}, // 2 ^ 0.5 ≈ 1.414, widened to three digits
	}
	for _, tt := range tests {
		if got := s.Power(tt.a, tt.b); got != tt.expected {
			t.Errorf("Power(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.expected)
		}
	}
}
