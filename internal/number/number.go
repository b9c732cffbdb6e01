// Package number implements word arithmetic in a lexicon-defined base.
//
// Every value in a 3.0 program is a word. A System interprets words as
// positional-notation numbers: the lexicon's digit characters carry value,
// a decimal character separates the whole part from the fractional part,
// and an odd count of sign characters anywhere in the word negates its
// whole part (or its fractional numerator when the whole part is zero).
// The value of a word is the signed whole part plus the fraction, so
// "b.c-" in base ten reads as -1 + 0.2.
// Characters outside the system play no numeric role and are skipped.
//
// Fractional parts are carried as exact numerator/denominator pairs whose
// denominators are nonnegative powers of the base, so addition and
// subtraction stay exact. Division and exponentiation go through host
// floating point and re-quantize the result (see arith.go).
package number

import (
	"errors"
	"fmt"
	"strings"
)

// System holds the character classes that give words numeric meaning.
type System struct {
	digits   []rune
	decimals string
	signs    string
	index    map[rune]int
}

// Fraction is a number split into a whole part and a fractional
// numerator/denominator pair. The sign of the value is carried on Whole
// (or on Num when Whole is zero); the triple is not kept in lowest terms.
// Den is a nonnegative power of the System's base.
type Fraction struct {
	Whole int64
	Num   int64
	Den   int64
}

// New builds a System from the lexicon's digit, decimal, and sign character
// strings. The base is the number of digit characters.
func New(digits, decimals, signs string) (*System, error) {
	if digits == "" {
		return nil, errors.New("number: no digit characters")
	}
	if decimals == "" {
		return nil, errors.New("number: no decimal characters")
	}
	if signs == "" {
		return nil, errors.New("number: no sign characters")
	}
	s := &System{
		digits:   []rune(digits),
		decimals: decimals,
		signs:    signs,
		index:    make(map[rune]int, len(digits)),
	}
	for i, r := range s.digits {
		if _, dup := s.index[r]; dup {
			return nil, fmt.Errorf("number: duplicate digit %q", r)
		}
		s.index[r] = i
	}
	return s, nil
}

// Base returns the numeric base, the count of digit characters.
func (s *System) Base() int {
	return len(s.digits)
}

// Chars returns the full character set of the system, in the order
// digits, decimals, signs. This is the set relevant to fuzzy matching.
func (s *System) Chars() string {
	return string(s.digits) + s.decimals + s.signs
}

// Int reads a word as a whole number. Digits accumulate left to right, the
// first decimal character ends the scan, and every other character is
// skipped. An odd count of sign characters anywhere in the word negates
// the result.
func (s *System) Int(word string) int64 {
	base := int64(s.Base())
	var whole int64
	for _, r := range strings.ToLower(word) {
		if d, ok := s.index[r]; ok {
			whole = whole*base + int64(d)
		} else if strings.ContainsRune(s.decimals, r) {
			break
		}
	}
	if s.negative(word) {
		whole = -whole
	}
	return whole
}

// Fraction reads a word as a whole/numerator/denominator triple. Digits
// before the first decimal character build the whole part; digits after it
// build the numerator while the denominator grows by one base factor per
// digit. Unknown characters are skipped silently.
func (s *System) Fraction(word string) Fraction {
	base := int64(s.Base())
	var whole, num int64
	den := int64(1)
	wholeMode := true
	for _, r := range strings.ToLower(word) {
		if d, ok := s.index[r]; ok {
			if wholeMode {
				whole = whole*base + int64(d)
			} else {
				num = num*base + int64(d)
				den *= base
			}
		} else if strings.ContainsRune(s.decimals, r) {
			wholeMode = false
		}
	}
	if s.negative(word) {
		if whole == 0 {
			num = -num
		} else {
			whole = -whole
		}
	}
	return Fraction{Whole: whole, Num: num, Den: den}
}

// Float reads a word as a floating point number.
func (s *System) Float(word string) float64 {
	f := s.Fraction(word)
	return float64(f.Whole) + float64(f.Num)/float64(f.Den)
}

// Num reads a word as a number, exact when the word has no fractional
// digits. The result is the whole part alone when the numerator is zero,
// otherwise the floating point value.
func (s *System) Num(word string) float64 {
	f := s.Fraction(word)
	if f.Num != 0 {
		return float64(f.Whole) + float64(f.Num)/float64(f.Den)
	}
	return float64(f.Whole)
}

// Word renders a fraction back into a word. The whole part renders by
// repeated division (empty for zero); a nonzero numerator appends the first
// decimal character, leading zero digits aligning the numerator with the
// denominator's magnitude, and the numerator's digits; a negative value
// appends the first sign character.
//
// The denominator must be a power of the base whenever the numerator is
// nonzero; arithmetic in this package only produces such fractions.
func (s *System) Word(f Fraction) string {
	base := int64(s.Base())
	if f.Num != 0 && !s.powerOfBase(f.Den) {
		panic(fmt.Sprintf("number: denominator %d is not a power of %d", f.Den, base))
	}
	negative := f.Whole < 0 || (f.Whole == 0 && f.Num < 0)
	whole := abs(f.Whole)
	num := abs(f.Num)
	den := f.Den

	var chars []rune
	for whole > 0 {
		chars = append([]rune{s.digits[whole%base]}, chars...)
		whole /= base
	}
	if num != 0 {
		chars = append(chars, []rune(s.decimals)[0])
		for num*base < den {
			chars = append(chars, s.digits[0])
			den /= base
		}
		var right []rune
		for num > 0 {
			right = append([]rune{s.digits[num%base]}, right...)
			num /= base
		}
		chars = append(chars, right...)
	}
	if negative {
		chars = append(chars, []rune(s.signs)[0])
	}
	return string(chars)
}

// negative reports whether the word holds an odd count of sign characters.
func (s *System) negative(word string) bool {
	count := 0
	for _, r := range word {
		if strings.ContainsRune(s.signs, r) {
			count++
		}
	}
	return count%2 == 1
}

func (s *System) powerOfBase(den int64) bool {
	base := int64(s.Base())
	if den <= 0 {
		return false
	}
	for den%base == 0 {
		den /= base
	}
	return den == 1
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
