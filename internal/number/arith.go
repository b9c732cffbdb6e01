package number

import "math"

// Conform equalizes two fractions' denominators by multiplying the
// numerator and denominator of the smaller-denominator fraction by the base
// until they match. Both denominators are powers of the base, so the loop
// terminates.
func (s *System) Conform(x, y Fraction) (Fraction, Fraction) {
	base := int64(s.Base())
	for x.Den < y.Den {
		x.Num *= base
		x.Den *= base
	}
	for y.Den < x.Den {
		y.Num *= base
		y.Den *= base
	}
	return x, y
}

// Add adds two words and renders the sum.
func (s *System) Add(a, b string) string {
	x, y := s.Conform(s.Fraction(a), s.Fraction(b))
	return s.Word(Fraction{Whole: x.Whole + y.Whole, Num: x.Num + y.Num, Den: x.Den})
}

// Subtract subtracts the second word from the first and renders the
// difference.
func (s *System) Subtract(a, b string) string {
	x, y := s.Conform(s.Fraction(a), s.Fraction(b))
	return s.Word(Fraction{Whole: x.Whole - y.Whole, Num: x.Num - y.Num, Den: x.Den})
}

// Multiply multiplies two words. The product's numerator is the product of
// the conformed scaled values and its denominator the product of the two
// fractional numerators; a numerator above the denominator is split into a
// whole part by division.
func (s *System) Multiply(a, b string) string {
	x, y := s.Conform(s.Fraction(a), s.Fraction(b))
	num := (x.Whole*x.Den + x.Num) * (y.Whole*y.Den + y.Num)
	den := x.Num * y.Num
	var whole int64
	if num > den {
		whole, num = num/den, num%den
	}
	return s.Word(Fraction{Whole: whole, Num: num, Den: den})
}

// Divide divides the first word by the second. The quotient is computed in
// host floating point over the conformed scaled values, split into a whole
// part when it exceeds the denominator, and widened by the base squared
// when the remaining numerator has a fractional part above one over the
// base squared.
func (s *System) Divide(a, b string) string {
	x, y := s.Conform(s.Fraction(a), s.Fraction(b))
	base := float64(s.Base())
	den := float64(x.Den)
	num := float64(x.Whole*x.Den+x.Num) / float64(y.Whole*y.Den+y.Num)
	var whole float64
	if num > den {
		whole = math.Floor(num / den)
		num -= whole * den
	}
	if math.Abs(num-math.Trunc(num)) > 1/(base*base) {
		widen := int64(s.Base()) * int64(s.Base())
		return s.Word(Fraction{Whole: int64(whole), Num: int64(num) * widen, Den: x.Den * widen})
	}
	return s.Word(Fraction{Whole: int64(whole), Num: int64(num), Den: x.Den})
}

// Modulus renders the remainder of the whole parts, keeping the first
// word's fractional part.
func (s *System) Modulus(a, b string) string {
	x, y := s.Conform(s.Fraction(a), s.Fraction(b))
	return s.Word(Fraction{Whole: x.Whole % y.Whole, Num: x.Num, Den: x.Den})
}

// Power raises the first word to the second. The result comes from host
// floating point exponentiation; its fractional part is quantized against
// the larger of the two denominators and widened by the base squared when
// that quantization leaves a remainder above one over the base squared.
func (s *System) Power(a, b string) string {
	x, y := s.Fraction(a), s.Fraction(b)
	den := max(x.Den, y.Den)
	result := math.Pow(s.Float(a), s.Float(b))
	whole := math.Trunc(result)
	num := (result - whole) * float64(den)
	base := float64(s.Base())
	if math.Abs(math.Trunc(num)-num) > 1/(base*base) {
		widen := int64(s.Base()) * int64(s.Base())
		return s.Word(Fraction{Whole: int64(whole), Num: int64(num * float64(widen)), Den: den * widen})
	}
	return s.Word(Fraction{Whole: int64(whole), Num: int64(num), Den: den})
}
