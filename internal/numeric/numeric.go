// Package numeric collects small, self-contained numeric and slice
// utilities kept as a standalone exercise alongside the file analyzer:
// quadratic roots, slice reversal, and index-addressed string
// rebuilding, the kind of utility grab-bag a teaching repo keeps next
// to its larger systems.
package numeric

import (
	"math"
	"math/cmplx"
	"strings"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return a == b || math.Abs(a-b) <= epsilon
}

// ComplexEqual reports whether a and b are equal within epsilon on
// both the real and imaginary parts.
func ComplexEqual(a, b complex128) bool {
	return almostEqual(real(a), real(b)) && almostEqual(imag(a), imag(b))
}

// QuadraticRoots returns the two roots of ax^2 + bx + c = 0 using the
// quadratic formula over complex numbers, so it handles a negative
// discriminant without a separate branch.
func QuadraticRoots(a, b, c float64) (complex128, complex128) {
	denom := complex(2*a, 0)
	negB := complex(-b, 0)
	sqrtDisc := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	return (negB + sqrtDisc) / denom, (negB - sqrtDisc) / denom
}

// ReverseInPlace reverses s in place.
func ReverseInPlace(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reversed returns a new slice holding s's elements in reverse order,
// leaving s untouched.
func Reversed(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	ReverseInPlace(out)
	return out
}

// SliceEqual reports whether a and b hold the same elements in the
// same order.
func SliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RemoveAt returns a new slice with the element at idx removed,
// leaving s untouched.
func RemoveAt(s []int, idx int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

// SwapPointers swaps the values pointed to by a and b.
func SwapPointers(a, b *int) {
	*a, *b = *b, *a
}

// RuneAt returns the idx-th rune of s, decoding UTF-8 rather than
// indexing raw bytes.
func RuneAt(s string, idx int) rune {
	i := 0
	for _, r := range s {
		if i == idx {
			return r
		}
		i++
	}
	panic("numeric: index out of range")
}

// StringFromIndexes builds a new string by concatenating the runes of
// s at each position named in indexes, in the order given.
func StringFromIndexes(s string, indexes []int) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(indexes) * 3)
	for _, idx := range indexes {
		b.WriteRune(runes[idx])
	}
	return b.String()
}
