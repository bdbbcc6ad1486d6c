package num

import (
	"fmt"
	"math"
)

// Float constrains a vector's element type to the builtin floating-point
// types. The constraint supplies everything the vector packages need from
// an element: zero and one literals, the arithmetic operators, and lossless
// widening to float64 for sqrt and acos.
type Float interface {
	~float32 | ~float64
}

// FromFloat64 narrows x into the element type T. A finite x that overflows
// T (to an infinity the source value did not have) yields ErrConversion;
// NaN and genuine infinities pass through unchanged.
func FromFloat64[T Float](x float64) (T, error) {
	y := T(x)
	if math.IsInf(float64(y), 0) && !math.IsInf(x, 0) {
		return 0, fmt.Errorf("num: %v overflows element type: %w", x, ErrConversion)
	}
	return y, nil
}

// Sqrt returns the square root of x narrowed into T. It takes the float64
// intermediate directly so sums of squares can be accumulated in full
// precision before the root is taken. Negative x yields ErrDomain; a root
// too large for T yields ErrConversion.
func Sqrt[T Float](x float64) (T, error) {
	if x < 0 {
		return 0, fmt.Errorf("num: sqrt of negative value %v: %w", x, ErrDomain)
	}
	return FromFloat64[T](math.Sqrt(x))
}

// Acos returns the arccosine of x in radians. Inputs outside [-1, 1] yield
// ErrDomain rather than a silent NaN.
func Acos[T Float](x T) (T, error) {
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("num: acos of %v outside [-1, 1]: %w", x, ErrDomain)
	}
	return FromFloat64[T](math.Acos(float64(x)))
}
