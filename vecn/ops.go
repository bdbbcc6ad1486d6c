package vecn

import (
	"fmt"

	"github.com/axiskit/vecmath/num"
)

// Add returns the elementwise sum of two same-dimension vectors.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	if len(v) != len(o) {
		return nil, dimMismatch("add", len(v), len(o))
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out, nil
}

// Sub returns the elementwise difference of two same-dimension vectors.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	if len(v) != len(o) {
		return nil, dimMismatch("sub", len(v), len(o))
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out, nil
}

// Scale returns v with every component multiplied by s.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := make(Vector[T], len(v))
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// Div returns v with every component divided by s. A zero divisor yields
// num.ErrDomain rather than propagating infinities.
func (v Vector[T]) Div(s T) (Vector[T], error) {
	if s == 0 {
		return nil, fmt.Errorf("vecn: division by zero scalar: %w", num.ErrDomain)
	}
	out := make(Vector[T], len(v))
	for i, x := range v {
		out[i] = x / s
	}
	return out, nil
}

// AddAssign adds o to v in place. On a dimension mismatch it reports
// num.ErrDomain and leaves v unchanged.
func (v Vector[T]) AddAssign(o Vector[T]) error {
	if len(v) != len(o) {
		return dimMismatch("add", len(v), len(o))
	}
	for i := range v {
		v[i] += o[i]
	}
	return nil
}

// SubAssign subtracts o from v in place, with the same dimension policy as
// AddAssign.
func (v Vector[T]) SubAssign(o Vector[T]) error {
	if len(v) != len(o) {
		return dimMismatch("sub", len(v), len(o))
	}
	for i := range v {
		v[i] -= o[i]
	}
	return nil
}

// ScaleAssign multiplies every component of v by s in place.
func (v Vector[T]) ScaleAssign(s T) {
	for i := range v {
		v[i] *= s
	}
}

// DivAssign divides every component of v by s in place. On a zero divisor
// it reports num.ErrDomain and leaves v unchanged.
func (v Vector[T]) DivAssign(s T) error {
	if s == 0 {
		return fmt.Errorf("vecn: division by zero scalar: %w", num.ErrDomain)
	}
	for i := range v {
		v[i] /= s
	}
	return nil
}
