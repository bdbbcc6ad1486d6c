package vec3

import (
	"fmt"

	"github.com/axiskit/vecmath/num"
)

// Add returns the componentwise sum v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{I: v.I + o.I, J: v.J + o.J, K: v.K + o.K}
}

// Sub returns the componentwise difference v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{I: v.I - o.I, J: v.J - o.J, K: v.K - o.K}
}

// Scale returns v with every component multiplied by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{I: v.I * s, J: v.J * s, K: v.K * s}
}

// Div returns v with every component divided by s. A zero divisor yields
// num.ErrDomain rather than propagating infinities.
func (v Vector3[T]) Div(s T) (Vector3[T], error) {
	if s == 0 {
		return Vector3[T]{}, fmt.Errorf("vec3: division by zero scalar: %w", num.ErrDomain)
	}
	return Vector3[T]{I: v.I / s, J: v.J / s, K: v.K / s}, nil
}

// AddAssign adds o to v in place.
func (v *Vector3[T]) AddAssign(o Vector3[T]) { *v = v.Add(o) }

// SubAssign subtracts o from v in place.
func (v *Vector3[T]) SubAssign(o Vector3[T]) { *v = v.Sub(o) }

// ScaleAssign multiplies every component of v by s in place.
func (v *Vector3[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign divides every component of v by s in place. On a zero divisor
// it reports num.ErrDomain and leaves v unchanged.
func (v *Vector3[T]) DivAssign(s T) error {
	out, err := v.Div(s)
	if err != nil {
		return err
	}
	*v = out
	return nil
}
