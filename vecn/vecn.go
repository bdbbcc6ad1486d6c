package vecn

import (
	"fmt"

	"github.com/axiskit/vecmath/num"
)

// Vector is an N-dimensional vector. The dimension is the length of the
// underlying slice; there is no separately stored count to fall out of
// sync. The zero-length Vector is valid and behaves as a 0-dimensional
// vector.
//
// Vector has reference semantics like any slice: Clone before mutating a
// shared value. The pure operators allocate fresh storage; the Assign
// variants mutate in place.
type Vector[T num.Float] []T

// New constructs a vector from its components.
func New[T num.Float](components ...T) Vector[T] {
	v := make(Vector[T], len(components))
	copy(v, components)
	return v
}

// Zero returns the all-zero vector of dimension n.
func Zero[T num.Float](n int) Vector[T] {
	if n < 0 {
		n = 0
	}
	return make(Vector[T], n)
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector[T]) Clone() Vector[T] {
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}

// At returns the component at index i; indices outside [0, Dim) yield
// num.ErrIndexOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return 0, fmt.Errorf("vecn: component index %d of %d-dimensional vector: %w", i, len(v), num.ErrIndexOutOfRange)
	}
	return v[i], nil
}

// SetAt assigns the component at index i, with the same bounds policy as At.
func (v Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= len(v) {
		return fmt.Errorf("vecn: component index %d of %d-dimensional vector: %w", i, len(v), num.ErrIndexOutOfRange)
	}
	v[i] = x
	return nil
}

// Magnitude returns the Euclidean norm of v, accumulated in float64 and
// narrowed back into T. A result too large for the element type yields
// num.ErrConversion.
func (v Vector[T]) Magnitude() (T, error) {
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return num.Sqrt[T](sum)
}

// Dot returns the dot product of two same-dimension vectors. A dimension
// mismatch yields num.ErrDomain.
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	if len(v) != len(o) {
		return 0, dimMismatch("dot product", len(v), len(o))
	}
	var sum T
	for i := range v {
		sum += v[i] * o[i]
	}
	return sum, nil
}

// Unit returns the normalized copy of v with magnitude 1. A zero-magnitude
// vector yields num.ErrDomain.
func (v Vector[T]) Unit() (Vector[T], error) {
	m, err := v.Magnitude()
	if err != nil {
		return nil, err
	}
	if m == 0 {
		return nil, fmt.Errorf("vecn: unit vector of zero vector: %w", num.ErrDomain)
	}
	out := make(Vector[T], len(v))
	for i, x := range v {
		out[i] = x / m
	}
	return out, nil
}

// AngleRad returns the angle between v and o in radians. Either operand
// having zero magnitude, or a dimension mismatch, yields num.ErrDomain.
// The cosine is clamped to [-1, 1] against rounding in the quotient.
func (v Vector[T]) AngleRad(o Vector[T]) (T, error) {
	dot, err := v.Dot(o)
	if err != nil {
		return 0, err
	}
	mv, err := v.Magnitude()
	if err != nil {
		return 0, err
	}
	mo, err := o.Magnitude()
	if err != nil {
		return 0, err
	}
	if mv == 0 || mo == 0 {
		return 0, fmt.Errorf("vecn: angle with zero-magnitude vector: %w", num.ErrDomain)
	}
	cos := float64(dot) / (float64(mv) * float64(mo))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	c, err := num.FromFloat64[T](cos)
	if err != nil {
		return 0, err
	}
	return num.Acos(c)
}

func dimMismatch(op string, a, b int) error {
	return fmt.Errorf("vecn: %s dimension mismatch: %d vs %d: %w", op, a, b, num.ErrDomain)
}
