package vec3

import (
	"fmt"

	"github.com/axiskit/vecmath/num"
)

// Dim is the number of components in a Vector3.
const Dim = 3

// Vector3 is a 3-dimensional vector with components along the i-hat, j-hat
// and k-hat axes. It is a plain value type: copies are independent and
// equality is componentwise.
type Vector3[T num.Float] struct {
	I T
	J T
	K T
}

// New constructs a vector from its three components.
func New[T num.Float](i, j, k T) Vector3[T] {
	return Vector3[T]{I: i, J: j, K: k}
}

// Zero returns the zero vector.
func Zero[T num.Float]() Vector3[T] { return Vector3[T]{} }

// IHat returns the unit basis vector along the i-hat (x) axis.
func IHat[T num.Float]() Vector3[T] { return Vector3[T]{I: 1} }

// JHat returns the unit basis vector along the j-hat (y) axis.
func JHat[T num.Float]() Vector3[T] { return Vector3[T]{J: 1} }

// KHat returns the unit basis vector along the k-hat (z) axis.
func KHat[T num.Float]() Vector3[T] { return Vector3[T]{K: 1} }

// Magnitude returns the Euclidean norm sqrt(i² + j² + k²). The sum of
// squares is accumulated in float64 and narrowed back into T, so a result
// too large for a float32 element type yields num.ErrConversion instead of
// silently saturating.
func (v Vector3[T]) Magnitude() (T, error) {
	i := float64(v.I)
	j := float64(v.J)
	k := float64(v.K)
	return num.Sqrt[T](i*i + j*j + k*k)
}

// Dot returns the dot product, the componentwise product sum.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.I*o.I + v.J*o.J + v.K*o.K
}

// Cross returns the cross product v × o following the right-hand rule.
// It is anticommutative: a.Cross(b) == b.Cross(a).Scale(-1).
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		I: v.J*o.K - o.J*v.K,
		J: -(v.I*o.K - o.I*v.K),
		K: v.I*o.J - o.I*v.J,
	}
}

// AngleRad returns the angle between v and o in radians, computed as
// acos(v·o / (|v||o|)). Either operand having zero magnitude yields
// num.ErrDomain. The cosine is clamped to [-1, 1] so rounding in the
// quotient cannot produce a spurious domain error.
func (v Vector3[T]) AngleRad(o Vector3[T]) (T, error) {
	mv, err := v.Magnitude()
	if err != nil {
		return 0, err
	}
	mo, err := o.Magnitude()
	if err != nil {
		return 0, err
	}
	if mv == 0 || mo == 0 {
		return 0, fmt.Errorf("vec3: angle with zero-magnitude vector: %w", num.ErrDomain)
	}
	cos := float64(v.Dot(o)) / (float64(mv) * float64(mo))
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

// Unit returns the normalized copy of v with magnitude 1. Normalizing the
// zero vector yields num.ErrDomain.
func (v Vector3[T]) Unit() (Vector3[T], error) {
	m, err := v.Magnitude()
	if err != nil {
		return Vector3[T]{}, err
	}
	if m == 0 {
		return Vector3[T]{}, fmt.Errorf("vec3: unit vector of zero vector: %w", num.ErrDomain)
	}
	return Vector3[T]{I: v.I / m, J: v.J / m, K: v.K / m}, nil
}

// Project returns the projection of u onto v: (u·v / v·v) v. The result is
// parallel to v. Projecting onto the zero vector yields num.ErrDomain.
func Project[T num.Float](u, v Vector3[T]) (Vector3[T], error) {
	vv := v.Dot(v)
	if vv == 0 {
		return Vector3[T]{}, fmt.Errorf("vec3: projection onto zero vector: %w", num.ErrDomain)
	}
	return v.Scale(u.Dot(v) / vv), nil
}

// At returns the component at index i, with 0, 1, 2 mapping to I, J, K.
// Any other index yields num.ErrIndexOutOfRange.
func (v Vector3[T]) At(i int) (T, error) {
	p, err := v.component(i)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// SetAt assigns the component at index i, with the same index mapping and
// error behavior as At.
func (v *Vector3[T]) SetAt(i int, x T) error {
	p, err := v.component(i)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

func (v *Vector3[T]) component(i int) (*T, error) {
	switch i {
	case 0:
		return &v.I, nil
	case 1:
		return &v.J, nil
	case 2:
		return &v.K, nil
	default:
		return nil, fmt.Errorf("vec3: component index %d: %w", i, num.ErrIndexOutOfRange)
	}
}

// String renders the vector in basis notation, e.g. "1î +2ĵ +3k̂": the i
// component as-is, the j and k components with an explicit sign, each
// suffixed with its basis label. The %g verb honors the sign flag, which
// %v ignores for floats.
func (v Vector3[T]) String() string {
	return fmt.Sprintf("%gî %+gĵ %+gk̂", float64(v.I), float64(v.J), float64(v.K))
}
