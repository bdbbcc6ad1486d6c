// Package vecn implements an N-dimensional vector over a floating-point
// element type. A Vector is backed by a slice and its dimension is the
// slice length; operations combining two vectors require equal dimensions
// and report a domain error otherwise. The operator and geometry set
// mirrors package vec3, generalized to elementwise loops.
package vecn
