// Package vec3 implements a 3-dimensional vector over a floating-point
// element type, with the usual arithmetic operators, geometric operations
// (dot, cross, projection, normalization, angle), bounds-checked component
// access, and double-ended element iteration. It includes:
//   - Vector3 value type with named I, J, K components
//   - Factories for the zero vector and the unit basis vectors
//   - Pure and in-place operator variants
//   - Iter, IntoIter and IterMut double-ended iterators
package vec3
