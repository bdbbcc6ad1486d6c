// Package num holds the numeric glue shared by the vector packages: the
// Float element-type constraint, checked narrowing from float64 back into
// the element type, and the error sentinels used across the module.
package num
