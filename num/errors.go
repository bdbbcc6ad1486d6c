package num

import "errors"

// Sentinel errors returned by the vector packages. Callers match them with
// errors.Is; the library never logs or panics on input-dependent conditions.
var (
	// ErrDomain reports an operation that is mathematically undefined for
	// the given operands, such as normalizing a zero vector, dividing by a
	// zero scalar, or combining vectors of different dimensions.
	ErrDomain = errors.New("operation undefined for operands")

	// ErrIndexOutOfRange reports indexed component access outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrConversion reports a computed floating value that cannot be
	// represented in the vector's element type.
	ErrConversion = errors.New("value not representable in element type")
)
