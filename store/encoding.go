package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/axiskit/vecmath/vecn"
)

// EncodeVector encodes a vector into a BLOB representation suitable for
// storage in SQLite. The encoding is a little-endian sequence of IEEE 754
// float32 values without a length prefix; the dimension is derived from the
// BLOB size on decode.
func EncodeVector(v vecn.Vector[float32]) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	b := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(x))
	}
	return b, nil
}

// DecodeVector decodes a BLOB produced by EncodeVector back into a vector.
func DecodeVector(b []byte) (vecn.Vector[float32], error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("store: invalid vector blob length %d (not multiple of 4)", len(b))
	}
	n := len(b) / 4
	v := make(vecn.Vector[float32], n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
