package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"

	"github.com/axiskit/vecmath/vecn"
)

// RegisterVectorFunctions registers vec_magnitude, vec_dot and vec_cosine
// with the driver so they are available on new connections opened after
// this call. Note: existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_magnitude", 1, vecMagnitudeImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_dot", 2, vecDotImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, vecCosineImpl)
	return nil
}

func asVector(arg driver.Value) (vecn.Vector[float64], error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeVector(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func vecMagnitudeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_magnitude: expected 1 argument, got %d", len(args))
	}
	v, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	m, err := v.Magnitude()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func vecDotImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := twoVectors("vec_dot", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	dot, err := a.Dot(b)
	if err != nil {
		return nil, err
	}
	return dot, nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := twoVectors("vec_cosine", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	dot, err := a.Dot(b)
	if err != nil {
		return nil, err
	}
	ma, err := a.Magnitude()
	if err != nil {
		return nil, err
	}
	mb, err := b.Magnitude()
	if err != nil {
		return nil, err
	}
	if ma == 0 || mb == 0 {
		return nil, fmt.Errorf("vec_cosine: zero-magnitude vector")
	}
	return dot / (ma * mb), nil
}

func twoVectors(fn string, args []driver.Value) (a, b vecn.Vector[float64], err error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	if a, err = asVector(args[0]); err != nil {
		return nil, nil, err
	}
	if b, err = asVector(args[1]); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Local minimal decode helper mirroring the store package's BLOB layout, to
// avoid an import cycle in tests. Components widen to float64 so the SQL
// results carry full driver precision.
func decodeVector(b []byte) (vecn.Vector[float64], error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("engine: invalid vector blob length %d", len(b))
	}
	n := len(b) / 4
	v := make(vecn.Vector[float64], n)
	for i := 0; i < n; i++ {
		v[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return v, nil
}
