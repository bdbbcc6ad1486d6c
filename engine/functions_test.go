package engine

import (
	"math"
	"testing"

	"github.com/axiskit/vecmath/store"
)

func TestRegisterVectorFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	if err := RegisterVectorFunctions(nil); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	aBlob, err := store.EncodeVector([]float32{1, 0})
	if err != nil {
		t.Fatalf("EncodeVector a failed: %v", err)
	}
	bBlob, err := store.EncodeVector([]float32{0, 1})
	if err != nil {
		t.Fatalf("EncodeVector b failed: %v", err)
	}
	cBlob, err := store.EncodeVector([]float32{1, 0})
	if err != nil {
		t.Fatalf("EncodeVector c failed: %v", err)
	}

	// vec_magnitude of (3, 4) -> 5
	threeFourBlob, err := store.EncodeVector([]float32{3, 4})
	if err != nil {
		t.Fatalf("EncodeVector threeFour failed: %v", err)
	}
	var mag float64
	if err := db.QueryRow(`SELECT vec_magnitude(?)`, threeFourBlob).Scan(&mag); err != nil {
		t.Fatalf("vec_magnitude query failed: %v", err)
	}
	if math.Abs(mag-5) > 1e-9 {
		t.Fatalf("vec_magnitude = %v, want 5", mag)
	}

	// vec_dot of (1, 0) and (3, 4) -> 3
	var dot float64
	if err := db.QueryRow(`SELECT vec_dot(?, ?)`, aBlob, threeFourBlob).Scan(&dot); err != nil {
		t.Fatalf("vec_dot query failed: %v", err)
	}
	if math.Abs(dot-3) > 1e-9 {
		t.Fatalf("vec_dot = %v, want 3", dot)
	}

	// vec_cosine orthogonal -> 0
	var sim float64
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, aBlob, bBlob).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,b) query failed: %v", err)
	}
	if sim != 0 {
		t.Fatalf("vec_cosine(a,b) = %v, want 0", sim)
	}

	// vec_cosine identical -> 1
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, aBlob, cBlob).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,c) query failed: %v", err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Fatalf("vec_cosine(a,c) = %v, want 1", sim)
	}

	// NULL arguments propagate NULL.
	var null any
	if err := db.QueryRow(`SELECT vec_magnitude(NULL)`).Scan(&null); err != nil {
		t.Fatalf("vec_magnitude(NULL) query failed: %v", err)
	}
	if null != nil {
		t.Fatalf("vec_magnitude(NULL) = %v, want NULL", null)
	}
}
