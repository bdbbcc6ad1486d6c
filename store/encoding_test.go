package store

import (
	"testing"

	"github.com/axiskit/vecmath/vecn"
)

func TestEncodeDecodeVector_RoundTrip(t *testing.T) {
	orig := vecn.New[float32](0.0, 1.5, -2.25, 3.75)

	b, err := EncodeVector(orig)
	if err != nil {
		t.Fatalf("EncodeVector failed: %v", err)
	}
	if len(b) != 4*orig.Dim() {
		t.Fatalf("blob length = %d, want %d", len(b), 4*orig.Dim())
	}

	decoded, err := DecodeVector(b)
	if err != nil {
		t.Fatalf("DecodeVector failed: %v", err)
	}
	if decoded.Dim() != orig.Dim() {
		t.Fatalf("decoded dimension = %d, want %d", decoded.Dim(), orig.Dim())
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecodeVector_Empty(t *testing.T) {
	b, err := EncodeVector(nil)
	if err != nil {
		t.Fatalf("EncodeVector(nil) failed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty blob for nil vector, got len=%d", len(b))
	}

	v, err := DecodeVector(nil)
	if err != nil {
		t.Fatalf("DecodeVector(nil) failed: %v", err)
	}
	if v.Dim() != 0 {
		t.Fatalf("expected empty vector for nil blob, got dim=%d", v.Dim())
	}
}

func TestDecodeVector_InvalidLength(t *testing.T) {
	if _, err := DecodeVector([]byte{1, 2, 3}); err == nil {
		t.Fatalf("DecodeVector on 3-byte blob succeeded, want error")
	}
}
