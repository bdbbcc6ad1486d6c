package vec3

import "testing"

func TestIterForward(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.Iter()

	var got []float64
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		got = append(got, x)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("forward iteration yielded %v, want [1 2 3]", got)
	}

	// Exhausted from both ends.
	if _, ok := it.Next(); ok {
		t.Fatalf("Next on exhausted iterator reported ok")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatalf("NextBack on exhausted iterator reported ok")
	}
}

func TestIterBackward(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.Iter()

	var got []float64
	for x, ok := it.NextBack(); ok; x, ok = it.NextBack() {
		got = append(got, x)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("backward iteration yielded %v, want [3 2 1]", got)
	}
}

func TestIterMixedDirectionsNeverOverlap(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.Iter()

	if x, ok := it.Next(); !ok || x != 1 {
		t.Fatalf("Next = %v, %v; want 1, true", x, ok)
	}
	if x, ok := it.NextBack(); !ok || x != 3 {
		t.Fatalf("NextBack = %v, %v; want 3, true", x, ok)
	}
	// One slot remains; whichever end asks gets it exactly once.
	if x, ok := it.NextBack(); !ok || x != 2 {
		t.Fatalf("NextBack = %v, %v; want 2, true", x, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("fourth yield reported ok; front and back must not overlap")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatalf("fourth yield reported ok; front and back must not overlap")
	}
}

func TestIterLen(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.Iter()
	for want := 3; want > 0; want-- {
		if it.Len() != want {
			t.Fatalf("Len = %d, want %d", it.Len(), want)
		}
		it.Next()
	}
	if it.Len() != 0 {
		t.Fatalf("Len after exhaustion = %d, want 0", it.Len())
	}
}

func TestIterSeesLiveMutation(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.Iter()

	it.Next()
	v.J = 20
	if x, ok := it.Next(); !ok || x != 20 {
		t.Fatalf("shared iterator yielded %v, want mutated value 20", x)
	}
}

func TestIntoIterSnapshot(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	it := v.IntoIter()

	// Mutating the source after creation must not affect the owning iterator.
	v.I, v.J, v.K = 10, 20, 30

	var got []float64
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		got = append(got, x)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("owning iteration yielded %v, want snapshot [1 2 3]", got)
	}
}

func TestIntoIterBackward(t *testing.T) {
	it := New(1.0, 2.0, 3.0).IntoIter()
	if x, ok := it.NextBack(); !ok || x != 3 {
		t.Fatalf("NextBack = %v, %v; want 3, true", x, ok)
	}
	if x, ok := it.Next(); !ok || x != 1 {
		t.Fatalf("Next = %v, %v; want 1, true", x, ok)
	}
	if it.Len() != 1 {
		t.Fatalf("Len = %d, want 1", it.Len())
	}
}

func TestIterMut(t *testing.T) {
	v := New(1.0, 2.0, 3.0)

	it := v.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 2
	}
	if v != New(2.0, 4.0, 6.0) {
		t.Fatalf("after doubling via IterMut, v = %v, want (2, 4, 6)", v)
	}
}

func TestIterMutBackward(t *testing.T) {
	v := New(1.0, 2.0, 3.0)

	it := v.IterMut()
	if p, ok := it.NextBack(); !ok {
		t.Fatalf("NextBack reported not ok")
	} else {
		*p = -3
	}
	if p, ok := it.Next(); !ok {
		t.Fatalf("Next reported not ok")
	} else {
		*p = -1
	}
	if v != New(-1.0, 2.0, -3.0) {
		t.Fatalf("v = %v, want (-1, 2, -3)", v)
	}

	// The remaining slot is the middle one, from either end.
	if p, ok := it.NextBack(); !ok || *p != 2 {
		t.Fatalf("NextBack = %v, %v; want &J (2), true", p, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("exhausted mutable iterator reported ok")
	}
}
