package vec3

import "github.com/axiskit/vecmath/num"

// The three iterator kinds share one cursor design: a front index walking
// 0→2, a back index walking 2→0, and a remaining count that is the sole
// termination authority. Every yield from either end decrements remaining,
// so mixed forward/backward traversal can neither overlap a slot nor
// produce more than three elements. The invariant back-front+1 == remaining
// keeps both cursors in range while remaining > 0.
//
// Iterators are finite and not restartable; create a fresh one to
// re-traverse.

// Iter is a shared view over a live vector. It reads components through the
// vector at each yield, so mutations made between yields are observed. Any
// number of Iters over the same vector may be used concurrently as long as
// nothing mutates it.
type Iter[T num.Float] struct {
	inner     *Vector3[T]
	front     int
	back      int
	remaining int
}

// Iter returns a shared double-ended iterator over v's components.
func (v *Vector3[T]) Iter() *Iter[T] {
	return &Iter[T]{inner: v, front: 0, back: Dim - 1, remaining: Dim}
}

// Next yields the next component from the front, reporting false once the
// iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	p, _ := it.inner.component(it.front)
	it.front++
	return *p, true
}

// NextBack yields the next component from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	p, _ := it.inner.component(it.back)
	it.back--
	return *p, true
}

// Len reports how many components remain to be yielded.
func (it *Iter[T]) Len() int { return it.remaining }

// IntoIter owns a snapshot of the vector taken at creation; later mutation
// of the source is not observed.
type IntoIter[T num.Float] struct {
	inner     Vector3[T]
	front     int
	back      int
	remaining int
}

// IntoIter returns an owning double-ended iterator over a copy of v.
func (v Vector3[T]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{inner: v, front: 0, back: Dim - 1, remaining: Dim}
}

// Next yields the next component copy from the front.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	p, _ := it.inner.component(it.front)
	it.front++
	return *p, true
}

// NextBack yields the next component copy from the back.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	p, _ := it.inner.component(it.back)
	it.back--
	return *p, true
}

// Len reports how many components remain to be yielded.
func (it *IntoIter[T]) Len() int { return it.remaining }

// IterMut is an exclusive view yielding pointers to the vector's
// components. It is an index-based cursor over the owning struct; while one
// is live no other view of the same vector may be created or used.
type IterMut[T num.Float] struct {
	inner     *Vector3[T]
	front     int
	back      int
	remaining int
}

// IterMut returns a mutable double-ended iterator over v's components.
func (v *Vector3[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{inner: v, front: 0, back: Dim - 1, remaining: Dim}
}

// Next yields a pointer to the next component from the front.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	it.remaining--
	p, _ := it.inner.component(it.front)
	it.front++
	return p, true
}

// NextBack yields a pointer to the next component from the back.
func (it *IterMut[T]) NextBack() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	it.remaining--
	p, _ := it.inner.component(it.back)
	it.back--
	return p, true
}

// Len reports how many components remain to be yielded.
func (it *IterMut[T]) Len() int { return it.remaining }
