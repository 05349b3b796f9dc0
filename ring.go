// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package spx

// A ring is a growable circular buffer with constant-time removal at both
// ends and amortised constant-time appending.
type ring[T any] struct {
	buf   []T // len(buf) MUST == cap(buf)
	start int // 0 <= start < len(buf); slot of the oldest element
	n     int // 0 <= n <= len(buf)
}

// len returns the number of elements in the ring.
func (r *ring[T]) len() int {
	return r.n
}

// index maps the i'th logical element, 0 being the oldest, to its slot in
// the buffer.
func (r *ring[T]) index(i int) int {
	return (r.start + i) % len(r.buf)
}

// pushBack appends x as the newest element. If the buffer is full its
// capacity is doubled, or set to 1 if there is no current capacity.
func (r *ring[T]) pushBack(x T) {
	if r.n == len(r.buf) {
		r.grow(max(2*len(r.buf), 1))
	}
	r.buf[r.index(r.n)] = x
	r.n++
}

// popFront removes and returns the oldest element, zeroing its slot so the
// ring drops its reference.
func (r *ring[T]) popFront() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}

	i := r.start
	x := r.buf[i]
	r.buf[i] = zero
	r.start = r.index(1)
	r.n--
	return x, true
}

// popBack removes and returns the newest element, zeroing its slot.
func (r *ring[T]) popBack() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}

	i := r.index(r.n - 1)
	x := r.buf[i]
	r.buf[i] = zero
	r.n--
	return x, true
}

// reset discards all elements. The buffer is retained for reuse but every
// slot is zeroed.
func (r *ring[T]) reset() {
	clear(r.buf)
	r.start = 0
	r.n = 0
}

// grow increases the buffer's capacity to c, if necessary, unwrapping the
// ring so that the oldest element lands in slot 0. It is O(len(r.buf)).
func (r *ring[T]) grow(c int) {
	if c <= len(r.buf) {
		return
	}
	b := make([]T, c)
	copy(b, r.buf[r.start:])
	copy(b[len(r.buf)-r.start:], r.buf[:r.start])

	r.buf = b
	r.start = 0
}
