// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package spx

import "runtime"

// TransferFrom replaces q's contents with those of src, preserving their
// relative order, and leaves src empty but usable. Any elements q held
// beforehand are discarded. Both queues' locks are held for the duration so
// the transfer is atomic with respect to all other methods on either queue.
//
// Transferring a queue into itself is a no-op.
func (q *Queue[T, L]) TransferFrom(src *Queue[T, L]) {
	if q == src {
		return
	}

	lockBoth(q.mu, src.mu)
	q.data = src.data
	src.data = ring[T]{}
	src.mu.Unlock()
	q.mu.Unlock()
}

// lockBoth acquires both locks without imposing a fixed order: block on one,
// try the other, and rotate roles on failure. Two goroutines performing
// reciprocal transfers therefore cannot deadlock, as neither holds one lock
// while blocking on the other.
func lockBoth[L Lockable](a, b L) {
	for {
		a.Lock()
		if b.TryLock() {
			return
		}
		a.Unlock()
		runtime.Gosched()
		a, b = b, a
	}
}
