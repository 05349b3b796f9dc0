// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package spx provides a thread-safe, double-ended queue for work
// distribution.
//
// A [Queue] is filled at the back by [Queue.Push], consumed oldest-first by
// [Queue.Pop], and consumed newest-first by [Queue.Steal]. The intended
// pattern has one goroutine own a queue, popping from the front, while other
// goroutines opportunistically steal from the back; when the queue holds more
// than one element the two ends don't compete for the same value.
//
// No operation blocks waiting for data. An empty queue reports absence
// through a false boolean, which callers MUST treat as "nothing available
// right now", not as an error.
package spx

import "sync"

// A Lockable guards a [Queue]. It is the method set of [sync.Mutex], so a
// [Queue] can be guarded by any mutual-exclusion strategy (e.g. a [SpinLock])
// without changes to queue logic.
type Lockable interface {
	sync.Locker
	TryLock() bool
}

// A Queue is a mutual-exclusion-guarded double-ended queue. All methods are
// safe for concurrent use, each appearing as a single atomic step relative to
// the others. Which of two concurrent [Queue.Push] calls lands first is
// decided only by lock-acquisition order.
type Queue[T any, L Lockable] struct {
	mu   L
	data ring[T]
}

// New returns an empty [Queue] guarded by mu.
func New[T any, L Lockable](mu L) *Queue[T, L] {
	return &Queue[T, L]{mu: mu}
}

// NewMutex returns an empty [Queue] guarded by a [sync.Mutex].
func NewMutex[T any]() *Queue[T, *sync.Mutex] {
	return New[T](new(sync.Mutex))
}

// Push appends v at the back of the queue. It always succeeds.
func (q *Queue[T, L]) Push(v T) {
	q.mu.Lock()
	q.data.pushBack(v)
	q.mu.Unlock()
}

// Pop removes and returns the element at the front of the queue, i.e. the
// oldest pushed. If the queue is empty it immediately returns the zero value
// and false; it never waits for a future [Queue.Push].
func (q *Queue[T, L]) Pop() (T, bool) {
	q.mu.Lock()
	v, ok := q.data.popFront()
	q.mu.Unlock()
	return v, ok
}

// Steal removes and returns the element at the back of the queue, i.e. the
// most recently pushed remaining. If the queue is empty it immediately
// returns the zero value and false.
func (q *Queue[T, L]) Steal() (T, bool) {
	q.mu.Lock()
	v, ok := q.data.popBack()
	q.mu.Unlock()
	return v, ok
}

// Len returns the number of elements in the queue. The result is a snapshot
// that may be stale by the time Len returns; callers MUST NOT treat it as
// still holding, instead checking the boolean returned by a subsequent
// [Queue.Pop] or [Queue.Steal].
func (q *Queue[T, L]) Len() int {
	q.mu.Lock()
	n := q.data.len()
	q.mu.Unlock()
	return n
}

// Empty reports whether the queue holds no elements, with the same staleness
// caveat as [Queue.Len].
func (q *Queue[T, L]) Empty() bool {
	return q.Len() == 0
}

// Clear discards all elements, atomically with respect to every other
// method. References held by cleared slots are released.
func (q *Queue[T, L]) Clear() {
	q.mu.Lock()
	q.data.reset()
	q.mu.Unlock()
}
