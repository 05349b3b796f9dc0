// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package spx

import (
	"runtime"
	"sync/atomic"
)

// A SpinLock is a [Lockable] that busy-waits instead of parking the calling
// goroutine, trading CPU for latency when critical sections are very short.
// The zero value is an unlocked SpinLock. A SpinLock MUST NOT be copied
// after first use.
type SpinLock struct {
	held atomic.Bool
}

var _ Lockable = (*SpinLock)(nil)

// Lock acquires the lock, yielding the processor between failed attempts so
// the current holder can make progress.
func (l *SpinLock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is immediately available, reporting
// whether it did.
func (l *SpinLock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Unlock releases the lock. It panics if the lock is not held.
func (l *SpinLock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		panic("spx: Unlock of unlocked SpinLock")
	}
}
