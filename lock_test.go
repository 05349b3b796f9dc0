package spx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpinLockExclusion(t *testing.T) {
	const (
		workers    = 8
		iterations = 10_000
	)

	var (
		l SpinLock
		n int
	)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				l.Lock()
				n++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*iterations, n)
}

func TestSpinLockTryLock(t *testing.T) {
	var l SpinLock

	require.True(t, l.TryLock(), "TryLock on unlocked SpinLock")
	require.False(t, l.TryLock(), "TryLock on held SpinLock")
	l.Unlock()
	require.True(t, l.TryLock(), "TryLock after Unlock")
	l.Unlock()
}

func TestSpinLockUnlockPanics(t *testing.T) {
	require.Panics(t, func() {
		new(SpinLock).Unlock()
	})
}
