package keylock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fleetdispatch/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerialisesSameKey(t *testing.T) {
	l := keylock.New()
	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(t.Context(), "org-1")
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, l.Len())
}

func TestLocker_IndependentKeys(t *testing.T) {
	l := keylock.New()

	unlockA, err := l.Lock(t.Context(), "org-a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, "org-b")
	require.NoError(t, err)
	unlockB()
}

func TestLocker_ContextCancelled(t *testing.T) {
	l := keylock.New()

	unlock, err := l.Lock(t.Context(), "org-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "org-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Zero(t, l.Len())
}
