// Package keylock provides context-aware mutual exclusion per string key.
package keylock

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Locker hands out one exclusive slot per key. Keys that are not held take no memory.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	sem  *semaphore.Weighted
	refs int
}

func New() *Locker {
	return &Locker{slots: make(map[string]*slot)}
}

// Lock blocks until the key is free or ctx is done. The returned function
// releases the key and must be called exactly once.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	s := l.acquireSlot(key)

	if err := s.sem.Acquire(ctx, 1); err != nil {
		l.releaseSlot(key, s)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.sem.Release(1)
			l.releaseSlot(key, s)
		})
	}, nil
}

func (l *Locker) acquireSlot(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{sem: semaphore.NewWeighted(1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Locker) releaseSlot(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
