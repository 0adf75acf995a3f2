package keylock

import (
	"cmp"
	"slices"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyLock is a set of mutexes indexed by key. Entries are dropped once nobody holds or waits
// for them, so memory stays proportional to the number of in-flight keys.
type KeyLock[K cmp.Ordered] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

func New[K cmp.Ordered]() *KeyLock[K] {
	return &KeyLock[K]{entries: make(map[K]*entry)}
}

// Lock acquires every key in ascending order and returns the release func.
// Duplicate keys are acquired once.
func (l *KeyLock[K]) Lock(keys ...K) func() {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*entry, 0, len(sorted))
	for _, key := range sorted {
		e := l.acquire(key)
		e.mu.Lock()
		held = append(held, e)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				l.release(sorted[i])
			}
		})
	}
}

func (l *KeyLock[K]) acquire(key K) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *KeyLock[K]) release(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

func (l *KeyLock[K]) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
