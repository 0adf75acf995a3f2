package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	l := New[int64]()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(1)
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Zero(t, l.size())
}

func TestKeyLock_DifferentKeysDoNotBlock(t *testing.T) {
	l := New[int64]()
	unlock := l.Lock(1)
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := l.Lock(2)
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyLock_MultipleKeysNoDeadlock(t *testing.T) {
	l := New[int64]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Lock(1, 2)()
		}()
		go func() {
			defer wg.Done()
			l.Lock(2, 1)()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock acquiring keys in opposite order")
	}
	assert.Zero(t, l.size())
}

func TestKeyLock_DuplicateKeysAndDoubleRelease(t *testing.T) {
	l := New[int64]()

	unlock := l.Lock(3, 3)
	unlock()
	unlock()

	assert.Zero(t, l.size())
}
