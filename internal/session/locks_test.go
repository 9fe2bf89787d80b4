package session_test

import (
	"sync"
	"testing"
	"time"

	"gasvision/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestLocks_SameIDRunsOneAtATime(t *testing.T) {
	locks := session.NewLocks()

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("a")
			defer unlock()

			mu.Lock()
			running++
			if running > maxSeen {
				maxSeen = running
			}
			mu.Unlock()

			time.Sleep(2 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestLocks_DifferentIDsDoNotBlock(t *testing.T) {
	locks := session.NewLocks()
	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b waited for a")
	}
}

func TestLocks_ReusableAfterRelease(t *testing.T) {
	locks := session.NewLocks()
	locks.Lock("a")()

	done := make(chan struct{})
	go func() {
		locks.Lock("a")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("released lock could not be taken again")
	}
}
