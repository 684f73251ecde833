package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLock_SerializesSameKey(t *testing.T) {
	l := NewKeyedLock()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		counter int
		inside  int
		maxSeen int
		mu      sync.Mutex
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.WithLock(ctx, "session-1", func() error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				counter++
				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, l.Len())
}

func TestWithLock_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewKeyedLock()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlock()

	done := make(chan struct{})
	go func() {
		_ = l.WithLock(ctx, "b", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
}

func TestLock_ContextCancelled(t *testing.T) {
	l := NewKeyedLock()

	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "k")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	unlock()
	unlock()
	assert.Equal(t, 0, l.Len())
}

func TestWithLock_PropagatesError(t *testing.T) {
	l := NewKeyedLock()
	want := errors.New("fail")
	assert.Equal(t, want, l.WithLock(context.Background(), "k", func() error { return want }))
	assert.Equal(t, 0, l.Len())
}
