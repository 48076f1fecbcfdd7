//go:build integration

package attempts_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credlock/internal/attempts"
	"credlock/pkg/testutil/containers"
)

func TestRedisStore_Counters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := containers.NewRedisClient(t)
	store := attempts.NewRedisStore(client)
	ctx := context.Background()

	before, after, err := store.RecordFailure(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, before)
	assert.Equal(t, 1, after)

	before, after, err = store.RecordFailure(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, before)
	assert.Equal(t, 2, after)

	prior, existed, err := store.Clear(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, 2, prior)

	_, existed, err = store.Clear(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, existed)
}

// Concurrent failures must produce contiguous, non-overlapping before/after
// pairs; INCR makes the increment-and-read atomic.
func TestRedisStore_ConcurrentFailures(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := containers.NewRedisClient(t)
	store := attempts.NewRedisStore(client)
	ctx := context.Background()

	const writers = 20
	seen := make(map[int]bool, writers)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			before, after, err := store.RecordFailure(ctx, "alice")
			require.NoError(t, err)
			require.Equal(t, before+1, after)
			mu.Lock()
			seen[after] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, writers, "every increment should observe a distinct count")
}
