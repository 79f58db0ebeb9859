package adjfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet-backend/domain/core/aggregates"
)

func TestStore_Watch(t *testing.T) {
	store := testStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "network.txt")
	require.NoError(t, os.WriteFile(path, []byte("A: B\nB: A\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var latest *aggregates.Network
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, path, func(n *aggregates.Network) {
			mu.Lock()
			latest = n
			mu.Unlock()
		})
	}()

	// Let the watcher register before touching the file
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("A: B C\nB: A\nC: A\n"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.NodeCount() == 3
	}, 5*time.Second, 50*time.Millisecond, "watcher never delivered the reloaded network")

	t.Run("cancellation stops the watcher", func(t *testing.T) {
		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop after cancellation")
		}
	})
}

func TestStore_Watch_KeepsNetworkOnBadReload(t *testing.T) {
	store := testStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "network.txt")
	require.NoError(t, os.WriteFile(path, []byte("A: B\nB: A\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *aggregates.Network, 4)
	go store.Watch(ctx, path, func(n *aggregates.Network) { reloads <- n })

	time.Sleep(100 * time.Millisecond)

	// A corrupt write must not reach the callback
	require.NoError(t, os.WriteFile(path, []byte("A: b:c\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	// A later good write must
	require.NoError(t, os.WriteFile(path, []byte("X: Y\nY: X\n"), 0o644))

	select {
	case n := <-reloads:
		assert.Equal(t, 2, n.NodeCount())
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never recovered after a corrupt write")
	}
}
