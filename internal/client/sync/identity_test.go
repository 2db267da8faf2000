package sync_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoganov/ancora/internal/client/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestBindFollowsIdentity(t *testing.T) {
	f := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan sync.Identity)
	done := make(chan struct{})
	go func() {
		sync.Bind(ctx, f.engine, changes, nil)
		close(done)
	}()

	changes <- sync.Identity{UserID: "user-1"}
	waitFor(t, f.engine.Running)

	// Sign-out stops the engine and tears down the subscriptions.
	changes <- sync.Identity{}
	waitFor(t, func() bool { return !f.engine.Running() })
	f.remote.mu.Lock()
	cancelled := f.remote.cancelled["exposures"]
	f.remote.mu.Unlock()
	assert.True(t, cancelled)

	// A different user gets a fresh start.
	changes <- sync.Identity{UserID: "user-2"}
	waitFor(t, f.engine.Running)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("bind did not exit on context cancellation")
	}
	require.False(t, f.engine.Running())
}
