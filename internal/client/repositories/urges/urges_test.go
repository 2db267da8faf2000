package urges_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newUrge(id string, createdAt time.Time, resisted bool) *models.ReassuranceUrge {
	return &models.ReassuranceUrge{
		Meta: models.Meta{
			ID:         id,
			SyncStatus: models.StatusPending,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		},
		Trigger:             "checked the lock twice",
		Urgency:             7,
		WaitDurationSeconds: 900,
		CompletedWait:       resisted,
		ToolsUsed:           []string{"breathing"},
	}
}

func TestGetRecentNewestFirst(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Urges.Put(ctx, newUrge("u1", base, true)))
	require.NoError(t, s.Urges.Put(ctx, newUrge("u3", base.Add(2*time.Hour), false)))
	require.NoError(t, s.Urges.Put(ctx, newUrge("u2", base.Add(time.Hour), true)))

	got, err := s.Urges.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"u3", "u2", "u1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetRecentLimit(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"u1", "u2", "u3", "u4"} {
		require.NoError(t, s.Urges.Put(ctx, newUrge(id, base.Add(time.Duration(i)*time.Hour), true)))
	}

	got, err := s.Urges.GetRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "u4", got[0].ID)
	assert.Equal(t, "u2", got[2].ID)
}

func TestPutUpdatesInPlace(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	u := newUrge("u1", now, false)
	require.NoError(t, s.Urges.Put(ctx, u))

	u.CompletedWait = true
	u.Touch(now.Add(15 * time.Minute))
	require.NoError(t, s.Urges.Put(ctx, u))

	got, err := s.Urges.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.CompletedWait)

	all, err := s.Urges.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
