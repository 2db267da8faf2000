package checkins_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/store"
	"github.com/avoganov/ancora/internal/common"
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

func newCheckIn(id, sessionID string, scheduledFor time.Time) *models.OutcomeCheckIn {
	return &models.OutcomeCheckIn{
		Meta: models.Meta{
			ID:         id,
			SyncStatus: models.StatusPending,
			CreatedAt:  scheduledFor.Add(-48 * time.Hour),
			UpdatedAt:  scheduledFor.Add(-48 * time.Hour),
		},
		SessionID:            sessionID,
		ExposureID:           "e1",
		FearedOutcome:        "everyone will notice",
		PredictedProbability: 90,
		ScheduledFor:         scheduledFor,
	}
}

func TestListDue(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.CheckIns.Put(ctx, newCheckIn("c-later", "s1", now.Add(-time.Hour))))
	require.NoError(t, s.CheckIns.Put(ctx, newCheckIn("c-early", "s2", now.Add(-24*time.Hour))))
	require.NoError(t, s.CheckIns.Put(ctx, newCheckIn("c-future", "s3", now.Add(time.Hour))))

	answered := newCheckIn("c-answered", "s4", now.Add(-2*time.Hour))
	answered.OutcomeOccurred = models.ResultNo
	done := now.Add(-time.Hour)
	answered.CompletedAt = &done
	require.NoError(t, s.CheckIns.Put(ctx, answered))

	due, err := s.CheckIns.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "c-early", due[0].ID)
	assert.Equal(t, "c-later", due[1].ID)
}

func TestAnsweredLeavesDueList(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	c := newCheckIn("c1", "s1", now.Add(-time.Hour))
	require.NoError(t, s.CheckIns.Put(ctx, c))

	c.OutcomeOccurred = models.ResultUnsure
	c.CompletedAt = &now
	c.Touch(now)
	require.NoError(t, s.CheckIns.Put(ctx, c))

	due, err := s.CheckIns.ListDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)

	got, err := s.CheckIns.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, got.Answered())
	assert.Equal(t, models.ResultUnsure, got.OutcomeOccurred)
}

func TestGetBySession(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.CheckIns.Put(ctx, newCheckIn("c1", "s1", now)))

	got, err := s.CheckIns.GetBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)

	_, err = s.CheckIns.GetBySession(ctx, "unknown")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
