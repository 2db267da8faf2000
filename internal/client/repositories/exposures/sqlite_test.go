package exposures_test

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

func newExposure(id string, order int, now time.Time) *models.Exposure {
	return &models.Exposure{
		Meta: models.Meta{
			ID:         id,
			SyncStatus: models.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		TriggerDescription: "touching a door handle",
		SudsInitial:        7,
		SudsCurrent:        7,
		OrderIndex:         order,
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	prob := 80
	e := newExposure("e1", 0, now)
	e.FearedOutcome = "I will get sick"
	e.FearedProbability = &prob
	require.NoError(t, s.Exposures.Put(ctx, e))

	got, err := s.Exposures.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "touching a door handle", got.TriggerDescription)
	assert.Equal(t, 7, got.SudsCurrent)
	require.NotNil(t, got.FearedProbability)
	assert.Equal(t, 80, *got.FearedProbability)
	assert.True(t, got.HasPrediction())
	assert.Equal(t, models.StatusPending, got.SyncStatus)
	assert.True(t, got.UpdatedAt.Equal(now))
}

func TestGetByIDNotFound(t *testing.T) {
	s := setup(t)

	_, err := s.Exposures.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetAllOrderedByIndex(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Inserted out of ladder order on purpose.
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e3", 2, now)))
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e1", 0, now)))
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e2", 1, now)))

	all, err := s.Exposures.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestReorder(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Exposures.Put(ctx, newExposure("e1", 0, now)))
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e2", 1, now)))
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e3", 2, now)))

	later := now.Add(time.Minute)
	require.NoError(t, s.Exposures.Reorder(ctx, []string{"e3", "e1", "e2"}, later))

	all, err := s.Exposures.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"e3", "e1", "e2"}, []string{all[0].ID, all[1].ID, all[2].ID})
	for _, e := range all {
		assert.True(t, e.UpdatedAt.Equal(later))
		assert.Equal(t, models.StatusPending, e.SyncStatus)
	}
}

func TestReorderMissingIDAbortsAll(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Exposures.Put(ctx, newExposure("e1", 0, now)))
	require.NoError(t, s.Exposures.Put(ctx, newExposure("e2", 1, now)))

	err := s.Exposures.Reorder(ctx, []string{"e2", "ghost", "e1"}, now.Add(time.Minute))
	require.ErrorIs(t, err, common.ErrorNotFound)

	// e2 was rewritten before the failure; the rollback must undo it.
	all, getErr := s.Exposures.GetAll(ctx)
	require.NoError(t, getErr)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"e1", "e2"}, []string{all[0].ID, all[1].ID})
}

func TestDeleteByID(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Exposures.Put(ctx, newExposure("e1", 0, time.Now().UTC())))
	require.NoError(t, s.Exposures.DeleteByID(ctx, "e1"))

	_, err := s.Exposures.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
