package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppendsToLadder(t *testing.T) {
	s := setup(t)
	clock := &testClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := services.NewExposureService(s.Exposures, nil, clock)
	ctx := context.Background()

	first, err := svc.Create(ctx, "say hello to a stranger", 4, "", nil)
	require.NoError(t, err)
	second, err := svc.Create(ctx, "give a presentation", 8, "", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)
	assert.Equal(t, models.StatusPending, first.SyncStatus)
	assert.Equal(t, 4, first.SudsCurrent)
}

func TestUpdateTouchesOnlyGivenFields(t *testing.T) {
	s := setup(t)
	clock := &testClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := services.NewExposureService(s.Exposures, nil, clock)
	ctx := context.Background()

	e, err := svc.Create(ctx, "shake hands", 7, "", nil)
	require.NoError(t, err)

	clock.Set(clock.Now().Add(time.Hour))
	suds := 5
	got, err := svc.Update(ctx, e.ID, services.ExposureUpdate{SudsCurrent: &suds})
	require.NoError(t, err)

	assert.Equal(t, 5, got.SudsCurrent)
	assert.Equal(t, "shake hands", got.TriggerDescription)
	assert.Equal(t, 7, got.SudsInitial)
	assert.Equal(t, models.StatusPending, got.SyncStatus)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

type recordingDeleter struct {
	collection string
	id         string
}

func (d *recordingDeleter) DeleteRemote(_ context.Context, collection, id string) error {
	d.collection = collection
	d.id = id
	return nil
}

func TestDeletePropagatesToRemote(t *testing.T) {
	s := setup(t)
	clock := &testClock{t: time.Now().UTC()}
	deleter := &recordingDeleter{}
	svc := services.NewExposureService(s.Exposures, deleter, clock)
	ctx := context.Background()

	e, err := svc.Create(ctx, "ride the subway", 6, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, e.ID))

	assert.Equal(t, "exposures", deleter.collection)
	assert.Equal(t, e.ID, deleter.id)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
