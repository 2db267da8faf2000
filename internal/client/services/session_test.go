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

func createSession(t *testing.T, svc services.SessionService, exposureID string, startedAt time.Time, sudsStart int, sudsEnd *int) *models.Session {
	t.Helper()
	sess, err := svc.Create(context.Background(), services.NewSessionParams{
		ExposureID:      exposureID,
		StartedAt:       startedAt,
		DurationSeconds: 600,
		SudsStart:       sudsStart,
		SudsEnd:         sudsEnd,
		Outcome:         models.OutcomeCompleted,
	})
	require.NoError(t, err)
	return sess
}

func TestWeeklyCount(t *testing.T) {
	s := setup(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := &testClock{t: now}
	svc := services.NewSessionService(s.Sessions, clock)

	createSession(t, svc, "e1", now.Add(-10*24*time.Hour), 70, nil)
	createSession(t, svc, "e1", now.Add(-3*24*time.Hour), 70, nil)
	createSession(t, svc, "e1", now.Add(-time.Hour), 70, nil)

	n, err := svc.WeeklyCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAverageSudsReduction(t *testing.T) {
	s := setup(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := services.NewSessionService(s.Sessions, &testClock{t: now})
	ctx := context.Background()

	avg, err := svc.AverageSudsReduction(ctx)
	require.NoError(t, err)
	assert.Zero(t, avg)

	end1, end2 := 40, 50
	createSession(t, svc, "e1", now.Add(-3*time.Hour), 70, &end1) // -30
	createSession(t, svc, "e1", now.Add(-2*time.Hour), 60, &end2) // -10
	// No end score recorded; must not drag the average down.
	createSession(t, svc, "e1", now.Add(-time.Hour), 80, nil)

	avg, err = svc.AverageSudsReduction(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, avg, 1e-9)
}
