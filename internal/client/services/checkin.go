package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/checkins"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

// CheckInDelay is how long after a session its outcome check-in becomes
// due.
const CheckInDelay = 48 * time.Hour

type CheckInService interface {
	// ScheduleForSession creates a check-in 48 hours out, carrying the
	// exposure's prediction as it stood at session time.
	ScheduleForSession(ctx context.Context, session *models.Session, exposure *models.Exposure) (*models.OutcomeCheckIn, error)

	// Pending returns the unanswered check-ins that are due now.
	Pending(ctx context.Context) ([]models.OutcomeCheckIn, error)

	Complete(ctx context.Context, id string, result models.CheckInResult, notes string) (*models.OutcomeCheckIn, error)
}

type checkInService struct {
	repo  checkins.Repository
	clock timex.Clock
}

func NewCheckInService(repo checkins.Repository, clock timex.Clock) CheckInService {
	return &checkInService{repo: repo, clock: clock}
}

func (s *checkInService) ScheduleForSession(ctx context.Context, session *models.Session, exposure *models.Exposure) (*models.OutcomeCheckIn, error) {
	if !exposure.HasPrediction() {
		return nil, fmt.Errorf("exposure %s carries no prediction", exposure.ID)
	}

	now := s.clock.Now().UTC()
	c := &models.OutcomeCheckIn{
		Meta: models.Meta{
			ID:         uuid.NewString(),
			SyncStatus: models.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		SessionID:            session.ID,
		ExposureID:           exposure.ID,
		FearedOutcome:        exposure.FearedOutcome,
		PredictedProbability: *exposure.FearedProbability,
		ScheduledFor:         now.Add(CheckInDelay),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}
	return c, nil
}

func (s *checkInService) Pending(ctx context.Context) ([]models.OutcomeCheckIn, error) {
	return s.repo.ListDue(ctx, s.clock.Now().UTC())
}

func (s *checkInService) Complete(ctx context.Context, id string, result models.CheckInResult, notes string) (*models.OutcomeCheckIn, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	c.OutcomeOccurred = result
	c.Notes = notes
	c.CompletedAt = &now
	c.Touch(now)

	if err := s.repo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save check-in: %w", err)
	}
	return c, nil
}
