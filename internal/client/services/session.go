package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/sessions"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

// NewSessionParams carries everything the state machine produced for a
// finished session.
type NewSessionParams struct {
	ExposureID      string
	StartedAt       time.Time
	DurationSeconds int
	SudsStart       int
	SudsEnd         *int
	SudsLog         []models.SUDSEntry
	Reflection      string
	AudioBlob       string
	Outcome         models.SessionOutcome
}

type SessionService interface {
	Create(ctx context.Context, p NewSessionParams) (*models.Session, error)
	GetByExposure(ctx context.Context, exposureID string) ([]models.Session, error)
	GetAll(ctx context.Context) ([]models.Session, error)

	// WeeklyCount reports the number of sessions started in the last
	// seven days.
	WeeklyCount(ctx context.Context) (int, error)

	// AverageSudsReduction averages (sudsStart - sudsEnd) over sessions
	// with a recorded end score. Zero when no session qualifies.
	AverageSudsReduction(ctx context.Context) (float64, error)
}

type sessionService struct {
	repo  sessions.Repository
	clock timex.Clock
}

func NewSessionService(repo sessions.Repository, clock timex.Clock) SessionService {
	return &sessionService{repo: repo, clock: clock}
}

func (s *sessionService) Create(ctx context.Context, p NewSessionParams) (*models.Session, error) {
	now := s.clock.Now().UTC()
	sess := &models.Session{
		Meta: models.Meta{
			ID:         uuid.NewString(),
			SyncStatus: models.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		ExposureID:      p.ExposureID,
		StartedAt:       p.StartedAt,
		CompletedAt:     &now,
		DurationSeconds: p.DurationSeconds,
		SudsStart:       p.SudsStart,
		SudsEnd:         p.SudsEnd,
		SudsLog:         p.SudsLog,
		Reflection:      p.Reflection,
		AudioBlob:       p.AudioBlob,
		Outcome:         p.Outcome,
	}
	if err := s.repo.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) GetByExposure(ctx context.Context, exposureID string) ([]models.Session, error) {
	return s.repo.GetByExposure(ctx, exposureID)
}

func (s *sessionService) GetAll(ctx context.Context) ([]models.Session, error) {
	return s.repo.GetAll(ctx)
}

func (s *sessionService) WeeklyCount(ctx context.Context) (int, error) {
	weekAgo := s.clock.Now().UTC().Add(-7 * 24 * time.Hour)
	return s.repo.CountSince(ctx, weekAgo)
}

func (s *sessionService) AverageSudsReduction(ctx context.Context) (float64, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	var sum, n int
	for _, sess := range all {
		if sess.SudsEnd == nil {
			continue
		}
		sum += sess.SudsStart - *sess.SudsEnd
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}
