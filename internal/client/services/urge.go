package services

import (
	"context"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/urges"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

// Adaptive wait tuning, in seconds.
const (
	baseWait     = 900
	waitStep     = 300
	minWait      = 300
	maxWait      = 2700
	recentWindow = 3
)

type UrgeService interface {
	// Create logs a new urge with an adaptively assigned wait duration.
	Create(ctx context.Context, trigger string, urgency int) (*models.ReassuranceUrge, error)

	GetRecent(ctx context.Context, limit int) ([]models.ReassuranceUrge, error)

	// SuccessRate is the fraction of logged urges where the user resisted
	// for the full wait. Zero when nothing is logged.
	SuccessRate(ctx context.Context) (float64, error)

	// Resolve records how the wait ended.
	Resolve(ctx context.Context, id string, completedWait bool, toolsUsed []string) (*models.ReassuranceUrge, error)
}

type urgeService struct {
	repo  urges.Repository
	clock timex.Clock
}

func NewUrgeService(repo urges.Repository, clock timex.Clock) UrgeService {
	return &urgeService{repo: repo, clock: clock}
}

// AdaptiveWait computes the wait for the next urge from the most recent
// prior ones (newest first). Three resisted urges in a row raise the base,
// a gave-in on the most recent one lowers it.
func AdaptiveWait(recent []models.ReassuranceUrge) int {
	wait := baseWait

	if len(recent) >= recentWindow {
		allResisted := true
		for _, u := range recent[:recentWindow] {
			if !u.CompletedWait {
				allResisted = false
				break
			}
		}
		if allResisted {
			wait += waitStep
		}
	}

	if len(recent) > 0 && !recent[0].CompletedWait {
		wait -= waitStep
	}

	if wait < minWait {
		wait = minWait
	}
	if wait > maxWait {
		wait = maxWait
	}
	return wait
}

func (s *urgeService) Create(ctx context.Context, trigger string, urgency int) (*models.ReassuranceUrge, error) {
	recent, err := s.repo.GetRecent(ctx, recentWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent urges: %w", err)
	}

	now := s.clock.Now().UTC()
	u := &models.ReassuranceUrge{
		Meta: models.Meta{
			ID:         uuid.NewString(),
			SyncStatus: models.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		Trigger:             trigger,
		Urgency:             urgency,
		WaitDurationSeconds: AdaptiveWait(recent),
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save urge: %w", err)
	}
	return u, nil
}

func (s *urgeService) GetRecent(ctx context.Context, limit int) ([]models.ReassuranceUrge, error) {
	return s.repo.GetRecent(ctx, limit)
}

func (s *urgeService) SuccessRate(ctx context.Context) (float64, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}
	var resisted int
	for _, u := range all {
		if u.CompletedWait {
			resisted++
		}
	}
	return float64(resisted) / float64(len(all)), nil
}

func (s *urgeService) Resolve(ctx context.Context, id string, completedWait bool, toolsUsed []string) (*models.ReassuranceUrge, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.CompletedWait = completedWait
	u.ToolsUsed = toolsUsed
	u.Touch(s.clock.Now().UTC())

	if err := s.repo.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save urge: %w", err)
	}
	return u, nil
}
