// Package services contains the application services the CLI calls into.
// Every mutation goes through the local store first and is stamped
// pending; the sync engine picks it up from there.
package services

import (
	"context"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/exposures"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

// RemoteDeleter propagates local deletions to the remote store. The sync
// engine implements it; a nil deleter means offline-only operation.
type RemoteDeleter interface {
	DeleteRemote(ctx context.Context, collection string, id string) error
}

// ExposureUpdate carries the fields an update may change. Nil fields are
// left untouched.
type ExposureUpdate struct {
	TriggerDescription *string
	SudsCurrent        *int
	FearedOutcome      *string
	FearedProbability  *int
}

type ExposureService interface {
	Create(ctx context.Context, trigger string, sudsInitial int, fearedOutcome string, fearedProbability *int) (*models.Exposure, error)
	GetByID(ctx context.Context, id string) (*models.Exposure, error)
	GetAll(ctx context.Context) ([]models.Exposure, error)
	Update(ctx context.Context, id string, upd ExposureUpdate) (*models.Exposure, error)
	Reorder(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
}

type exposureService struct {
	repo    exposures.Repository
	deleter RemoteDeleter
	clock   timex.Clock
}

func NewExposureService(repo exposures.Repository, deleter RemoteDeleter, clock timex.Clock) ExposureService {
	return &exposureService{repo: repo, deleter: deleter, clock: clock}
}

// Create appends a new rung at the bottom of the ladder.
func (s *exposureService) Create(ctx context.Context, trigger string, sudsInitial int, fearedOutcome string, fearedProbability *int) (*models.Exposure, error) {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exposures: %w", err)
	}

	now := s.clock.Now().UTC()
	e := &models.Exposure{
		Meta: models.Meta{
			ID:         uuid.NewString(),
			SyncStatus: models.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		TriggerDescription: trigger,
		SudsInitial:        sudsInitial,
		SudsCurrent:        sudsInitial,
		OrderIndex:         len(existing),
		FearedOutcome:      fearedOutcome,
		FearedProbability:  fearedProbability,
	}

	if err := s.repo.Put(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save exposure: %w", err)
	}
	return e, nil
}

func (s *exposureService) GetByID(ctx context.Context, id string) (*models.Exposure, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *exposureService) GetAll(ctx context.Context) ([]models.Exposure, error) {
	return s.repo.GetAll(ctx)
}

func (s *exposureService) Update(ctx context.Context, id string, upd ExposureUpdate) (*models.Exposure, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.TriggerDescription != nil {
		e.TriggerDescription = *upd.TriggerDescription
	}
	if upd.SudsCurrent != nil {
		e.SudsCurrent = *upd.SudsCurrent
	}
	if upd.FearedOutcome != nil {
		e.FearedOutcome = *upd.FearedOutcome
	}
	if upd.FearedProbability != nil {
		e.FearedProbability = upd.FearedProbability
	}

	e.Touch(s.clock.Now().UTC())
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save exposure: %w", err)
	}
	return e, nil
}

func (s *exposureService) Reorder(ctx context.Context, ids []string) error {
	return s.repo.Reorder(ctx, ids, s.clock.Now().UTC())
}

// Delete removes the exposure locally and, when a sync engine is
// attached, best-effort removes it remotely as well.
func (s *exposureService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exposure: %w", err)
	}
	if s.deleter != nil {
		if err := s.deleter.DeleteRemote(ctx, exposures.Collection, id); err != nil {
			return fmt.Errorf("deleted locally, remote delete failed: %w", err)
		}
	}
	return nil
}
