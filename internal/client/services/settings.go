package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/settings"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	SetOnboardingCompleted(ctx context.Context, completed bool) error
}

type settingsService struct {
	repo  settings.Repository
	clock timex.Clock
}

func NewSettingsService(repo settings.Repository, clock timex.Clock) SettingsService {
	return &settingsService{repo: repo, clock: clock}
}

// Get returns the settings singleton, defaulting to zero values for a
// first-time user.
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	st, err := s.repo.Get(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return &models.Settings{}, nil
	}
	return st, err
}

func (s *settingsService) SetOnboardingCompleted(ctx context.Context, completed bool) error {
	now := s.clock.Now().UTC()

	st, err := s.repo.Get(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		st = &models.Settings{
			Meta: models.Meta{
				ID:         uuid.NewString(),
				SyncStatus: models.StatusPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
	} else if err != nil {
		return err
	}

	st.HasCompletedOnboarding = completed
	st.Touch(now)
	if err := s.repo.Put(ctx, st); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
