package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/streaks"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/timex"
	"github.com/google/uuid"
)

type StreakService interface {
	// Get returns the streak record, or a zero-value record when no
	// activity has ever been logged.
	Get(ctx context.Context) (*models.Streak, error)

	// RecordActivity applies the daily-boundary rule for today and
	// returns the updated record.
	RecordActivity(ctx context.Context) (*models.Streak, error)
}

type streakService struct {
	repo  streaks.Repository
	clock timex.Clock
}

func NewStreakService(repo streaks.Repository, clock timex.Clock) StreakService {
	return &streakService{repo: repo, clock: clock}
}

func (s *streakService) Get(ctx context.Context) (*models.Streak, error) {
	st, err := s.repo.Get(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		return &models.Streak{}, nil
	}
	return st, err
}

// RecordActivity compares the last activity date to today at the
// day level. Same day leaves the streak alone, exactly one day apart
// extends it, a longer gap resets it to 1.
func (s *streakService) RecordActivity(ctx context.Context) (*models.Streak, error) {
	now := s.clock.Now()

	st, err := s.repo.Get(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		st = &models.Streak{
			Meta: models.Meta{
				ID:         uuid.NewString(),
				SyncStatus: models.StatusPending,
				CreatedAt:  now.UTC(),
				UpdatedAt:  now.UTC(),
			},
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: now,
		}
		if err := s.repo.Put(ctx, st); err != nil {
			return nil, fmt.Errorf("failed to save streak: %w", err)
		}
		return st, nil
	}
	if err != nil {
		return nil, err
	}

	switch days := timex.DaysBetween(st.LastActivityDate, now); {
	case days == 0:
		return st, nil
	case days == 1:
		st.CurrentStreak++
		if st.CurrentStreak > st.LongestStreak {
			st.LongestStreak = st.CurrentStreak
		}
	default:
		st.CurrentStreak = 1
	}

	st.LastActivityDate = now
	st.Touch(now.UTC())
	if err := s.repo.Put(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}
	return st, nil
}
