package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/checkins"
	"github.com/avoganov/ancora/internal/client/repositories/exposures"
	"github.com/avoganov/ancora/internal/client/repositories/sessions"
	"github.com/avoganov/ancora/internal/client/repositories/settings"
	"github.com/avoganov/ancora/internal/client/repositories/streaks"
	"github.com/avoganov/ancora/internal/client/repositories/urges"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/timex"
)

// Snapshot is a full JSON dump of the local store, suitable for a user
// data export.
type Snapshot struct {
	ExportedAt time.Time                `json:"exportedAt"`
	Exposures  []models.Exposure        `json:"exposures"`
	Sessions   []models.Session         `json:"sessions"`
	Streak     *models.Streak           `json:"streak,omitempty"`
	Settings   *models.Settings         `json:"settings,omitempty"`
	CheckIns   []models.OutcomeCheckIn  `json:"outcomeCheckIns"`
	Urges      []models.ReassuranceUrge `json:"reassuranceUrges"`
}

type ExportService interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	JSON(ctx context.Context) ([]byte, error)
}

type exportService struct {
	exposures exposures.Repository
	sessions  sessions.Repository
	streaks   streaks.Repository
	settings  settings.Repository
	checkins  checkins.Repository
	urges     urges.Repository
	clock     timex.Clock
}

func NewExportService(
	exposureRepo exposures.Repository,
	sessionRepo sessions.Repository,
	streakRepo streaks.Repository,
	settingsRepo settings.Repository,
	checkinRepo checkins.Repository,
	urgeRepo urges.Repository,
	clock timex.Clock,
) ExportService {
	return &exportService{
		exposures: exposureRepo,
		sessions:  sessionRepo,
		streaks:   streakRepo,
		settings:  settingsRepo,
		checkins:  checkinRepo,
		urges:     urgeRepo,
		clock:     clock,
	}
}

func (s *exportService) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.clock.Now().UTC()}
	var err error

	if snap.Exposures, err = s.exposures.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export exposures: %w", err)
	}
	if snap.Sessions, err = s.sessions.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export sessions: %w", err)
	}
	if snap.Streak, err = s.streaks.Get(ctx); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to export streak: %w", err)
		}
		snap.Streak = nil
	}
	if snap.Settings, err = s.settings.Get(ctx); err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to export settings: %w", err)
		}
		snap.Settings = nil
	}
	if snap.CheckIns, err = s.checkins.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export check-ins: %w", err)
	}
	if snap.Urges, err = s.urges.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export urges: %w", err)
	}
	return snap, nil
}

func (s *exportService) JSON(ctx context.Context) ([]byte, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}
