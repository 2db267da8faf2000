package session

import (
	"context"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/exposures"
	"github.com/avoganov/ancora/internal/client/services"
	"github.com/avoganov/ancora/internal/timex"
)

// Completer performs the side effects of a finished session run: the
// session row itself, a check-in when the exposure carries a prediction,
// the exposure's distress and completion counters, and the streak.
type Completer struct {
	sessions  services.SessionService
	checkins  services.CheckInService
	streaks   services.StreakService
	exposures exposures.Repository
	clock     timex.Clock
}

func NewCompleter(
	sessions services.SessionService,
	checkins services.CheckInService,
	streaks services.StreakService,
	exposureRepo exposures.Repository,
	clock timex.Clock,
) *Completer {
	return &Completer{
		sessions:  sessions,
		checkins:  checkins,
		streaks:   streaks,
		exposures: exposureRepo,
		clock:     clock,
	}
}

// Finalize persists a completed machine run. The machine must be in the
// complete state; a cancelled run never reaches here and leaves no trace.
func (c *Completer) Finalize(ctx context.Context, m *Machine) (*models.Session, error) {
	if m.State() != StateComplete {
		return nil, fmt.Errorf("cannot finalize session in state %s", m.State())
	}
	snap := m.Snapshot()

	var sudsEnd *int
	if n := len(snap.SudsLog); n > 0 {
		v := snap.SudsLog[n-1].Value
		sudsEnd = &v
	}

	sess, err := c.sessions.Create(ctx, services.NewSessionParams{
		ExposureID:      snap.Exposure.ID,
		StartedAt:       snap.StartedAt,
		DurationSeconds: snap.ElapsedSeconds,
		SudsStart:       snap.Exposure.SudsCurrent,
		SudsEnd:         sudsEnd,
		SudsLog:         snap.SudsLog,
		Reflection:      snap.Reflection,
		AudioBlob:       snap.Audio,
		Outcome:         m.Outcome(),
	})
	if err != nil {
		return nil, err
	}

	if snap.Exposure.HasPrediction() {
		if _, err := c.checkins.ScheduleForSession(ctx, sess, snap.Exposure); err != nil {
			return nil, err
		}
	}

	e, err := c.exposures.GetByID(ctx, snap.Exposure.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exposure for update: %w", err)
	}
	if sudsEnd != nil {
		e.SudsCurrent = *sudsEnd
	}
	e.CompletedCount++
	e.Touch(c.clock.Now().UTC())
	if err := c.exposures.Put(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update exposure: %w", err)
	}

	if _, err := c.streaks.RecordActivity(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}
