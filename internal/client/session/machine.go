// Package session holds the in-memory state machine that drives one timed
// exposure attempt, and the completer that turns a finished run into
// local-store writes. The machine owns no timers; the caller feeds it
// tick events.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/timex"
)

// State is one node of the session lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateTriggered  State = "triggered"
	StateDelay      State = "delay"
	StateReflection State = "reflection"
	StateComplete   State = "complete"
)

// DefaultTargetSeconds is the initial delay-timer target.
const DefaultTargetSeconds = 600

var ErrInvalidTransition = errors.New("invalid transition")

// Event is a machine input. The concrete types below are the full set.
type Event interface{ isEvent() }

type (
	// StartSession captures an exposure snapshot and arms the machine.
	StartSession struct{ Exposure *models.Exposure }
	// BeginDelay starts the timed wait.
	BeginDelay struct{}
	// TimerTick advances elapsed time by one second.
	TimerTick struct{}
	// LogSUDS appends a distress reading.
	LogSUDS struct{ Value int }
	// ExtendTimer raises the target duration without touching elapsed time.
	ExtendTimer struct{ Seconds int }
	// TimerComplete ends the wait with the target reached.
	TimerComplete struct{}
	// CompleteEarly ends the wait before the target.
	CompleteEarly struct{}
	// SubmitReflection records the user's notes and optional voice memo.
	SubmitReflection struct {
		Text  string
		Audio string
	}
	// SkipReflection finishes without notes.
	SkipReflection struct{}
	// Cancel abandons the run; no session record is ever written.
	Cancel struct{}
)

func (StartSession) isEvent()     {}
func (BeginDelay) isEvent()       {}
func (TimerTick) isEvent()        {}
func (LogSUDS) isEvent()          {}
func (ExtendTimer) isEvent()      {}
func (TimerComplete) isEvent()    {}
func (CompleteEarly) isEvent()    {}
func (SubmitReflection) isEvent() {}
func (SkipReflection) isEvent()   {}
func (Cancel) isEvent()           {}

// Snapshot is the machine's accumulated context, read by the completer.
type Snapshot struct {
	Exposure       *models.Exposure
	StartedAt      time.Time
	ElapsedSeconds int
	TargetSeconds  int
	SudsLog        []models.SUDSEntry
	Reflection     string
	Audio          string
}

// Machine is a single-use session driver. Not safe for concurrent use;
// the caller is expected to feed it from one goroutine.
type Machine struct {
	state State
	snap  Snapshot
	clock timex.Clock
}

func NewMachine(clock timex.Clock) *Machine {
	return &Machine{state: StateIdle, clock: clock}
}

func (m *Machine) State() State       { return m.state }
func (m *Machine) Snapshot() Snapshot { return m.snap }

// Outcome classifies a finished run by whether the elapsed time reached
// the target.
func (m *Machine) Outcome() models.SessionOutcome {
	if m.snap.ElapsedSeconds >= m.snap.TargetSeconds {
		return models.OutcomeCompleted
	}
	return models.OutcomePartial
}

// Send applies one event. Events that are not legal in the current state
// return ErrInvalidTransition and leave the machine untouched.
func (m *Machine) Send(ev Event) error {
	switch e := ev.(type) {
	case StartSession:
		if m.state != StateIdle {
			return m.reject(ev)
		}
		m.snap = Snapshot{
			Exposure:      e.Exposure,
			StartedAt:     m.clock.Now().UTC(),
			TargetSeconds: DefaultTargetSeconds,
		}
		m.state = StateTriggered

	case BeginDelay:
		if m.state != StateTriggered {
			return m.reject(ev)
		}
		m.snap.SudsLog = []models.SUDSEntry{{
			Timestamp: m.clock.Now().UTC(),
			Value:     m.snap.Exposure.SudsCurrent,
		}}
		m.state = StateDelay

	case TimerTick:
		if m.state != StateDelay {
			return m.reject(ev)
		}
		m.snap.ElapsedSeconds++

	case LogSUDS:
		if m.state != StateDelay {
			return m.reject(ev)
		}
		m.snap.SudsLog = append(m.snap.SudsLog, models.SUDSEntry{
			Timestamp: m.clock.Now().UTC(),
			Value:     e.Value,
		})

	case ExtendTimer:
		if m.state != StateDelay {
			return m.reject(ev)
		}
		m.snap.TargetSeconds += e.Seconds

	case TimerComplete, CompleteEarly:
		if m.state != StateDelay {
			return m.reject(ev)
		}
		m.state = StateReflection

	case SubmitReflection:
		if m.state != StateReflection {
			return m.reject(ev)
		}
		m.snap.Reflection = e.Text
		m.snap.Audio = e.Audio
		m.state = StateComplete

	case SkipReflection:
		if m.state != StateReflection {
			return m.reject(ev)
		}
		m.state = StateComplete

	case Cancel:
		if m.state != StateTriggered && m.state != StateDelay {
			return m.reject(ev)
		}
		m.snap = Snapshot{}
		m.state = StateIdle

	default:
		return fmt.Errorf("unknown event %T", ev)
	}
	return nil
}

func (m *Machine) reject(ev Event) error {
	return fmt.Errorf("%w: %T in state %s", ErrInvalidTransition, ev, m.state)
}
