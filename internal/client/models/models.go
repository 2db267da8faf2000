package models

import "time"

// Exposure is one rung of the user's fear ladder.
type Exposure struct {
	Meta
	TriggerDescription string `json:"triggerDescription"`
	SudsInitial        int    `json:"sudsInitial"`
	SudsCurrent        int    `json:"sudsCurrent"`
	OrderIndex         int    `json:"orderIndex"`
	CompletedCount     int    `json:"completedCount"`
	FearedOutcome      string `json:"fearedOutcome,omitempty"`
	// FearedProbability is the predicted likelihood (percent) of the feared
	// outcome; nil when the exposure carries no prediction.
	FearedProbability *int `json:"fearedProbability,omitempty"`
}

// HasPrediction reports whether completing a session on this exposure
// should schedule an outcome check-in.
func (e *Exposure) HasPrediction() bool {
	return e.FearedOutcome != "" && e.FearedProbability != nil
}

// SUDSEntry is one timestamped distress reading taken during an exposure.
type SUDSEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

// SessionOutcome classifies how a session ended.
type SessionOutcome string

const (
	OutcomeCompleted SessionOutcome = "completed"
	OutcomePartial   SessionOutcome = "partial"
	OutcomeAbandoned SessionOutcome = "abandoned"
)

// Session is one timed attempt at confronting an Exposure. Immutable once
// written, except for sync envelope transitions.
type Session struct {
	Meta
	ExposureID      string         `json:"exposureId"`
	StartedAt       time.Time      `json:"startedAt"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	DurationSeconds int            `json:"durationSeconds"`
	SudsStart       int            `json:"sudsStart"`
	SudsEnd         *int           `json:"sudsEnd,omitempty"`
	SudsLog         []SUDSEntry    `json:"sudsLog"`
	Reflection      string         `json:"reflection,omitempty"`
	AudioBlob       string         `json:"audioBlob,omitempty"` // base64 voice memo
	Outcome         SessionOutcome `json:"outcome"`
}

// Streak tracks consecutive-day activity. At most one row is meaningful.
type Streak struct {
	Meta
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	LastActivityDate time.Time `json:"lastActivityDate"`
}

// Settings is a singleton holding the onboarding flag.
type Settings struct {
	Meta
	HasCompletedOnboarding bool `json:"hasCompletedOnboarding"`
}

// CheckInResult is the user's answer to "did the feared outcome occur?".
type CheckInResult string

const (
	ResultYes       CheckInResult = "yes"
	ResultNo        CheckInResult = "no"
	ResultPartially CheckInResult = "partially"
	ResultUnsure    CheckInResult = "unsure"
)

// OutcomeCheckIn is a deferred follow-up scheduled ~48 hours after a
// session whose exposure carried a feared-outcome prediction.
type OutcomeCheckIn struct {
	Meta
	SessionID            string     `json:"sessionId"`
	ExposureID           string     `json:"exposureId"`
	FearedOutcome        string     `json:"fearedOutcome"`
	PredictedProbability int        `json:"predictedProbability"`
	ScheduledFor         time.Time  `json:"scheduledFor"`
	CompletedAt          *time.Time `json:"completedAt,omitempty"`
	// OutcomeOccurred is empty until the user answers.
	OutcomeOccurred CheckInResult `json:"outcomeOccurred,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// Answered reports whether the check-in has been completed.
func (c *OutcomeCheckIn) Answered() bool { return c.OutcomeOccurred != "" }

// ReassuranceUrge is one urge-delay log entry.
type ReassuranceUrge struct {
	Meta
	Trigger string `json:"trigger,omitempty"`
	Urgency int    `json:"urgency"` // 1-10
	// WaitDurationSeconds is the adaptively assigned delay.
	WaitDurationSeconds int `json:"waitDuration"`
	// CompletedWait is true when the user resisted for the full delay.
	CompletedWait bool     `json:"completedWait"`
	ToolsUsed     []string `json:"toolsUsed,omitempty"`
}
