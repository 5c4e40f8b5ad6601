package manager

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Stats summarises one session. It lives in memory only.
type Stats struct {
	SessionID      string
	StartTime      time.Time
	EndTime        time.Time
	Ticks          int
	FoodEaten      int
	EnemiesEaten   int
	EnemiesCrashed int
	PlayerLength   int
	Status         Status
	Cause          Cause
}

func (s Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s Stats) String() string {
	out := fmt.Sprintf("session %s %s after %d ticks (%s): length %d, food %d, enemies eaten %d, enemies crashed %d",
		s.SessionID, s.Status, s.Ticks, s.Duration().Round(time.Millisecond),
		s.PlayerLength, s.FoodEaten, s.EnemiesEaten, s.EnemiesCrashed)
	if s.Cause != CauseNone {
		out += ", player " + s.Cause.String()
	}
	return out
}

// StateManager tracks the session status machine. Only a running session
// can transition; Won, Lost and Quit are terminal.
type StateManager struct {
	stats Stats
}

func NewStateManager(now time.Time) *StateManager {
	return &StateManager{
		stats: Stats{
			SessionID: uuid.New().String(),
			StartTime: now,
			Status:    StatusRunning,
		},
	}
}

func (sm *StateManager) Running() bool {
	return sm.stats.Status == StatusRunning
}

func (sm *StateManager) Status() Status {
	return sm.stats.Status
}

func (sm *StateManager) SessionID() string {
	return sm.stats.SessionID
}

func (sm *StateManager) Win() {
	sm.end(StatusWon, CauseNone)
}

func (sm *StateManager) Lose(cause Cause) {
	sm.end(StatusLost, cause)
}

func (sm *StateManager) Quit() {
	sm.end(StatusQuit, CauseNone)
}

func (sm *StateManager) end(status Status, cause Cause) {
	if !sm.Running() {
		return
	}
	sm.stats.Status = status
	sm.stats.Cause = cause
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

func (sm *StateManager) RecordFood(n int) {
	sm.stats.FoodEaten += n
}

// Apply folds a collision pass into the stats and the status machine.
func (sm *StateManager) Apply(res Resolution) {
	sm.stats.EnemiesEaten += res.Eaten
	sm.stats.EnemiesCrashed += res.Crashed

	switch res.Verdict {
	case VerdictLost:
		sm.Lose(res.Cause)
	case VerdictWon:
		sm.Win()
	}
}

// Finish stamps the end of the session.
func (sm *StateManager) Finish(now time.Time, playerLength int) {
	sm.stats.EndTime = now
	sm.stats.PlayerLength = playerLength
}

func (sm *StateManager) GetStats() Stats {
	return sm.stats
}
