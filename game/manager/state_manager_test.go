package manager

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewStateManager(t *testing.T) {
	sm := NewStateManager(testNow)

	if !sm.Running() || sm.Status() != StatusRunning {
		t.Fatalf("new session should be running")
	}
	if _, err := uuid.Parse(sm.SessionID()); err != nil {
		t.Errorf("session id %q is not a uuid: %v", sm.SessionID(), err)
	}
}

func TestTerminalStatusIsSticky(t *testing.T) {
	tests := []struct {
		name  string
		first func(sm *StateManager)
		want  Status
	}{
		{"won", func(sm *StateManager) { sm.Win() }, StatusWon},
		{"lost", func(sm *StateManager) { sm.Lose(CauseWall) }, StatusLost},
		{"quit", func(sm *StateManager) { sm.Quit() }, StatusQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStateManager(testNow)
			tt.first(sm)
			sm.Win()
			sm.Lose(CauseEnemy)
			sm.Quit()

			if sm.Status() != tt.want {
				t.Errorf("status = %v, want %v", sm.Status(), tt.want)
			}
			if sm.Running() {
				t.Errorf("terminal session reports running")
			}
		})
	}
}

func TestApplyResolution(t *testing.T) {
	sm := NewStateManager(testNow)

	sm.Apply(Resolution{Verdict: VerdictContinue, Eaten: 1, Crashed: 2})
	if !sm.Running() {
		t.Fatalf("continue verdict ended the session")
	}

	sm.Apply(Resolution{Verdict: VerdictLost, Cause: CauseEnemy})
	stats := sm.GetStats()
	if stats.Status != StatusLost || stats.Cause != CauseEnemy {
		t.Errorf("got %v/%v, want lost/enemy", stats.Status, stats.Cause)
	}
	if stats.EnemiesEaten != 1 || stats.EnemiesCrashed != 2 {
		t.Errorf("counters = %d/%d, want 1/2", stats.EnemiesEaten, stats.EnemiesCrashed)
	}
}

func TestStatsSummary(t *testing.T) {
	sm := NewStateManager(testNow)
	sm.RecordTick()
	sm.RecordTick()
	sm.RecordFood(3)
	sm.Lose(CauseSelf)
	sm.Finish(testNow.Add(1500*time.Millisecond), 4)

	stats := sm.GetStats()
	if stats.Duration() != 1500*time.Millisecond {
		t.Errorf("duration = %v", stats.Duration())
	}

	summary := stats.String()
	for _, part := range []string{"lost", "2 ticks", "length 4", "food 3", "bit itself"} {
		if !strings.Contains(summary, part) {
			t.Errorf("summary %q missing %q", summary, part)
		}
	}
}
