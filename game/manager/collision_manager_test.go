package manager

import (
	"image/color"
	"testing"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

var testGrid = types.Grid{Width: 500, Height: 500, CellSize: 10}

// snakeAt builds a snake whose head is at (x, y) and whose target length
// is length.
func snakeAt(x, y, length int) *entity.Snake {
	s := entity.NewSnake(types.Point{X: x, Y: y}, testGrid, color.RGBA{255, 0, 0, 255})
	for s.GetLength() < length {
		s.Grow()
	}
	return s
}

func TestResolveTieFavoursEnemy(t *testing.T) {
	cm := NewCollisionManager()
	player := snakeAt(250, 250, 5)
	enemy := snakeAt(250, 250, 5)

	res := cm.Resolve(player, []*entity.Snake{enemy})

	if res.Verdict != VerdictLost || res.Cause != CauseEnemy {
		t.Fatalf("got verdict %v cause %v, want lost to enemy", res.Verdict, res.Cause)
	}
	if len(res.Enemies) != 1 || res.Enemies[0] != enemy {
		t.Errorf("enemy should survive a tie, got %d enemies", len(res.Enemies))
	}
}

func TestResolveLongerPlayerEats(t *testing.T) {
	cm := NewCollisionManager()
	player := snakeAt(250, 250, 6)
	victim := snakeAt(250, 250, 5)
	bystander := snakeAt(100, 100, 1)

	res := cm.Resolve(player, []*entity.Snake{victim, bystander})

	if res.Verdict != VerdictContinue {
		t.Fatalf("verdict = %v, want continue", res.Verdict)
	}
	if res.Eaten != 1 {
		t.Errorf("eaten = %d, want 1", res.Eaten)
	}
	if len(res.Enemies) != 1 || res.Enemies[0] != bystander {
		t.Errorf("expected only the bystander to survive, got %v", res.Enemies)
	}
}

func TestResolveBodyCoversEnemyHead(t *testing.T) {
	cm := NewCollisionManager()
	player := snakeAt(250, 250, 3)
	player.SetDirection(types.HeadingRight)
	player.Move()
	player.Move()
	// Player now covers 250..270 on row 250; the enemy head sits on the tail.
	enemy := snakeAt(250, 250, 2)

	res := cm.Resolve(player, []*entity.Snake{enemy})
	if res.Eaten != 1 || res.Verdict != VerdictWon {
		t.Errorf("got eaten %d verdict %v, want enemy eaten and game won", res.Eaten, res.Verdict)
	}
}

func TestResolvePlayerTerminalChecks(t *testing.T) {
	cm := NewCollisionManager()

	outside := snakeAt(500, 250, 1)
	res := cm.Resolve(outside, nil)
	if res.Verdict != VerdictLost || res.Cause != CauseWall {
		t.Errorf("out of bounds: got %v/%v, want lost/wall", res.Verdict, res.Cause)
	}

	biter := snakeAt(250, 250, 3)
	biter.SetDirection(types.HeadingRight)
	biter.Move()
	biter.Move()
	biter.SetDirection(types.HeadingLeft)
	biter.Move()
	enemy := snakeAt(100, 100, 1)
	res = cm.Resolve(biter, []*entity.Snake{enemy})
	if res.Verdict != VerdictLost || res.Cause != CauseSelf {
		t.Errorf("self collision: got %v/%v, want lost/self", res.Verdict, res.Cause)
	}
	if len(res.Enemies) != 1 {
		t.Errorf("terminal player check must leave enemies untouched")
	}
}

func TestResolveRemovesCrashedEnemies(t *testing.T) {
	cm := NewCollisionManager()
	player := snakeAt(250, 250, 1)
	crashed := snakeAt(-10, 100, 1)
	alive := snakeAt(100, 100, 1)
	selfBitten := snakeAt(300, 300, 3)
	selfBitten.SetDirection(types.HeadingDown)
	selfBitten.Move()
	selfBitten.Move()
	selfBitten.SetDirection(types.HeadingUp)
	selfBitten.Move()

	res := cm.Resolve(player, []*entity.Snake{crashed, alive, selfBitten})

	if res.Verdict != VerdictContinue {
		t.Fatalf("verdict = %v, want continue", res.Verdict)
	}
	if res.Crashed != 2 {
		t.Errorf("crashed = %d, want 2", res.Crashed)
	}
	if len(res.Enemies) != 1 || res.Enemies[0] != alive {
		t.Errorf("expected only the healthy enemy to remain")
	}
}

func TestResolveLossStopsIteration(t *testing.T) {
	cm := NewCollisionManager()
	player := snakeAt(250, 250, 2)
	crashed := snakeAt(600, 600, 1)
	winner := snakeAt(250, 250, 4)
	unchecked := snakeAt(700, 700, 1)

	res := cm.Resolve(player, []*entity.Snake{crashed, winner, unchecked})

	if res.Verdict != VerdictLost {
		t.Fatalf("verdict = %v, want lost", res.Verdict)
	}
	if res.Crashed != 1 {
		t.Errorf("crashed = %d, want 1", res.Crashed)
	}
	if len(res.Enemies) != 2 || res.Enemies[0] != winner || res.Enemies[1] != unchecked {
		t.Errorf("enemies after the loss must be kept as they were")
	}
}

func TestResolveEmptyRosterWins(t *testing.T) {
	cm := NewCollisionManager()
	res := cm.Resolve(snakeAt(250, 250, 1), nil)
	if res.Verdict != VerdictWon {
		t.Errorf("verdict = %v, want won", res.Verdict)
	}
}

func TestWinAfterAllKills(t *testing.T) {
	cm := NewCollisionManager()
	sm := NewStateManager(testNow)
	player := snakeAt(250, 250, 10)

	enemies := []*entity.Snake{
		snakeAt(100, 100, 1),
		snakeAt(200, 200, 2),
		snakeAt(300, 300, 3),
	}
	n := len(enemies)

	for i := 0; i < n; i++ {
		// Bring the next enemy's head onto the player.
		enemies[0].Body[0] = player.GetHead()
		res := cm.Resolve(player, enemies)
		sm.Apply(res)
		enemies = res.Enemies

		if i < n-1 && !sm.Running() {
			t.Fatalf("session ended after %d kills", i+1)
		}
	}

	if sm.Status() != StatusWon {
		t.Errorf("status = %v, want won", sm.Status())
	}
	if got := sm.GetStats().EnemiesEaten; got != n {
		t.Errorf("enemies eaten = %d, want %d", got, n)
	}
}
