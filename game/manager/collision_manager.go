package manager

import (
	"snake-arena/game/entity"
)

// Verdict is the outcome of one collision pass.
type Verdict int

const (
	VerdictContinue Verdict = iota
	VerdictLost
	VerdictWon
)

// Cause says why the player lost.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseEnemy
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "hit the wall"
	case CauseSelf:
		return "bit itself"
	case CauseEnemy:
		return "lost an encounter"
	}
	return "none"
}

// Resolution reports what a collision pass decided.
type Resolution struct {
	Verdict Verdict
	Cause   Cause
	// Enemies still alive after the pass, in their original order.
	Enemies []*entity.Snake
	// Eaten counts enemies the player killed, Crashed those removed for
	// leaving the board or biting themselves.
	Eaten   int
	Crashed int
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Resolve runs the per-tick collision rules: player terminal checks,
// then every enemy in order, then the win check. Survivors are compacted
// in place into the enemies backing array.
func (cm *CollisionManager) Resolve(player *entity.Snake, enemies []*entity.Snake) Resolution {
	if player.IsOutOfBounds() {
		return Resolution{Verdict: VerdictLost, Cause: CauseWall, Enemies: enemies}
	}
	if player.CheckSelfCollision() {
		return Resolution{Verdict: VerdictLost, Cause: CauseSelf, Enemies: enemies}
	}

	res := Resolution{Verdict: VerdictContinue}
	kept := enemies[:0]

	for i, enemy := range enemies {
		if player.CheckCollision(enemy.GetHead()) {
			// Ties go to the enemy.
			if player.GetLength() > enemy.GetLength() {
				res.Eaten++
				continue
			}
			res.Verdict = VerdictLost
			res.Cause = CauseEnemy
			res.Enemies = append(kept, enemies[i:]...)
			return res
		}

		if enemy.IsOutOfBounds() || enemy.CheckSelfCollision() {
			res.Crashed++
			continue
		}
		kept = append(kept, enemy)
	}

	res.Enemies = kept
	if len(kept) == 0 {
		res.Verdict = VerdictWon
	}
	return res
}
