package manager

import (
	"time"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// Policy chooses the next heading for an enemy snake.
type Policy interface {
	GetAction() types.Heading
}

// EnemyManager owns the enemy roster and moves it on its own timer,
// slower than the main tick.
type EnemyManager struct {
	snakes   []*entity.Snake
	policy   Policy
	interval time.Duration
	lastMove time.Time
}

func NewEnemyManager(grid types.Grid, spawns []types.EnemySpawn, policy Policy, interval time.Duration) *EnemyManager {
	em := &EnemyManager{
		snakes:   make([]*entity.Snake, 0, len(spawns)),
		policy:   policy,
		interval: interval,
	}
	for _, spawn := range spawns {
		em.snakes = append(em.snakes, entity.NewSnake(spawn.Position, grid, spawn.Color))
	}
	return em
}

// Start resets the movement timer.
func (em *EnemyManager) Start(now time.Time) {
	em.lastMove = now
}

// Due reports whether strictly more than one interval has passed since
// the last enemy move.
func (em *EnemyManager) Due(now time.Time) bool {
	return now.Sub(em.lastMove) > em.interval
}

// Update gives every enemy a fresh heading and one step when the timer
// has elapsed. It returns whether the enemies moved.
func (em *EnemyManager) Update(now time.Time) bool {
	if !em.Due(now) {
		return false
	}
	for _, snake := range em.snakes {
		snake.SetDirection(em.policy.GetAction())
		snake.Move()
	}
	em.lastMove = now
	return true
}

func (em *EnemyManager) GetSnakes() []*entity.Snake {
	return em.snakes
}

// SetSnakes replaces the roster, typically with collision survivors.
func (em *EnemyManager) SetSnakes(snakes []*entity.Snake) {
	em.snakes = snakes
}

func (em *EnemyManager) Count() int {
	return len(em.snakes)
}
