package game

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"snake-arena/ai"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Surface is the drawable board. Coordinates are board units.
type Surface interface {
	Clear()
	FillRect(x, y, w, h int, c color.RGBA)
	Present()
}

type InputType int

const (
	InputKeyDown InputType = iota
	InputKeyUp
	InputQuit
)

// InputEvent is a directional key press/release or a quit request.
type InputEvent struct {
	Type    InputType
	Heading types.Heading
}

// InputSource hands over the events gathered since the last poll. It
// must not block.
type InputSource interface {
	PollEvents() []InputEvent
}

// Display is a window or terminal the game draws to and reads keys from.
type Display interface {
	Surface
	InputSource
	Close() error
}

// SoundPlayer plays short cues. Implementations must not block the loop.
type SoundPlayer interface {
	Play(cue types.Cue)
}

// Clock abstracts wall time so ticks can be driven from tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

type silence struct{}

func (silence) Play(types.Cue) {}

type Option func(g *Game)

func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

func WithSounds(p SoundPlayer) Option {
	return func(g *Game) { g.sounds = p }
}

// WithPolicy replaces the random walk driving the enemies.
func WithPolicy(p manager.Policy) Option {
	return func(g *Game) { g.policy = p }
}

type Game struct {
	Config types.Config
	Player *entity.Snake

	display Display
	clock   Clock
	sounds  SoundPlayer
	policy  manager.Policy

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	enemyMgr     *manager.EnemyManager
	stateMgr     *manager.StateManager
}

// NewGame sets up a running session: the player at the board centre, the
// configured enemy roster and food items. rng is the single random source
// shared by food placement and the default enemy policy.
func NewGame(cfg types.Config, display Display, rng types.RandSource, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if display == nil {
		return nil, fmt.Errorf("new game: no display")
	}

	g := &Game{
		Config:  cfg,
		display: display,
		clock:   systemClock{},
		sounds:  silence{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.policy == nil {
		g.policy = ai.NewRandomWalk(rng)
	}

	grid := cfg.Grid
	now := g.clock.Now()

	g.Player = entity.NewSnake(grid.Center(), grid, types.ColorPlayer)
	g.collisionMgr = manager.NewCollisionManager()
	g.foodMgr = manager.NewFoodManager(grid, rng, cfg.FoodCount)
	g.enemyMgr = manager.NewEnemyManager(grid, cfg.Enemies, g.policy, cfg.EnemyInterval)
	g.enemyMgr.Start(now)
	g.stateMgr = manager.NewStateManager(now)

	return g, nil
}

// Run ticks until the session ends, the player quits or ctx is done, and
// returns the session stats.
func (g *Game) Run(ctx context.Context) manager.Stats {
	log.Printf("Session %s started: %d enemies, %d food, board %dx%d",
		g.stateMgr.SessionID(), g.enemyMgr.Count(), len(g.foodMgr.GetFoodList()),
		g.Config.Grid.Width, g.Config.Grid.Height)

	for g.stateMgr.Running() {
		if ctx.Err() != nil {
			g.stateMgr.Quit()
			break
		}

		g.Tick()
		if !g.stateMgr.Running() {
			break
		}
		g.clock.Sleep(g.Config.TickInterval)
	}

	g.stateMgr.Finish(g.clock.Now(), g.Player.GetLength())
	stats := g.stateMgr.GetStats()
	log.Println(stats)
	return stats
}

// Tick runs one iteration: input, update, render, collisions and the
// timed enemy move.
func (g *Game) Tick() {
	g.handleInput()
	if !g.stateMgr.Running() {
		return
	}
	g.stateMgr.RecordTick()

	g.update()
	g.render()
	g.checkCollisions()

	if g.stateMgr.Running() {
		g.enemyMgr.Update(g.clock.Now())
	}
}

func (g *Game) handleInput() {
	for _, ev := range g.display.PollEvents() {
		switch ev.Type {
		case InputQuit:
			g.stateMgr.Quit()
		case InputKeyDown:
			g.Player.SetDirection(ev.Heading)
		case InputKeyUp:
			// Releasing a key only stops the snake if it is the key
			// currently steering it.
			if g.Player.Heading == ev.Heading {
				g.Player.SetDirection(types.HeadingNone)
			}
		}
	}
}

func (g *Game) update() {
	g.Player.Move()

	if eaten := g.foodMgr.Update(g.Player); eaten > 0 {
		g.stateMgr.RecordFood(eaten)
		g.sounds.Play(types.CueEat)
	}
}

func (g *Game) render() {
	g.display.Clear()

	g.drawSnake(g.Player)
	cell := g.Config.Grid.CellSize
	for _, food := range g.foodMgr.GetFoodList() {
		p := food.Position()
		g.display.FillRect(p.X, p.Y, cell, cell, types.ColorFood)
	}
	for _, enemy := range g.enemyMgr.GetSnakes() {
		g.drawSnake(enemy)
	}

	g.display.Present()
}

func (g *Game) drawSnake(s *entity.Snake) {
	cell := g.Config.Grid.CellSize
	for _, part := range s.Body {
		g.display.FillRect(part.X, part.Y, cell, cell, s.Color)
	}
}

func (g *Game) checkCollisions() {
	res := g.collisionMgr.Resolve(g.Player, g.enemyMgr.GetSnakes())
	g.enemyMgr.SetSnakes(res.Enemies)
	g.stateMgr.Apply(res)

	if res.Eaten > 0 {
		log.Printf("Player ate %d enemy snake(s), %d left", res.Eaten, g.enemyMgr.Count())
		g.sounds.Play(types.CueKill)
	}
	if res.Crashed > 0 {
		log.Printf("%d enemy snake(s) crashed, %d left", res.Crashed, g.enemyMgr.Count())
	}

	switch res.Verdict {
	case manager.VerdictWon:
		log.Println("All enemies gone, player wins")
		g.sounds.Play(types.CueWin)
	case manager.VerdictLost:
		log.Printf("Player %s, game over", res.Cause)
		g.sounds.Play(types.CueLose)
	}
}

func (g *Game) Status() manager.Status {
	return g.stateMgr.Status()
}

func (g *Game) Stats() manager.Stats {
	return g.stateMgr.GetStats()
}

func (g *Game) Enemies() []*entity.Snake {
	return g.enemyMgr.GetSnakes()
}

func (g *Game) Foods() []*entity.Food {
	return g.foodMgr.GetFoodList()
}
