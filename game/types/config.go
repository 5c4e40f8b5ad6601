package types

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Game defaults
const (
	DefaultWidth         = 500
	DefaultHeight        = 500
	DefaultCellSize      = 10
	DefaultFoodCount     = 3
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultEnemyInterval = 500 * time.Millisecond
)

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPlayer     = color.RGBA{0, 255, 0, 255}
	ColorFood       = color.RGBA{255, 0, 0, 255}
)

// EnemySpawn places one enemy snake at session start.
type EnemySpawn struct {
	Position Point
	Color    color.RGBA
}

type Config struct {
	Grid          Grid
	FoodCount     int
	TickInterval  time.Duration
	EnemyInterval time.Duration
	Enemies       []EnemySpawn
}

func DefaultConfig() Config {
	return Config{
		Grid: Grid{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			CellSize: DefaultCellSize,
		},
		FoodCount:     DefaultFoodCount,
		TickInterval:  DefaultTickInterval,
		EnemyInterval: DefaultEnemyInterval,
		Enemies: []EnemySpawn{
			{Position: Point{100, 100}, Color: color.RGBA{255, 0, 0, 255}},
			{Position: Point{200, 200}, Color: color.RGBA{0, 0, 255, 255}},
			{Position: Point{300, 300}, Color: color.RGBA{255, 255, 0, 255}},
		},
	}
}

// Validate checks the config can build a playable board.
func (c Config) Validate() error {
	g := c.Grid
	if g.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, g.CellSize)
	}
	if g.Width < g.CellSize || g.Height < g.CellSize {
		return fmt.Errorf("%w: board %dx%d smaller than one cell", ErrInvalidConfig, g.Width, g.Height)
	}
	if g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0 {
		return fmt.Errorf("%w: board %dx%d not a multiple of cell size %d", ErrInvalidConfig, g.Width, g.Height, g.CellSize)
	}
	if c.FoodCount < 0 {
		return fmt.Errorf("%w: food count must not be negative", ErrInvalidConfig)
	}
	if c.TickInterval <= 0 || c.EnemyInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidConfig)
	}
	for i, e := range c.Enemies {
		if !g.Contains(e.Position) || !g.Aligned(e.Position) {
			return fmt.Errorf("%w: enemy %d spawn %v is off the grid", ErrInvalidConfig, i, e.Position)
		}
	}
	return nil
}
