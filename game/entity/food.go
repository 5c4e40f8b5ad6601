package entity

import "snake-arena/game/types"

// Food is a single edible cell. Eating it moves it elsewhere rather than
// removing it.
type Food struct {
	position types.Point
	grid     types.Grid
	rng      types.RandSource
}

func NewFood(grid types.Grid, rng types.RandSource) *Food {
	f := &Food{
		grid: grid,
		rng:  rng,
	}
	f.Generate()
	return f
}

// Generate picks a new cell uniformly over the board. Occupied cells are
// not excluded.
func (f *Food) Generate() {
	f.position = types.Point{
		X: f.rng.Intn(f.grid.Columns()) * f.grid.CellSize,
		Y: f.rng.Intn(f.grid.Rows()) * f.grid.CellSize,
	}
}

func (f *Food) Position() types.Point {
	return f.position
}
