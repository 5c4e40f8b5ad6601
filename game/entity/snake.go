package entity

import (
	"image/color"
	"snake-arena/game/types"
)

// Snake keeps its body head first: Body[0] is the head, the last element
// is the tail.
type Snake struct {
	Body         []types.Point
	Heading      types.Heading
	TargetLength int
	Color        color.RGBA

	grid types.Grid
}

func NewSnake(startPos types.Point, grid types.Grid, c color.RGBA) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		Heading:      types.HeadingNone,
		TargetLength: 1,
		Color:        c,
		grid:         grid,
	}
}

// Move advances the head one cell and drops the tail unless the snake is
// still growing toward its target length.
func (s *Snake) Move() {
	if s.Heading == types.HeadingNone {
		return
	}

	newHead := s.grid.Step(s.GetHead(), s.Heading)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if len(s.Body) > s.TargetLength {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length; the body catches up on later moves.
func (s *Snake) Grow() {
	s.TargetLength++
}

func (s *Snake) CheckCollision(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) CheckSelfCollision() bool {
	head := s.GetHead()
	for i := 1; i < len(s.Body); i++ {
		if s.Body[i] == head {
			return true
		}
	}
	return false
}

func (s *Snake) IsOutOfBounds() bool {
	return !s.grid.Contains(s.GetHead())
}

// SetDirection replaces the heading as is. Turning back into the neck is
// allowed and gets caught by CheckSelfCollision on the next move.
func (s *Snake) SetDirection(h types.Heading) {
	s.Heading = h
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// GetLength returns the target length, which is what encounters compare.
func (s *Snake) GetLength() int {
	return s.TargetLength
}
