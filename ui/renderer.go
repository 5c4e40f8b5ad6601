package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/types"
)

const windowTitle = "Snake Game"

var keyHeadings = []struct {
	key     int32
	heading types.Heading
}{
	{rl.KeyUp, types.HeadingUp},
	{rl.KeyDown, types.HeadingDown},
	{rl.KeyLeft, types.HeadingLeft},
	{rl.KeyRight, types.HeadingRight},
}

// Renderer is the raylib window display. The window is exactly the board
// size, so board units map 1:1 to pixels.
type Renderer struct {
	background color.RGBA
	events     []game.InputEvent
}

func NewRenderer(grid types.Grid) (*Renderer, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.Width), int32(grid.Height), windowTitle)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("init window %dx%d: window not ready", grid.Width, grid.Height)
	}

	return &Renderer{
		background: types.ColorBackground,
		events:     make([]game.InputEvent, 0, 8),
	}, nil
}

func (r *Renderer) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)
}

func (r *Renderer) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), c)
}

// Present ends the frame. raylib also polls keyboard state here.
func (r *Renderer) Present() {
	rl.EndDrawing()
}

func (r *Renderer) PollEvents() []game.InputEvent {
	r.events = r.events[:0]

	if rl.WindowShouldClose() {
		r.events = append(r.events, game.InputEvent{Type: game.InputQuit})
	}
	for _, kh := range keyHeadings {
		if rl.IsKeyPressed(kh.key) {
			r.events = append(r.events, game.InputEvent{Type: game.InputKeyDown, Heading: kh.heading})
		}
		if rl.IsKeyReleased(kh.key) {
			r.events = append(r.events, game.InputEvent{Type: game.InputKeyUp, Heading: kh.heading})
		}
	}
	return r.events
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}
