// Package terminal draws the board in a terminal with tcell. Each board
// cell takes two terminal columns so cells look roughly square.
package terminal

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"snake-arena/game"
	"snake-arena/game/types"
)

const cellRune = '█'

var keyHeadings = map[tcell.Key]types.Heading{
	tcell.KeyUp:    types.HeadingUp,
	tcell.KeyDown:  types.HeadingDown,
	tcell.KeyLeft:  types.HeadingLeft,
	tcell.KeyRight: types.HeadingRight,
}

var runeHeadings = map[rune]types.Heading{
	'w': types.HeadingUp,
	's': types.HeadingDown,
	'a': types.HeadingLeft,
	'd': types.HeadingRight,
}

// Terminal implements game.Display. Terminals report no key releases, so
// the snake keeps its heading until another key is pressed.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid

	eventCh chan tcell.Event
	done    chan struct{}
	events  []game.InputEvent

	closeOnce sync.Once
}

func New(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, grid), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(screen tcell.Screen, grid types.Grid) *Terminal {
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		grid:    grid,
		eventCh: make(chan tcell.Event, 64),
		done:    make(chan struct{}),
		events:  make([]game.InputEvent, 0, 8),
	}
	go t.pollLoop()
	return t
}

// pollLoop forwards blocking PollEvent results so PollEvents can drain
// them without blocking the game loop.
func (t *Terminal) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.eventCh <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) FillRect(x, y, w, h int, c color.RGBA) {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	style := tcell.StyleDefault.Foreground(rgb).Background(rgb)

	cs := t.grid.CellSize
	for row := floorDiv(y, cs); row*cs < y+h; row++ {
		for col := floorDiv(x, cs); col*cs < x+w; col++ {
			// SetContent ignores cells outside the screen.
			t.screen.SetContent(col*2, row, cellRune, nil, style)
			t.screen.SetContent(col*2+1, row, cellRune, nil, style)
		}
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func (t *Terminal) PollEvents() []game.InputEvent {
	t.events = t.events[:0]
	for {
		select {
		case ev := <-t.eventCh:
			t.translate(ev)
		default:
			return t.events
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.events = append(t.events, game.InputEvent{Type: game.InputQuit})
			return
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' || r == 'Q' {
				t.events = append(t.events, game.InputEvent{Type: game.InputQuit})
				return
			}
			if h, ok := runeHeadings[r]; ok {
				t.events = append(t.events, game.InputEvent{Type: game.InputKeyDown, Heading: h})
			}
			return
		}
		if h, ok := keyHeadings[ev.Key()]; ok {
			t.events = append(t.events, game.InputEvent{Type: game.InputKeyDown, Heading: h})
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
