// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snake-arena/game/types"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[types.Cue][]note{
	types.CueEat:  {{880, 60 * time.Millisecond}},
	types.CueKill: {{660, 60 * time.Millisecond}, {990, 90 * time.Millisecond}},
	types.CueWin:  {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 240 * time.Millisecond}},
	types.CueLose: {{392, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
}

// Player sends cues to the system speaker. Playback is mixed in the
// background, so Play returns immediately.
type Player struct{}

func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{}, nil
}

func (p *Player) Play(cue types.Cue) {
	s, err := Streamer(cue)
	if err != nil {
		log.Printf("Sound cue %d: %v", cue, err)
		return
	}
	speaker.Play(s)
}

func (p *Player) Close() {
	speaker.Close()
}

// Streamer builds the tone sequence for cue at a comfortable volume.
func Streamer(cue types.Cue) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Duration is how long the cue plays.
func Duration(cue types.Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.duration
	}
	return d
}
