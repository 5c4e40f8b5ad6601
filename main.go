package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
	"snake-arena/sound"
	"snake-arena/ui"
	"snake-arena/ui/terminal"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := types.DefaultConfig()
	backend := flag.String("backend", "raylib", "Display backend: raylib or terminal")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound cues")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Delay between game ticks")
	flag.DurationVar(&cfg.EnemyInterval, "enemy-interval", cfg.EnemyInterval, "Time between enemy moves")
	flag.IntVar(&cfg.Grid.Width, "width", cfg.Grid.Width, "Board width in pixels")
	flag.IntVar(&cfg.Grid.Height, "height", cfg.Grid.Height, "Board height in pixels")
	flag.IntVar(&cfg.Grid.CellSize, "cell", cfg.Grid.CellSize, "Cell size in pixels")
	flag.IntVar(&cfg.FoodCount, "foods", cfg.FoodCount, "Number of food items")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad flags: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	display, err := openDisplay(*backend, cfg.Grid)
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}
	defer display.Close()

	opts := []game.Option{}
	var player *sound.Player
	if !*mute {
		player, err = sound.NewPlayer()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithSounds(player))
		}
	}

	g, err := game.NewGame(cfg, display, rng, opts...)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Seed %d, backend %s", *seed, *backend)
	stats := g.Run(ctx)

	// Let the final cue finish before the speaker shuts down.
	if player != nil {
		switch stats.Status {
		case manager.StatusWon:
			time.Sleep(sound.Duration(types.CueWin))
		case manager.StatusLost:
			time.Sleep(sound.Duration(types.CueLose))
		}
	}
}

func openDisplay(backend string, grid types.Grid) (game.Display, error) {
	switch backend {
	case "raylib":
		return ui.NewRenderer(grid)
	case "terminal":
		return terminal.New(grid)
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
