package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopit/internal/audio"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Hop.It in a desktop window.

Controls:
  Left/Right, A/D  - Steer
  Mouse/touch      - Hold the on-screen arrow buttons, tap the toggles
  Space/Enter      - Start
  Space/R          - Retry after game over
  M/Esc            - Back to the home screen after game over
  T / X            - Toggle music / sound effects
  Q or close       - Quit

Examples:
  hopit window
  hopit window --difficulty easy --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closer, err := openLogger("-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := openPersistence(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := audio.New(cfg.Audio, logger)
	game := hopit.New(cfg, p.gameOptions(player)...)
	game.Reset(runtimeConfig(int(cfg.World.Width), int(cfg.World.Height)))

	var runs window.RunRecorder
	if p.db != nil {
		runs = p.db
	}
	runErr := window.Run(game, runs, flagFPS, logger)

	game.Quit()
	player.Close()
	p.Close(logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
