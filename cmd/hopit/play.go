package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopit/internal/audio"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Hop.It in the terminal.

Controls:
  Left/Right, A/D  - Steer (terminals have no key release, a press holds briefly)
  Mouse            - Hold the on-screen arrow buttons, click the toggles
  Space/Enter      - Start
  Space/R          - Retry after game over
  M/Esc            - Back to the home screen after game over
  T / X            - Toggle music / sound effects
  S                - Scoreboard (home and game over screens)
  ?                - Full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Platforms start moving later, speed grows slowly with height
  normal - Speed grows with height from 30%
  hard   - Platforms move from the start, speed grows from 70%
  fixed  - No progression

Examples:
  hopit play
  hopit play --difficulty hard
  hopit play --config ./my-hopit.yaml --log ./hopit.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := openLogger("")
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(game, p.history(), runtimeConfig(width, height), logger)

	// Saves a beaten best if the program ended without a quit action.
	game.Quit()
	player.Close()
	p.Close(logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
