package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/platform/tui"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Take a walk",
	Long: `Start a walk in the given variant (default: nightwalk).

Controls:
  Left/Right, A/D  - Change lane
  Up/Down, W/S     - Step forward or back
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  nightwalk play
  nightwalk play nightwalk_park
  nightwalk play --university "UC Berkeley"
  nightwalk play --difficulty hard --mute
  nightwalk play --config ./my-walk.yaml --log-file walk.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addSessionFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.VariantNightwalk
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'nightwalk list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	s := openSession()
	s.attach(game)
	runErr := tui.Run(game, s.store, s.config, s.options())

	// Close before a potential exit
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
