package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwalk/internal/platform/tui"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start Night Walk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a walk ends, you return to the menu to walk again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - High scores and run history
  Q            - Quit

Examples:
  nightwalk menu
  nightwalk menu --fps 30
  nightwalk menu --db ./scores.db --university USC`,
	Run: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	s := openSession()
	defer s.Close()

	cfg := s.config
	for {
		menuResult, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed --seed replays the same walk every time
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		s.attach(game)
		if err := tui.Run(game, s.store, cfg, s.options()); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
