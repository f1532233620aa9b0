// nightwalk is a terminal walking game: stroll a lamp-lit campus lane at
// night, steer clear of party houses, and keep going for as long as you can.
//
// Usage:
//
//	nightwalk list                 - List available variants
//	nightwalk play [variant]       - Play a variant (default: nightwalk)
//	nightwalk menu                 - Pick a variant interactively
//	nightwalk serve                - Start SSH server for remote play
//	nightwalk scores <variant>     - Show high scores or run history
//	nightwalk config dump [variant] - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible walks
//	--db <path>     - Set database path (default: ~/.nightwalk/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/nightwalk/internal/games/nightwalk"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Session flags shared by play, menu and config dump
	flagConfig     string
	flagDifficulty string
	flagUniversity string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightwalk",
	Short: "Night Walk - a late walk across campus in your terminal",
	Long: `Night Walk is a terminal game about walking home at night.

The lane scrolls toward you. Lamps light the path, benches block it, and
every campus has fraternity houses whose pull fills your hazard meter.
Coffee, vinyl and skateboards from the shops fill your benefit meter; fill
it to become empowered and shut the houses down for good.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  config   - Inspect configuration

Examples:
  nightwalk play
  nightwalk play nightwalk_park
  nightwalk play --university UCLA --difficulty hard
  nightwalk serve --ssh :2222
  nightwalk scores nightwalk --runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nightwalk/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
