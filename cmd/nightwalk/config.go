package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump [variant]",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a walk would use, after file overlays, clamping
and the difficulty preset. Redirect it to a file to start a custom config:

  nightwalk config dump > ~/.nightwalk/configs/nightwalk.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, args []string) {
	gameID := config.VariantNightwalk
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		os.Exit(1)
	}

	cfg, err := config.Load(gameID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyNightwalkPreset(&cfg, config.ParsePreset(flagDifficulty))

	data, err := config.Dump(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
