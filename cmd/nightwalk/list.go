package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and campuses",
	Long: `Shows every registered Night Walk variant and the campuses that can be
picked with --university.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg, err := config.Load(config.VariantNightwalk, flagConfig)
	if err != nil {
		cfg = config.DefaultNightwalkConfig()
	}

	fmt.Println()
	fmt.Println("Campuses:")
	fmt.Println()
	for _, u := range cfg.Catalog.Universities {
		fmt.Printf("  %-24s  %d houses (%s)\n", u.Name, len(u.Houses), strings.Join(u.Houses, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'nightwalk play <id> --university <name>' to start a walk.")
}
