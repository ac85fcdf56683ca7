package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List boards and presets",
	Long:  `Shows the registered boards and the presets from the active config.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Available boards:")
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

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	fmt.Printf("  %-10s %-14s %7s %6s %8s\n", "ID", "Name", "Size", "Mines", "Density")
	presets := append(cfg.PresetTable(), cfg.CustomPreset())
	for _, p := range presets {
		marker := " "
		if string(p.ID) == cfg.DefaultPreset {
			marker = "*"
		}
		density := 100 * float64(p.Mines) / float64(p.Width*p.Height)
		fmt.Printf("%s %-10s %-14s %7s %6d %7.1f%%\n", marker, p.ID, p.Name,
			fmt.Sprintf("%dx%d", p.Width, p.Height), p.Mines, density)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <preset>' to play.")
}
