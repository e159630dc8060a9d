package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levelgen"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the hand-authored levels",
	Long:  `Shows every level with its length, checkpoints and features.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	layout := cfg.LevelLayout()

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %-6s  %-5s  %-5s  %s\n", "#", "Name", "Length", "Flags", "Holes", "Features")
	fmt.Printf("  %-3s  %-14s  %-6s  %-5s  %-5s  %s\n", "-", "----", "------", "-----", "-----", "--------")

	for i := range layout.Count {
		l := levelgen.BuildFixedLevel(i, layout)
		fmt.Printf("  %-3d  %-14s  %-6d  %-5d  %-5d  %s\n",
			l.Number(), l.Name, l.Length, len(l.Checkpoints), len(l.Holes), l.Variations)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <n>' to start at a level.")
}
