package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levelgen"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLevel       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times",
	Long: `Display the best time of every level, or the top 10 runs of one level.

Examples:
  platformer scores
  platformer scores --level 2
  platformer scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Show the top runs of this level (1-based)")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadPlatformer("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	count := cfg.Levels.Count
	if flagScoresLevel < 0 || flagScoresLevel > count {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", count)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, count, max(flagScoresLevel-1, 0), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresLevel > 0 {
		printLevelRuns(store, flagScoresLevel)
		return
	}

	best, err := store.BestTimes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best times: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Times - Chicken Run")
	fmt.Println()
	fmt.Printf("  %-3s  %-14s  %s\n", "#", "Level", "Best")
	fmt.Printf("  %-3s  %-14s  %s\n", "-", "-----", "----")
	for i := range count {
		bestStr := "-"
		if d, ok := best[i+1]; ok {
			bestStr = tui.FormatRunTime(d)
		}
		fmt.Printf("  %-3d  %-14s  %s\n", i+1, levelgen.LevelName(i), bestStr)
	}
}

// printLevelRuns prints the top 10 runs of a level (1-based).
func printLevelRuns(store *storage.Store, level int) {
	runs, err := store.TopTimes(level, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - Level %d: %s\n", level, levelgen.LevelName(level-1))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play --level %d' to set the first time!\n", level)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Time", "Deaths", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-6d  %s\n", i+1, tui.FormatRunTime(r.Duration), r.Deaths, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetLevelStats(level); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %s  Deaths: %d\n", stats.Runs, tui.FormatRunTime(stats.Average), stats.Deaths)
	}
}
