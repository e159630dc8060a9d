package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Chicken Run",
	Long: `Start the game at the level select menu.

Controls:
  Left/Right, A/D  - Run (menu: select level)
  Down/S           - Stop
  Space/Up/W       - Jump (buffered shortly before landing)
  Enter            - Start level / play again
  P/Esc            - Pause
  R                - Restart the level
  G                - Developer mode (jump anywhere)
  B                - Back to the menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wide platforms, generous jump buffer
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, tight jump buffer
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play --level 4
  platformer play --difficulty easy
  platformer play --config ./my-platformer.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level preselected in the menu (1-based)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > cfg.Levels.Count {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", cfg.Levels.Count)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs are discarded unless --log-file is set
	logger, logCloser, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	records := platformer.NewRecords()
	if store != nil {
		if best, bestErr := store.BestTimes(); bestErr == nil {
			records.Load(best)
		} else {
			logger.Warn("could not load best times", "error", bestErr)
		}
	}

	game := platformer.New(platformer.Options{
		Config:     cfg,
		Preset:     preset,
		Records:    records,
		Logger:     logger,
		StartLevel: flagLevel - 1,
	})

	opts := tui.Options{Store: store, Logger: logger, Preset: preset}
	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file in use")
		} else {
			watcher, events, watchErr := config.WatchFile(path)
			if watchErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, watchErr)
			} else {
				defer watcher.Close()
				opts.ConfigEvents = events
				logger.Info("watching config", "path", path)
			}
		}
	}

	runErr := tui.Run(game, runtime, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
