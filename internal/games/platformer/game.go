// Package platformer implements Chicken Run, a side-scrolling platformer.
// The chicken runs through hand-authored levels extended by procedurally
// generated platforms, activating checkpoints on the way to the goal flag.
package platformer

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levelgen"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Mode is the orchestrator state.
type Mode int

const (
	ModeMenu    Mode = iota // Level select
	ModePlaying             // Simulation running
	ModePaused              // Simulation frozen
	ModeWinMenu             // Final level completed
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeWinMenu:
		return "win"
	default:
		return "unknown"
	}
}

// bannerFrames is how long the level name stays on screen.
const bannerFrames = 120

// Options configures a new game.
type Options struct {
	Config     config.PlatformerConfig
	Preset     config.DifficultyPreset // Empty keeps the config values
	Records    *Records                // Shared best times, created when nil
	Logger     *log.Logger             // Discarded when nil
	StartLevel int                     // 0-based level preselected in the menu
}

// Game implements the platformer orchestrator: menus, level loading,
// the per-frame simulation order and win/lose conditions.
type Game struct {
	cfg        config.PlatformerConfig
	pending    *config.PlatformerConfig // Applied on the next level load
	runtime    core.RuntimeConfig
	engine     *physics.Engine
	difficulty *config.DifficultyManager
	gen        *levelgen.Generator
	ledger     *levelgen.Ledger
	level      *levelgen.Level
	player     *physics.Player
	particles  *Particles
	backdrop   *Backdrop
	records    *Records
	log        *log.Logger

	mode       Mode
	menuIndex  int
	levelIndex int
	activated  map[int]bool // Checkpoint x values activated in this attempt
	cameraX    float64
	elapsed    time.Duration
	tick       uint64
	deaths     int
	banner     int // Remaining banner frames
	boostFrom  *levelgen.Pickup
	lastRun    *core.LevelFinish
	quit       bool
}

// New creates a game from options. Call Reset before stepping.
func New(opts Options) *Game {
	cfg := opts.Config
	if opts.Preset != "" {
		config.ApplyPreset(&cfg, opts.Preset)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	records := opts.Records
	if records == nil {
		records = NewRecords()
	}
	g := &Game{
		cfg:     cfg,
		records: records,
		log:     logger,
	}
	g.menuIndex = core.Clamp(opts.StartLevel, 0, cfg.Levels.Count-1)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chicken Run"
}

// Reset initializes the game and shows the level select menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.applyConfig(g.cfg)
	g.particles = NewParticles(runtime.Seed)
	g.backdrop = NewBackdrop(runtime.Seed)
	g.tick = 0
	g.quit = false
	g.load(g.menuIndex, true)
	g.mode = ModeMenu
}

// Resize updates the screen size without touching the simulation.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
}

// SetPendingConfig schedules a configuration for the next level load.
func (g *Game) SetPendingConfig(cfg config.PlatformerConfig) {
	g.pending = &cfg
}

// Records returns the session best times.
func (g *Game) Records() *Records {
	return g.records
}

// Mode returns the orchestrator state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Player returns the player. Intended for tests and rendering.
func (g *Game) Player() *physics.Player {
	return g.player
}

// Level returns the loaded level.
func (g *Game) Level() *levelgen.Level {
	return g.level
}

// CameraX returns the left edge of the view in world units.
func (g *Game) CameraX() float64 {
	return g.cameraX
}

// applyConfig rebuilds everything derived from the configuration.
func (g *Game) applyConfig(cfg config.PlatformerConfig) {
	g.cfg = cfg
	g.engine = physics.NewEngine(physics.ParamsFromConfig(cfg.Physics)).WithLeftEdge(0)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.gen = levelgen.NewGenerator(cfg.Generation, g.engine.Params(), g.difficulty, g.runtime.Seed)
	g.menuIndex = core.Clamp(g.menuIndex, 0, cfg.Levels.Count-1)
}

// levelSeed derives the seed of a level so reloads rebuild the same layout.
func (g *Game) levelSeed(index int) int64 {
	return g.runtime.Seed ^ (int64(index+1) * 0x9E3779B1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:    g.levelIndex + 1,
		Elapsed:  g.elapsed,
		InMenu:   g.mode == ModeMenu || g.mode == ModeWinMenu,
		Won:      g.mode == ModeWinMenu,
		GameOver: g.quit,
		Paused:   g.mode == ModePaused,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.mode {
	case ModeMenu:
		g.stepMenu(in)
	case ModePaused:
		g.stepPaused(in)
	case ModeWinMenu:
		g.stepWinMenu(in)
	case ModePlaying:
		if finish := g.stepPlaying(in); finish != nil {
			return core.StepResult{State: g.State(), Finished: finish}
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	count := g.cfg.Levels.Count
	switch {
	case in.Has(core.ActionLeft):
		g.menuIndex = (g.menuIndex + count - 1) % count
	case in.Has(core.ActionRight):
		g.menuIndex = (g.menuIndex + 1) % count
	case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
		g.start(g.menuIndex)
	case in.Has(core.ActionBack):
		g.quit = true
	}
}

func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
		g.mode = ModePlaying
	case in.Has(core.ActionBack):
		g.mode = ModeMenu
	case in.Has(core.ActionRestart):
		g.start(g.levelIndex)
	}
}

func (g *Game) stepWinMenu(in core.InputFrame) {
	g.particles.Update()
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
		g.start(0)
	case in.Has(core.ActionBack):
		g.menuIndex = 0
		g.mode = ModeMenu
	}
}

// start begins level index from scratch.
func (g *Game) start(index int) {
	g.menuIndex = index
	g.load(index, true)
	g.mode = ModePlaying
	g.log.Info("level start", "level", index+1, "name", g.level.Name)
}
