package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Game is the contract between the terminal loop and a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// ConfigReceiver is implemented by games that accept a reloaded
// configuration at their next level load.
type ConfigReceiver interface {
	SetPendingConfig(cfg config.PlatformerConfig)
}

// Options configures a Model.
type Options struct {
	Store        *storage.Store
	Logger       *log.Logger
	ConfigEvents <-chan string           // Changed config file paths, nil disables reload
	Preset       config.DifficultyPreset // Reapplied to reloaded configs
}

// ConfigChangedMsg reports a rewritten config file.
type ConfigChangedMsg struct {
	Path string
}

// Model is the Bubble Tea model for running the platformer.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	events     <-chan string
	preset     config.DifficultyPreset
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		events:     opts.ConfigEvents,
		preset:     opts.Preset,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is filled on the first tick (value receiver)

	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.events))
}

// waitForConfig blocks on the next config change event.
func waitForConfig(events <-chan string) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Path: path}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		return m.handleConfig(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleConfig reloads the config file and hands it to the game.
func (m Model) handleConfig(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	cfg, err := config.LoadPlatformer(msg.Path)
	if err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "error", err)
		return m, waitForConfig(m.events)
	}
	if m.preset != "" {
		config.ApplyPreset(&cfg, m.preset)
	}
	if r, ok := m.game.(ConfigReceiver); ok {
		r.SetPendingConfig(cfg)
		m.logger.Info("config reloaded", "path", msg.Path)
	}
	return m, waitForConfig(m.events)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.MoveX = m.keys.MoveX(now)
	m.inputFrame.Elapsed = frameTime(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished != nil {
		m.saveRun(*result.Finished)
	}

	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists a completed level.
func (m Model) saveRun(f core.LevelFinish) {
	m.logger.Debug("level finished", "level", f.Level, "elapsed", f.Elapsed, "deaths", f.Deaths)
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		Level:    f.Level,
		Duration: f.Elapsed,
		Deaths:   f.Deaths,
		Seed:     m.config.Seed,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
