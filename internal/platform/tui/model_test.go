package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fakeGame records what the loop hands it.
type fakeGame struct {
	resets   int
	resized  core.RuntimeConfig
	inputs   []core.InputFrame
	finishOn int // Step number that reports a finish, 0 for never
	over     bool
	pending  *config.PlatformerConfig
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return core.GameState{GameOver: g.over} }
func (g *fakeGame) Resize(cfg core.RuntimeConfig) { g.resized = cfg }

func (g *fakeGame) SetPendingConfig(cfg config.PlatformerConfig) { g.pending = &cfg }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	res := core.StepResult{State: g.State()}
	if len(g.inputs) == g.finishOn {
		res.Finished = &core.LevelFinish{Level: 2, Elapsed: 12 * time.Second, Deaths: 1}
	}
	return res
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func TestModelTickPassesInput(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})

	now := time.Unix(1000, 0)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = step(t, m, TickMsg(now))
	m, _ = step(t, m, TickMsg(now.Add(20*time.Millisecond)))

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("First frame should carry the jump")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("Edge actions should be cleared after a tick")
	}
	if g.inputs[0].Elapsed != 0 || g.inputs[1].Elapsed != 20*time.Millisecond {
		t.Errorf("Elapsed = %v, %v, expected 0, 20ms", g.inputs[0].Elapsed, g.inputs[1].Elapsed)
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{finishOn: 1}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 9}, Options{Store: store})
	step(t, m, TickMsg(time.Unix(1000, 0)))

	runs, err := store.TopTimes(2, 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 stored run, got %d", len(runs))
	}
	if runs[0].Duration != 12*time.Second || runs[0].Deaths != 1 || runs[0].Seed != 9 {
		t.Errorf("Stored run = %+v", runs[0])
	}
}

func TestModelQuitsOnGameOver(t *testing.T) {
	g := &fakeGame{over: true}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})

	m, cmd := step(t, m, TickMsg(time.Unix(1000, 0)))
	if !m.quitting || cmd == nil {
		t.Error("Expected quit after game over")
	}
	if m.View() != "" {
		t.Error("View should be empty while quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting || cmd == nil {
		t.Error("Expected q to quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 0 {
		t.Errorf("Reset called %d times, expected 0", g.resets)
	}
	if g.resized.ScreenW != 100 || g.resized.ScreenH != 30 {
		t.Errorf("Resize got %dx%d, expected 100x30", g.resized.ScreenW, g.resized.ScreenH)
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("View should render the game")
	}
}

func TestModelConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  max_speed: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	g := &fakeGame{}
	events := make(chan string)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1},
		Options{ConfigEvents: events, Preset: config.DifficultyHard})

	_, cmd := step(t, m, ConfigChangedMsg{Path: path})
	if g.pending == nil {
		t.Fatal("Expected the game to receive the reloaded config")
	}
	if g.pending.Physics.MaxSpeed != 7 {
		t.Errorf("MaxSpeed = %v, expected 7", g.pending.Physics.MaxSpeed)
	}
	if g.pending.Difficulty.InitialLevel != config.InitialLevelForPreset(config.DifficultyHard) {
		t.Errorf("InitialLevel = %v, expected the hard preset", g.pending.Difficulty.InitialLevel)
	}
	if cmd == nil {
		t.Error("Expected the model to keep waiting for config events")
	}
}
