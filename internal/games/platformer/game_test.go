package platformer

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(Options{Config: config.DefaultPlatformerConfig()})
	g.Reset(testRuntime(42))
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startLevel moves the menu cursor to index and confirms.
func startLevel(t *testing.T, g *Game, index int) {
	t.Helper()
	for g.menuIndex != index {
		g.Step(press(core.ActionRight))
	}
	g.Step(press(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected playing", g.Mode())
	}
}

// standAt places the player standing on the ground centered on x.
func standAt(g *Game, x int) {
	p := g.player
	p.X = float64(x - p.W/2)
	p.Y = float64(g.cfg.World.GroundY - p.H)
	p.VX, p.VY = 0, 0
}

// dropBelow places the player past the fall limit.
func dropBelow(g *Game) {
	p := g.player
	p.Y = float64(g.cfg.World.ViewHeight + g.cfg.World.DeathMargin + 10)
	p.VY = 5
	p.OnGround = false
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		startLevel(t, g, 0)
		for i := range 600 {
			in := core.NewInputFrame()
			in.MoveX = 1
			if i%45 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Chunks == 0 {
		t.Error("Expected generated chunks after running")
	}
}

func TestResetShowsMenu(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	if !state.InMenu {
		t.Error("Expected menu after Reset")
	}
	if state.Level != 1 {
		t.Errorf("Level = %d, expected 1", state.Level)
	}
	if g.ID() != "platformer" || g.Title() != "Chicken Run" {
		t.Errorf("Unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestMenuSelection(t *testing.T) {
	g := newTestGame(t)
	count := g.cfg.Levels.Count

	g.Step(press(core.ActionLeft))
	if g.menuIndex != count-1 {
		t.Errorf("menuIndex = %d after Left, expected %d", g.menuIndex, count-1)
	}
	g.Step(press(core.ActionRight))
	g.Step(press(core.ActionRight))
	if g.menuIndex != 1 {
		t.Errorf("menuIndex = %d, expected 1", g.menuIndex)
	}

	g.Step(press(core.ActionJump))
	if g.Mode() != ModePlaying {
		t.Fatalf("Mode() = %v, expected playing", g.Mode())
	}
	if g.State().Level != 2 {
		t.Errorf("Level = %d, expected 2", g.State().Level)
	}
	if g.State().Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0", g.State().Elapsed)
	}
}

func TestStartLevelOption(t *testing.T) {
	g := New(Options{Config: config.DefaultPlatformerConfig(), StartLevel: 3})
	g.Reset(testRuntime(1))
	if g.menuIndex != 3 {
		t.Errorf("menuIndex = %d, expected 3", g.menuIndex)
	}

	g = New(Options{Config: config.DefaultPlatformerConfig(), StartLevel: 99})
	g.Reset(testRuntime(1))
	if g.menuIndex != g.cfg.Levels.Count-1 {
		t.Errorf("menuIndex = %d, expected clamp to last level", g.menuIndex)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	in := core.NewInputFrame()
	in.MoveX = 1
	for range 10 {
		g.Step(in)
	}

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}
	before := g.Snapshot()
	for range 30 {
		g.Step(in)
	}
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.ElapsedMs != after.ElapsedMs {
		t.Errorf("Simulation advanced while paused: x %v -> %v", before.PlayerX, after.PlayerX)
	}

	g.Step(press(core.ActionPause))
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v after second pause, expected playing", g.Mode())
	}
}

func TestElapsedUsesFrameTime(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	in := core.NewInputFrame()
	in.Elapsed = 20 * time.Millisecond
	for range 5 {
		g.Step(in)
	}
	if g.State().Elapsed != 100*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 100ms", g.State().Elapsed)
	}
}

func TestRespawnOnFall(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	elapsed := g.State().Elapsed

	dropBelow(g)
	g.Step(core.NewInputFrame())

	if g.deaths != 1 {
		t.Errorf("deaths = %d, expected 1", g.deaths)
	}
	if g.player.CenterX() != g.cfg.Player.SpawnX {
		t.Errorf("Respawn center x = %d, expected %d", g.player.CenterX(), g.cfg.Player.SpawnX)
	}
	if g.State().Elapsed <= elapsed {
		t.Errorf("Timer should keep running across respawns: %v <= %v", g.State().Elapsed, elapsed)
	}
}

func TestRespawnOnHole(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	hole := g.level.Holes[0]
	p := g.player
	p.X = float64(hole.X + 10)
	p.Y = float64(hole.Y - p.H/2)
	p.VX, p.VY = 0, 0
	p.OnGround = false
	g.Step(core.NewInputFrame())

	if g.deaths != 1 {
		t.Errorf("deaths = %d, expected 1", g.deaths)
	}
}

func TestCheckpointSurvivesRespawn(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	cp := g.level.Checkpoints[0]
	standAt(g, cp.X)
	g.Step(core.NewInputFrame())
	if !cp.Activated {
		t.Fatal("Expected checkpoint activation on touch")
	}

	dropBelow(g)
	g.Step(core.NewInputFrame())

	if g.player.CenterX() != cp.X {
		t.Errorf("Respawn center x = %d, expected checkpoint %d", g.player.CenterX(), cp.X)
	}
	if g.player.Bottom() != g.cfg.World.GroundY {
		t.Errorf("Respawn bottom = %d, expected ground %d", g.player.Bottom(), g.cfg.World.GroundY)
	}
	last := g.level.LastActivated()
	if last == nil || last.X != cp.X {
		t.Error("Checkpoint activation lost after reload")
	}
}

func TestRestartClearsProgress(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	standAt(g, g.level.Checkpoints[0].X)
	g.Step(core.NewInputFrame())
	g.Step(press(core.ActionRestart))

	if g.level.LastActivated() != nil {
		t.Error("Restart should clear checkpoints")
	}
	if g.State().Elapsed != 0 {
		t.Errorf("Elapsed = %v after restart, expected 0", g.State().Elapsed)
	}
	if g.player.CenterX() != g.cfg.Player.SpawnX {
		t.Errorf("Restart center x = %d, expected spawn", g.player.CenterX())
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	standAt(g, g.level.Goal.X)
	res := g.Step(core.NewInputFrame())

	if res.Finished == nil {
		t.Fatal("Expected a level finish")
	}
	if res.Finished.Level != 1 || res.Finished.Final {
		t.Errorf("Finished = %+v, expected level 1, not final", *res.Finished)
	}
	if g.State().Level != 2 || g.Mode() != ModePlaying {
		t.Errorf("Expected level 2 playing, got level %d %v", g.State().Level, g.Mode())
	}
	if _, ok := g.Records().Best(1); !ok {
		t.Error("Expected a best time for level 1")
	}
}

func TestFinalGoalShowsWinMenu(t *testing.T) {
	g := newTestGame(t)
	last := g.cfg.Levels.Count - 1
	startLevel(t, g, last)

	standAt(g, g.level.Goal.X)
	res := g.Step(core.NewInputFrame())

	if res.Finished == nil || !res.Finished.Final {
		t.Fatalf("Finished = %+v, expected final finish", res.Finished)
	}
	if !g.State().Won || g.Mode() != ModeWinMenu {
		t.Errorf("Expected win menu, got %v", g.Mode())
	}

	g.Step(press(core.ActionConfirm))
	if g.Mode() != ModePlaying || g.State().Level != 1 {
		t.Errorf("Expected replay from level 1, got level %d %v", g.State().Level, g.Mode())
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	g.Step(press(core.ActionBack))
	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", g.Mode())
	}
	g.Step(press(core.ActionBack))
	if !g.State().GameOver {
		t.Error("Back from the menu should end the session")
	}
}

func TestDeveloperModeSurvivesRespawn(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	g.Step(press(core.ActionDeveloper))
	if !g.player.DeveloperMode {
		t.Fatal("Expected developer mode on")
	}
	dropBelow(g)
	g.Step(core.NewInputFrame())
	if !g.player.DeveloperMode {
		t.Error("Developer mode lost after respawn")
	}
}

func TestBoostPickup(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 2)
	if len(g.level.Pickups) == 0 {
		t.Fatal("Expected pickups in level 3")
	}

	pk := g.level.Pickups[0]
	cx, _ := pk.Box.Center()
	standAt(g, cx)
	g.player.OnGround = true
	g.Step(press(core.ActionJump))

	if !pk.Used {
		t.Error("Expected the pickup to be consumed")
	}
	if g.player.VY >= -g.engine.Params().JumpSpeed {
		t.Errorf("VY = %v, expected a boosted jump", g.player.VY)
	}
}

func TestPlatformsBehindCameraEvicted(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)
	g.Step(press(core.ActionDeveloper))

	buffer := float64(g.cfg.Generation.GenBuffer)
	for i := range 900 {
		in := core.NewInputFrame()
		in.MoveX = 1
		if i%30 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
		if g.Mode() != ModePlaying {
			break
		}
		for _, p := range g.level.Platforms.All() {
			if !p.Permanent && float64(p.SweptBox().Right()) < g.cameraX-buffer {
				t.Fatalf("frame %d: platform %d ends at %d, behind camera %.1f", i, p.ID, p.SweptBox().Right(), g.cameraX)
			}
		}
	}
}

func TestCameraStaysInBounds(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	standAt(g, g.level.Length-300)
	for range 200 {
		g.Step(core.NewInputFrame())
		w := g.cfg.World
		hi := float64(g.level.Length - w.ViewWidth + w.CameraTail)
		if g.cameraX < 0 || g.cameraX > hi {
			t.Fatalf("cameraX = %.1f outside [0, %.1f]", g.cameraX, hi)
		}
	}
}

func TestLeftEdgeStopsPlayer(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	for range 120 {
		in := core.NewInputFrame()
		in.MoveX = -1
		g.Step(in)
	}

	p := g.Player()
	if p.X != 0 {
		t.Errorf("player X = %.1f, expected 0", p.X)
	}
	if !p.OnGround {
		t.Error("player should stand on the ground at the left edge")
	}
}

func TestPendingConfigAppliedOnReload(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 0)

	cfg := config.DefaultPlatformerConfig()
	cfg.Physics.MaxSpeed = 9
	g.SetPendingConfig(cfg)
	if g.engine.Params().MaxSpeed == 9 {
		t.Fatal("Pending config applied too early")
	}

	g.Step(press(core.ActionRestart))
	if g.engine.Params().MaxSpeed != 9 {
		t.Errorf("MaxSpeed = %v after reload, expected 9", g.engine.Params().MaxSpeed)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "CHICKEN RUN") {
		t.Error("Menu should show the title")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Time") {
		t.Errorf("HUD row = %q, expected the timer", screen.Row(0))
	}
}

func TestRenderSlipperyPlatform(t *testing.T) {
	g := newTestGame(t)
	startLevel(t, g, 2)

	var ice *physics.Platform
	for _, p := range g.level.Platforms.All() {
		if p.Surface == physics.SurfaceSlippery {
			ice = p
			break
		}
	}
	if ice == nil {
		t.Fatal("level 3 should have slippery platforms")
	}

	screen := core.NewScreen(80, 24)
	g.cameraX = ice.X - 200
	g.Render(screen)

	cr := g.viewport(screen).cells(ice.Box())
	cell := screen.GetCell(cr.X, cr.Y)
	if cell.Rune != IceChar || cell.Color != core.ColorIce {
		t.Errorf("cell at (%d, %d) = %q/%d, expected ice", cr.X, cr.Y, cell.Rune, cell.Color)
	}
}

func TestRecords(t *testing.T) {
	r := NewRecords()

	if _, ok := r.Best(1); ok {
		t.Error("Expected no record")
	}
	if !r.Observe(1, 10*time.Second) {
		t.Error("First time should be a record")
	}
	if r.Observe(1, 12*time.Second) {
		t.Error("Slower time should not be a record")
	}
	if !r.Observe(1, 8*time.Second) {
		t.Error("Faster time should be a record")
	}
	if best, _ := r.Best(1); best != 8*time.Second {
		t.Errorf("Best(1) = %v, expected 8s", best)
	}

	r.Load(map[int]time.Duration{2: 30 * time.Second})
	if best, ok := r.Best(2); !ok || best != 30*time.Second {
		t.Errorf("Best(2) = %v, %v, expected 30s", best, ok)
	}
}

func TestParticlesCapAndExpire(t *testing.T) {
	ps := NewParticles(7)
	for range 20 {
		ps.Emit(10, 10)
	}
	if len(ps.Items()) != maxParticles {
		t.Errorf("len = %d, expected %d", len(ps.Items()), maxParticles)
	}
	for range particleLifetime {
		ps.Update()
	}
	if len(ps.Items()) != 0 {
		t.Errorf("len = %d after lifetime, expected 0", len(ps.Items()))
	}
}

func TestBackdropHillRange(t *testing.T) {
	b := NewBackdrop(3)
	for x := 0.0; x < 2000; x += 37 {
		h := b.HillHeight(x, 120)
		if h < hillMin || h > hillMax {
			t.Fatalf("HillHeight(%v) = %d, outside [%d, %d]", x, h, hillMin, hillMax)
		}
	}
	if n := len(b.Clouds(500, 900)); n != cloudCount {
		t.Errorf("Clouds() returned %d, expected %d", n, cloudCount)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{75 * time.Second, "1:15.0"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
