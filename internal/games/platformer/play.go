package platformer

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levelgen"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Respawn reasons reported in logs.
const (
	reasonHole   = "hole"
	reasonFall   = "fall"
	reasonHazard = "hazard"
)

// load rebuilds level index. A fresh load starts a new attempt: the
// timer and checkpoint progress are cleared. Otherwise the level is
// rebuilt for a respawn and the player returns to the last checkpoint.
func (g *Game) load(index int, fresh bool) {
	if g.pending != nil {
		g.applyConfig(*g.pending)
		g.pending = nil
		g.log.Info("config applied", "level", index+1)
	}
	index = core.Clamp(index, 0, g.cfg.Levels.Count-1)
	if fresh || index != g.levelIndex || g.activated == nil {
		g.activated = make(map[int]bool)
		g.elapsed = 0
		g.deaths = 0
		g.banner = bannerFrames
		g.lastRun = nil
	}
	g.levelIndex = index

	g.level = levelgen.BuildFixedLevel(index, g.cfg.LevelLayout())
	for _, cp := range g.level.Checkpoints {
		if g.activated[cp.X] {
			cp.Activate()
		}
	}
	g.ledger = levelgen.NewLedger(g.cfg.Generation.ChunkWidth)
	g.gen.Reset(g.levelSeed(index))

	pc := g.cfg.Player
	spawnX, spawnY := float64(pc.SpawnX), float64(pc.SpawnY)
	if cp := g.level.LastActivated(); cp != nil {
		spawnX = float64(cp.X)
		spawnY = float64(g.cfg.World.GroundY) - float64(pc.Height)/2
	}
	developer := g.player != nil && g.player.DeveloperMode
	g.player = physics.NewPlayer(spawnX, spawnY, pc.Width, pc.Height)
	g.player.DeveloperMode = developer
	g.boostFrom = nil

	g.cameraX = g.clampCamera(g.cameraTarget())
	g.generate()
	g.clearSpawn()
	if g.particles != nil {
		g.particles.Clear()
	}
}

// clearSpawn drops generated platforms that would trap the spawned body.
func (g *Game) clearSpawn() {
	box := g.player.Box()
	g.level.Platforms.RemoveIf(func(p *physics.Platform) bool {
		return !p.Permanent && p.SweptBox().Intersects(box)
	})
}

// respawn reloads the current level after a death.
func (g *Game) respawn(reason string) {
	p := g.player
	g.log.Debug("respawn", "reason", reason, "x", p.CenterX(), "y", p.Top(), "vy", p.VY)
	g.deaths++
	g.load(g.levelIndex, false)
}

func (g *Game) cameraTarget() float64 {
	return float64(g.player.CenterX()) - float64(g.cfg.World.ViewWidth)*g.cfg.World.CameraLead
}

func (g *Game) clampCamera(x float64) float64 {
	w := g.cfg.World
	hi := float64(g.level.Length - w.ViewWidth + w.CameraTail)
	return math.Max(0, math.Min(x, hi))
}

// generate extends the level ahead of the camera and drops what fell behind.
func (g *Game) generate() {
	gc := g.cfg.Generation
	g.gen.GenerateAhead(g.level.Platforms, g.ledger,
		g.cameraX, g.cameraX+float64(gc.GenAhead),
		float64(g.player.CenterX()), float64(g.level.Length))
	levelgen.EvictBehind(g.level.Platforms, g.cameraX, float64(gc.GenBuffer))
}

// stepPlaying runs one simulation frame and returns a non-nil finish
// record on the frame the goal is reached.
func (g *Game) stepPlaying(in core.InputFrame) *core.LevelFinish {
	switch {
	case in.Has(core.ActionPause):
		g.mode = ModePaused
		return nil
	case in.Has(core.ActionBack):
		g.mode = ModeMenu
		return nil
	case in.Has(core.ActionRestart):
		g.log.Debug("restart", "level", g.levelIndex+1)
		g.load(g.levelIndex, true)
		return nil
	case in.Has(core.ActionDeveloper):
		g.player.DeveloperMode = !g.player.DeveloperMode
		g.log.Debug("developer mode", "enabled", g.player.DeveloperMode)
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.FrameDuration()
	}
	g.elapsed += dt
	if g.banner > 0 {
		g.banner--
	}

	g.level.Platforms.Update()
	for _, h := range g.level.Hazards {
		h.Advance()
	}

	p := g.player
	g.armBoost()
	boosted := false
	if in.Has(core.ActionJump) {
		boosted = g.engine.RequestJump(p) == physics.JumpBoosted
	}

	desired := float64(in.MoveX) * g.engine.Params().MaxSpeed
	if in.Has(core.ActionStop) {
		desired = 0
	}
	res := g.engine.Advance(p, desired, g.level.Platforms, physics.Frame{DtMs: float64(dt) / float64(time.Millisecond)})
	if (boosted || res.Boosted) && g.boostFrom != nil {
		g.boostFrom.Used = true
		g.boostFrom = nil
	}
	if res.Landed {
		g.particles.Emit(float64(p.CenterX()), float64(p.Bottom()))
	}

	w := g.cfg.World
	g.cameraX += (g.cameraTarget() - g.cameraX) * w.CameraLerp
	g.cameraX = g.clampCamera(g.cameraX)
	g.generate()

	if finish := g.checkWorld(); finish != nil {
		return finish
	}
	g.particles.Update()
	return nil
}

// armBoost readies a boosted jump while the player stands on an unused pickup.
func (g *Game) armBoost() {
	p := g.player
	p.BoostReady = false
	g.boostFrom = nil
	if !p.OnGround {
		return
	}
	box := p.Box()
	for _, pk := range g.level.Pickups {
		if !pk.Used && pk.Box.Intersects(box) {
			p.BoostReady = true
			g.boostFrom = pk
			return
		}
	}
}

// checkWorld applies checkpoints, hazards, holes, the fall limit and the goal.
func (g *Game) checkWorld() *core.LevelFinish {
	p := g.player
	box := p.Box()

	for _, cp := range g.level.Checkpoints {
		if box.Intersects(cp.Box) && cp.Activate() {
			g.activated[cp.X] = true
			g.log.Debug("checkpoint", "level", g.levelIndex+1, "x", cp.X)
		}
	}

	for _, h := range g.level.Hazards {
		if box.Intersects(h.Box()) {
			g.respawn(reasonHazard)
			return nil
		}
	}
	if g.level.InHole(box) {
		g.respawn(reasonHole)
		return nil
	}
	if p.Top() > g.cfg.World.ViewHeight+g.cfg.World.DeathMargin && p.VY > 0 {
		g.respawn(reasonFall)
		return nil
	}

	if box.Intersects(g.level.Goal) {
		return g.finish()
	}
	return nil
}

// finish records the run and advances to the next level or the win menu.
func (g *Game) finish() *core.LevelFinish {
	final := g.levelIndex == g.cfg.Levels.Count-1
	run := &core.LevelFinish{
		Level:   g.levelIndex + 1,
		Elapsed: g.elapsed,
		Final:   final,
		Deaths:  g.deaths,
	}
	best := g.records.Observe(run.Level, run.Elapsed)
	g.log.Info("level complete", "level", run.Level, "elapsed", run.Elapsed, "best", best, "deaths", g.deaths)

	if final {
		g.log.Info("game won", "levels", g.cfg.Levels.Count)
		g.mode = ModeWinMenu
		g.particles.Emit(float64(g.player.CenterX()), float64(g.player.Top()))
	} else {
		g.load(g.levelIndex+1, true)
		g.menuIndex = g.levelIndex
	}
	g.lastRun = run
	return run
}
