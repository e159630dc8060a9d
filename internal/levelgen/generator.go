package levelgen

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// GenStats summarizes one GenerateAhead call.
type GenStats struct {
	Chunks      int // Newly generated chunks
	Placed      int // Platforms added
	Oscillating int // Placed platforms that oscillate
	Attempts    int // Candidates drawn
}

// Generator places procedural platforms chunk by chunk using rejection
// sampling. Every platform is within jump reach of the previous one.
type Generator struct {
	cfg        config.GenerationConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	maxStep    int // Max vertical distance between consecutive platforms
	lastY      int // Top of the most recently placed platform
}

// NewGenerator creates a generator. The vertical reach is derived from
// the jump kinematics in params.
func NewGenerator(cfg config.GenerationConfig, params physics.Params, difficulty *config.DifficultyManager, seed int64) *Generator {
	if cfg.PlatformsPerChunk < 0 || cfg.AttemptsPerPlatform <= 0 {
		panic(fmt.Sprintf("levelgen: invalid placement budget %d x %d", cfg.PlatformsPerChunk, cfg.AttemptsPerPlatform))
	}
	if cfg.StartY < cfg.MinY || cfg.StartY > cfg.MaxY {
		panic(fmt.Sprintf("levelgen: start y %d outside [%d, %d]", cfg.StartY, cfg.MinY, cfg.MaxY))
	}
	if cfg.ReachFactor <= 0 {
		panic(fmt.Sprintf("levelgen: reach factor must be positive, got %v", cfg.ReachFactor))
	}
	g := &Generator{
		cfg:        cfg,
		difficulty: difficulty,
		maxStep:    int(cfg.ReachFactor * params.MaxJumpHeight()),
	}
	g.Reset(seed)
	return g
}

// Reset reseeds the generator and restarts the reachability chain.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.lastY = g.cfg.StartY
}

// MaxStep returns the max vertical distance between consecutive platforms.
func (g *Generator) MaxStep() int {
	return g.maxStep
}

// AttemptBudget returns the max number of candidates drawn per chunk.
func (g *Generator) AttemptBudget() int {
	return g.cfg.PlatformsPerChunk * g.cfg.AttemptsPerPlatform
}

// GenerateAhead fills every not yet generated chunk overlapping
// [start, end]. Chunks already in the ledger are skipped, so repeated
// calls are idempotent. A chunk whose budget runs out stays sparse.
func (g *Generator) GenerateAhead(platforms *physics.Platforms, ledger *Ledger, start, end, playerX, levelLength float64) GenStats {
	if levelLength <= 0 {
		panic(fmt.Sprintf("levelgen: level length must be positive, got %v", levelLength))
	}

	var stats GenStats
	level := g.level(playerX, levelLength)

	for ci := ledger.ChunkIndex(start); ci <= ledger.ChunkIndex(end); ci++ {
		if !ledger.Mark(ci) {
			continue
		}
		stats.Chunks++
		g.fillChunk(platforms, ledger, ci, level, &stats)
	}
	return stats
}

// level returns the difficulty level for the player's progress.
func (g *Generator) level(playerX, levelLength float64) float64 {
	progress := config.Progress(playerX, levelLength)
	if g.difficulty == nil {
		return progress
	}
	return g.difficulty.Level(progress)
}

func (g *Generator) fillChunk(platforms *physics.Platforms, ledger *Ledger, ci int, level float64, stats *GenStats) {
	chunkStart, chunkEnd := ledger.Bounds(ci)
	budget := g.AttemptBudget()
	placed := 0

	for placed < g.cfg.PlatformsPerChunk && budget > 0 {
		budget--
		stats.Attempts++

		p := g.candidate(chunkStart, level)
		if g.blocked(platforms, p.Box()) {
			continue
		}

		if g.rng.Float64() < g.cfg.OscillateChance+g.cfg.OscillateChanceGain*level {
			lo := core.Max(int(p.X)-g.cfg.RangeBack, chunkStart)
			hi := core.Min(int(p.X)+g.cfg.RangeForward, chunkEnd+g.cfg.RangeOverlap)
			speed := g.between(g.cfg.MinSpeed, g.cfg.MaxSpeed+int(float64(g.cfg.SpeedGain)*level))
			p.Oscillate(float64(lo), float64(hi), float64(speed))
			if g.blocked(platforms, p.SweptBox()) {
				p.Osc = physics.Oscillation{}
			} else {
				stats.Oscillating++
			}
		}

		platforms.Add(p)
		g.lastY = int(p.Y)
		placed++
		stats.Placed++
	}
}

// candidate draws a random platform whose left edge lies in the chunk
// and whose top is within reach of the previous platform.
func (g *Generator) candidate(chunkStart int, level float64) *physics.Platform {
	minW := g.cfg.MinWidth - int(float64(g.cfg.WidthShrinkMin)*level)
	maxW := g.cfg.MaxWidth - int(float64(g.cfg.WidthShrinkMax)*level)
	w := g.between(minW, core.Max(minW, maxW))

	x := chunkStart + g.rng.Intn(g.cfg.ChunkWidth)

	// lastY stays inside [MinY, MaxY], so the window is never empty
	lo := core.Max(g.cfg.MinY, g.lastY-g.maxStep)
	hi := core.Min(g.cfg.MaxY, g.lastY+g.maxStep)
	y := g.between(lo, hi)

	return physics.NewPlatform(x, y, w, g.cfg.Height)
}

// blocked reports whether r, padded by the overlap margin, touches the
// travel range of any existing platform.
func (g *Generator) blocked(platforms *physics.Platforms, r core.Rect) bool {
	padded := r.Inflate(g.cfg.OverlapMargin)
	for _, p := range platforms.All() {
		if padded.Intersects(p.SweptBox()) {
			return true
		}
	}
	return false
}

// between returns a random int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
