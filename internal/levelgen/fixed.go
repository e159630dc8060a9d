package levelgen

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Grid layout shared by all hand-authored levels. Each column is one grid
// pitch wide, each platform row one row pitch tall; row 0 is the highest.
// The last line holds ground features:
//
//	'#' = platform
//	'|' = wall (walls variation)
//	'*' = jump boost (pickups variation)
//
// Hazards patrol whole ground segments and are not part of the grid.
var gridLayout = []string{
	".......#.......#..",
	"..#...#.#...#.#.#.",
	".#.#.#...#.#.#...#",
	"#...#.....#.......",
	"..*|....*|...*|...",
}

// starterPlatforms are placed at the beginning of every level.
var starterPlatforms = []core.Rect{
	{X: 120, Y: 460, W: 160, H: 18},
	{X: 320, Y: 380, W: 130, H: 18},
	{X: 520, Y: 320, W: 160, H: 18},
	{X: 740, Y: 420, W: 130, H: 18},
	{X: 200, Y: 260, W: 140, H: 18},
	{X: 420, Y: 200, W: 180, H: 18},
}

var levelNames = []string{
	"Sunny Meadow",
	"Windy Ridge",
	"Frozen Pond",
	"Fox Den",
	"Storm Peak",
}

const (
	gridOrigin     = 900 // World x of grid column 0
	gridRowBase    = 100 // Height of the lowest row above the ground
	gridPlatformH  = 18
	goalW, goalH   = 36, 64
	checkpointW    = 20
	checkpointH    = 40
	wallW, wallH   = 20, 120
	hazardW        = 32
	hazardH        = 32
	hazardSpeed    = 1.5
	hazardInset    = 60 // Patrol distance kept from segment edges
	pickupSize     = 24
	holeClearance  = 40 // Min distance between a checkpoint and a hole edge
	wallBerth      = 40 // Min distance between a wall and a checkpoint
	starterMovingX = 600
)

// gridCell is one '#' of the layout.
type gridCell struct {
	col, row int
}

// parseGrid returns the platform cells in column order and the ground
// features keyed by column.
func parseGrid(lines []string) ([]gridCell, map[int]byte) {
	rows := len(lines) - 1
	width := 0
	for _, line := range lines {
		width = core.Max(width, len(line))
	}

	var cells []gridCell
	for col := range width {
		for row := range rows {
			if col < len(lines[row]) && lines[row][col] == '#' {
				cells = append(cells, gridCell{col: col, row: row})
			}
		}
	}

	features := make(map[int]byte)
	for col, ch := range []byte(lines[rows]) {
		if ch != '.' {
			features[col] = ch
		}
	}
	return cells, features
}

// VariationsFor returns the features enabled for a level index.
func VariationsFor(index int) Variation {
	switch index {
	case 0:
		return 0
	case 1:
		return VarOscillation
	case 2:
		return VarSlippery | VarPickups
	case 3:
		return VarWalls | VarHazards | VarPickups
	default:
		return VarWalls | VarOscillation | VarSlippery | VarHazards | VarPickups
	}
}

// LevelName returns the display name for a level index.
func LevelName(index int) string {
	if index >= 0 && index < len(levelNames) {
		return levelNames[index]
	}
	return fmt.Sprintf("Level %d", index+1)
}

// LevelLength returns the goal x of a level index.
func LevelLength(index int, cfg config.LevelConfig) int {
	return cfg.BaseLength + cfg.LengthStep*index
}

// PlatformWidth returns the grid platform width for a level index.
// Widths shrink geometrically with the index.
func PlatformWidth(index int, cfg config.LevelConfig) int {
	w := int(float64(cfg.BaseWidth) * math.Pow(cfg.WidthDecay, float64(index)))
	return core.Max(w, cfg.MinWidth)
}

// BuildFixedLevel builds hand-authored level index (0-based).
func BuildFixedLevel(index int, cfg config.LevelConfig) *Level {
	if index < 0 || index >= cfg.Count {
		panic(fmt.Sprintf("levelgen: level index %d out of range [0, %d)", index, cfg.Count))
	}
	length := LevelLength(index, cfg)
	if length <= 0 {
		panic(fmt.Sprintf("levelgen: level length must be positive, got %d", length))
	}

	l := &Level{
		Index:      index,
		Name:       LevelName(index),
		Length:     length,
		Variations: VariationsFor(index),
		Platforms:  physics.NewPlatforms(),
		Goal:       core.NewRect(length, cfg.GroundY-goalH, goalW, goalH),
	}

	buildGround(l, cfg)
	buildCheckpoints(l, cfg)

	for _, r := range starterPlatforms {
		w := core.Max(cfg.MinWidth, int(float64(r.W)*math.Pow(cfg.WidthDecay, float64(index))))
		l.Platforms.Add(physics.NewPlatform(r.X, r.Y, w, r.H))
	}
	l.Platforms.Add(physics.NewPlatform(starterMovingX, cfg.GroundY-40, 120, 16).Oscillate(520, 760, 2))

	buildGrid(l, index, cfg)
	if l.Variations.Has(VarHazards) {
		buildHazards(l, cfg)
	}
	return l
}

// buildGround lays permanent ground segments separated by holes, plus the
// platform carrying the goal flag.
func buildGround(l *Level, cfg config.LevelConfig) {
	holeW := cfg.HoleWidth + cfg.HoleGrowth*l.Index
	flagStart := l.Length - 100

	for x := 0; x < l.Length+cfg.SegmentWidth; x += cfg.SegmentWidth + holeW {
		seg := physics.NewPlatform(x, cfg.GroundY, cfg.SegmentWidth, cfg.GroundHeight)
		seg.Permanent = true
		l.Platforms.Add(seg)

		hole := core.NewRect(x+cfg.SegmentWidth, cfg.GroundY, holeW, cfg.GroundHeight)
		if holeW > 0 && hole.Right() <= flagStart {
			l.Holes = append(l.Holes, hole)
		}
	}

	flag := physics.NewPlatform(flagStart, cfg.GroundY, 200, cfg.GroundHeight)
	flag.Permanent = true
	l.Platforms.Add(flag)
}

// buildCheckpoints places a checkpoint every CheckpointEvery units,
// shifted forward when it would stand in or next to a hole.
func buildCheckpoints(l *Level, cfg config.LevelConfig) {
	for x := cfg.CheckpointEvery; x < l.Length; x += cfg.CheckpointEvery {
		cx := x
		for _, h := range l.Holes {
			if cx > h.X-holeClearance && cx < h.Right()+holeClearance {
				cx = h.Right() + holeClearance + checkpointW
			}
		}
		if cx >= l.Length {
			continue
		}
		l.Checkpoints = append(l.Checkpoints, &Checkpoint{
			X:   cx,
			Box: core.NewRect(cx-checkpointW/2, cfg.GroundY-checkpointH, checkpointW, checkpointH),
		})
	}
}

func buildGrid(l *Level, index int, cfg config.LevelConfig) {
	cells, features := parseGrid(gridLayout)
	w := PlatformWidth(index, cfg)
	limit := l.Length - 200

	for i, c := range cells {
		x := gridOrigin + c.col*cfg.GridPitch
		if x+w > limit {
			break
		}
		y := cfg.GroundY - gridRowBase - (len(gridLayout)-2-c.row)*cfg.RowPitch

		p := physics.NewPlatform(x, y, w, gridPlatformH)
		if l.Variations.Has(VarOscillation) && i%2 == 1 {
			p.Oscillate(float64(x-40), float64(x+40), 1+float64(index)/2)
		}
		if l.Variations.Has(VarSlippery) && i%2 == 0 {
			p.Slippery(cfg.SlipDurationMs)
		}
		l.Platforms.Add(p)
	}

	for col := range len(gridLayout[0]) {
		ch, ok := features[col]
		if !ok {
			continue
		}
		cx := gridOrigin + col*cfg.GridPitch + w/2
		if cx > limit {
			continue
		}

		switch {
		case ch == '|' && l.Variations.Has(VarWalls):
			x := gridOrigin + col*cfg.GridPitch - 2*wallW
			r := core.NewRect(x, cfg.GroundY-wallH, wallW, wallH)
			if l.onGround(r, cfg) && !l.nearCheckpoint(r, wallBerth) {
				l.Platforms.Add(physics.NewPlatform(r.X, r.Y, r.W, r.H))
			}
		case ch == '*' && l.Variations.Has(VarPickups):
			r := core.NewRect(cx-pickupSize/2, cfg.GroundY-pickupSize, pickupSize, pickupSize)
			if l.onGround(r, cfg) {
				l.Pickups = append(l.Pickups, &Pickup{Box: r})
			}
		}
	}
}

// buildHazards puts one patrolling enemy on every ground segment from the
// third on, except segments holding a checkpoint and the goal area.
func buildHazards(l *Level, cfg config.LevelConfig) {
	limit := l.Length - 200
	for i, seg := range l.Platforms.All() {
		if !seg.Permanent || i < 2 {
			continue
		}
		box := seg.Box()
		if box.Right() > limit || box.W < 2*hazardInset+2*hazardW {
			continue
		}
		if l.nearCheckpoint(box, 0) {
			continue
		}
		lo := float64(box.X + hazardInset)
		hi := float64(box.Right() - hazardInset - hazardW)
		l.Hazards = append(l.Hazards, &Hazard{
			X: lo,
			Y: cfg.GroundY - hazardH,
			W: hazardW,
			H: hazardH,
			Osc: physics.Oscillation{
				Enabled:   true,
				Min:       lo,
				Max:       hi,
				Speed:     hazardSpeed,
				Direction: 1,
			},
		})
	}
}

// onGround reports whether r stands fully on a ground segment.
func (l *Level) onGround(r core.Rect, cfg config.LevelConfig) bool {
	footing := core.NewRect(r.X, cfg.GroundY, r.W, cfg.GroundHeight)
	return !l.InHole(footing)
}

// nearCheckpoint reports whether r comes within berth of a checkpoint.
func (l *Level) nearCheckpoint(r core.Rect, berth int) bool {
	for _, c := range l.Checkpoints {
		if c.X > r.X-berth && c.X < r.Right()+berth {
			return true
		}
	}
	return false
}
