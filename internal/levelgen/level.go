package levelgen

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Variation selects optional features of a hand-authored level.
type Variation uint8

const (
	VarWalls       Variation = 1 << iota // Vertical wall segments on the ground
	VarOscillation                       // Odd grid entries oscillate
	VarSlippery                          // Even grid entries are slippery
	VarHazards                           // Patrolling enemies on the ground
	VarPickups                           // Jump boost pickups
)

var variationNames = []struct {
	v    Variation
	name string
}{
	{VarWalls, "walls"},
	{VarOscillation, "moving"},
	{VarSlippery, "slippery"},
	{VarHazards, "hazards"},
	{VarPickups, "boosts"},
}

// Has reports whether all bits of o are set.
func (v Variation) Has(o Variation) bool {
	return v&o == o
}

// String returns a comma separated list of variation names.
func (v Variation) String() string {
	var parts []string
	for _, n := range variationNames {
		if v.Has(n.v) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, ", ")
}

// Checkpoint is a respawn anchor. Once activated it stays activated.
type Checkpoint struct {
	X         int       // Respawn x (center)
	Box       core.Rect // Trigger area
	Activated bool
}

// Activate marks the checkpoint and reports whether this was the first activation.
func (c *Checkpoint) Activate() bool {
	if c.Activated {
		return false
	}
	c.Activated = true
	return true
}

// Hazard is an enemy patrolling horizontally. Touching it respawns the player.
type Hazard struct {
	X    float64
	Y    int
	W, H int
	Osc  physics.Oscillation
}

// Box returns the hazard's bounding box.
func (h *Hazard) Box() core.Rect {
	return core.NewRect(int(h.X), h.Y, h.W, h.H)
}

// Advance moves the hazard by one frame.
func (h *Hazard) Advance() {
	h.X = h.Osc.Step(h.X)
}

// Pickup is a jump boost standing on the ground.
type Pickup struct {
	Box  core.Rect
	Used bool
}

// Level is a fully built hand-authored level.
type Level struct {
	Index       int // 0-based
	Name        string
	Length      int // Goal x
	Variations  Variation
	Platforms   *physics.Platforms
	Checkpoints []*Checkpoint
	Hazards     []*Hazard
	Pickups     []*Pickup
	Holes       []core.Rect
	Goal        core.Rect
}

// Number returns the 1-based level number.
func (l *Level) Number() int {
	return l.Index + 1
}

// InHole reports whether r overlaps any ground hole.
func (l *Level) InHole(r core.Rect) bool {
	for _, h := range l.Holes {
		if r.Intersects(h) {
			return true
		}
	}
	return false
}

// LastActivated returns the activated checkpoint furthest along the level, or nil.
func (l *Level) LastActivated() *Checkpoint {
	var best *Checkpoint
	for _, c := range l.Checkpoints {
		if c.Activated && (best == nil || c.X > best.X) {
			best = c
		}
	}
	return best
}
