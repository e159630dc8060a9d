package physics

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PlatformID identifies a platform within a Platforms collection.
// The zero value means "no platform".
type PlatformID uint32

// NoPlatform is the zero PlatformID.
const NoPlatform PlatformID = 0

// Surface selects how a platform responds to horizontal movement.
type Surface int

const (
	SurfaceNormal Surface = iota
	SurfaceSlippery
)

// String returns the surface name.
func (s Surface) String() string {
	if s == SurfaceSlippery {
		return "slippery"
	}
	return "normal"
}

// Oscillation describes horizontal back-and-forth motion between Min and Max.
type Oscillation struct {
	Enabled   bool
	Min, Max  float64 // Range of the left edge
	Speed     float64 // Units per frame
	Direction int     // +1 or -1
}

// Step advances x by one frame and returns the new position.
// Leaving the range flips the direction and steps back in.
func (o *Oscillation) Step(x float64) float64 {
	if !o.Enabled || o.Speed == 0 {
		return x
	}
	if o.Direction == 0 {
		o.Direction = 1
	}
	x += float64(o.Direction) * o.Speed
	if x < o.Min || x > o.Max {
		o.Direction = -o.Direction
		x += float64(o.Direction) * o.Speed
	}
	return x
}

// Platform is a static or oscillating rectangular obstacle.
type Platform struct {
	ID             PlatformID
	X, Y           float64
	W, H           int
	Surface        Surface
	SlipDurationMs float64 // Slip decay time, only used on slippery surfaces
	Osc            Oscillation
	Permanent      bool    // Ground geometry, never evicted
	LastDX         float64 // Displacement applied by the latest Advance
}

// NewPlatform creates a static normal platform.
func NewPlatform(x, y, w, h int) *Platform {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("physics: platform size must be positive, got %dx%d", w, h))
	}
	return &Platform{X: float64(x), Y: float64(y), W: w, H: h}
}

// Oscillate enables horizontal oscillation over [min, max] and returns the platform.
func (p *Platform) Oscillate(min, max, speed float64) *Platform {
	p.Osc = Oscillation{Enabled: true, Min: min, Max: max, Speed: speed, Direction: 1}
	return p
}

// Slippery marks the platform slippery with the given decay time and returns it.
func (p *Platform) Slippery(durationMs float64) *Platform {
	p.Surface = SurfaceSlippery
	p.SlipDurationMs = durationMs
	return p
}

// Box returns the integer bounding box at the current position.
func (p *Platform) Box() core.Rect {
	return core.NewRect(int(p.X), int(p.Y), p.W, p.H)
}

// SweptBox returns the rectangle covered over the whole oscillation range.
func (p *Platform) SweptBox() core.Rect {
	if !p.Osc.Enabled {
		return p.Box()
	}
	lo := core.Min(int(p.Osc.Min), int(p.X))
	hi := core.Max(int(p.Osc.Max), int(p.X)) + p.W
	return core.NewRect(lo, int(p.Y), hi-lo, p.H)
}

// Moving reports whether the platform oscillates.
func (p *Platform) Moving() bool {
	return p.Osc.Enabled && p.Osc.Speed != 0
}

// Advance moves an oscillating platform by one frame and records the displacement.
func (p *Platform) Advance() {
	prev := p.X
	p.X = p.Osc.Step(p.X)
	p.LastDX = p.X - prev
}
