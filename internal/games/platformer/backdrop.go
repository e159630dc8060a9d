package platformer

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Backdrop describes the decorative scenery: parallax clouds and rolling
// hills shaped by Perlin noise. It never touches the simulation.
type Backdrop struct {
	noise *perlin.Perlin
}

const (
	hillScale    = 0.004 // Noise frequency per world unit
	hillMin      = 30    // Hill height range above the ground
	hillMax      = 170
	hillParallax = 0.5
	cloudCount   = 6
	cloudSpacing = 220
	cloudW       = 120
	cloudH       = 40
)

// NewBackdrop creates scenery for a seed.
func NewBackdrop(seed int64) *Backdrop {
	return &Backdrop{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// HillHeight returns the hill height at screen-relative world x for a camera position.
func (b *Backdrop) HillHeight(x, cameraX float64) int {
	n := b.noise.Noise2D((x+cameraX*hillParallax)*hillScale, 0.5)
	n = (n + 1) / 2
	n = math.Max(0, math.Min(1, n))
	return hillMin + int(n*float64(hillMax-hillMin))
}

// Clouds returns the left edges and tops of the clouds for a camera
// position. Clouds scroll at a fifth of the camera speed and wrap.
func (b *Backdrop) Clouds(cameraX float64, viewW int) [][2]int {
	out := make([][2]int, 0, cloudCount)
	span := float64(viewW + 200)
	for i := range cloudCount {
		x := math.Mod(float64(i*cloudSpacing)-cameraX*0.2, span)
		if x < 0 {
			x += span
		}
		out = append(out, [2]int{int(x) - 100, 80 + (i%3)*20})
	}
	return out
}
