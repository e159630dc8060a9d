package levelgen

import "github.com/vovakirdan/tui-platformer/internal/physics"

// EvictBehind removes non-permanent platforms whose trailing edge lies more
// than buffer units behind cameraX and returns how many were removed.
// Oscillating platforms are judged by their whole travel range.
func EvictBehind(platforms *physics.Platforms, cameraX, buffer float64) int {
	limit := cameraX - buffer
	return platforms.RemoveIf(func(p *physics.Platform) bool {
		return !p.Permanent && float64(p.SweptBox().Right()) < limit
	})
}
