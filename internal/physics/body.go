// Package physics implements the platformer's body model, the sub-stepped
// collision resolver and the surface-aware movement controller.
//
// Only axis-aligned rectangles are supported and gravity acts on the y axis
// (positive y points down, as on screen).
package physics

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is an axis-aligned rectangle with a continuous position.
// The integer bounding box is always derived from X and Y by truncation.
type Body struct {
	X, Y   float64 // Top-left corner, authoritative
	W, H   int     // Size in world units
	VX, VY float64 // Velocity in world units per frame
}

// NewBodyAt creates a body of the given size centered on (cx, cy).
func NewBodyAt(cx, cy float64, w, h int) Body {
	return Body{
		X: cx - float64(w)/2,
		Y: cy - float64(h)/2,
		W: w,
		H: h,
	}
}

// Box returns the integer bounding box.
func (b *Body) Box() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.W, b.H)
}

// Left returns the left edge of the bounding box.
func (b *Body) Left() int { return int(b.X) }

// Top returns the top edge of the bounding box.
func (b *Body) Top() int { return int(b.Y) }

// Right returns the right edge of the bounding box.
func (b *Body) Right() int { return int(b.X) + b.W }

// Bottom returns the bottom edge of the bounding box.
func (b *Body) Bottom() int { return int(b.Y) + b.H }

// CenterX returns the horizontal center of the bounding box.
func (b *Body) CenterX() int { return int(b.X) + b.W/2 }

// SetLeft moves the body so its left edge is at x.
func (b *Body) SetLeft(x int) { b.X = float64(x) }

// SetRight moves the body so its right edge is at x.
func (b *Body) SetRight(x int) { b.X = float64(x - b.W) }

// SetTop moves the body so its top edge is at y.
func (b *Body) SetTop(y int) { b.Y = float64(y) }

// SetBottom moves the body so its bottom edge is at y.
func (b *Body) SetBottom(y int) { b.Y = float64(y - b.H) }
