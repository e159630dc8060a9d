package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// Palette roles used by the platformer renderer.
const (
	ColorGround     = ColorGreen
	ColorPlatform   = ColorBrown
	ColorIce        = ColorBrightCyan
	ColorWall       = ColorGray
	ColorMoving     = ColorOrange
	ColorCheckpoint = ColorBrightYellow
	ColorPickup     = ColorBrightMagenta
	ColorHazard     = ColorRed
	ColorFlag       = ColorBrightRed
	ColorChicken    = ColorBrightYellow
	ColorDeveloper  = ColorBrightMagenta
)
