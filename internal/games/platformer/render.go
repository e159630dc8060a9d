package platformer

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levelgen"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Visual elements
const (
	GroundChar   = '▀'
	PlatformChar = '▬'
	IceChar      = '░'
	WallChar     = '█'
	HillChar     = '▒'
	CloudChar    = '~'
	PoleChar     = '│'
	FlagChar     = '▶'
	HazardChar   = 'W'
	PickupChar   = '↑'
	ParticleChar = '·'
	ChickenBody  = '▓'
	ChickenHead  = '●'
	ChickenBeak  = '>'
)

// viewport maps world coordinates of the visible window to screen cells.
// Row 0 is the HUD, the world occupies the rows below it.
type viewport struct {
	cameraX float64
	sx, sy  float64 // World units per cell
	top     int
	w, h    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := core.Max(1, dst.Height()-1)
	return viewport{
		cameraX: g.cameraX,
		sx:      float64(g.cfg.World.ViewWidth) / float64(core.Max(1, dst.Width())),
		sy:      float64(g.cfg.World.ViewHeight) / float64(rows),
		top:     1,
		w:       dst.Width(),
		h:       dst.Height(),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.cameraX) / v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y/v.sy))
}

// cells converts a world rectangle to a screen rectangle at least one cell in size.
func (v viewport) cells(r core.Rect) core.Rect {
	x0, y0 := v.col(float64(r.X)), v.row(float64(r.Y))
	x1 := int(math.Ceil((float64(r.Right()) - v.cameraX) / v.sx))
	y1 := v.top + int(math.Ceil(float64(r.Bottom())/v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// fillRect draws r clipped to the world area.
func (v viewport) fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	cr := v.cells(r)
	for y := core.Max(cr.Y, v.top); y < core.Min(cr.Bottom(), v.h); y++ {
		for x := core.Max(cr.X, 0); x < core.Min(cr.Right(), v.w); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// Render draws the current frame to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil {
		return
	}
	v := g.viewport(dst)

	g.drawBackdrop(dst, v)
	g.drawLevel(dst, v)
	g.drawChicken(dst, v)
	for _, p := range g.particles.Items() {
		dst.SetColored(v.col(p.X), v.row(p.Y), ParticleChar, core.ColorWhite)
	}
	g.drawHUD(dst)

	switch g.mode {
	case ModeMenu:
		g.drawMenu(dst)
	case ModePaused:
		drawCenteredMessage(dst, "PAUSED", "P resume  |  R restart  |  B menu")
	case ModeWinMenu:
		g.drawWin(dst)
	}
}

func (g *Game) drawBackdrop(dst *core.Screen, v viewport) {
	groundY := float64(g.cfg.World.GroundY)
	for x := 0; x < v.w; x++ {
		h := g.backdrop.HillHeight(float64(x)*v.sx, g.cameraX)
		for y := v.row(groundY - float64(h)); y < v.row(groundY); y++ {
			if y >= v.top {
				dst.SetColored(x, y, HillChar, core.ColorGreen)
			}
		}
	}
	for _, c := range g.backdrop.Clouds(g.cameraX, g.cfg.World.ViewWidth) {
		r := core.NewRect(c[0]+int(g.cameraX), c[1], cloudW, cloudH)
		v.fillRect(dst, r, CloudChar, core.ColorBrightWhite)
	}
}

func (g *Game) drawLevel(dst *core.Screen, v viewport) {
	groundH := g.cfg.World.GroundHeight
	for _, p := range g.level.Platforms.All() {
		ch, color := PlatformChar, core.ColorPlatform
		switch {
		case p.Permanent && p.H == groundH:
			ch, color = GroundChar, core.ColorGround
		case p.Surface == physics.SurfaceSlippery:
			ch, color = IceChar, core.ColorIce
		case p.H > p.W:
			ch, color = WallChar, core.ColorWall
		case p.Moving():
			color = core.ColorMoving
		}
		v.fillRect(dst, p.Box(), ch, color)
	}

	for _, cp := range g.level.Checkpoints {
		color := core.ColorGray
		if cp.Activated {
			color = core.ColorCheckpoint
		}
		v.fillRect(dst, cp.Box, PoleChar, color)
	}
	for _, pk := range g.level.Pickups {
		if !pk.Used {
			v.fillRect(dst, pk.Box, PickupChar, core.ColorPickup)
		}
	}
	for _, h := range g.level.Hazards {
		v.fillRect(dst, h.Box(), HazardChar, core.ColorHazard)
	}

	goal := g.level.Goal
	v.fillRect(dst, core.NewRect(goal.X, goal.Y, 4, goal.H), PoleChar, core.ColorWhite)
	v.fillRect(dst, core.NewRect(goal.X+4, goal.Y, goal.W-4, goal.H/3), FlagChar, core.ColorFlag)
}

func (g *Game) drawChicken(dst *core.Screen, v viewport) {
	p := g.player
	color := core.ColorChicken
	if p.DeveloperMode {
		color = core.ColorDeveloper
	}
	v.fillRect(dst, p.Box(), ChickenBody, color)

	cr := v.cells(p.Box())
	headX, beakX := cr.Right()-1, cr.Right()
	if !p.FacingRight {
		headX, beakX = cr.X, cr.X-1
	}
	if cr.Y >= v.top {
		dst.SetColored(headX, cr.Y, ChickenHead, core.ColorWhite)
		dst.SetColored(beakX, cr.Y, ChickenBeak, core.ColorOrange)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" L%d %s  Time %s  Best %s  X %d ",
		g.levelIndex+1, g.level.Name, formatDuration(g.elapsed), g.bestText(g.levelIndex+1), g.player.CenterX())
	dst.DrawText(0, 0, hud)

	keys := " R restart  P pause  B menu "
	if g.player.DeveloperMode {
		keys = " DEV " + keys
	}
	dst.DrawText(dst.Width()-len([]rune(keys)), 0, keys)

	if g.banner > 0 && g.mode == ModePlaying {
		dst.DrawTextCentered(dst.Height()/4, fmt.Sprintf(" Level %d: %s ", g.levelIndex+1, g.level.Name))
	}
}

func (g *Game) bestText(level int) string {
	if best, ok := g.records.Best(level); ok {
		return formatDuration(best)
	}
	return "-"
}

func (g *Game) drawMenu(dst *core.Screen) {
	lines := []string{"CHICKEN RUN", ""}
	for i := range g.cfg.Levels.Count {
		marker := "  "
		if i == g.menuIndex {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %-14s best %s", marker, i+1, levelgen.LevelName(i), g.bestText(i+1)))
	}
	lines = append(lines, "", "Left/Right select  |  Enter start  |  Q quit")
	drawPanel(dst, lines)
}

func (g *Game) drawWin(dst *core.Screen) {
	lines := []string{"ALL LEVELS COMPLETE!", ""}
	if g.lastRun != nil {
		lines = append(lines, fmt.Sprintf("Last level: %s", formatDuration(g.lastRun.Elapsed)))
	}
	for i := range g.cfg.Levels.Count {
		lines = append(lines, fmt.Sprintf("%d. %-14s %s", i+1, levelgen.LevelName(i), g.bestText(i+1)))
	}
	lines = append(lines, "", "Enter play again  |  B menu")
	drawPanel(dst, lines)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	drawPanel(dst, []string{title, "", subtitle})
}

// drawPanel draws a boxed block of centered lines.
func drawPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := core.Min(width+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}

// formatDuration renders a run time as m:ss.t
func formatDuration(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
