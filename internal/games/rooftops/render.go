package rooftops

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rooftops/internal/core"
)

// Visual characters
const (
	GroundChar   = '^'
	RoofChar     = '▀'
	WallChar     = '█'
	WindowChar   = '▪'
	BladeChar    = '†'
	CreatureChar = 'S'
	PlayerHead   = 'O'
	PlayerBody   = '█'
	PlayerLegs   = '╨'
	ChargeFull   = '■'
	ChargeEmpty  = '·'
)

// windowSpacing is the world distance between window columns on a building.
const windowSpacing = 90

// viewport maps world units onto screen cells.
type viewport struct {
	camX   float64
	sx, sy float64
	w, h   int
}

func (g *Game) viewport(dst *core.Screen, cam Camera) viewport {
	return viewport{
		camX: cam.X,
		sx:   float64(dst.Width()) / g.cfg.Viewport.Width,
		sy:   float64(dst.Height()) / g.cfg.Viewport.Height,
		w:    dst.Width(),
		h:    dst.Height(),
	}
}

// col returns the screen column of world x.
func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.camX) * v.sx))
}

// row returns the screen row of world y.
func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// cells converts a world rect to a cell rect at least one cell in each direction.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(r.X), v.row(r.Y)
	x1 = max(int(math.Ceil((r.Right()-v.camX)*v.sx)), x0+1)
	y1 = max(int(math.Ceil(r.Bottom()*v.sy)), y0+1)
	return x0, y0, x1, y1
}

// fill draws a clipped cell rect.
func (v viewport) fill(dst *core.Screen, x0, y0, x1, y1 int, ch rune, c core.Color) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.w), min(y1, v.h)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	dst.DrawRect(x0, y0, x1-x0, y1-y0, ch, c)
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	v := g.viewport(dst, snap.Camera)

	g.drawGround(dst, v, snap.FloorY)
	for _, p := range snap.Platforms {
		g.drawPlatform(dst, v, p)
	}
	for _, h := range snap.Hazards {
		g.drawHazard(dst, v, h)
	}
	g.drawPlayer(dst, v, snap.Player)
	g.drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if !snap.Alive {
		drawCenteredMessage(dst, "You Died", fmt.Sprintf("%d m  |  Press R to restart", snap.Distance))
	}
}

// drawGround fills everything below the floor line with the deadly ground strip.
func (g *Game) drawGround(dst *core.Screen, v viewport, floorY float64) {
	v.fill(dst, 0, v.row(floorY), v.w, v.h, GroundChar, core.ColorGreen)
}

// drawPlatform renders a building: roof line, body and a column of windows.
func (g *Game) drawPlatform(dst *core.Screen, v viewport, p Platform) {
	x0, y0, x1, y1 := v.cells(p.Rect())
	if x1 < 0 || x0 >= v.w {
		return
	}

	v.fill(dst, x0, y0+1, x1, y1, WallChar, core.ColorGray)
	roofX0, roofX1 := max(x0, 0), min(x1, v.w)
	dst.DrawHLine(roofX0, y0, roofX1-roofX0, RoofChar, core.ColorBrightWhite)

	// Windows are anchored to the building.
	for wx := p.X + windowSpacing/2; wx < p.Right()-windowSpacing/4; wx += windowSpacing {
		c := v.col(wx)
		for r := y0 + 2; r < y1; r += 3 {
			if c >= 0 && c < v.w && r < v.h {
				dst.SetColored(c, r, WindowChar, core.ColorYellow)
			}
		}
	}
}

// drawHazard renders a blade or creature.
func (g *Game) drawHazard(dst *core.Screen, v viewport, h Hazard) {
	x0, y0, x1, y1 := v.cells(h.Rect())
	ch, color := BladeChar, core.ColorBrightRed
	if h.Kind == HazardCreature {
		ch, color = CreatureChar, core.ColorMagenta
	}
	v.fill(dst, x0, y0, x1, y1, ch, color)
}

// drawPlayer renders the runner and, while charging on a roof, the charge meter under it.
func (g *Game) drawPlayer(dst *core.Screen, v viewport, p Player) {
	x0, y0, x1, y1 := v.cells(p.Rect())
	color := core.ColorBrightCyan
	if !p.Alive {
		color = core.ColorRed
	}

	v.fill(dst, x0, y0, x1, y1, PlayerBody, color)
	mid := (x0 + x1 - 1) / 2
	dst.SetColored(mid, y0, PlayerHead, color)
	if y1-y0 > 1 {
		v.fill(dst, x0, y1-1, x1, y1, PlayerLegs, color)
	}

	if p.Charging && p.Grounded {
		drawChargeMeter(dst, x0, y1, max(x1-x0, 4), p.JumpHold)
	}
}

// drawChargeMeter draws a horizontal bar filled in proportion to charge.
func drawChargeMeter(dst *core.Screen, x, y, width int, charge float64) {
	filled := int(math.Round(charge * float64(width)))
	for i := range width {
		ch, c := ChargeEmpty, core.ColorGray
		if i < filled {
			ch, c = ChargeFull, core.ColorBrightYellow
		}
		dst.SetColored(x+i, y, ch, c)
	}
}

// drawHUD renders the distance counter and the run clock.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" %d m ", snap.Distance), core.ColorBrightWhite)

	clock := fmt.Sprintf(" %s ", formatElapsed(snap.Elapsed.Seconds()))
	dst.DrawTextColored(dst.Width()-len(clock)-2, 0, clock, core.ColorGray)
}

// formatElapsed renders seconds as m:ss.
func formatElapsed(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
