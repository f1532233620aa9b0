package nightwalk

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/games/nightwalk/sim"
)

// Visual characters for rendering
const (
	PathChar   = '·'
	HedgeChar  = '♣'
	LightChar  = '☼'
	GrassChar  = '"'
	BenchChar  = '▬'
	AvatarChar = '@'
	AgentChar  = '☻'
	HouseChar  = '▓'
	RuinChar   = '░'
	ShopChar   = '▒'
)

const (
	hudWidth   = 26 // Side panel columns
	meterWidth = 10 // Meter bar cells
)

// layout maps world units to screen cells.
type layout struct {
	cellW, cellH int // Screen cells per tile
	laneX, laneY int // Top-left of the lane on screen
	laneW, laneH int
	tile         float64
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	t := g.cfg.Terrain
	l := layout{tile: t.TileSize}
	l.cellH = core.Clamp((dst.Height()-1)/t.ViewRows, 1, 2)
	l.cellW = l.cellH * 2
	if (dst.Width()-hudWidth)/t.Width < l.cellW {
		l.cellW, l.cellH = 2, 1
	}
	l.laneW = t.Width * l.cellW
	l.laneH = t.ViewRows * l.cellH
	l.laneX = 1
	l.laneY = 1
	ok := l.laneX+l.laneW+hudWidth <= dst.Width() && l.laneY+l.laneH < dst.Height()
	return l, ok
}

// toScreen converts a world point to a screen cell.
func (l layout) toScreen(x, y float64) (int, int) {
	sx := l.laneX + int(math.Floor(x/l.tile*float64(l.cellW)))
	sy := l.laneY + int(math.Floor(y/l.tile*float64(l.cellH)))
	return sx, sy
}

func (l layout) inLane(x, y int) bool {
	return x >= l.laneX && x < l.laneX+l.laneW && y >= l.laneY && y < l.laneY+l.laneH
}

// Render draws the lane, its entities and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.kernel == nil {
		return
	}
	l, ok := g.layout(dst)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	snap := g.kernel.Snapshot()
	g.drawTerrain(dst, l, snap)
	g.drawEntities(dst, l, snap)
	g.drawAvatar(dst, l, snap)
	dst.DrawBox(core.NewRect(l.laneX-1, l.laneY-1, l.laneW+2, l.laneH+2))
	g.drawHUD(dst, l.laneX+l.laneW+2, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == sim.PhaseGameOver {
		title := "GAME OVER"
		if snap.Outcome == sim.OutcomeVictory {
			title = "CAMPUS CLEARED"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func (g *Game) drawTerrain(dst *core.Screen, l layout, snap sim.Snapshot) {
	for _, slot := range snap.Slots {
		row := snap.Rows[slot]
		for col, tile := range row.Tiles {
			ch, color := tileLook(tile, snap.Brightness[slot][col])
			x0, y0 := l.toScreen(float64(col)*l.tile, row.Y)
			for dy := 0; dy < l.cellH; dy++ {
				for dx := 0; dx < l.cellW; dx++ {
					if l.inLane(x0+dx, y0+dy) {
						dst.SetColored(x0+dx, y0+dy, ch, color)
					}
				}
			}
		}
	}
}

// tileLook returns the glyph and shaded color of a tile.
func tileLook(t sim.Tile, b float64) (rune, core.Color) {
	switch t {
	case sim.TileHedge:
		return HedgeChar, core.ShadeRamp(b, core.ColorDarkGreen, core.ColorGreen, core.ColorBrightGreen)
	case sim.TileLight:
		return LightChar, core.ColorAmber
	case sim.TileGrass:
		return GrassChar, core.ShadeRamp(b, core.ColorDarkGreen, core.ColorGreen, core.ColorBrightGreen)
	case sim.TileBench:
		return BenchChar, core.ShadeRamp(b, core.ColorDarkGray, core.ColorOrange, core.ColorBrightYellow)
	default:
		return PathChar, core.ShadeRamp(b, core.ColorDarkGray, core.ColorGray, core.ColorWhite)
	}
}

func (g *Game) drawEntities(dst *core.Screen, l layout, snap sim.Snapshot) {
	for _, e := range snap.Entities {
		ch, color := entityLook(e)
		x0, y0 := l.toScreen(e.X, e.Y)
		x1, y1 := l.toScreen(e.X+e.W, e.Y+e.H)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if l.inLane(x, y) {
					dst.SetColored(x, y, ch, color)
				}
			}
		}

		// Label structures with their name, clipped to the box
		if e.Class != sim.ClassHazardStructure && e.Class != sim.ClassBenefitStructure {
			continue
		}
		label := []rune(initials(e.Kind))
		ly := (y0 + y1) / 2
		for i, r := range label {
			if x := x0 + 1 + i; x < x1-1 && l.inLane(x, ly) {
				dst.SetColored(x, ly, r, core.ColorBrightWhite)
			}
		}
	}
}

func entityLook(e sim.Entity) (rune, core.Color) {
	switch e.Class {
	case sim.ClassHazardStructure:
		if !e.Active {
			return RuinChar, core.ColorGray
		}
		return HouseChar, core.ColorRed
	case sim.ClassHazardAgent:
		return AgentChar, core.ColorBrightRed
	case sim.ClassBenefitStructure:
		return ShopChar, core.ColorCyan
	default:
		return collectibleChar(e.Kind), core.ColorBrightYellow
	}
}

func collectibleChar(kind string) rune {
	switch kind {
	case "coffee":
		return 'c'
	case "vinyl":
		return 'o'
	case "skateboard":
		return '='
	case "zine":
		return 'z'
	default:
		return '*'
	}
}

// initials shortens a name to the first letter of each word.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteRune([]rune(w)[0])
	}
	return b.String()
}

func (g *Game) drawAvatar(dst *core.Screen, l layout, snap sim.Snapshot) {
	color := core.ColorBrightWhite
	switch snap.Phase {
	case sim.PhaseEmpowered:
		color = core.ColorBrightCyan
	case sim.PhaseTransformed:
		color = core.ColorBrightMagenta
	case sim.PhaseGameOver:
		color = core.ColorGray
	}
	x, y := l.toScreen(snap.Avatar.X, snap.Avatar.Y)
	if l.inLane(x, y) {
		dst.SetColored(x, y, AvatarChar, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, x int, snap sim.Snapshot) {
	y := 1
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(g.Title(), core.ColorBrightWhite)
	if snap.Catalog != "" && g.variant != config.VariantPark {
		line(snap.Catalog, core.ColorGray)
	}
	y++
	line(fmt.Sprintf("Score    %d", snap.Score), core.ColorBrightYellow)
	line(fmt.Sprintf("Time     %s", formatMs(snap.ElapsedMs)), core.ColorWhite)
	line(fmt.Sprintf("State    %s", phaseLabel(snap.Phase)), phaseColor(snap.Phase))
	y++

	if g.variant != config.VariantPark {
		line("Hazard   "+bar(snap.Meters.Hazard, snap.Meters.Max), core.ColorRed)
		line("Benefit  "+bar(snap.Meters.Benefit, snap.Meters.Max), core.ColorCyan)
		if snap.Phase == sim.PhaseTransformed {
			line("Recovery "+bar(snap.Meters.Recovery, snap.Meters.Max), core.ColorMagenta)
		}
		if snap.Phase == sim.PhaseEmpowered {
			line(fmt.Sprintf("Power    %.1fs", snap.EmpowerLeftMs/1000), core.ColorBrightCyan)
		}
		line(fmt.Sprintf("Changes  %d/%d", snap.Transformations, g.cfg.States.MaxTransformations), core.ColorMagenta)
		line(fmt.Sprintf("Cleared  %d/%d", len(snap.Disabled), g.kernel.Catalog().Len()), core.ColorGreen)
		y++
	}
	if snap.Blocked {
		line("BLOCKED", core.ColorOrange)
	}

	y = dst.Height() - 2
	line("←/→ lane  ↑/↓ step", core.ColorGray)
	line("P pause  Q quit", core.ColorGray)
}

func bar(v, max float64) string {
	if max <= 0 {
		return ""
	}
	n := core.Clamp(int(math.Round(v/max*meterWidth)), 0, meterWidth)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", meterWidth-n) + "]"
}

func formatMs(ms float64) string {
	s := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func phaseLabel(p sim.Phase) string {
	switch p {
	case sim.PhaseEmpowered:
		return "Empowered"
	case sim.PhaseTransformed:
		return "Transformed"
	case sim.PhaseGameOver:
		return "Game Over"
	default:
		return "Walking"
	}
}

func phaseColor(p sim.Phase) core.Color {
	switch p {
	case sim.PhaseEmpowered:
		return core.ColorBrightCyan
	case sim.PhaseTransformed:
		return core.ColorBrightMagenta
	case sim.PhaseGameOver:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
