package quantum

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/quantum-jumper/internal/core"
	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// Visual characters for rendering
const (
	PlatformChar       = '█'
	GhostPlatformChar  = '░'
	ShardChar          = '◆'
	HazardChar         = '≈'
	PlayerChar         = '@'
	PlayerAboveChar    = '^'
	TrailChar          = '·'
	energyBarWidth     = 10
	blinkPeriodMS      = 250
	blinkThresholdSecs = 3
)

// dimensionColors follows the order of the dimension table.
var dimensionColors = [sim.DimensionCount]core.Color{
	sim.DimensionNormal:      core.ColorBlue,
	sim.DimensionAntiGravity: core.ColorMagenta,
	sim.DimensionTimeWarp:    core.ColorCyan,
	sim.DimensionForceField:  core.ColorOrange,
}

// DimensionColor returns the display colour of a dimension.
func DimensionColor(id int) core.Color {
	if id < 0 || id >= sim.DimensionCount {
		return core.ColorDefault
	}
	return dimensionColors[id]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	run := g.world.Run
	if run.State == sim.StateMenu {
		g.drawMenu(dst)
		return
	}

	g.drawHUD(dst)
	vp := g.viewport(dst)
	g.drawLevel(dst, vp)
	g.drawPlayer(dst, vp)

	switch {
	case run.Victory:
		drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("%s cleared!  Enter: play again  B: menu", g.mode))
	case run.State == sim.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "P: resume  R: restart  B: menu")
	case run.LevelComplete:
		drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("%d shards collected  N: next level", run.Shards))
	}

	if g.world.Guard.Warning {
		g.drawWarning(dst)
	}
}

// viewport maps the world onto every row below the HUD.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	world := g.env.Tuning.World
	return core.NewViewport(world.W, world.H, core.NewRect(0, 1, dst.Width(), dst.Height()-1))
}

func (g *Game) drawHUD(dst *core.Screen) {
	run := g.world.Run
	dim := g.world.ActiveDimension()

	name := g.world.Level.Name
	if name == "" {
		name = "Level"
	}
	left := fmt.Sprintf(" L%d %s │ %s │ %c %d/%d │ ",
		run.Level, name, g.mode, ShardChar, run.Shards, len(g.world.Level.Collectibles))
	dst.DrawText(0, 0, left)
	x := len([]rune(left))

	bar := energyBar(run.Energy, run.MaxEnergy, energyBarWidth)
	barColor := core.ColorGreen
	if run.Energy*4 <= run.MaxEnergy {
		barColor = core.ColorRed
	}
	dst.DrawTextColor(x, 0, bar, barColor)
	x += len([]rune(bar))

	energy := fmt.Sprintf(" %d │ ", run.Energy)
	dst.DrawText(x, 0, energy)
	x += len([]rune(energy))

	dst.DrawTextColor(x, 0, fmt.Sprintf("%d:%s", dim.ID+1, dim.Name), DimensionColor(dim.ID))
}

// energyBar renders a fixed-width gauge such as "[█████░░░░░]".
func energyBar(energy, maxEnergy, width int) string {
	filled := 0
	if maxEnergy > 0 {
		filled = core.Clamp(energy*width/maxEnergy, 0, width)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (g *Game) drawLevel(dst *core.Screen, vp core.Viewport) {
	lvl := &g.world.Level
	active := g.world.Run.Dimension
	activeColor := DimensionColor(active)

	// Inactive geometry first so active platforms win shared cells.
	for _, p := range lvl.Platforms {
		if !p.ActiveIn(active) {
			drawSpan(dst, vp, p.Rect, GhostPlatformChar, core.ColorDim)
		}
	}
	for _, p := range lvl.Platforms {
		if p.ActiveIn(active) {
			drawSpan(dst, vp, p.Rect, PlatformChar, activeColor)
		}
	}

	for _, h := range lvl.Hazards {
		c := core.ColorDim
		if h.Dimension == active {
			c = core.ColorBrightRed
		}
		drawSpan(dst, vp, h.Rect, HazardChar, c)
	}

	for _, c := range lvl.Collectibles {
		if c.Collected {
			continue
		}
		center := c.Rect.Center()
		if x, y := vp.ToCell(center.X, center.Y); vp.Visible(x, y) {
			dst.SetCell(x, y, ShardChar, core.ColorYellow)
		}
	}
}

// drawSpan fills the cells a world box covers, clipped to the viewport.
func drawSpan(dst *core.Screen, vp core.Viewport, r sim.Rect, ch rune, c core.Color) {
	span := vp.Span(r.X, r.Y, r.W, r.H)
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			if vp.Visible(x, y) {
				dst.SetCell(x, y, ch, c)
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	p := &g.world.Player

	// The newest trail point is the player itself.
	for i := 0; i+1 < len(p.Trail); i++ {
		pt := p.Trail[i]
		if x, y := vp.ToCell(pt.X+p.W/2, pt.Y+p.H/2); vp.Visible(x, y) {
			dst.SetCell(x, y, TrailChar, core.ColorGray)
		}
	}

	center := p.Center()
	x, y := vp.ToCell(center.X, center.Y)
	if vp.Visible(x, y) {
		dst.SetCell(x, y, PlayerChar, core.ColorBrightWhite)
		return
	}
	// Above the world: mark the column at the top edge.
	if y < vp.Area.Y {
		dst.SetCell(core.Clamp(x, vp.Area.X, vp.Area.Right()-1), vp.Area.Y, PlayerAboveChar, core.ColorBrightWhite)
	}
}

// WarningSeconds returns the whole seconds shown on the boundary warning.
func WarningSeconds(remainingMS float64) int {
	return int(math.Ceil(remainingMS / 1000))
}

// drawWarning shows the boundary countdown. It blinks in the last seconds.
func (g *Game) drawWarning(dst *core.Screen) {
	secs := WarningSeconds(g.world.Guard.RemainingMS(g.env.Tuning.BoundaryLimitMS))
	if secs <= blinkThresholdSecs && (g.now().UnixMilli()/blinkPeriodMS)%2 == 1 {
		return
	}
	text := fmt.Sprintf(" ⚠ BOUNDARY: switch dimension! %ds ", secs)
	dst.DrawTextCentered(2, text, core.ColorYellow)
}

func (g *Game) drawMenu(dst *core.Screen) {
	h := dst.Height()
	top := max(1, h/2-6)

	dst.DrawTextCentered(top, "Q U A N T U M   J U M P E R", core.ColorBrightWhite)
	dst.DrawTextCentered(top+2, g.Title(), core.ColorCyan)

	for i, d := range sim.Dimensions() {
		line := fmt.Sprintf("%d  %-12s", d.ID+1, d.Name)
		dst.DrawTextCentered(top+4+i, line, DimensionColor(d.ID))
	}

	dst.DrawTextCentered(top+9, "Enter: start   Q: quit", core.ColorDefault)
	dst.DrawTextCentered(top+10, "←/→ move  ↑/space jump  1-4 dimension  [ ] cycle  tab quick", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
