package game

import (
	"fmt"
	"math"

	"github.com/nbyadav/barrage/internal/core"
	"github.com/nbyadav/barrage/internal/match"
)

// Visual characters for rendering
const (
	terrainChar = '█'
	trailChar   = '·'
	shellChar   = '●'
	barrelChar  = '▪'
)

// Render draws the current game state to the screen. The HUD occupies
// the top rows; the playfield maps elevation 0 to the bottom row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawTerrain(dst)
	g.drawTank(dst, g.m.Tank(1), core.ColorBrightBlue)
	g.drawTank(dst, g.m.Tank(2), core.ColorOrange)
	g.drawShell(dst)
	g.drawHUD(dst)

	if g.m.Phase() == match.PhaseMatchOver {
		g.drawMatchOver(dst)
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// screenY converts a field elevation to a screen row.
func (g *Game) screenY(elev float64) int {
	fieldH := g.m.Terrain().FieldHeight()
	return hudRows + fieldH - 1 - int(math.Floor(elev))
}

func (g *Game) drawTerrain(dst *core.Screen) {
	terr := g.m.Terrain()
	bottom := hudRows + terr.FieldHeight() - 1

	for x, h := range terr.Heights() {
		cols := int(math.Floor(h))
		if cols <= 0 {
			continue
		}
		top := bottom - cols + 1
		dst.DrawVLineColored(x, top, cols, terrainChar, core.ColorGreen)
	}
}

func (g *Game) drawTank(dst *core.Screen, t *match.Tank, color core.Color) {
	if !t.Alive {
		return
	}

	bw := g.tuning.Tanks.BodyWidth
	bh := g.tuning.Tanks.BodyHeight
	left := t.Column - bw/2
	topY := g.screenY(t.Elevation+float64(bh)-1)

	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			dst.SetCell(left+dx, topY+dy, terrainChar, color)
		}
	}

	// Barrel from the turret toward the aim direction.
	rad := t.Angle * math.Pi / 180
	for i := 1.0; i <= g.tuning.Tanks.BarrelLength; i++ {
		bx := float64(t.Column) + math.Cos(rad)*i*float64(t.Facing)
		by := t.Elevation + float64(bh) + math.Sin(rad)*i
		dst.SetCell(int(math.Round(bx)), g.screenY(by), barrelChar, color)
	}
}

func (g *Game) drawShell(dst *core.Screen) {
	trail := g.m.Trail()
	for _, p := range trail {
		dst.SetCell(int(math.Round(p.X)), g.screenY(p.Y), trailChar, core.ColorGray)
	}
	if pos, ok := g.m.ShellPos(); ok {
		dst.SetCell(int(math.Round(pos.X)), g.screenY(pos.Y), shellChar, core.ColorBrightWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	t1 := g.m.Tank(1)
	t2 := g.m.Tank(2)

	windArrow := "·"
	if g.m.Wind() > 0.0005 {
		windArrow = "→"
	} else if g.m.Wind() < -0.0005 {
		windArrow = "←"
	}

	dst.DrawText(1, 0, fmt.Sprintf("Barrage   Wind: %+.3f %s   Turn %d", g.m.Wind(), windArrow, g.m.Turn()+1))

	dst.DrawTextColored(1, 1,
		fmt.Sprintf("P1  Angle %4.1f  Power %4.2f  HP %3d", t1.Angle, t1.Power, t1.Health),
		core.ColorBrightBlue)

	p2Label := "P2"
	if g.aiEnabled {
		p2Label = "P2(AI)"
	}
	dst.DrawTextColored(1, 2,
		fmt.Sprintf("%-6s Angle %4.1f  Power %4.2f  HP %3d", p2Label, t2.Angle, t2.Power, t2.Health),
		core.ColorOrange)

	active := fmt.Sprintf("P%d to fire", g.m.ActivePlayer())
	if g.m.Phase() == match.PhaseFiring {
		active = "shell away!"
	}
	dst.DrawText(1, 3,
		fmt.Sprintf("Score %d:%d   %s   ←→ angle ↑↓ power Space fire N new R regen T ai",
			t1.Score, t2.Score, active))
}

func (g *Game) drawMatchOver(dst *core.Screen) {
	title := "DRAW"
	if w := g.m.Winner(); w != 0 {
		title = fmt.Sprintf("PLAYER %d WINS", w)
	}
	g.drawCenteredMessage(dst, title, "N = new match  |  Q = quit")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
