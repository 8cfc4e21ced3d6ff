package hopit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hopit/internal/core"
)

const (
	leftLabel   = "[ ◀ ]"
	rightLabel  = "[ ▶ ]"
	toggleWidth = 6

	instructionText = "Use LEFT/RIGHT ARROW KEYS"
	starSpacing     = 75 // World units between background star rows
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	l := NewLayout(g.cfg.World, dst.Width(), dst.Height())

	g.drawBackground(dst, l)
	switch g.phase {
	case PhaseHome:
		g.drawHome(dst)
	case PhasePlaying:
		g.drawField(dst, l)
		if g.ShowInstructions() {
			g.drawBanner(dst, dst.Height()/2, instructionText)
		}
	case PhaseGameOver:
		g.drawField(dst, l)
		g.drawGameOver(dst)
	}
	g.drawHUD(dst)
	g.drawControls(dst, l)
}

// drawBackground scatters stars that scroll with the background offset.
func (g *Game) drawBackground(dst *core.Screen, l Layout) {
	offset := g.session.BackgroundOffset
	for wy := -starSpacing; wy < int(g.cfg.World.Height)+starSpacing; wy += starSpacing {
		y := math.Mod(float64(wy)+offset, g.cfg.World.Height+starSpacing)
		_, row := l.ToCell(0, y)
		for col := (wy / starSpacing * 7) % 11; col < l.W; col += 13 {
			if col >= 0 && row >= l.FieldTop && row < l.FieldTop+l.FieldH {
				dst.SetColored(col, row, '·', core.ColorNavy)
			}
		}
	}
}

// drawField draws platforms, the pickup and the hero.
func (g *Game) drawField(dst *core.Screen, l Layout) {
	s := &g.session

	for _, p := range s.Platforms {
		r := l.CellRect(p.Box)
		color := core.ColorGreen
		if p.Moving {
			color = core.ColorCyan
		}
		dst.DrawHLine(r.X, r.Y, r.W, '▀', color)
	}

	if s.Pickup != nil {
		cx, cy := l.ToCell(s.Pickup.Box.CenterX(), s.Pickup.Box.CenterY())
		dst.SetColored(cx, cy, '✦', core.ColorBrightYellow)
	}

	g.drawHero(dst, l)
}

// heroSprite returns the head and feet rows for a pose.
func heroSprite(pose AnimationPhase, facingLeft bool) (string, string) {
	var head, feet string
	switch pose {
	case AscendB:
		head, feet = `\o/`, `/ \`
	case DescendA:
		head, feet = ` o `, `/|\`
	case DescendB:
		head, feet = ` o `, `<|>`
	case Powered:
		head, feet = `*o*`, `^^^`
	default:
		head, feet = `\o/`, ` | `
	}
	if facingLeft && pose != Powered {
		head = "(" + head[1:]
	} else if pose != Powered {
		head = head[:2] + ")"
	}
	return head, feet
}

func (g *Game) drawHero(dst *core.Screen, l Layout) {
	h := g.session.Hero
	cx, top := l.ToCell(h.Box.CenterX(), h.Box.Top())
	_, bottom := l.ToCell(h.Box.CenterX(), h.Box.Bottom())

	color := core.ColorBrightWhite
	if h.HasPower {
		color = core.ColorOrange
	}

	head, feet := heroSprite(h.Pose, h.FacingLeft)
	dst.DrawTextColored(cx-1, top, head, color)
	if bottom > top {
		dst.DrawTextColored(cx-1, bottom, feet, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()
	dst.DrawHLine(0, 0, w, ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("HEIGHT %d", g.session.Score.Height), core.ColorBrightWhite)

	best := fmt.Sprintf("BEST:%d", g.session.Score.Best)
	dst.DrawTextColored(w-len(best)-1, 0, best, core.ColorBrightYellow)
}

func (g *Game) drawControls(dst *core.Screen, l Layout) {
	left, right := g.normalizer.Holds()

	dst.DrawTextColored(l.LeftButton().X, l.LeftButton().Y, leftLabel, buttonColor(left))
	dst.DrawTextColored(l.RightButton().X, l.RightButton().Y, rightLabel, buttonColor(right))

	music := l.MusicButton()
	dst.DrawTextColored(music.X, music.Y, toggleLabel('♪', g.ambienceOn), toggleColor(g.ambienceOn))
	sound := l.SoundButton()
	dst.DrawTextColored(sound.X, sound.Y, toggleLabel('♫', g.effectsOn), toggleColor(g.effectsOn))
}

func buttonColor(hold int) core.Color {
	if hold > 0 {
		return core.ColorBrightCyan
	}
	return core.ColorGray
}

func toggleLabel(icon rune, enabled bool) string {
	if ToggleVariant(enabled) == VariantOn {
		return fmt.Sprintf("%c on  ", icon)
	}
	return fmt.Sprintf("%c off ", icon)
}

func toggleColor(enabled bool) core.Color {
	if ToggleVariant(enabled) == VariantOn {
		return core.ColorWhite
	}
	return core.ColorGray
}

func (g *Game) drawHome(dst *core.Screen) {
	mid := dst.Height() / 2
	g.drawPanel(dst, mid-3, []string{
		"H O P . I T",
		"",
		"Bounce up the platforms. Don't fall.",
		fmt.Sprintf("Best height: %d", g.session.Score.Best),
		"",
		"Press SPACE to start",
	}, core.ColorBrightGreen)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"Game Over!",
		"",
		fmt.Sprintf("Height: %d", g.session.Score.Height),
	}
	if g.session.NewHighScore {
		lines = append(lines, "NEW BEST!")
	}
	lines = append(lines, "", "SPACE/R retry  ·  M menu")
	g.drawPanel(dst, dst.Height()/2-3, lines, core.ColorRed)
}

// drawPanel draws a boxed block of centred lines. The first line uses accent.
func (g *Game) drawPanel(dst *core.Screen, top int, lines []string, accent core.Color) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, top-1, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = accent
		}
		dst.DrawTextCentered(top+i, line, color)
	}
}

// drawBanner draws a single line on a cleared strip.
func (g *Game) drawBanner(dst *core.Screen, y int, text string) {
	n := len([]rune(text)) + 4
	dst.DrawHLine((dst.Width()-n)/2, y, n, ' ', core.ColorDefault)
	dst.DrawTextCentered(y, text, core.ColorBrightWhite)
}
