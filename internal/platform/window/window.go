// Package window runs Hop.It in a desktop window with ebiten. Keyboard, mouse
// and touch are supported; the on-screen buttons are real hold controls here.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/storage"
)

// RunRecorder stores a finished run.
type RunRecorder interface {
	SaveRun(height int, newBest bool) (storage.Run, error)
}

var (
	colorSky      = color.RGBA{R: 0x12, G: 0x16, B: 0x2b, A: 0xff}
	colorStar     = color.RGBA{R: 0x3a, G: 0x44, B: 0x7a, A: 0xff}
	colorStatic   = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	colorMoving   = color.RGBA{R: 0x26, G: 0xc6, B: 0xda, A: 0xff}
	colorPickup   = color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
	colorHero     = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorPowered  = color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	colorButton   = color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xa0}
	colorPressed  = color.RGBA{R: 0x26, G: 0xc6, B: 0xda, A: 0xc0}
	colorToggleOn = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xc0}
	colorPanel    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0}
)

const starSpacing = 75

// Window adapts a hopit.Game to ebiten.Game.
type Window struct {
	game     *hopit.Game
	world    config.WorldConfig
	controls hopit.Controls
	runs     RunRecorder
	logger   *log.Logger
	touches  []ebiten.TouchID
}

// New creates a window frontend for game. runs may be nil.
func New(game *hopit.Game, runs RunRecorder, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	world := game.Config().World
	return &Window{
		game:     game,
		world:    world,
		controls: hopit.ControlsFor(world),
		runs:     runs,
		logger:   logger,
	}
}

// Update polls devices and advances the game by one tick.
func (w *Window) Update() error {
	poll := w.poll()
	if ebiten.IsWindowBeingClosed() {
		poll.Quit = true
	}

	result := w.game.Step(Frame(poll, w.controls))
	for _, e := range w.game.Events() {
		w.handleEvent(e)
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// poll samples keyboard, mouse and touch state. The logical screen equals the
// world, so device coordinates are already world units.
func (w *Window) poll() Poll {
	p := Poll{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Start: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Retry: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR),
		Menu:  inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Music: inpututil.IsKeyJustPressed(ebiten.KeyT),
		Sound: inpututil.IsKeyJustPressed(ebiten.KeyX),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.Held = append(p.Held, Point{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.Pressed = append(p.Pressed, Point{X: float64(x), Y: float64(y)})
	}

	w.touches = ebiten.AppendTouchIDs(w.touches[:0])
	for _, id := range w.touches {
		x, y := ebiten.TouchPosition(id)
		p.Held = append(p.Held, Point{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.Pressed = append(p.Pressed, Point{X: float64(x), Y: float64(y)})
	}
	return p
}

func (w *Window) handleEvent(e hopit.Event) {
	if e != hopit.EventRunEnded {
		return
	}
	height := w.game.Session().Score.Height
	w.logger.Info("run ended", "height", height, "new_best", w.game.NewHighScore())
	if w.runs == nil {
		return
	}
	if _, err := w.runs.SaveRun(height, w.game.NewHighScore()); err != nil {
		w.logger.Warn("cannot record run", "error", err)
	}
}

// Draw renders the current game state.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	w.drawStars(screen)

	switch w.game.Phase() {
	case hopit.PhaseHome:
		w.drawPanel(screen, []string{
			"H O P . I T",
			"",
			fmt.Sprintf("Best height: %d", w.game.State().Best),
			"",
			"Press SPACE to start",
		})
	case hopit.PhasePlaying:
		w.drawField(screen)
		if w.game.ShowInstructions() {
			ebitenutil.DebugPrintAt(screen, "Use LEFT/RIGHT ARROW KEYS", int(w.world.Width)/2-75, int(w.world.Height)/2)
		}
	case hopit.PhaseGameOver:
		w.drawField(screen)
		lines := []string{"Game Over!", "", fmt.Sprintf("Height: %d", w.game.State().Score)}
		if w.game.NewHighScore() {
			lines = append(lines, "NEW BEST!")
		}
		w.drawPanel(screen, append(lines, "", "SPACE/R retry   M menu"))
	}

	state := w.game.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HEIGHT %d", state.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST:%d", state.Best), int(w.world.Width)-80, 10)
	w.drawControls(screen)
}

func (w *Window) drawStars(screen *ebiten.Image) {
	offset := int(w.game.Session().BackgroundOffset)
	period := int(w.world.Height) + starSpacing
	for wy := -starSpacing; wy < int(w.world.Height)+starSpacing; wy += starSpacing {
		y := (wy + offset) % period
		for x := (wy / starSpacing * 37) % 50; x < int(w.world.Width); x += 61 {
			if x >= 0 {
				vector.DrawFilledRect(screen, float32(x), float32(y), 2, 2, colorStar, false)
			}
		}
	}
}

func (w *Window) drawField(screen *ebiten.Image) {
	s := w.game.Session()
	for _, p := range s.Platforms {
		c := colorStatic
		if p.Moving {
			c = colorMoving
		}
		fillRect(screen, p.Box, c)
	}

	if s.Pickup != nil {
		b := s.Pickup.Box
		vector.DrawFilledCircle(screen, float32(b.CenterX()), float32(b.CenterY()), float32(b.W/2), colorPickup, true)
	}

	hero := s.Hero
	c := colorHero
	if hero.HasPower {
		c = colorPowered
	}
	fillRect(screen, hero.Box, c)
	// Eye marks the facing direction.
	eyeX := hero.Box.Right() - 7
	if hero.FacingLeft {
		eyeX = hero.Box.Left() + 3
	}
	vector.DrawFilledRect(screen, float32(eyeX), float32(hero.Box.Top()+8), 4, 4, colorSky, false)
}

func (w *Window) drawControls(screen *ebiten.Image) {
	left, right := w.game.ButtonHolds()
	w.drawButton(screen, w.controls.Left, "<", left > 0)
	w.drawButton(screen, w.controls.Right, ">", right > 0)
	w.drawToggle(screen, w.controls.Music, "M", w.game.AmbienceEnabled())
	w.drawToggle(screen, w.controls.Sound, "S", w.game.EffectsEnabled())
}

func (w *Window) drawButton(screen *ebiten.Image, r core.RectF, label string, pressed bool) {
	c := colorButton
	if pressed {
		c = colorPressed
	}
	fillRect(screen, r, c)
	ebitenutil.DebugPrintAt(screen, label, int(r.CenterX())-3, int(r.CenterY())-8)
}

func (w *Window) drawToggle(screen *ebiten.Image, r core.RectF, label string, enabled bool) {
	c := colorButton
	if hopit.ToggleVariant(enabled) == hopit.VariantOn {
		c = colorToggleOn
	}
	fillRect(screen, r, c)
	if hopit.ToggleVariant(enabled) == hopit.VariantOff {
		vector.StrokeLine(screen, float32(r.Left()), float32(r.Bottom()), float32(r.Right()), float32(r.Top()), 2, colorSky, true)
	}
	ebitenutil.DebugPrintAt(screen, label, int(r.CenterX())-3, int(r.CenterY())-8)
}

func (w *Window) drawPanel(screen *ebiten.Image, lines []string) {
	const lineH = 18
	h := float32(len(lines)*lineH + 20)
	top := float32(w.world.Height)/2 - h/2
	vector.DrawFilledRect(screen, 40, top, float32(w.world.Width)-80, h, colorPanel, false)
	for i, line := range lines {
		x := int(w.world.Width)/2 - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, int(top)+10+i*lineH)
	}
}

func fillRect(screen *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Layout fixes the logical screen to the world size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.world.Width), int(w.world.Height)
}

// Run opens the window and blocks until the game quits.
func Run(game *hopit.Game, runs RunRecorder, tps int, logger *log.Logger) error {
	win := New(game, runs, logger)

	ebiten.SetWindowSize(int(win.world.Width), int(win.world.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
