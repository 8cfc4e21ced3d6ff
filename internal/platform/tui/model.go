package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
)

// helpRows is the number of terminal rows the short help line takes.
const helpRows = 1

// Model is the Bubble Tea model running one Hop.It game.
type Model struct {
	game     *hopit.Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	pending  *core.InputFrame // One-shot actions for the next tick
	history  RunHistory
	logger   *log.Logger
	board    *ScoreboardModel
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for game. history may be nil.
func NewModel(game *hopit.Game, history RunHistory, runtime core.RuntimeConfig, logger *log.Logger) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	pending := core.NewInputFrame()

	return Model{
		game:    game,
		screen:  core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-helpRows, 1)),
		runtime: runtime,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		holds:   NewHoldTracker(game.Config().Input.KeyHoldFrames),
		pending: &pending,
		history: history,
		logger:  logger,
		width:   runtime.ScreenW,
		height:  runtime.ScreenH,
	}
}

// Init seeds the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.board != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Scores) && m.game.Phase() != hopit.PhasePlaying:
		board := NewScoreboardModel(m.history, m.width, m.height)
		m.board = &board
		m.holds.Reset()
		return m, nil
	}

	mapped := m.keys.MapKey(msg)
	if mapped.Hold != core.ActionNone {
		m.holds.PressKey(mapped.Hold)
	}
	for _, a := range mapped.OneShot {
		m.pending.Set(a)
	}
	return m, nil
}

// handleMouse turns clicks on the on-screen buttons into holds and toggles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout := hopit.NewLayout(m.game.Config().World, m.screen.Width(), m.screen.Height())
	action := layout.HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch action {
		case core.ActionButtonLeft, core.ActionButtonRight:
			m.holds.PressMouse(action)
		case core.ActionToggleMusic, core.ActionToggleSound:
			m.pending.Set(action)
		}
	case tea.MouseActionMotion:
		// Dragging off a button releases it; dragging onto the other one switches.
		if msg.Button == tea.MouseButtonLeft {
			if action == core.ActionButtonLeft || action == core.ActionButtonRight {
				m.holds.PressMouse(action)
			} else {
				m.holds.ReleaseMouse()
			}
		}
	case tea.MouseActionRelease:
		m.holds.ReleaseMouse()
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in world
// units, so a resize only changes the cell layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width

	if m.board != nil {
		board, _ := m.board.Update(msg)
		m.board = &board
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}
	m.pending.Clear()
	if m.board == nil {
		m.holds.Apply(&frame)
	}

	result := m.game.Step(frame)
	for _, e := range m.game.Events() {
		m.handleEvent(e)
	}

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// handleEvent reacts to game events outside the simulation.
func (m Model) handleEvent(e hopit.Event) {
	switch e {
	case hopit.EventRunStarted:
		m.logger.Debug("run started")
	case hopit.EventBestBeaten:
		m.logger.Debug("best height beaten", "best", m.game.State().Best)
	case hopit.EventRunEnded:
		height := m.game.Session().Score.Height
		m.logger.Info("run ended", "height", height, "new_best", m.game.NewHighScore())
		if m.history == nil {
			return
		}
		if _, err := m.history.SaveRun(height, m.game.NewHighScore()); err != nil {
			m.logger.Warn("cannot record run", "error", err)
		}
	}
}

// updateScoreboard forwards input to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	board, cmd := m.board.Update(msg)
	switch {
	case board.IsQuitting():
		m.board = nil
		m.pending.Set(core.ActionQuit)
	case board.IsGoingBack():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".hopit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 1))
	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *hopit.Game, history RunHistory, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, history, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release on the on-screen buttons
	)

	_, err := p.Run()
	return err
}
