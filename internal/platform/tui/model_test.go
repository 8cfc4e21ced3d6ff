package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/storage"
)

type fakeHistory struct {
	saved []storage.Run
	err   error
}

func (f *fakeHistory) SaveRun(height int, newBest bool) (storage.Run, error) {
	if f.err != nil {
		return storage.Run{}, f.err
	}
	r := storage.Run{ID: "run", Height: height, NewBest: newBest, CreatedAt: time.Now()}
	f.saved = append(f.saved, r)
	return r, nil
}

func (f *fakeHistory) TopRuns(int) ([]storage.Run, error)    { return f.saved, f.err }
func (f *fakeHistory) RecentRuns(int) ([]storage.Run, error) { return f.saved, f.err }

func newTestModel(t *testing.T, history RunHistory) Model {
	t.Helper()
	game := hopit.New(config.DefaultHopConfig())
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}
	m := NewModel(game, history, runtime, log.New(io.Discard))
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = send(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestModelStartsOnSpace(t *testing.T) {
	m := newTestModel(t, nil)
	if m.game.Phase() != hopit.PhaseHome {
		t.Fatalf("initial phase = %v, want home", m.game.Phase())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m, 1)
	if m.game.Phase() != hopit.PhasePlaying {
		t.Errorf("phase after space = %v, want playing", m.game.Phase())
	}
}

func TestModelKeyHoldMovesHero(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	startX := m.game.Session().Hero.Box.X
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 1)

	hero := m.game.Session().Hero
	if hero.Box.X >= startX {
		t.Errorf("hero x = %f, want less than %f", hero.Box.X, startX)
	}
	if !hero.FacingLeft {
		t.Error("hero should face left")
	}
}

func TestModelMouseHold(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	layout := hopit.NewLayout(m.game.Config().World, m.screen.Width(), m.screen.Height())
	btn := layout.RightButton()
	m = send(t, m, tea.MouseMsg{X: btn.X, Y: btn.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 5)

	if _, right := m.game.ButtonHolds(); right != 5 {
		t.Errorf("right hold = %d, want 5", right)
	}

	m = send(t, m, tea.MouseMsg{X: btn.X, Y: btn.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)
	if _, right := m.game.ButtonHolds(); right != 0 {
		t.Errorf("right hold after release = %d, want 0", right)
	}
}

func TestModelMouseToggle(t *testing.T) {
	m := newTestModel(t, nil)
	layout := hopit.NewLayout(m.game.Config().World, m.screen.Width(), m.screen.Height())
	btn := layout.MusicButton()

	m = send(t, m, tea.MouseMsg{X: btn.X, Y: btn.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1)
	if m.game.AmbienceEnabled() {
		t.Error("clicking the music button should disable ambience")
	}
}

func TestModelRecordsRun(t *testing.T) {
	history := &fakeHistory{}
	m := newTestModel(t, history)

	m.handleEvent(hopit.EventRunEnded)
	if len(history.saved) != 1 {
		t.Fatalf("saved %d runs, want 1", len(history.saved))
	}

	history.err = errors.New("disk full")
	m.handleEvent(hopit.EventRunEnded) // Logged, not fatal
}

func TestModelScoreboard(t *testing.T) {
	history := &fakeHistory{}
	history.SaveRun(1234, true)
	m := newTestModel(t, history)

	m = send(t, m, runeKey('s'))
	if m.board == nil {
		t.Fatal("s on the home screen should open the scoreboard")
	}
	if view := m.View(); !strings.Contains(view, "1,234") {
		t.Errorf("scoreboard view missing humanized height:\n%s", view)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('q'))

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("quit tick should return a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("cmd() = %T, want tea.QuitMsg", msg)
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "Press SPACE to start") {
		t.Errorf("home view missing prompt:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}
