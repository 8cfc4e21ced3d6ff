package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/storage"
)

type memBest struct {
	best  int
	saves []int
}

func (m *memBest) LoadBest() (int, error) { return m.best, nil }

func (m *memBest) SaveBest(best int) error {
	m.best = best
	m.saves = append(m.saves, best)
	return nil
}

func TestEndSessionSavesBeatenBest(t *testing.T) {
	tests := []struct {
		name      string
		height    int
		wantSaves int
	}{
		{"beaten", 450, 1},
		{"equal", 100, 0},
		{"below", 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &memBest{best: 100}
			game := hopit.New(config.DefaultHopConfig(), hopit.WithStore(storage.NewKeeper(backend, log.New(io.Discard))))
			runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7}
			m := NewModel(game, nil, runtime, log.New(io.Discard))
			m.Init()

			m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m = tick(t, m, 1)
			if game.Phase() != hopit.PhasePlaying {
				t.Fatalf("phase = %v, want playing", game.Phase())
			}

			game.Session().Hero.Box.Y = 300
			game.Session().Hero.VerticalSpeed = 0
			game.Session().Score.Height = tt.height
			m = tick(t, m, 1)
			if m.quitting || game.State().Quit {
				t.Fatal("game quit before the session ended")
			}
			if len(backend.saves) != 0 {
				t.Fatalf("saves before session end = %v, want none", backend.saves)
			}

			height := game.Session().Score.Height
			ctx := context.WithValue(context.Background(), sessionGameKey{}, game)
			endSession(ctx)
			endSession(ctx)

			if len(backend.saves) != tt.wantSaves {
				t.Fatalf("saves = %v, want %d", backend.saves, tt.wantSaves)
			}
			if tt.wantSaves > 0 && backend.best != height {
				t.Errorf("saved best = %d, want %d", backend.best, height)
			}
		})
	}
}

func TestEndSessionWithoutGame(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"empty", context.Background()},
		{"wrong type", context.WithValue(context.Background(), sessionGameKey{}, "game")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endSession(tt.ctx)
		})
	}
}

func TestNewSSHServerBestStore(t *testing.T) {
	tests := []struct {
		name     string
		best     storage.BestStore
		wantBest int
	}{
		{"run database", nil, 0},
		{"override", &memBest{best: 321}, 321},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := DefaultSSHServerConfig()
			cfg.Address = "127.0.0.1:0"
			cfg.HostKeyPath = filepath.Join(dir, "host_key")
			cfg.DBPath = filepath.Join(dir, "hopit.db")
			cfg.Best = tt.best

			srv, err := NewSSHServer(cfg, config.DefaultHopConfig(), log.New(io.Discard))
			if err != nil {
				t.Fatalf("NewSSHServer: %v", err)
			}
			defer srv.closeStore()

			if srv.store == nil {
				t.Fatal("run database not opened")
			}
			if got := srv.keeper.Load(); got != tt.wantBest {
				t.Errorf("best = %d, want %d", got, tt.wantBest)
			}
		})
	}
}
