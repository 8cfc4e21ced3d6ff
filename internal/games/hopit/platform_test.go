package hopit

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hopit/internal/config"
)

func newTestPlatforms(seed int64) (*PlatformGenerator, *Session, config.HopConfig) {
	cfg := config.DefaultHopConfig()
	pg := NewPlatformGenerator(rand.New(rand.NewSource(seed)), cfg.Platforms, cfg.World, nil)
	s := newTestSession(cfg)
	s.AddPlatform(pg.Start())
	return pg, s, cfg
}

func TestGenerateRespectsCap(t *testing.T) {
	pg, s, cfg := newTestPlatforms(1)

	for i := 0; i < 30; i++ {
		pg.Generate(s, 0)
		if len(s.Platforms) > cfg.Platforms.MaxLive {
			t.Fatalf("live platforms = %d, cap %d", len(s.Platforms), cfg.Platforms.MaxLive)
		}
	}
	if len(s.Platforms) != cfg.Platforms.MaxLive {
		t.Errorf("live platforms = %d, want %d", len(s.Platforms), cfg.Platforms.MaxLive)
	}
}

func TestGeneratePlacement(t *testing.T) {
	pg, s, cfg := newTestPlatforms(2)

	for i := 0; i < cfg.Platforms.MaxLive-1; i++ {
		prev := s.Highest()
		p := pg.Generate(s, 0)
		if p == nil {
			t.Fatal("expected a new platform below the cap")
		}
		if s.Highest() != p {
			t.Error("new platform should become the highest")
		}

		gap := prev.Box.Y - p.Box.Y
		if gap < float64(cfg.Platforms.MinGap) || gap > float64(cfg.Platforms.MaxGap) {
			t.Errorf("gap = %v, want [%d, %d]", gap, cfg.Platforms.MinGap, cfg.Platforms.MaxGap)
		}
		if p.Box.W < float64(cfg.Platforms.MinWidth) || p.Box.W > float64(cfg.Platforms.MaxWidth) {
			t.Errorf("width = %v out of range", p.Box.W)
		}
		if p.Box.Left() < 0 || p.Box.Right() > cfg.World.Width {
			t.Errorf("platform off screen: %+v", p.Box)
		}
		if p.Moving {
			t.Error("platforms must be static at height 0")
		}
		if p.Speed < float64(cfg.Platforms.MinSpeed) || p.Speed > float64(cfg.Platforms.MaxSpeed) {
			t.Errorf("speed = %v out of range", p.Speed)
		}
		if p.MoveTimer < 0 || p.MoveTimer > cfg.Platforms.MaxInitialTimer {
			t.Errorf("move timer = %d out of range", p.MoveTimer)
		}
	}
}

func TestGenerateMovingOnlyAboveThreshold(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		wantMoving bool
	}{
		{"at threshold", 500, false},
		{"above threshold", 501, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, s, _ := newTestPlatforms(3)
			moving := 0
			for i := 0; i < 200; i++ {
				if p := pg.Generate(s, tt.height); p != nil && p.Moving {
					moving++
				}
				if len(s.Platforms) >= 10 {
					s.Platforms = s.Platforms[:1]
				}
			}
			if (moving > 0) != tt.wantMoving {
				t.Errorf("moving platforms = %d, want any: %v", moving, tt.wantMoving)
			}
		})
	}
}

func TestPlatformMove(t *testing.T) {
	tests := []struct {
		name      string
		p         Platform
		wantX     float64
		wantDir   int
		wantTimer int
	}{
		{
			name:      "patrols",
			p:         Platform{Moving: true, Direction: 1, Speed: 2, MoveTimer: 10},
			wantX:     102,
			wantDir:   1,
			wantTimer: 11,
		},
		{
			name:      "flips when timer expires",
			p:         Platform{Moving: true, Direction: 1, Speed: 2, MoveTimer: 99},
			wantX:     98,
			wantDir:   -1,
			wantTimer: 0,
		},
		{
			name:      "flips at left edge",
			p:         Platform{Moving: true, Direction: -1, Speed: 2, MoveTimer: 5},
			wantX:     2,
			wantDir:   1,
			wantTimer: 0,
		},
		{
			name:      "static never moves",
			p:         Platform{Direction: 1, Speed: 2, MoveTimer: 99},
			wantX:     100,
			wantDir:   1,
			wantTimer: 99,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.Box.W = 50
			p.Box.H = 20
			p.Box.X = 100
			if tt.name == "flips at left edge" {
				p.Box.X = 0
			}
			p.move(400, 100)
			if p.Box.X != tt.wantX || p.Direction != tt.wantDir || p.MoveTimer != tt.wantTimer {
				t.Errorf("got x=%v dir=%d timer=%d, want x=%v dir=%d timer=%d",
					p.Box.X, p.Direction, p.MoveTimer, tt.wantX, tt.wantDir, tt.wantTimer)
			}
		})
	}
}

func TestPlatformMoveStaysOnScreen(t *testing.T) {
	p := Platform{Moving: true, Direction: 1, Speed: 2}
	p.Box.W = 60
	p.Box.H = 20
	p.Box.X = 300

	for i := 0; i < 1000; i++ {
		p.move(400, 100)
		if p.Box.Left() < 0 || p.Box.Right() > 400 {
			t.Fatalf("tick %d: platform left the screen at x=%v", i, p.Box.X)
		}
	}
}

func TestUpdateScrollsAndCulls(t *testing.T) {
	pg, s, _ := newTestPlatforms(4)
	low := staticPlatform(10, 590, 50)
	s.AddPlatform(low)

	pg.Update(s, 15)

	if len(s.Platforms) != 1 {
		t.Fatalf("live platforms = %d, want 1", len(s.Platforms))
	}
	if s.Platforms[0].Box.Y != 565 {
		t.Errorf("start platform Y = %v, want 565", s.Platforms[0].Box.Y)
	}
	for _, p := range s.Platforms {
		if p == low {
			t.Error("platform below the screen should be culled")
		}
	}
}
