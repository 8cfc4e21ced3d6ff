package hopit

import (
	"math"
	"testing"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
)

const eps = 1e-9

func newTestSession(cfg config.HopConfig) *Session {
	s := &Session{}
	s.Hero.Reset(cfg.Hero)
	return s
}

func staticPlatform(x, y, w float64) *Platform {
	return &Platform{Box: core.NewRectF(x, y, w, 20), Direction: 1}
}

func TestStepClampsToEdges(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	tests := []struct {
		name  string
		x     float64
		dx    float64
		wantX float64
	}{
		{"free left", 100, -10, 90},
		{"clamp left to remaining distance", 4, -10, 0},
		{"at left edge", 0, -10, 0},
		{"free right", 100, 10, 110},
		{"clamp right to remaining distance", 370, 10, 375},
		{"at right edge", 375, 6, 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(cfg)
			s.Hero.Box.X = tt.x
			ph.Step(s, Intent{DX: tt.dx})
			if math.Abs(s.Hero.Box.X-tt.wantX) > eps {
				t.Errorf("X = %v, want %v", s.Hero.Box.X, tt.wantX)
			}
			if s.Hero.Box.Left() < 0 || s.Hero.Box.Right() > cfg.World.Width+eps {
				t.Errorf("hero left the screen: %+v", s.Hero.Box)
			}
		})
	}
}

func TestStepBounce(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	s := newTestSession(cfg) // bottom at 470
	p := staticPlatform(150, 475, 100)
	s.AddPlatform(p)
	s.Hero.VerticalSpeed = 5
	s.Hero.Pose = DescendB
	s.Hero.AnimTimer = 7

	out := ph.Step(s, Intent{})
	if out.Bounced != p {
		t.Fatal("expected bounce off the platform")
	}
	if s.Hero.VerticalSpeed != cfg.Physics.LaunchVelocity {
		t.Errorf("VerticalSpeed = %v, want %v", s.Hero.VerticalSpeed, cfg.Physics.LaunchVelocity)
	}
	if s.Hero.Box.Bottom() != p.Box.Top() {
		t.Errorf("hero bottom = %v, want platform top %v", s.Hero.Box.Bottom(), p.Box.Top())
	}
	if s.Hero.Pose != AscendA || s.Hero.AnimTimer != 0 {
		t.Errorf("pose = %v timer = %d, want AscendA 0", s.Hero.Pose, s.Hero.AnimTimer)
	}
}

func TestStepNoBounce(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	tests := []struct {
		name      string
		platformY float64
		speed     float64
	}{
		{"rising through", 465, -5},
		{"below centre line", 455, 5}, // centre 465, hero bottom 470
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(cfg)
			s.AddPlatform(staticPlatform(150, tt.platformY, 100))
			s.Hero.VerticalSpeed = tt.speed

			if out := ph.Step(s, Intent{}); out.Bounced != nil {
				t.Error("unexpected bounce")
			}
		})
	}
}

func TestStepBounceNearestSurfaceWins(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	s := newTestSession(cfg) // bottom at 470
	far := staticPlatform(150, 480, 100)
	near := staticPlatform(150, 476, 100)
	s.AddPlatform(far)
	s.AddPlatform(near)
	s.Hero.VerticalSpeed = 20

	out := ph.Step(s, Intent{})
	if out.Bounced != near {
		t.Fatalf("bounced off %+v, want the nearer platform", out.Bounced)
	}
	if s.Hero.Box.Bottom() != near.Box.Top() {
		t.Errorf("hero bottom = %v, want %v", s.Hero.Box.Bottom(), near.Box.Top())
	}
}

func TestStepBounceTieGoesToEarlier(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	s := newTestSession(cfg)
	first := staticPlatform(100, 478, 100)
	second := staticPlatform(200, 478, 100)
	s.AddPlatform(first)
	s.AddPlatform(second)
	s.Hero.VerticalSpeed = 20

	if out := ph.Step(s, Intent{}); out.Bounced != first {
		t.Error("equal distances should resolve to the earlier platform")
	}
}

func TestStepCollectsPickup(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	s := newTestSession(cfg)
	s.Pickup = &Pickup{Box: core.RectFromCenter(200, 450, 30, 30)}
	s.Hero.VerticalSpeed = 3

	out := ph.Step(s, Intent{})
	if !out.Collected {
		t.Fatal("expected pickup collection")
	}
	if s.Pickup != nil {
		t.Error("pickup should be destroyed")
	}
	if !s.Hero.HasPower || s.Hero.Pose != Powered {
		t.Error("hero should be powered")
	}
	if s.Hero.VerticalSpeed != cfg.Physics.PickupBoost {
		t.Errorf("VerticalSpeed = %v, want %v", s.Hero.VerticalSpeed, cfg.Physics.PickupBoost)
	}
}

func TestStepCameraShift(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	s := newTestSession(cfg)
	s.Hero.Box.Y = 150
	s.Hero.VerticalSpeed = -15
	out := ph.Step(s, Intent{})

	// dy = -14.3, shift is the integral part of the climb
	if out.CameraShift != 14 {
		t.Errorf("CameraShift = %d, want 14", out.CameraShift)
	}
	if s.Hero.Box.Y != 150 {
		t.Errorf("Y = %v, want 150", s.Hero.Box.Y)
	}

	// Falling never scrolls.
	s.Hero.VerticalSpeed = 2
	if out := ph.Step(s, Intent{}); out.CameraShift != 0 {
		t.Errorf("CameraShift while falling = %d, want 0", out.CameraShift)
	}

	// Below the boundary never scrolls.
	s = newTestSession(cfg)
	s.Hero.VerticalSpeed = -15
	if out := ph.Step(s, Intent{}); out.CameraShift != 0 {
		t.Errorf("CameraShift below boundary = %d, want 0", out.CameraShift)
	}
}

func TestStepScrollKeepsHeroRow(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)

	tests := []struct {
		name  string
		y     float64
		speed float64
	}{
		{"fractional climb", 150, -15},
		{"slow climb", 120, -1.5},
		{"sub-row climb", 100, -1.2},
		{"at boundary", cfg.World.CameraBoundary, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(cfg)
			s.Platforms = nil
			s.Hero.Box.Y = tt.y
			s.Hero.VerticalSpeed = tt.speed

			for i := 0; i < 30 && s.Hero.VerticalSpeed+cfg.Physics.FallSpeed < 0; i++ {
				top := s.Hero.Box.Top()
				out := ph.Step(s, Intent{})
				if s.Hero.Box.Top() != top {
					t.Fatalf("frame %d: top moved %v -> %v with shift %d", i, top, s.Hero.Box.Top(), out.CameraShift)
				}
			}
		})
	}
}

func TestPowerSuspendsGravityForSixtyFrames(t *testing.T) {
	cfg := config.DefaultHopConfig()
	ph := NewPhysics(cfg)
	s := newTestSession(cfg)

	// Bounce first.
	p := staticPlatform(150, 475, 100)
	s.AddPlatform(p)
	s.Hero.VerticalSpeed = 5
	if out := ph.Step(s, Intent{}); out.Bounced == nil {
		t.Fatal("setup: expected bounce")
	}
	s.Platforms = nil

	// Collect within the launch.
	s.Pickup = &Pickup{Box: s.Hero.Box}
	if out := ph.Step(s, Intent{}); !out.Collected {
		t.Fatal("setup: expected collection")
	}

	active := cfg.Power.FramesPerCharge * cfg.Power.Charges
	for i := 1; i <= active; i++ {
		ph.Step(s, Intent{})
		if s.Hero.VerticalSpeed != cfg.Physics.PickupBoost {
			t.Fatalf("frame %d: VerticalSpeed = %v, gravity should be suspended", i, s.Hero.VerticalSpeed)
		}
	}
	if s.Hero.HasPower {
		t.Fatalf("power should end after %d frames", active)
	}

	ph.Step(s, Intent{})
	want := cfg.Physics.PickupBoost + cfg.Physics.FallSpeed
	if math.Abs(s.Hero.VerticalSpeed-want) > eps {
		t.Errorf("VerticalSpeed after power = %v, want %v", s.Hero.VerticalSpeed, want)
	}
}

func TestAnimationToggles(t *testing.T) {
	cfg := config.DefaultHopConfig()
	h := Hero{Pose: AscendA, VerticalSpeed: -5}

	for i := 0; i < cfg.Hero.AnimationSpeed; i++ {
		h.animate(cfg.Hero.AnimationSpeed, cfg.Power)
	}
	if h.Pose != AscendB {
		t.Errorf("ascending pose = %v, want AscendB", h.Pose)
	}

	h.VerticalSpeed = 5
	for i := 0; i < cfg.Hero.AnimationSpeed; i++ {
		h.animate(cfg.Hero.AnimationSpeed, cfg.Power)
	}
	if h.Pose != DescendA {
		t.Errorf("descending pose = %v, want DescendA", h.Pose)
	}
	for i := 0; i < cfg.Hero.AnimationSpeed; i++ {
		h.animate(cfg.Hero.AnimationSpeed, cfg.Power)
	}
	if h.Pose != DescendB {
		t.Errorf("descending pose = %v, want DescendB", h.Pose)
	}
}
