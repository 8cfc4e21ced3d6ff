package config

import "math"

// DifficultyManager calculates dynamic game parameters based on height.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d != nil && d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a height score.
func (d *DifficultyManager) Level(height int) float64 {
	if d == nil {
		return 0
	}
	if !d.IsEnabled() {
		return d.initialLevel
	}
	if d.cfg.Progression.Type != "score" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(height)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// PlatformSpeed scales a moving platform's base speed for the given height.
// With difficulty disabled the base speed is returned unchanged.
func (d *DifficultyManager) PlatformSpeed(base float64, height int) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1.0 + d.Level(height)*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
