// Package config provides YAML-based game configuration loading and
// difficulty management for Hop.It.
package config

// HopConfig contains all tunables of the simulation and its frontends.
type HopConfig struct {
	World        WorldConfig        `yaml:"world"`
	Physics      PhysicsConfig      `yaml:"physics"`
	Hero         HeroConfig         `yaml:"hero"`
	Platforms    PlatformConfig     `yaml:"platforms"`
	Pickup       PickupConfig       `yaml:"pickup"`
	Power        PowerConfig        `yaml:"power"`
	Input        InputConfig        `yaml:"input"`
	Presentation PresentationConfig `yaml:"presentation"`
	Audio        AudioConfig        `yaml:"audio"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
}

// WorldConfig defines the logical screen in world units.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CameraBoundary float64 `yaml:"camera_boundary"` // Scroll band distance from the top
}

// PhysicsConfig defines vertical motion constants.
type PhysicsConfig struct {
	FallSpeed      float64 `yaml:"fall_speed"`      // Gravity added per frame
	LaunchVelocity float64 `yaml:"launch_velocity"` // Vertical speed after a bounce
	PickupBoost    float64 `yaml:"pickup_boost"`    // Vertical speed after collecting a pickup
}

// HeroConfig defines the hero hitbox and spawn point.
type HeroConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnX         float64 `yaml:"spawn_x"` // Centre of the hitbox
	SpawnY         float64 `yaml:"spawn_y"`
	AnimationSpeed int     `yaml:"animation_speed"` // Frames per pose toggle
}

// PlatformConfig defines platform generation.
type PlatformConfig struct {
	MaxLive         int     `yaml:"max_live"`
	Height          float64 `yaml:"height"`
	MinWidth        int     `yaml:"min_width"`
	MaxWidth        int     `yaml:"max_width"`
	MinGap          int     `yaml:"min_gap"`
	MaxGap          int     `yaml:"max_gap"`
	MovingAfter     int     `yaml:"moving_after"` // Height score after which platforms may move
	MinSpeed        int     `yaml:"min_speed"`
	MaxSpeed        int     `yaml:"max_speed"`
	MaxInitialTimer int     `yaml:"max_initial_timer"`
	FlipAfter       int     `yaml:"flip_after"`   // Frames before a patrol reverses
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	StartWidth      float64 `yaml:"start_width"`
}

// PickupConfig defines power-up spawning.
type PickupConfig struct {
	Size       float64 `yaml:"size"`
	MinScore   int     `yaml:"min_score"` // Height that must be exceeded before any spawn
	Interval   int     `yaml:"interval"`  // Height between spawn thresholds
	MarginX    int     `yaml:"margin_x"`
	MinOffsetY int     `yaml:"min_offset_y"` // Distance above the highest platform
	MaxOffsetY int     `yaml:"max_offset_y"`
}

// PowerConfig defines how long a collected power-up lasts.
type PowerConfig struct {
	FramesPerCharge int `yaml:"frames_per_charge"`
	Charges         int `yaml:"charges"`
}

// InputConfig defines movement magnitudes and hold handling.
type InputConfig struct {
	KeyboardSpeed   float64 `yaml:"keyboard_speed"`
	ButtonSlowSpeed float64 `yaml:"button_slow_speed"`
	ButtonFastSpeed float64 `yaml:"button_fast_speed"`
	HoldThreshold   int     `yaml:"hold_threshold"`  // Frames before a button hold speeds up
	KeyHoldFrames   int     `yaml:"key_hold_frames"` // Terminal only: frames a key press stays held
}

// PresentationConfig defines read-only presentation counters.
type PresentationConfig struct {
	InstructionFrames int     `yaml:"instruction_frames"`
	BackgroundPeriod  float64 `yaml:"background_period"`
}

// AudioConfig defines the synthesized audio collaborator.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SampleRate     int     `yaml:"sample_rate"`
	EffectsVolume  float64 `yaml:"effects_volume"`
	AmbienceVolume float64 `yaml:"ambience_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with height.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Height at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to platform speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
