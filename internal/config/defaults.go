package config

import (
	_ "embed"
)

//go:embed defaults/hopit.yaml
var defaultHopYAML []byte

// DefaultHopConfig returns the built-in Hop.It configuration.
// It is the last resort when the embedded YAML fails to parse.
func DefaultHopConfig() HopConfig {
	return HopConfig{
		World: WorldConfig{
			Width:          400,
			Height:         600,
			CameraBoundary: 200,
		},
		Physics: PhysicsConfig{
			FallSpeed:      0.7,
			LaunchVelocity: -15,
			PickupBoost:    -10,
		},
		Hero: HeroConfig{
			Width:          25,
			Height:         40,
			SpawnX:         200,
			SpawnY:         450,
			AnimationSpeed: 15,
		},
		Platforms: PlatformConfig{
			MaxLive:         10,
			Height:          20,
			MinWidth:        40,
			MaxWidth:        60,
			MinGap:          80,
			MaxGap:          120,
			MovingAfter:     500,
			MinSpeed:        1,
			MaxSpeed:        2,
			MaxInitialTimer: 50,
			FlipAfter:       100,
			StartX:          150,
			StartY:          550,
			StartWidth:      100,
		},
		Pickup: PickupConfig{
			Size:       30,
			MinScore:   500,
			Interval:   600,
			MarginX:    50,
			MinOffsetY: 40,
			MaxOffsetY: 60,
		},
		Power: PowerConfig{
			FramesPerCharge: 20,
			Charges:         3,
		},
		Input: InputConfig{
			KeyboardSpeed:   10,
			ButtonSlowSpeed: 3,
			ButtonFastSpeed: 6,
			HoldThreshold:   10,
			KeyHoldFrames:   8,
		},
		Presentation: PresentationConfig{
			InstructionFrames: 180,
			BackgroundPeriod:  600,
		},
		Audio: AudioConfig{
			Enabled:        true,
			SampleRate:     44100,
			EffectsVolume:  0.6,
			AmbienceVolume: 0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHopYAML
}
