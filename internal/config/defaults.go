package config

import (
	_ "embed"
)

//go:embed defaults/crawl.yaml
var defaultClassicYAML []byte

//go:embed defaults/crawl_neon.yaml
var defaultNeonYAML []byte

// DefaultLanes are the lateral offsets obstacles spawn at. Zero is left out so
// the player's starting column always has a gap somewhere.
func DefaultLanes() []float64 {
	return []float64{-4, -3, -2, -1, 1, 2, 3, 4}
}

// DefaultClassicConfig returns the frame-based variant's configuration.
func DefaultClassicConfig() CrawlConfig {
	return CrawlConfig{
		Physics: CrawlPhysics{
			BaseSpeed:    0.1,
			Acceleration: 0.00005,
			FrameBased:   true,
			StrafeFactor: 1.0,
		},
		Obstacles: CrawlObstacles{
			Max:             20,
			Spacing:         10,
			RecycleDistance: 10,
			Lanes:           DefaultLanes(),
		},
		Player: CrawlPlayer{
			LaneLimit: 4,
		},
		Camera: CrawlCamera{
			Height:           7,
			Distance:         10,
			PullbackPerSpeed: 1,
			BaseFov:          60,
			MaxFov:           150,
			FovPerSpeed:      1,
			FollowRate:       1,
		},
		Style: CrawlStyle{
			IntroSeconds: 1.0,
			HueCycle:     false,
			HueStep:      1,
			Saturation:   0.75,
			Value:        0.9,
			Wires:        false,
		},
		Audio: CrawlAudio{
			Enabled:        false,
			BPM:            120,
			BeatsPerChange: 4,
			Volume:         0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultNeonConfig returns the time-scaled variant's configuration.
// Speeds are the classic per-tick values converted at 75 ticks per second.
func DefaultNeonConfig() CrawlConfig {
	cfg := DefaultClassicConfig()
	cfg.Physics.BaseSpeed = 7.5
	cfg.Physics.Acceleration = 0.28
	cfg.Physics.FrameBased = false
	cfg.Camera.PullbackPerSpeed = 1.0 / 75
	cfg.Camera.FovPerSpeed = 1.0 / 75
	cfg.Camera.FollowRate = 1.0 / 75
	cfg.Style.HueCycle = true
	cfg.Style.HueStep = 6
	cfg.Style.Wires = true
	cfg.Audio.Enabled = true
	return cfg
}

// DefaultConfig returns the hard-coded configuration for a variant.
func DefaultConfig(variant string) CrawlConfig {
	if variant == VariantNeon {
		return DefaultNeonConfig()
	}
	return DefaultClassicConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantNeon:
		return defaultNeonYAML
	default:
		return nil
	}
}
