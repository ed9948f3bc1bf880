// Package config provides YAML-based game configuration loading and
// difficulty presets for the crawl variants.
package config

import "fmt"

// Variant IDs. Each has its own embedded default YAML.
const (
	VariantClassic = "crawl"
	VariantNeon    = "crawl_neon"
)

// CrawlConfig contains all configuration for one crawl variant.
type CrawlConfig struct {
	Physics    CrawlPhysics     `yaml:"physics"`
	Obstacles  CrawlObstacles   `yaml:"obstacles"`
	Player     CrawlPlayer      `yaml:"player"`
	Camera     CrawlCamera      `yaml:"camera"`
	Style      CrawlStyle       `yaml:"style"`
	Audio      CrawlAudio       `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrawlPhysics defines forward motion.
//
// With FrameBased set, speeds are in units per tick and acceleration in units
// per tick per tick. Otherwise they are per second.
type CrawlPhysics struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	Acceleration float64 `yaml:"acceleration"`
	FrameBased   bool    `yaml:"frame_based"`
	StrafeFactor float64 `yaml:"strafe_factor"` // lateral speed as a fraction of forward speed
}

// CrawlObstacles defines the obstacle pool.
type CrawlObstacles struct {
	Max             int       `yaml:"max"`
	Spacing         float64   `yaml:"spacing"`
	RecycleDistance float64   `yaml:"recycle_distance"` // how far behind the player before recycling
	Lanes           []float64 `yaml:"lanes"`
}

// CrawlPlayer defines the player cube.
type CrawlPlayer struct {
	LaneLimit float64 `yaml:"lane_limit"` // |x| bound
}

// CrawlCamera defines the chase camera.
type CrawlCamera struct {
	Height           float64 `yaml:"height"`
	Distance         float64 `yaml:"distance"`
	PullbackPerSpeed float64 `yaml:"pullback_per_speed"`
	BaseFov          float64 `yaml:"base_fov"`
	MaxFov           float64 `yaml:"max_fov"`
	FovPerSpeed      float64 `yaml:"fov_per_speed"`
	FollowRate       float64 `yaml:"follow_rate"` // lateral lerp factor per unit of speed
}

// CrawlStyle defines presentation.
type CrawlStyle struct {
	IntroSeconds float64 `yaml:"intro_seconds"`
	HueCycle     bool    `yaml:"hue_cycle"`
	HueStep      int     `yaml:"hue_step"`
	Saturation   float64 `yaml:"saturation"`
	Value        float64 `yaml:"value"`
	Wires        bool    `yaml:"wires"`
}

// CrawlAudio defines the background track and the beat-driven background.
type CrawlAudio struct {
	Enabled        bool    `yaml:"enabled"`
	BPM            float64 `yaml:"bpm"`
	BeatsPerChange int     `yaml:"beats_per_change"`
	Volume         float64 `yaml:"volume"`
}

// Validate checks the values the simulation depends on.
func (c CrawlConfig) Validate() error {
	switch {
	case c.Obstacles.Max < 1:
		return fmt.Errorf("config: obstacles.max must be at least 1, got %d", c.Obstacles.Max)
	case c.Obstacles.Spacing <= 0:
		return fmt.Errorf("config: obstacles.spacing must be positive, got %v", c.Obstacles.Spacing)
	case len(c.Obstacles.Lanes) == 0:
		return fmt.Errorf("config: obstacles.lanes must not be empty")
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("config: physics.base_speed must be positive, got %v", c.Physics.BaseSpeed)
	case c.Physics.Acceleration < 0:
		return fmt.Errorf("config: physics.acceleration must not be negative, got %v", c.Physics.Acceleration)
	case c.Player.LaneLimit <= 0:
		return fmt.Errorf("config: player.lane_limit must be positive, got %v", c.Player.LaneLimit)
	case c.Camera.MaxFov <= 0 || c.Camera.MaxFov >= 180:
		return fmt.Errorf("config: camera.max_fov must be in (0, 180), got %v", c.Camera.MaxFov)
	case c.Audio.Enabled && c.Audio.BPM <= 0:
		return fmt.Errorf("config: audio.bpm must be positive when audio is enabled")
	}
	return nil
}

// DifficultyConfig defines the start speed and whether speed ramps up.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to start speed at level 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" (config default).
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

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured start speed and disables the ramp.
func ApplyPreset(cfg *CrawlConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
