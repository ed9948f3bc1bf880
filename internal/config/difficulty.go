package config

import "math"

// DifficultyManager derives the start speed and the speed ramp from the config.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether speed ramps up during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the configured starting level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.cfg.InitialLevel
}

// StartSpeed scales the base speed by the starting level.
func (d *DifficultyManager) StartSpeed(baseSpeed float64) float64 {
	return baseSpeed * (1.0 + d.cfg.InitialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// Acceleration returns the configured acceleration, or zero when the ramp is off.
func (d *DifficultyManager) Acceleration(accel float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	return accel
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
