// Package hue implements the ping-pong hue cycle that colors obstacles and the HUD.
package hue

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/crawl/internal/core"
)

// MaxHue is the upper bound of the cycle; the lower bound is 0.
const MaxHue = 360

// Cycle is an integer hue that walks up to MaxHue, then back down to 0, and so on.
type Cycle struct {
	value int
	step  int
	dir   int
}

// NewCycle creates a cycle starting at start, moving by step per advance.
func NewCycle(start, step int) *Cycle {
	if step <= 0 {
		step = 1
	}
	return &Cycle{
		value: core.Clamp(start, 0, MaxHue),
		step:  step,
		dir:   1,
	}
}

// Value returns the current hue.
func (c *Cycle) Value() int {
	return c.value
}

// Rising reports whether the cycle is currently counting up.
func (c *Cycle) Rising() bool {
	return c.dir > 0
}

// Next advances the hue one step and returns the new value.
// The direction flips when a bound is reached.
func (c *Cycle) Next() int {
	c.value += c.dir * c.step
	if c.value >= MaxHue {
		c.value = MaxHue
		c.dir = -1
	} else if c.value <= 0 {
		c.value = 0
		c.dir = 1
	}
	return c.value
}

// Reset moves the cycle back to start, rising.
func (c *Cycle) Reset(start int) {
	c.value = core.Clamp(start, 0, MaxHue)
	c.dir = 1
}

// Color maps a hue to a screen color with the given saturation and value (0..1).
func Color(h int, saturation, value float64) core.Color {
	return core.Color(colorful.Hsv(float64(h%MaxHue), saturation, value).Hex())
}
