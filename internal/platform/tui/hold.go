package tui

import (
	"time"

	"github.com/vovakirdan/crawl/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last press.
// Terminals only report presses (plus auto-repeat), never releases.
const HoldWindow = 150 * time.Millisecond

// HoldTracker turns repeated key presses into held actions.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a holdable action at now. Pressing a direction
// releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	default:
		return
	}
	h.last[a] = now
}

// Apply marks every action pressed within the window as held in frame and
// forgets the expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}
