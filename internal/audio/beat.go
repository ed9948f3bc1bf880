package audio

// BeatClock converts play time into whole beats at a fixed tempo.
type BeatClock struct {
	bpm float64
}

// NewBeatClock creates a clock for the given tempo.
func NewBeatClock(bpm float64) BeatClock {
	if bpm <= 0 {
		bpm = 120
	}
	return BeatClock{bpm: bpm}
}

// SecondsPerBeat returns the beat length.
func (c BeatClock) SecondsPerBeat() float64 {
	return 60.0 / c.bpm
}

// Beats returns the number of completed beats after seconds of play.
func (c BeatClock) Beats(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	// Nudge so exact multiples are not lost to float error.
	return int(seconds*c.bpm/60.0 + 1e-9)
}
