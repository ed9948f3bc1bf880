package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Track is an endless kick-and-bass loop. Kicks land on every beat and the
// bass plucks the off-beat, so the audible pulse matches BeatClock.
type Track struct {
	sr  beep.SampleRate
	bpm float64
	pos int
}

// NewTrack creates a track at the given tempo.
func NewTrack(sr beep.SampleRate, bpm float64) *Track {
	if bpm <= 0 {
		bpm = 120
	}
	return &Track{sr: sr, bpm: bpm}
}

// bassline in Hz, one note per beat, four beats per bar.
var bassline = [4]float64{55.0, 55.0, 65.41, 49.0}

// Stream fills samples with the next slice of the loop. It never ends.
func (t *Track) Stream(samples [][2]float64) (n int, ok bool) {
	beatLen := 60.0 / t.bpm
	for i := range samples {
		sec := float64(t.pos) / float64(t.sr)
		beat := int(sec / beatLen)
		phase := sec - float64(beat)*beatLen // seconds into this beat

		// Kick: fast downward pitch sweep with exponential decay
		kickFreq := 50 + 100*math.Exp(-phase*30)
		kick := math.Sin(2*math.Pi*kickFreq*phase) * math.Exp(-phase*12)

		// Bass: plucked saw on the off-beat
		var bass float64
		if off := phase - beatLen/2; off >= 0 {
			freq := bassline[beat%len(bassline)]
			saw := 2*(off*freq-math.Floor(off*freq+0.5))
			bass = 0.35 * saw * math.Exp(-off*8)
		}

		v := 0.6*kick + bass
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil; the track is synthesized.
func (t *Track) Err() error {
	return nil
}

// Reset rewinds to the first beat.
func (t *Track) Reset() {
	t.pos = 0
}

// Position returns how many samples have been streamed.
func (t *Track) Position() int {
	return t.pos
}
