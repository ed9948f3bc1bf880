// Package audio plays the background track and keeps the beat the neon
// variant pulses its background to.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Music is the background track as the game sees it.
type Music interface {
	// Play starts the track from the top.
	Play()
	// Pause holds playback at the current position.
	Pause()
	// Resume continues after Pause.
	Resume()
	// Close stops playback for good.
	Close() error
}

// Nop is a silent Music used when audio is off or unavailable.
type Nop struct{}

func (Nop) Play()        {}
func (Nop) Pause()       {}
func (Nop) Resume()      {}
func (Nop) Close() error { return nil }

// The speaker is process-wide and beep cannot initialize it twice, so every
// BeepMusic shares one device and Shutdown releases it at exit.
var (
	speakerOnce  sync.Once
	speakerErr   error
	speakerReady bool
	initSpeaker  = func() error {
		return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	}
)

// openSpeaker initializes the speaker on first use. Later calls return the
// first call's result.
func openSpeaker() error {
	speakerOnce.Do(func() {
		if err := initSpeaker(); err != nil {
			speakerErr = fmt.Errorf("audio: cannot init speaker: %w", err)
			return
		}
		speakerReady = true
	})
	return speakerErr
}

// Shutdown closes the speaker if any BeepMusic opened it.
func Shutdown() {
	if speakerReady {
		speaker.Close()
	}
}

// BeepMusic streams a synthesized Track through the system speaker.
type BeepMusic struct {
	mu     sync.Mutex
	track  *Track
	ctrl   *beep.Ctrl
	closed bool
}

// NewBeepMusic queues a paused track at bpm on the shared speaker.
// volume is 0..1.
func NewBeepMusic(bpm, volume float64) (*BeepMusic, error) {
	if err := openSpeaker(); err != nil {
		return nil, err
	}

	track := NewTrack(sampleRate, bpm)
	gain := &effects.Gain{Streamer: track, Gain: volume - 1}
	m := &BeepMusic{
		track: track,
		ctrl:  &beep.Ctrl{Streamer: gain, Paused: true},
	}
	speaker.Play(m.ctrl)
	return m, nil
}

// Play rewinds the track and unpauses it.
func (m *BeepMusic) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	speaker.Lock()
	m.track.Reset()
	m.ctrl.Paused = false
	speaker.Unlock()
}

// Pause holds playback.
func (m *BeepMusic) Pause() {
	m.setPaused(true)
}

// Resume continues playback.
func (m *BeepMusic) Resume() {
	m.setPaused(false)
}

func (m *BeepMusic) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops the track and drops it from the speaker. The device stays open
// for the next game.
func (m *BeepMusic) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	// A Ctrl without a streamer reports itself drained and the mixer removes it.
	speaker.Lock()
	m.ctrl.Streamer = nil
	m.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

var _ Music = (*BeepMusic)(nil)
var _ Music = Nop{}
