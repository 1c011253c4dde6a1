// Package audio plays short retro beeps for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/handpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Note is a single square-wave beep.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cues turns simulation events into sounds. A nil or muted Cues is silent.
type Cues struct {
	playing bool
}

// Open initializes the speaker. The returned Cues must be closed.
func Open() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Cues{playing: true}, nil
}

// Close shuts down the audio system
func (c *Cues) Close() {
	if c == nil || !c.playing {
		return
	}
	speaker.Close()
	c.playing = false
}

// Play queues the sound for ev, if any. It never blocks the game loop.
func (c *Cues) Play(ev game.Events) {
	if c == nil || !c.playing {
		return
	}
	notes := NotesFor(ev)
	if len(notes) == 0 {
		return
	}

	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = squareWave(n.Freq, n.Duration)
	}
	speaker.Play(beep.Seq(streamers...))
}

// NotesFor picks the melody for an update. A score outranks a paddle hit,
// which outranks a wall bounce.
func NotesFor(ev game.Events) []Note {
	switch {
	case ev.Scored:
		// Descending tone for score
		return []Note{
			{660, 100 * time.Millisecond},
			{440, 100 * time.Millisecond},
			{330, 150 * time.Millisecond},
		}
	case ev.PaddleHit:
		// High-pitched short beep
		return []Note{{880, 50 * time.Millisecond}}
	case ev.WallBounce:
		// Medium-pitched short beep
		return []Note{{440, 30 * time.Millisecond}}
	}
	return nil
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
