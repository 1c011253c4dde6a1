package app

import (
	"time"

	"github.com/diegok/handpong/internal/mathutil"
)

// fpsSmoothing weights the newest frame in the displayed frame rate.
const fpsSmoothing = 0.1

// Clock limits the loop to a fixed frame rate. Tick sleeps whatever is left
// of the frame budget and never sleeps when the frame overran.
type Clock struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)

	last time.Time
	fps  float64
}

func NewClock(fps int) *Clock {
	return newClock(fps, time.Now, time.Sleep)
}

func newClock(fps int, now func() time.Time, sleep func(time.Duration)) *Clock {
	if fps < 1 {
		fps = 1
	}
	return &Clock{
		interval: time.Second / time.Duration(fps),
		now:      now,
		sleep:    sleep,
	}
}

// Tick waits for the end of the current frame and returns how long the
// frame took, sleep included. The first call starts timing and returns 0.
func (c *Clock) Tick() time.Duration {
	if c.last.IsZero() {
		c.last = c.now()
		return 0
	}

	if elapsed := c.now().Sub(c.last); elapsed < c.interval {
		c.sleep(c.interval - elapsed)
	}

	t := c.now()
	frame := t.Sub(c.last)
	c.last = t

	if frame > 0 {
		rate := float64(time.Second) / float64(frame)
		if c.fps == 0 {
			c.fps = rate
		} else {
			c.fps = mathutil.Smooth(rate, c.fps, fpsSmoothing)
		}
	}
	return frame
}

// FPS returns the measured frame rate.
func (c *Clock) FPS() float64 {
	return c.fps
}
