package anim

import "math"

// Clock advances the playback position of the timeline. While playing, the
// fractional frame is the source of truth and the integer frame is derived
// from it every tick; scrubbing bypasses the float advance and sets both
// fields to the same clamped integer.
type Clock struct {
	// FrameRate is the playback rate in frames per second.
	FrameRate float64

	frame       int
	frameFloat  float64
	playing     bool
	resumeFrame int
}

// NewClock creates a stopped clock at frame 0.
func NewClock(frameRate float64) *Clock {
	return &Clock{FrameRate: frameRate}
}

// Frame returns the integer, UI-facing frame. It equals
// floor(FrameFloat()) after every tick.
func (c *Clock) Frame() int {
	return c.frame
}

// FrameFloat returns the fractional frame, the source of truth while
// playing.
func (c *Clock) FrameFloat() float64 {
	return c.frameFloat
}

// IsPlaying reports whether the clock is advancing.
func (c *Clock) IsPlaying() bool {
	return c.playing
}

// Play starts playback, capturing the current frame as the resume point
// for Stop. Calling Play while already playing does not move the resume
// point.
func (c *Clock) Play() {
	if c.playing {
		return
	}
	c.resumeFrame = c.frame
	c.playing = true
}

// Pause halts playback at the current position.
func (c *Clock) Pause() {
	c.playing = false
}

// Stop halts playback and returns to the frame where playback started.
func (c *Clock) Stop(totalFrames int) {
	c.playing = false
	c.Scrub(c.resumeFrame, totalFrames)
}

// Advance moves the fractional frame forward by FrameRate*dt while
// playing. Crossing totalFrames hard-resets the position to 0.0; the
// overshoot is discarded, not carried into the next loop.
func (c *Clock) Advance(dt float64, totalFrames int) {
	if !c.playing {
		return
	}
	c.frameFloat += c.FrameRate * dt
	if c.frameFloat > float64(totalFrames) {
		c.frameFloat = 0.0
	}
	c.frame = int(math.Floor(c.frameFloat))
}

// Scrub sets the playback position directly, clamped to [0, totalFrames].
func (c *Clock) Scrub(frame int, totalFrames int) {
	if frame < 0 {
		frame = 0
	}
	if frame > totalFrames {
		frame = totalFrames
	}
	c.frame = frame
	c.frameFloat = float64(frame)
}
