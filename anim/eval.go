package anim

import "math"

// frameTolerance is the floating tolerance for treating a fractional frame
// as landing exactly on an integer keyframe. Without it, playback jitters
// whenever the fractional clock passes over a keyframe.
const frameTolerance = 0.001

// SampleAt evaluates the track at a possibly fractional frame position.
//
// Policy:
//   - empty track: def
//   - exact match (within frameTolerance): that keyframe's value
//   - before the first keyframe: the first keyframe's value
//   - after the last keyframe: the last keyframe's value
//   - otherwise: linear interpolation between the bracketing keyframes
//
// The function is pure and allocation-free; it runs once per track per
// animated object on every tick.
func (t *Track) SampleAt(frame float64, def float64) float64 {
	n := len(t.keys)
	if n == 0 {
		return def
	}
	if frame <= float64(t.keys[0].Frame) {
		return t.keys[0].Value
	}
	if frame >= float64(t.keys[n-1].Frame) {
		return t.keys[n-1].Value
	}

	// Rightmost keyframe with key frame <= frame. The clamp checks above
	// guarantee 0 <= i < n-1 here.
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if float64(t.keys[mid].Frame) <= frame {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	left := t.keys[lo]
	right := t.keys[lo+1]

	if math.Abs(frame-float64(left.Frame)) < frameTolerance {
		return left.Value
	}
	if math.Abs(frame-float64(right.Frame)) < frameTolerance {
		return right.Value
	}

	span := float64(right.Frame - left.Frame)
	return left.Value + (right.Value-left.Value)*(frame-float64(left.Frame))/span
}

// Sample evaluates the track at an integer frame. It agrees with SampleAt
// on integer inputs and is the entry point used for scrubbing and static
// display.
func (t *Track) Sample(frame int, def float64) float64 {
	if v, ok := t.Get(frame); ok {
		return v
	}
	return t.SampleAt(float64(frame), def)
}
