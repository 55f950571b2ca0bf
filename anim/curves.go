package anim

// ObjectCurves is the fixed set of nine keyframe tracks owned by one
// animated scene object, indexed by Property. Its lifecycle matches the
// object's: created empty on spawn, cleared on "clear all keyframes",
// destroyed with the object.
type ObjectCurves struct {
	tracks [PropertyCount]Track
}

// Track returns the track for the given property, or nil for an invalid
// property so that callers resolving user input can fall through to the
// documented no-op behavior.
func (c *ObjectCurves) Track(p Property) *Track {
	if !p.Valid() {
		return nil
	}
	return &c.tracks[p]
}

// Value evaluates the property's track at a fractional frame, applying the
// property-class default for empty tracks.
func (c *ObjectCurves) Value(p Property, frame float64) float64 {
	if !p.Valid() {
		return 0
	}
	return c.tracks[p].SampleAt(frame, p.Default())
}

// ValueAtFrame evaluates the property's track at an integer frame.
func (c *ObjectCurves) ValueAtFrame(p Property, frame int) float64 {
	if !p.Valid() {
		return 0
	}
	return c.tracks[p].Sample(frame, p.Default())
}

// HasKeyframes reports whether any of the nine tracks holds a keyframe.
func (c *ObjectCurves) HasKeyframes() bool {
	for i := range c.tracks {
		if c.tracks[i].Len() > 0 {
			return true
		}
	}
	return false
}

// KeyframeCount returns the total number of keyframes across all tracks.
func (c *ObjectCurves) KeyframeCount() int {
	n := 0
	for i := range c.tracks {
		n += c.tracks[i].Len()
	}
	return n
}

// MaxFrame returns the highest keyframe frame across all tracks, or -1 if
// the object has no keyframes.
func (c *ObjectCurves) MaxFrame() int {
	max := -1
	for i := range c.tracks {
		if f := c.tracks[i].MaxFrame(); f > max {
			max = f
		}
	}
	return max
}

// Clear removes every keyframe from every track.
func (c *ObjectCurves) Clear() {
	for i := range c.tracks {
		c.tracks[i].Clear()
	}
}
