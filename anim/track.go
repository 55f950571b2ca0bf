package anim

import "sort"

// Keyframe is a single (frame, value) sample within a track.
type Keyframe struct {
	Frame int
	Value float64
}

// Track holds the keyframes of one animatable channel, sorted by frame in
// ascending order with unique, non-negative frame numbers. Tracks are owned
// by an ObjectCurves and mutated only through Editor operations.
type Track struct {
	keys []Keyframe
}

// search returns the index of frame in the sorted key slice and whether an
// exact match exists. Without a match the index is the insertion point.
func (t *Track) search(frame int) (int, bool) {
	i := sort.Search(len(t.keys), func(i int) bool {
		return t.keys[i].Frame >= frame
	})
	return i, i < len(t.keys) && t.keys[i].Frame == frame
}

// Set inserts or overwrites the keyframe at frame. Negative frames are
// rejected as a no-op.
func (t *Track) Set(frame int, value float64) {
	if frame < 0 {
		return
	}
	i, found := t.search(frame)
	if found {
		t.keys[i].Value = value
		return
	}
	t.keys = append(t.keys, Keyframe{})
	copy(t.keys[i+1:], t.keys[i:])
	t.keys[i] = Keyframe{Frame: frame, Value: value}
}

// Remove deletes the keyframe at frame if present and reports whether a
// keyframe was removed.
func (t *Track) Remove(frame int) bool {
	i, found := t.search(frame)
	if !found {
		return false
	}
	t.keys = append(t.keys[:i], t.keys[i+1:]...)
	return true
}

// Get returns the value stored exactly at frame.
func (t *Track) Get(frame int) (float64, bool) {
	i, found := t.search(frame)
	if !found {
		return 0, false
	}
	return t.keys[i].Value, true
}

// Has reports whether a keyframe exists exactly at frame.
func (t *Track) Has(frame int) bool {
	_, found := t.search(frame)
	return found
}

// Len returns the number of keyframes in the track.
func (t *Track) Len() int {
	return len(t.keys)
}

// Keyframes returns a copy of the track's keyframes in ascending frame
// order. Intended for UI enumeration, not for mutation.
func (t *Track) Keyframes() []Keyframe {
	out := make([]Keyframe, len(t.keys))
	copy(out, t.keys)
	return out
}

// First returns the earliest keyframe.
func (t *Track) First() (Keyframe, bool) {
	if len(t.keys) == 0 {
		return Keyframe{}, false
	}
	return t.keys[0], true
}

// Last returns the latest keyframe.
func (t *Track) Last() (Keyframe, bool) {
	if len(t.keys) == 0 {
		return Keyframe{}, false
	}
	return t.keys[len(t.keys)-1], true
}

// MaxFrame returns the highest keyframe frame, or -1 for an empty track.
func (t *Track) MaxFrame() int {
	if len(t.keys) == 0 {
		return -1
	}
	return t.keys[len(t.keys)-1].Frame
}

// Clear removes all keyframes.
func (t *Track) Clear() {
	t.keys = t.keys[:0]
}
