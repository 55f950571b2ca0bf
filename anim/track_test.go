package anim_test

import (
	"testing"

	"github.com/plus3/keyline/anim"
	"github.com/stretchr/testify/assert"
)

func TestTrackSetKeepsSortedUniqueFrames(t *testing.T) {
	var track anim.Track

	track.Set(30, 3.0)
	track.Set(10, 1.0)
	track.Set(20, 2.0)

	keys := track.Keyframes()
	assert.Equal(t, []anim.Keyframe{
		{Frame: 10, Value: 1.0},
		{Frame: 20, Value: 2.0},
		{Frame: 30, Value: 3.0},
	}, keys)

	// Upsert overwrites in place, last write wins
	track.Set(20, 5.0)
	assert.Equal(t, 3, track.Len())
	v, ok := track.Get(20)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestTrackRejectsNegativeFrames(t *testing.T) {
	var track anim.Track
	track.Set(-1, 1.0)
	assert.Equal(t, 0, track.Len())
}

func TestTrackRemove(t *testing.T) {
	var track anim.Track
	track.Set(5, 1.0)
	track.Set(10, 2.0)

	assert.True(t, track.Remove(5))
	assert.False(t, track.Has(5))
	assert.Equal(t, 1, track.Len())

	// Removing a non-existent keyframe is a no-op
	assert.False(t, track.Remove(99))
	assert.Equal(t, 1, track.Len())
}

func TestTrackFirstLastMaxFrame(t *testing.T) {
	var track anim.Track

	_, ok := track.First()
	assert.False(t, ok)
	_, ok = track.Last()
	assert.False(t, ok)
	assert.Equal(t, -1, track.MaxFrame())

	track.Set(7, 1.0)
	track.Set(3, 2.0)

	first, ok := track.First()
	assert.True(t, ok)
	assert.Equal(t, anim.Keyframe{Frame: 3, Value: 2.0}, first)

	last, ok := track.Last()
	assert.True(t, ok)
	assert.Equal(t, anim.Keyframe{Frame: 7, Value: 1.0}, last)

	assert.Equal(t, 7, track.MaxFrame())
}

func TestTrackClear(t *testing.T) {
	var track anim.Track
	track.Set(1, 1.0)
	track.Set(2, 2.0)

	track.Clear()
	assert.Equal(t, 0, track.Len())
	assert.Equal(t, -1, track.MaxFrame())
}

func TestTrackKeyframesIsACopy(t *testing.T) {
	var track anim.Track
	track.Set(1, 1.0)

	keys := track.Keyframes()
	keys[0].Value = 99.0

	v, _ := track.Get(1)
	assert.Equal(t, 1.0, v)
}
