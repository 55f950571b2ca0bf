package anim_test

import (
	"fmt"
	"testing"

	"github.com/plus3/keyline/anim"
	"github.com/stretchr/testify/assert"
)

func TestSampleEmptyTrackDefaults(t *testing.T) {
	var curves anim.ObjectCurves

	// Scale defaults to 1.0, position and rotation to 0.0
	assert.Equal(t, 1.0, curves.Value(anim.ScaleX, 15))
	assert.Equal(t, 1.0, curves.Value(anim.ScaleY, 0))
	assert.Equal(t, 1.0, curves.Value(anim.ScaleZ, 999))
	assert.Equal(t, 0.0, curves.Value(anim.PosX, 15))
	assert.Equal(t, 0.0, curves.Value(anim.RotZ, 15))
}

func TestSampleHoldExtrapolation(t *testing.T) {
	var track anim.Track
	track.Set(10, 4.0)
	track.Set(20, 8.0)

	t.Run("before first keyframe holds first value", func(t *testing.T) {
		assert.Equal(t, 4.0, track.Sample(0, 0))
		assert.Equal(t, 4.0, track.Sample(9, 0))
		assert.Equal(t, 4.0, track.SampleAt(3.5, 0))
	})

	t.Run("after last keyframe holds last value", func(t *testing.T) {
		assert.Equal(t, 8.0, track.Sample(21, 0))
		assert.Equal(t, 8.0, track.Sample(1000, 0))
		assert.Equal(t, 8.0, track.SampleAt(20.5, 0))
	})
}

func TestSampleExactMatch(t *testing.T) {
	var track anim.Track
	values := map[int]float64{5: 1.5, 10: -3.0, 42: 7.25}
	for f, v := range values {
		track.Set(f, v)
	}

	for f, v := range values {
		assert.Equal(t, v, track.Sample(f, 0), "frame %d", f)
		assert.Equal(t, v, track.SampleAt(float64(f), 0), "frame %f", float64(f))
	}
}

func TestSampleFractionalToleranceOnKeyframe(t *testing.T) {
	var track anim.Track
	track.Set(10, 2.0)
	track.Set(20, 12.0)

	// A fractional frame within 0.001 of an integer keyframe takes the
	// exact value instead of interpolating, avoiding playback jitter.
	assert.Equal(t, 2.0, track.SampleAt(10.0005, 0))
	assert.Equal(t, 12.0, track.SampleAt(19.9995, 0))
}

func TestSampleLinearInterpolation(t *testing.T) {
	var track anim.Track
	track.Set(10, 0.0)
	track.Set(20, 10.0)

	assert.Equal(t, 5.0, track.Sample(15, 0))
	assert.Equal(t, 2.5, track.SampleAt(12.5, 0))
	assert.InDelta(t, 7.5, track.SampleAt(17.5, 0), 1e-9)
}

func TestSampleAdjacentKeyframes(t *testing.T) {
	var track anim.Track
	track.Set(10, 0.0)
	track.Set(11, 1.0)

	// A fractional frame exactly between two integer samples one frame
	// apart still brackets inclusively on both ends.
	assert.InDelta(t, 0.5, track.SampleAt(10.5, 0), 1e-9)
}

func TestSampleIntegerAndFractionalAgree(t *testing.T) {
	var track anim.Track
	track.Set(3, -2.0)
	track.Set(17, 5.0)
	track.Set(40, 5.5)
	track.Set(41, 9.5)

	for frame := 0; frame <= 50; frame++ {
		t.Run(fmt.Sprintf("frame=%d", frame), func(t *testing.T) {
			want := track.Sample(frame, 0)
			got := track.SampleAt(float64(frame), 0)
			assert.Equal(t, want, got)
		})
	}
}

func TestSampleSingleKeyframe(t *testing.T) {
	var track anim.Track
	track.Set(25, 3.0)

	assert.Equal(t, 3.0, track.Sample(0, 0))
	assert.Equal(t, 3.0, track.Sample(25, 0))
	assert.Equal(t, 3.0, track.Sample(100, 0))
	assert.Equal(t, 3.0, track.SampleAt(24.5, 0))
}

func TestTransformAtEmptyCurvesIsIdentity(t *testing.T) {
	var curves anim.ObjectCurves
	tr := curves.TransformAt(12.5)
	assert.Equal(t, anim.IdentityTransform(), tr)
}

func TestTransformAtAggregates(t *testing.T) {
	var curves anim.ObjectCurves
	curves.Track(anim.PosX).Set(0, 0.0)
	curves.Track(anim.PosX).Set(10, 10.0)
	curves.Track(anim.RotY).Set(0, 0.0)
	curves.Track(anim.RotY).Set(10, 90.0)
	curves.Track(anim.ScaleZ).Set(0, 1.0)
	curves.Track(anim.ScaleZ).Set(10, 3.0)

	tr := curves.TransformAt(5)
	assert.Equal(t, 5.0, tr.Position.X)
	assert.Equal(t, 45.0, tr.Rotation.Y)
	assert.Equal(t, 2.0, tr.Scale.Z)
	// Untouched channels fall back to their class defaults
	assert.Equal(t, 0.0, tr.Position.Y)
	assert.Equal(t, 1.0, tr.Scale.X)
}
