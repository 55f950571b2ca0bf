package anim

// Vec3 is a three-component vector. Rotation components are in degrees,
// position and scale are unitless.
type Vec3 struct {
	X, Y, Z float64
}

// Transform is the evaluated pose of an animated object at one frame.
// Consumers must treat it as a point-in-time snapshot valid only until the
// next engine tick.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// IdentityTransform returns the pose an object with no keyframes evaluates
// to: zero position and rotation, unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// PositionAt evaluates the three position tracks at a fractional frame.
func (c *ObjectCurves) PositionAt(frame float64) Vec3 {
	return Vec3{
		X: c.Value(PosX, frame),
		Y: c.Value(PosY, frame),
		Z: c.Value(PosZ, frame),
	}
}

// RotationAt evaluates the three rotation tracks at a fractional frame.
func (c *ObjectCurves) RotationAt(frame float64) Vec3 {
	return Vec3{
		X: c.Value(RotX, frame),
		Y: c.Value(RotY, frame),
		Z: c.Value(RotZ, frame),
	}
}

// ScaleAt evaluates the three scale tracks at a fractional frame.
func (c *ObjectCurves) ScaleAt(frame float64) Vec3 {
	return Vec3{
		X: c.Value(ScaleX, frame),
		Y: c.Value(ScaleY, frame),
		Z: c.Value(ScaleZ, frame),
	}
}

// TransformAt evaluates all nine tracks at a fractional frame.
func (c *ObjectCurves) TransformAt(frame float64) Transform {
	return Transform{
		Position: c.PositionAt(frame),
		Rotation: c.RotationAt(frame),
		Scale:    c.ScaleAt(frame),
	}
}
