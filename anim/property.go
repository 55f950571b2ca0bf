package anim

import "strings"

// Property identifies one of the nine animatable transform channels of a
// scene object. Property values index directly into ObjectCurves, so the
// string form of a channel is resolved once at the API boundary and never
// on the evaluation hot path.
type Property uint8

const (
	PosX Property = iota
	PosY
	PosZ
	RotX
	RotY
	RotZ
	ScaleX
	ScaleY
	ScaleZ

	// PropertyCount is the number of animatable channels per object.
	PropertyCount = 9
)

var propertyNames = [PropertyCount]string{
	"position.x", "position.y", "position.z",
	"rotation.x", "rotation.y", "rotation.z",
	"scale.x", "scale.y", "scale.z",
}

// String returns the canonical qualified name of the property.
func (p Property) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return propertyNames[p]
}

// Valid reports whether p is one of the nine defined channels.
func (p Property) Valid() bool {
	return p < PropertyCount
}

// IsScale reports whether p is a scale channel.
func (p Property) IsScale() bool {
	return p >= ScaleX && p <= ScaleZ
}

// Default returns the value an empty track evaluates to: 1.0 for scale
// channels, 0.0 for position and rotation.
func (p Property) Default() float64 {
	if p.IsScale() {
		return 1.0
	}
	return 0.0
}

// ParseProperty resolves a property name, case-insensitively. Position
// channels accept the bare axis shorthand ("x", "y", "z") in addition to
// the qualified form; rotation and scale require "rotation.x" / "scale.x".
// Unknown names return ok=false, which mutators treat as a no-op.
func ParseProperty(name string) (Property, bool) {
	switch strings.ToLower(name) {
	case "x", "position.x":
		return PosX, true
	case "y", "position.y":
		return PosY, true
	case "z", "position.z":
		return PosZ, true
	case "rotation.x":
		return RotX, true
	case "rotation.y":
		return RotY, true
	case "rotation.z":
		return RotZ, true
	case "scale.x":
		return ScaleX, true
	case "scale.y":
		return ScaleY, true
	case "scale.z":
		return ScaleZ, true
	}
	return 0, false
}
