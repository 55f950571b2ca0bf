package anim

// KeyframeID encodes a keyframe's identity as a selection token: the object
// index (upper 24 bits), the property (next 8 bits) and the frame number
// (lower 32 bits). The identity is a value snapshot; after a move the
// selection is rebuilt with the keyframe's resolved frame.
type KeyframeID uint64

// NewKeyframeID creates a KeyframeID from an object index, property and
// frame number.
func NewKeyframeID(object int, p Property, frame int) KeyframeID {
	return KeyframeID(uint64(uint32(object)&0xFFFFFF)<<40 |
		uint64(p)<<32 |
		uint64(uint32(frame)))
}

// Object extracts the object index from the ID.
func (id KeyframeID) Object() int {
	return int(id >> 40 & 0xFFFFFF)
}

// Property extracts the property from the ID.
func (id KeyframeID) Property() Property {
	return Property(id >> 32 & 0xFF)
}

// Frame extracts the frame number from the ID.
func (id KeyframeID) Frame() int {
	return int(uint32(id))
}

// WithFrame returns a copy of the ID re-anchored at a different frame.
func (id KeyframeID) WithFrame(frame int) KeyframeID {
	return NewKeyframeID(id.Object(), id.Property(), frame)
}
