package anim

// Object is one animatable scene entity: a name, its nine keyframe tracks
// and the transform snapshot produced by the latest engine tick.
type Object struct {
	Name      string
	Curves    ObjectCurves
	Transform Transform
}

// Scene is the ordered list of animated objects. Objects are addressed by
// index; every Editor operation takes the object index explicitly.
type Scene struct {
	objects []*Object
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Spawn appends a new object with empty tracks and an identity transform,
// returning its index.
func (s *Scene) Spawn(name string) int {
	s.objects = append(s.objects, &Object{
		Name:      name,
		Transform: IdentityTransform(),
	})
	return len(s.objects) - 1
}

// Object returns the object at index, or nil if the index is out of range.
func (s *Scene) Object(index int) *Object {
	if index < 0 || index >= len(s.objects) {
		return nil
	}
	return s.objects[index]
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Delete removes the object at index. Later objects shift down by one;
// callers holding selection identities must clear them (the Editor does).
func (s *Scene) Delete(index int) {
	if index < 0 || index >= len(s.objects) {
		return
	}
	s.objects = append(s.objects[:index], s.objects[index+1:]...)
}

// HasKeyframes reports whether the object at index has any keyframes.
func (s *Scene) HasKeyframes(index int) bool {
	obj := s.Object(index)
	return obj != nil && obj.Curves.HasKeyframes()
}

// MaxFrame returns the highest keyframe frame across every track of every
// object, or -1 for a scene with no keyframes.
func (s *Scene) MaxFrame() int {
	max := -1
	for _, obj := range s.objects {
		if f := obj.Curves.MaxFrame(); f > max {
			max = f
		}
	}
	return max
}

// SceneStats is a snapshot of scene contents for the UI panels.
type SceneStats struct {
	ObjectCount   int
	KeyframeCount int
	Objects       []ObjectStats
}

// ObjectStats describes one object's animation data.
type ObjectStats struct {
	Index         int
	Name          string
	KeyframeCount int
	MaxFrame      int
}

// CollectStats builds a SceneStats snapshot.
func (s *Scene) CollectStats() SceneStats {
	stats := SceneStats{
		ObjectCount: len(s.objects),
		Objects:     make([]ObjectStats, 0, len(s.objects)),
	}
	for i, obj := range s.objects {
		n := obj.Curves.KeyframeCount()
		stats.KeyframeCount += n
		stats.Objects = append(stats.Objects, ObjectStats{
			Index:         i,
			Name:          obj.Name,
			KeyframeCount: n,
			MaxFrame:      obj.Curves.MaxFrame(),
		})
	}
	return stats
}
