package anim

// Editor applies all keyframe mutations to a scene: add, remove, move with
// collision avoidance, and batch moves of the current selection. Every
// operation takes the target object index explicitly; the only ambient
// state is the UI-facing current object, which exists solely to clear the
// selection when it changes.
//
// Error policy: unknown properties, missing objects and missing keyframes
// are silent no-ops. Nothing here returns an error; the UI always has a
// well-defined "nothing happened" rendering for a no-op.
type Editor struct {
	scene     *Scene
	selection *SelectionSet
	settings  Settings

	totalFrames   int
	currentObject int
}

// NewEditor creates an editor over the given scene.
func NewEditor(scene *Scene, settings Settings) *Editor {
	e := &Editor{
		scene:     scene,
		selection: NewSelectionSet(),
		settings:  settings,
	}
	e.recomputeTotalFrames()
	return e
}

// Scene returns the scene the editor mutates.
func (e *Editor) Scene() *Scene {
	return e.scene
}

// Selection returns the live selection set.
func (e *Editor) Selection() *SelectionSet {
	return e.selection
}

// TotalFrames returns the derived timeline length:
// max(MinTimelineFrames, highest keyframe + TailPadding). It is recomputed
// after every mutation that can change the maximum.
func (e *Editor) TotalFrames() int {
	return e.totalFrames
}

func (e *Editor) recomputeTotalFrames() {
	frames := e.scene.MaxFrame() + e.settings.TailPadding
	if frames < e.settings.MinTimelineFrames {
		frames = e.settings.MinTimelineFrames
	}
	e.totalFrames = frames
}

// CurrentObject returns the UI-facing current object index.
func (e *Editor) CurrentObject() int {
	return e.currentObject
}

// SetCurrentObject switches the current object, clearing the selection on
// a change.
func (e *Editor) SetCurrentObject(index int) {
	if index == e.currentObject {
		return
	}
	e.currentObject = index
	e.selection.Clear()
}

func (e *Editor) track(object int, p Property) *Track {
	obj := e.scene.Object(object)
	if obj == nil {
		return nil
	}
	return obj.Curves.Track(p)
}

// AddKeyframe upserts a keyframe; a frame that already holds a value is
// overwritten, last write wins.
func (e *Editor) AddKeyframe(object int, p Property, frame int, value float64) {
	t := e.track(object, p)
	if t == nil || frame < 0 {
		return
	}
	t.Set(frame, value)
	e.recomputeTotalFrames()
}

// AddKeyframeNamed resolves the property name and upserts. Unknown names
// are a no-op.
func (e *Editor) AddKeyframeNamed(object int, property string, frame int, value float64) {
	if p, ok := ParseProperty(property); ok {
		e.AddKeyframe(object, p, frame, value)
	}
}

// RemoveKeyframe deletes the keyframe if present, silent no-op otherwise.
func (e *Editor) RemoveKeyframe(object int, p Property, frame int) {
	t := e.track(object, p)
	if t == nil {
		return
	}
	if t.Remove(frame) {
		e.recomputeTotalFrames()
	}
}

// RemoveKeyframeNamed resolves the property name and removes.
func (e *Editor) RemoveKeyframeNamed(object int, property string, frame int) {
	if p, ok := ParseProperty(property); ok {
		e.RemoveKeyframe(object, p, frame)
	}
}

// MoveKeyframe relocates a keyframe from oldFrame toward newFrame,
// resolving an occupied target to a nearby free frame. It returns the
// frame the keyframe actually landed on, so callers can re-anchor
// selection identities without guessing. moved is false when nothing
// changed: oldFrame equals newFrame, the object or keyframe is missing,
// or newFrame is negative.
func (e *Editor) MoveKeyframe(object int, p Property, oldFrame, newFrame int) (resolved int, moved bool) {
	if oldFrame == newFrame || newFrame < 0 {
		return 0, false
	}
	t := e.track(object, p)
	if t == nil {
		return 0, false
	}
	value, ok := t.Get(oldFrame)
	if !ok {
		return 0, false
	}
	target := resolvePlacement(t, newFrame, oldFrame, e.settings.ProbeRadius)
	t.Remove(oldFrame)
	t.Set(target, value)
	e.recomputeTotalFrames()
	return target, true
}

// resolvePlacement picks the frame a dragged keyframe lands on. A target
// that is free, or occupied only by the keyframe being moved (exclude), is
// used as-is. Otherwise the search probes the right side outward first,
// then the left side, rejecting negative frames. An exhausted probe falls
// back to the requested frame, accepting the overwrite; this lets a drag
// pass through a dense cluster and snap to the nearest open frame instead
// of refusing.
func resolvePlacement(t *Track, want, exclude, radius int) int {
	free := func(frame int) bool {
		return frame == exclude || !t.Has(frame)
	}
	if free(want) {
		return want
	}
	for off := 1; off <= radius; off++ {
		if free(want + off) {
			return want + off
		}
	}
	for off := 1; off <= radius; off++ {
		if f := want - off; f >= 0 && free(f) {
			return f
		}
	}
	return want
}

// MoveSelected shifts every selected keyframe by delta frames, clamping
// targets at frame 0. Moves resolve collisions per keyframe,
// independently; siblings moved by the same delta can land on different
// offsets. The selection is rebuilt from the resolved frames returned by
// MoveKeyframe. No-op for a zero delta or an empty selection.
func (e *Editor) MoveSelected(delta int) {
	if delta == 0 || e.selection.Len() == 0 {
		return
	}
	snapshot := e.selection.IDs()
	e.selection.Clear()
	for _, id := range snapshot {
		target := id.Frame() + delta
		if target < 0 {
			target = 0
		}
		resolved, moved := e.MoveKeyframe(id.Object(), id.Property(), id.Frame(), target)
		if !moved {
			// Clamp made this a zero-length move; keep the identity where
			// it is as long as the keyframe still exists.
			if t := e.track(id.Object(), id.Property()); t != nil && t.Has(id.Frame()) {
				e.selection.Add(id)
			}
			continue
		}
		e.selection.Add(id.WithFrame(resolved))
	}
}

// DeleteSelected removes every selected keyframe, then clears the
// selection.
func (e *Editor) DeleteSelected() {
	if e.selection.Len() == 0 {
		return
	}
	for _, id := range e.selection.IDs() {
		e.RemoveKeyframe(id.Object(), id.Property(), id.Frame())
	}
	e.selection.Clear()
}

// ClearObjectKeyframes removes every keyframe of one object and drops the
// selection, whose identities may now be stale.
func (e *Editor) ClearObjectKeyframes(object int) {
	obj := e.scene.Object(object)
	if obj == nil {
		return
	}
	obj.Curves.Clear()
	e.selection.Clear()
	e.recomputeTotalFrames()
}

// DeleteObject removes an object from the scene. Indices of later objects
// shift down, so the selection is cleared.
func (e *Editor) DeleteObject(object int) {
	if e.scene.Object(object) == nil {
		return
	}
	e.scene.Delete(object)
	e.selection.Clear()
	e.recomputeTotalFrames()
}

// Value evaluates a named property at a fractional frame. Unknown names
// return 0.
func (e *Editor) Value(object int, property string, frame float64) float64 {
	p, ok := ParseProperty(property)
	if !ok {
		return 0
	}
	obj := e.scene.Object(object)
	if obj == nil {
		return p.Default()
	}
	return obj.Curves.Value(p, frame)
}
