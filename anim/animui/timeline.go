package animui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/keyline/anim"
)

// NewTimelineComponent creates the timeline panel.
func NewTimelineComponent() TimelineComponent {
	return TimelineComponent{}
}

// Render draws the transport controls, the scrubber and one keyframe row
// per property of the editor's current object.
func (tl *TimelineComponent) Render(engine *anim.Engine) {
	if !imgui.BeginV("Timeline", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	editor := engine.Editor()
	clock := engine.Clock()

	if clock.IsPlaying() {
		if imgui.Button("Pause") {
			engine.Pause()
		}
	} else {
		if imgui.Button("Play") {
			engine.Play()
		}
	}
	imgui.SameLine()
	if imgui.Button("Stop") {
		engine.Stop()
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Frame %d / %d", clock.Frame(), editor.TotalFrames()))

	frame := int32(clock.Frame())
	if imgui.SliderInt("##scrub", &frame, 0, int32(editor.TotalFrames())) {
		engine.Scrub(int(frame))
	}

	imgui.Separator()

	imgui.Checkbox("Multi-select", &tl.multiSelect)
	imgui.SameLine()
	if imgui.Button("Clear Selection") {
		editor.Selection().Clear()
	}
	imgui.SameLine()
	if imgui.Button("< Nudge") {
		editor.MoveSelected(-1)
	}
	imgui.SameLine()
	if imgui.Button("Nudge >") {
		editor.MoveSelected(1)
	}
	imgui.SameLine()
	if imgui.Button("Delete Selected") {
		editor.DeleteSelected()
	}

	object := editor.CurrentObject()
	obj := engine.Scene().Object(object)
	if obj == nil {
		imgui.Text("No object selected")
		imgui.End()
		return
	}

	for p := anim.Property(0); p < anim.PropertyCount; p++ {
		tl.renderTrackRow(editor, object, p, obj.Curves.Track(p), clock.Frame())
	}

	imgui.End()
}

func (tl *TimelineComponent) renderTrackRow(editor *anim.Editor, object int, p anim.Property, track *anim.Track, frame int) {
	imgui.Text(p.String())
	imgui.SameLine()
	if imgui.Button(fmt.Sprintf("+##%s", p.String())) {
		// Key the current pose so a new keyframe does not jump the curve.
		curves := &editor.Scene().Object(object).Curves
		editor.AddKeyframe(object, p, frame, curves.ValueAtFrame(p, frame))
	}

	for _, kf := range track.Keyframes() {
		imgui.SameLine()
		id := anim.NewKeyframeID(object, p, kf.Frame)
		selected := editor.Selection().Contains(id)
		label := fmt.Sprintf("%d##%s-%d", kf.Frame, p.String(), kf.Frame)
		if imgui.SelectableBoolV(label, selected, imgui.SelectableFlagsNone, imgui.NewVec2(40, 0)) {
			if tl.multiSelect {
				editor.Selection().Toggle(id)
			} else {
				editor.Selection().ReplaceWithSingle(id)
			}
		}
	}
}
