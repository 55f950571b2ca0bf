package animui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/keyline/anim"
)

// NewKeyframeInspectorComponent creates the keyframe inspector panel.
func NewKeyframeInspectorComponent() KeyframeInspectorComponent {
	return KeyframeInspectorComponent{
		editValues: make(map[uint64]float32),
	}
}

// Render lists the selected keyframes and lets the user edit their values
// in place. Value edits are plain upserts; frame edits go through the
// timeline's nudge controls so they get collision avoidance.
func (ki *KeyframeInspectorComponent) Render(engine *anim.Engine) {
	if !imgui.BeginV("Keyframe Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	editor := engine.Editor()
	ids := editor.Selection().IDs()

	if len(ids) == 0 {
		imgui.Text("No keyframes selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("%d selected", len(ids)))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SelectedKeyframes", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Object")
		imgui.TableSetupColumn("Property")
		imgui.TableSetupColumn("Frame")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		live := make(map[uint64]bool, len(ids))
		for _, id := range ids {
			live[uint64(id)] = true

			obj := engine.Scene().Object(id.Object())
			if obj == nil {
				continue
			}
			track := obj.Curves.Track(id.Property())
			value, ok := track.Get(id.Frame())
			if !ok {
				continue
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(obj.Name)
			imgui.TableNextColumn()
			imgui.Text(id.Property().String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", id.Frame()))
			imgui.TableNextColumn()

			edit, seen := ki.editValues[uint64(id)]
			if !seen {
				edit = float32(value)
			}
			if imgui.DragFloat(fmt.Sprintf("##val-%d", uint64(id)), &edit) {
				editor.AddKeyframe(id.Object(), id.Property(), id.Frame(), float64(edit))
			}
			ki.editValues[uint64(id)] = edit
		}

		// Drop cached edit state for keyframes that left the selection.
		for key := range ki.editValues {
			if !live[key] {
				delete(ki.editValues, key)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
