package animui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/keyline/anim"
)

// NewObjectBrowserComponent creates the object browser panel.
func NewObjectBrowserComponent() ObjectBrowserComponent {
	return ObjectBrowserComponent{}
}

// Render draws the list of animated objects. Clicking a row makes it the
// editor's current object, which also clears the keyframe selection.
func (ob *ObjectBrowserComponent) Render(engine *anim.Engine) {
	if !imgui.BeginV("Objects", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	editor := engine.Editor()
	stats := engine.Scene().CollectStats()

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Keyframes")
		imgui.TableSetupColumn("Max Frame")
		imgui.TableHeadersRow()

		filter := strings.ToLower(ob.filterText)
		for _, obj := range stats.Objects {
			if filter != "" && !strings.Contains(strings.ToLower(obj.Name), filter) {
				continue
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			isCurrent := editor.CurrentObject() == obj.Index
			if imgui.SelectableBoolV(fmt.Sprintf("%d", obj.Index), isCurrent, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				editor.SetCurrentObject(obj.Index)
			}

			imgui.TableNextColumn()
			imgui.Text(obj.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", obj.KeyframeCount))

			imgui.TableNextColumn()
			if obj.MaxFrame < 0 {
				imgui.Text("-")
			} else {
				imgui.Text(fmt.Sprintf("%d", obj.MaxFrame))
			}
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d objects, %d keyframes", stats.ObjectCount, stats.KeyframeCount))

	imgui.End()
}
