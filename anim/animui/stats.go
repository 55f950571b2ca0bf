package animui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/keyline/anim"
)

// NewPlaybackStatsComponent creates the playback stats panel.
func NewPlaybackStatsComponent(historyFrames int) PlaybackStatsComponent {
	return PlaybackStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render draws playback state, a frame-time graph and per-object keyframe
// counts.
func (ps *PlaybackStatsComponent) Render(engine *anim.Engine, deltaTime float32) {
	if !imgui.BeginV("Playback Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	clock := engine.Clock()
	stats := engine.GetStats()

	state := "paused"
	if clock.IsPlaying() {
		state = "playing"
	}
	imgui.Text(fmt.Sprintf("Clock: %s @ %.1f fps", state, clock.FrameRate))
	imgui.Text(fmt.Sprintf("Frame: %d (%.3f)", clock.Frame(), clock.FrameFloat()))
	imgui.Text(fmt.Sprintf("Objects: %d  Keyframes: %d", stats.Objects, stats.Keyframes))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Sample Pass") {
		pass := stats.SamplePass
		imgui.Text(fmt.Sprintf("Passes: %d", pass.Count))
		imgui.Text(fmt.Sprintf("Last: %s  Avg: %s", pass.Last, pass.Avg))
		imgui.Text(fmt.Sprintf("Min: %s  Max: %s", pass.Min, pass.Max))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Object Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ObjStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Object")
			imgui.TableSetupColumn("Keyframes")
			imgui.TableSetupColumn("Max Frame")
			imgui.TableHeadersRow()

			for _, obj := range engine.Scene().CollectStats().Objects {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(obj.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", obj.KeyframeCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", obj.MaxFrame))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
