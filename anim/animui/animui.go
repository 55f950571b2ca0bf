// Package animui provides immediate-mode editor panels for the animation
// engine using Dear ImGui: a timeline with transport controls, a keyframe
// inspector, an object browser and a playback stats window. The panels
// translate clicks into discrete Editor calls and read engine state back;
// all animation semantics live in the anim package.
package animui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// InputState tracks Dear ImGui's input capture state. Use this to decide
// whether the 3D viewport should ignore mouse or keyboard input this
// frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureState reads the current ImGui input capture state. Call once per
// frame, between the backend's BeginFrame and EndFrame.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
