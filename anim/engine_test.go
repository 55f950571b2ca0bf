package anim_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/keyline/anim"
)

func TestEngine(t *testing.T) {
	t.Run("advance writes evaluated transforms", func(t *testing.T) {
		scene := anim.NewScene()
		scene.Spawn("cube")
		engine := anim.NewEngine(scene, anim.DefaultSettings())

		engine.Editor().AddKeyframe(0, anim.PosX, 0, 0.0)
		engine.Editor().AddKeyframe(0, anim.PosX, 10, 10.0)

		engine.Scrub(5)
		engine.Advance(0)

		got := scene.Object(0).Transform
		if got.Position.X != 5.0 {
			t.Errorf("expected position.x 5.0, got %f", got.Position.X)
		}
		if got.Scale.X != 1.0 {
			t.Errorf("expected default scale 1.0, got %f", got.Scale.X)
		}
	})

	t.Run("playing samples at the fractional frame", func(t *testing.T) {
		scene := anim.NewScene()
		scene.Spawn("cube")
		engine := anim.NewEngine(scene, anim.DefaultSettings())

		engine.Editor().AddKeyframe(0, anim.PosY, 0, 0.0)
		engine.Editor().AddKeyframe(0, anim.PosY, 30, 30.0)

		engine.Play()
		engine.Advance(0.5) // 30 fps * 0.5s = frame 15.0

		got := scene.Object(0).Transform.Position.Y
		if got != 15.0 {
			t.Errorf("expected position.y 15.0, got %f", got)
		}
	})

	t.Run("parallel sampling matches serial results", func(t *testing.T) {
		settings := anim.DefaultSettings()
		settings.ParallelThreshold = 1

		scene := anim.NewScene()
		engine := anim.NewEngine(scene, settings)
		for i := 0; i < 16; i++ {
			idx := scene.Spawn("obj")
			engine.Editor().AddKeyframe(idx, anim.PosX, 0, 0.0)
			engine.Editor().AddKeyframe(idx, anim.PosX, 10, float64(idx))
		}

		engine.Scrub(10)
		engine.Advance(0)

		for i := 0; i < 16; i++ {
			got := scene.Object(i).Transform.Position.X
			if got != float64(i) {
				t.Errorf("object %d: expected position.x %f, got %f", i, float64(i), got)
			}
		}
	})

	t.Run("stats accumulate per pass", func(t *testing.T) {
		scene := anim.NewScene()
		scene.Spawn("cube")
		engine := anim.NewEngine(scene, anim.DefaultSettings())
		engine.Editor().AddKeyframe(0, anim.PosX, 10, 1.0)

		engine.Advance(0)
		engine.Advance(0)

		stats := engine.GetStats()
		if stats.SamplePass.Count != 2 {
			t.Errorf("expected 2 sample passes, got %d", stats.SamplePass.Count)
		}
		if stats.Objects != 1 || stats.Keyframes != 1 {
			t.Errorf("expected 1 object / 1 keyframe, got %d / %d", stats.Objects, stats.Keyframes)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scene := anim.NewScene()
		scene.Spawn("cube")
		engine := anim.NewEngine(scene, anim.DefaultSettings())
		engine.Play()

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			engine.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("engine did not stop after context cancellation")
		}

		if engine.GetStats().SamplePass.Count == 0 {
			t.Error("expected at least one sample pass")
		}
	})
}
