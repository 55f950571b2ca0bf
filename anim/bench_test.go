package anim_test

import (
	"testing"

	"github.com/plus3/keyline/anim"
)

func buildBenchTrack(n int) *anim.Track {
	var track anim.Track
	for i := 0; i < n; i++ {
		track.Set(i*10, float64(i))
	}
	return &track
}

func BenchmarkSampleAt(b *testing.B) {
	track := buildBenchTrack(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = track.SampleAt(float64(i%1000)+0.5, 0)
	}
}

func BenchmarkSampleExactMatch(b *testing.B) {
	track := buildBenchTrack(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = track.Sample((i%100)*10, 0)
	}
}

func BenchmarkEngineAdvance(b *testing.B) {
	scene := anim.NewScene()
	engine := anim.NewEngine(scene, anim.DefaultSettings())

	for i := 0; i < 50; i++ {
		idx := scene.Spawn("obj")
		for p := anim.Property(0); p < anim.PropertyCount; p++ {
			for f := 0; f < 20; f++ {
				engine.Editor().AddKeyframe(idx, p, f*15, float64(f))
			}
		}
	}
	engine.Play()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Advance(1.0 / 60.0)
	}
}

func BenchmarkMoveSelected(b *testing.B) {
	scene := anim.NewScene()
	idx := scene.Spawn("obj")
	editor := anim.NewEditor(scene, anim.DefaultSettings())
	for f := 0; f < 100; f++ {
		editor.AddKeyframe(idx, anim.PosX, f*10, float64(f))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		editor.Selection().Clear()
		for f := 0; f < 100; f++ {
			editor.Selection().Add(anim.NewKeyframeID(idx, anim.PosX, f*10+(i%2)))
		}
		delta := 1
		if i%2 == 1 {
			delta = -1
		}
		editor.MoveSelected(delta)
	}
}
