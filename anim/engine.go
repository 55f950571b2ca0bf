package anim

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// PassStats provides timing statistics for the engine's sampling pass.
type PassStats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Last  time.Duration
	Total time.Duration
}

// EngineStats provides a snapshot of engine execution for the stats panel
// and the stress harness.
type EngineStats struct {
	Objects    int
	Keyframes  int
	SamplePass PassStats
}

type passStatsInternal struct {
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

// Engine ties the scene, editor and clock together into the tick loop: one
// Advance call per rendered frame moves the clock and re-evaluates every
// object's nine tracks into its transform snapshot.
//
// The engine is single-threaded: all mutation and every Advance call must
// come from the same goroutine. Sampling inside one Advance call may fan
// out across objects, since evaluation is pure and tracks are read-only
// during the pass.
type Engine struct {
	scene    *Scene
	editor   *Editor
	clock    *Clock
	settings Settings

	stats passStatsInternal
}

// NewEngine creates an engine over the given scene.
func NewEngine(scene *Scene, settings Settings) *Engine {
	settings.normalize()
	return &Engine{
		scene:    scene,
		editor:   NewEditor(scene, settings),
		clock:    NewClock(settings.FrameRate),
		settings: settings,
		stats:    passStatsInternal{min: time.Duration(1<<63 - 1)},
	}
}

// Scene returns the engine's scene.
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Editor returns the engine's keyframe editor.
func (e *Engine) Editor() *Editor {
	return e.editor
}

// Clock returns the engine's playback clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Advance performs one tick: the clock moves by dt seconds and every
// object's transform snapshot is re-evaluated at the new playback
// position.
func (e *Engine) Advance(dt float64) {
	e.clock.Advance(dt, e.editor.TotalFrames())

	start := time.Now()
	e.samplePass()
	duration := time.Since(start)

	e.stats.count++
	e.stats.last = duration
	e.stats.total += duration
	if duration < e.stats.min {
		e.stats.min = duration
	}
	if duration > e.stats.max {
		e.stats.max = duration
	}
}

// playbackFrame is the evaluation position: the fractional frame while
// playing, the integer frame otherwise.
func (e *Engine) playbackFrame() float64 {
	if e.clock.IsPlaying() {
		return e.clock.FrameFloat()
	}
	return float64(e.clock.Frame())
}

// AnimatedPosition evaluates the object's position tracks at the current
// playback frame.
func (e *Engine) AnimatedPosition(object int) Vec3 {
	obj := e.scene.Object(object)
	if obj == nil {
		return Vec3{}
	}
	return obj.Curves.PositionAt(e.playbackFrame())
}

// AnimatedRotation evaluates the object's rotation tracks at the current
// playback frame.
func (e *Engine) AnimatedRotation(object int) Vec3 {
	obj := e.scene.Object(object)
	if obj == nil {
		return Vec3{}
	}
	return obj.Curves.RotationAt(e.playbackFrame())
}

// AnimatedScale evaluates the object's scale tracks at the current
// playback frame.
func (e *Engine) AnimatedScale(object int) Vec3 {
	obj := e.scene.Object(object)
	if obj == nil {
		return Vec3{X: 1, Y: 1, Z: 1}
	}
	return obj.Curves.ScaleAt(e.playbackFrame())
}

func (e *Engine) samplePass() {
	frame := e.playbackFrame()

	n := e.scene.Len()
	if n >= e.settings.ParallelThreshold {
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i < n; i++ {
			obj := e.scene.Object(i)
			g.Go(func() error {
				obj.Transform = obj.Curves.TransformAt(frame)
				return nil
			})
		}
		_ = g.Wait()
		return
	}

	for i := 0; i < n; i++ {
		obj := e.scene.Object(i)
		obj.Transform = obj.Curves.TransformAt(frame)
	}
}

// Run ticks the engine at the given interval until the context is
// cancelled. Intended for headless use; an interactive app calls Advance
// from its own frame loop instead.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			e.Advance(dt)
		}
	}
}

// Play starts playback.
func (e *Engine) Play() {
	e.clock.Play()
}

// Pause halts playback at the current position.
func (e *Engine) Pause() {
	e.clock.Pause()
}

// Stop halts playback and returns to the frame where it started.
func (e *Engine) Stop() {
	e.clock.Stop(e.editor.TotalFrames())
}

// Scrub jumps to a frame, clamped to the timeline.
func (e *Engine) Scrub(frame int) {
	e.clock.Scrub(frame, e.editor.TotalFrames())
}

// GetStats returns statistics about engine execution.
func (e *Engine) GetStats() *EngineStats {
	scene := e.scene.CollectStats()

	avg := time.Duration(0)
	if e.stats.count > 0 {
		avg = e.stats.total / time.Duration(e.stats.count)
	}

	return &EngineStats{
		Objects:   scene.ObjectCount,
		Keyframes: scene.KeyframeCount,
		SamplePass: PassStats{
			Count: e.stats.count,
			Min:   e.stats.min,
			Max:   e.stats.max,
			Avg:   avg,
			Last:  e.stats.last,
			Total: e.stats.total,
		},
	}
}
