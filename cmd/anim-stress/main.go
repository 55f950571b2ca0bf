package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/keyline/anim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 500, "The number of animated objects to create.")
	keysPerTrack := flag.Int("keys", 50, "The number of keyframes per track.")
	churn := flag.Bool("churn", false, "Interleave editor mutations with playback each update.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting animation engine stress test...")

	// 1. Setup scene, engine and editor
	scene := anim.NewScene()
	engine := anim.NewEngine(scene, anim.DefaultSettings())
	editor := engine.Editor()

	// 2. Populate the scene with keyframed objects
	log.Printf("Populating scene with %d objects (%d keys per track)...\n", *objectCount, *keysPerTrack)
	for i := 0; i < *objectCount; i++ {
		idx := scene.Spawn(fmt.Sprintf("object-%d", i))
		for p := anim.Property(0); p < anim.PropertyCount; p++ {
			for k := 0; k < *keysPerTrack; k++ {
				editor.AddKeyframe(idx, p, k*12+rand.Intn(6), rand.Float64()*100)
			}
		}
	}
	log.Println("Population complete.")

	// 3. Run the playback loop
	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		KeysPerTrack:   *keysPerTrack,
		TotalKeyframes: engine.GetStats().Keyframes,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running playback for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	engine.Play()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			engine.Advance(float64(deltaTime) / float64(time.Second))
			if *churn {
				churnEdit(editor, *objectCount)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Playback finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// churnEdit exercises the mutation path under playback: move one random
// keyframe per update through the collision-avoidance placement.
func churnEdit(editor *anim.Editor, objectCount int) {
	obj := rand.Intn(objectCount)
	p := anim.Property(rand.Intn(anim.PropertyCount))
	track := editor.Scene().Object(obj).Curves.Track(p)
	keys := track.Keyframes()
	if len(keys) == 0 {
		return
	}
	kf := keys[rand.Intn(len(keys))]
	editor.MoveKeyframe(obj, p, kf.Frame, kf.Frame+rand.Intn(21)-10)
}
