package anim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the editor-facing tuning knobs of the engine. These are
// configuration, not animation data; curve persistence is out of scope.
type Settings struct {
	// FrameRate is the playback rate in frames per second.
	FrameRate float64 `yaml:"frame_rate"`
	// MinTimelineFrames is the floor for the derived timeline length.
	MinTimelineFrames int `yaml:"min_timeline_frames"`
	// TailPadding is added past the highest keyframe when deriving the
	// timeline length.
	TailPadding int `yaml:"tail_padding"`
	// ProbeRadius is how far the collision-avoidance search probes around
	// an occupied drag target before giving up and overwriting.
	ProbeRadius int `yaml:"probe_radius"`
	// ParallelThreshold is the object count at which the engine samples
	// objects concurrently instead of in a single loop.
	ParallelThreshold int `yaml:"parallel_threshold"`
}

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		FrameRate:         30,
		MinTimelineFrames: 500,
		TailPadding:       100,
		ProbeRadius:       10,
		ParallelThreshold: 64,
	}
}

// normalize replaces zero or negative fields with their defaults so a
// partial settings file still yields a usable configuration.
func (s *Settings) normalize() {
	def := DefaultSettings()
	if s.FrameRate <= 0 {
		s.FrameRate = def.FrameRate
	}
	if s.MinTimelineFrames <= 0 {
		s.MinTimelineFrames = def.MinTimelineFrames
	}
	if s.TailPadding <= 0 {
		s.TailPadding = def.TailPadding
	}
	if s.ProbeRadius <= 0 {
		s.ProbeRadius = def.ProbeRadius
	}
	if s.ParallelThreshold <= 0 {
		s.ParallelThreshold = def.ParallelThreshold
	}
}

// LoadSettings reads a YAML settings file. Missing fields fall back to the
// defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}
