package animui

type TimelineComponent struct {
	multiSelect bool
}

type KeyframeInspectorComponent struct {
	editValues map[uint64]float32
}

type ObjectBrowserComponent struct {
	filterText string
}

type PlaybackStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
