package parameter

import "time"

// Simulation timing
const (
	// SimStep is the default integration step in seconds
	SimStep = 0.1

	// SimMaxTime bounds a batch run in simulated seconds
	SimMaxTime = 120.0

	// FrameUpdateInterval paces the interactive console's simulation ticks
	FrameUpdateInterval = 50 * time.Millisecond
)

// Terrain defaults
const (
	// TerrainSize is the number of height samples along each axis
	TerrainSize = 64

	// TerrainSpacing is the distance in meters between neighbouring samples
	TerrainSpacing = 8.0

	// TerrainAmplitude is the peak-to-trough height in meters
	TerrainAmplitude = 20.0
)
