package parameter

import "time"

// Board dimensions
const (
	BoardWidth  = 50
	BoardHeight = 20
)

// Food spawning
const (
	// FoodMax is the maximum number of food tiles on the board at once
	FoodMax = 20

	// FoodPerTick is how many spawn attempts run after each step
	FoodPerTick = 5

	// FoodSpawnRetries bounds rejection sampling before scanning for free cells
	FoodSpawnRetries = 64
)

// Timing
const (
	// TickInterval is the fixed duration of one logical step
	TickInterval = 300 * time.Millisecond

	// MinTickInterval guards against configs that would spin the loop
	MinTickInterval = 20 * time.Millisecond

	// InputQueueSize buffers terminal events between ticks
	InputQueueSize = 64
)

// Audio
const (
	AudioSampleRate   = 44100
	EatToneHz         = 880
	EatToneDuration   = 60 * time.Millisecond
	GrowToneHz        = 330
	GrowToneDuration  = 90 * time.Millisecond
	AudioBufferPeriod = 100 * time.Millisecond
)
