package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the session each tick
const (
	KeyLength  = "snake.length"
	KeyFood    = "food.count"
	KeyFoodMax = "food.max"
	KeyEaten   = "food.eaten"
	KeyTick    = "game.tick"
	KeyMuted   = "audio.muted"
	KeyFacing  = "snake.facing"
)

// Registry is the central metrics facade
// Writers cache pointers once; the tick loop writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// StatusLine formats the game counters for the line under the board
func (r *Registry) StatusLine() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "len %d  food %d/%d  eaten %d  tick %d",
		r.Ints.Get(KeyLength).Load(),
		r.Ints.Get(KeyFood).Load(),
		r.Ints.Get(KeyFoodMax).Load(),
		r.Ints.Get(KeyEaten).Load(),
		r.Ints.Get(KeyTick).Load(),
	)
	if dir := r.Strings.Get(KeyFacing).Load(); dir != "" {
		sb.WriteString("  ")
		sb.WriteString(dir)
	}
	if r.Bools.Get(KeyMuted).Load() {
		sb.WriteString("  [muted]")
	}
	return sb.String()
}
