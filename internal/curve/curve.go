package curve

import (
	"math/rand"
	"strconv"
	"strings"
)

// Kind identifies the formula a marker layout was generated from.
type Kind int

const (
	Uniform Kind = iota
	Quadratic
	Random
	// Custom means at least one marker was dragged since the last full
	// regeneration. It is descriptive only and never generated directly.
	Custom
)

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Quadratic:
		return "quadratic"
	case Random:
		return "random"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// Marker binds one external item to a (slot, delay) pair. X and Y live in
// normalized [0,100] space; Delay is derived and must always equal
// Seconds(Y, max) under the current max delay bound.
type Marker struct {
	Index int     // position in the external collection, never reassigned
	Key   string  // opaque external identifier, carried for display only
	X     float64 // horizontal slot
	Y     float64 // normalized delay, the only field dragging mutates
	Delay float64 // real seconds
}

// Bounds for the max delay setting, in seconds.
const (
	MinDelayBound   = 1.0
	MaxDelayBound   = 60.0
	DefaultMaxDelay = 10.0
)

// ClampMaxDelay forces v into the valid [1,60] max delay range.
func ClampMaxDelay(v float64) float64 {
	if v < MinDelayBound {
		return MinDelayBound
	}
	if v > MaxDelayBound {
		return MaxDelayBound
	}
	return v
}

// ParseMaxDelay parses raw text input for the max delay bound. Empty or
// non-numeric input falls back to the default; out-of-range values are
// clamped rather than rejected.
func ParseMaxDelay(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultMaxDelay
	}
	return ClampMaxDelay(v)
}

// Seconds converts a normalized delay to real seconds under a max bound.
func Seconds(y, maxDelay float64) float64 {
	return y / 100 * maxDelay
}

// Normalized is the inverse of Seconds.
func Normalized(seconds, maxDelay float64) float64 {
	if maxDelay == 0 {
		return 0
	}
	return seconds / maxDelay * 100
}

// Clamp01e2 forces a normalized coordinate into [0,100].
func Clamp01e2(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Generate produces one marker per key for the given preset. Slot positions
// use t = i/max(n-1,1) so a single item lands at t=0 instead of dividing by
// zero. Flip replaces y with 100-y after the formula; the delay is computed
// from the final y. Result order matches input order.
func Generate(keys []string, kind Kind, flipped bool, maxDelay float64) []Marker {
	n := len(keys)
	if n == 0 {
		return nil
	}

	span := float64(n - 1)
	if span < 1 {
		span = 1
	}

	markers := make([]Marker, n)
	for i, key := range keys {
		t := float64(i) / span

		var x, y float64
		switch kind {
		case Quadratic:
			x = t * 100
			y = t * t * 100
		case Random:
			x = rand.Float64() * 100
			y = rand.Float64() * 100
		default:
			x = t * 100
			y = t * 100
		}

		if flipped {
			y = 100 - y
		}

		markers[i] = Marker{
			Index: i,
			Key:   key,
			X:     x,
			Y:     y,
			Delay: Seconds(y, maxDelay),
		}
	}
	return markers
}
