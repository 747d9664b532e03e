package player

import (
	"math"
	"time"
)

// ProgressFraction returns position/duration wrapped modulo 1 and clamped
// to [0, 1]. An unknown (non-positive) duration yields 0.
func ProgressFraction(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	ratio := math.Mod(position.Seconds()/duration.Seconds(), 1)
	if math.IsNaN(ratio) || ratio < 0 {
		return 0
	}
	return min(ratio, 1)
}
