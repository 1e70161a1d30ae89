package stats

import "math"

// Progress returns the nearest-integer percentage of completed out of
// total, clamped to [0, 100]. A zero total yields 0.
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	pct := int(math.Round(float64(completed) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
