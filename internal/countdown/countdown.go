// Package countdown implements the pure date-diff arithmetic behind
// every countdown display. Callers are expected to re-evaluate at least
// once per minute while a countdown is on screen.
package countdown

import "time"

// Remaining is a whole-unit countdown. Days and Hours are never
// negative and Hours is always in [0, 24).
type Remaining struct {
	Days  int
	Hours int
}

// Until returns the whole days and hours from now until target. Targets
// at or before now clamp to zero; past events never show a negative
// countdown.
func Until(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:  int(diff / (24 * time.Hour)),
		Hours: int((diff % (24 * time.Hour)) / time.Hour),
	}
}

// Progress reports how much of the wait between added and target has
// elapsed by now, clamped to [0, 1]. Degenerate windows (target not
// after added) count as fully elapsed.
func Progress(added, target, now time.Time) float64 {
	total := target.Sub(added)
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(added)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}
