package analysis

import "math"

// SkillLevel derives the stored integer skill level from a confidence
// fraction: round(confidence * 5). The persistence sink and any display
// layer must compute it identically, so it lives here as a pure function.
func SkillLevel(confidence float64) int {
	return int(math.Round(confidence * 5))
}
