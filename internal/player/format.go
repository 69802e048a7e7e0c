package player

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as m:ss
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ProgressPercent returns current as a percentage of duration; 0 while the
// duration is unknown
func ProgressPercent(current, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return current / duration * 100
}
