package records

import (
	"fmt"
	"math"
)

// FormatDuration renders a run length as "42s", or "3m 5s" from one minute on.
func FormatDuration(durationMs float64) string {
	sec := durationMs / 1000
	minutes := math.Floor(sec / 60)
	if minutes > 0 {
		return fmt.Sprintf("%.0fm %.0fs", minutes, math.Round(math.Mod(sec, 60)))
	}
	return fmt.Sprintf("%.0fs", math.Round(sec))
}
