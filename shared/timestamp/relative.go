package timestamp

import (
	"fmt"
	"math"
	"time"
)

// RelativeTime expresses the distance between target and now as a signed
// English phrase, e.g. "in 2 days" or "5 minutes ago".
//
// Each unit is rounded from the next-smaller already-rounded unit rather than
// recomputed from the raw millisecond difference, so rounding compounds up the
// chain: 89.5s away rounds to 90s, then to 2 minutes.
func RelativeTime(target, now time.Time) string {
	diffMs := target.UnixMilli() - now.UnixMilli()

	diffSec := roundHalf(float64(diffMs) / 1000)
	diffMin := roundHalf(float64(diffSec) / 60)
	diffHour := roundHalf(float64(diffMin) / 60)
	diffDay := roundHalf(float64(diffHour) / 24)

	switch {
	case abs(diffDay) >= 365:
		return phrase(roundHalf(float64(diffDay)/365), "year")
	case abs(diffDay) >= 7:
		return phrase(roundHalf(float64(diffDay)/7), "week")
	case abs(diffSec) < 60:
		return phrase(diffSec, "second")
	case abs(diffMin) < 60:
		return phrase(diffMin, "minute")
	case abs(diffHour) < 24:
		return phrase(diffHour, "hour")
	default:
		return phrase(diffDay, "day")
	}
}

// phrase renders a signed magnitude in the chosen unit. The sign check is
// strictly positive, so a zero magnitude lands in the "ago" branch and renders
// as "0 seconds ago".
func phrase(n int64, unit string) string {
	if n != 1 && n != -1 {
		unit += "s"
	}

	if n > 0 {
		return fmt.Sprintf("in %d %s", n, unit)
	}

	return fmt.Sprintf("%d %s ago", -n, unit)
}

func roundHalf(v float64) int64 {
	return int64(math.Round(v))
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
