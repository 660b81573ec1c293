package timestamp

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// MinTimestamp is the Unix epoch itself, the earliest convertible instant.
	MinTimestamp int64 = 0
	// MaxTimestamp is Jan 1 2100 00:00:00 UTC, the latest convertible instant.
	MaxTimestamp int64 = 4102444800
)

// ValidateTimestamp turns a raw string into a trusted timestamp, or nil when
// the input is invalid. Parsing is permissive: leading whitespace is skipped,
// an optional sign is accepted, and the integer run stops at the first
// non-digit character, so "1.5" parses as 1. Values below MinTimestamp or
// above MaxTimestamp are rejected. Invalidity is always signaled by a nil
// return, never by an error.
func ValidateTimestamp(raw string) *int64 {
	s := strings.TrimSpace(raw)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == start {
		return nil
	}

	value, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		// digit run overflows int64, far outside the supported range anyway
		return nil
	}

	if value < MinTimestamp || value > MaxTimestamp {
		return nil
	}

	return &value
}

// IsValidTimestamp reports whether an already-typed timestamp is acceptable to
// the formatter. It only requires a non-negative value and deliberately does
// NOT enforce MaxTimestamp, so it is looser than ValidateTimestamp. The
// asymmetry is intentional: string input is bounded at the trust boundary,
// while numeric callers are only guarded against impossible instants.
func IsValidTimestamp(value int64) bool {
	return value >= MinTimestamp
}

// GetCurrentTimestamp returns the current Unix timestamp in whole seconds.
func GetCurrentTimestamp() int64 {
	return time.Now().UnixMilli() / 1000
}

// CurrentTimezone returns the host's local timezone identifier on a
// best-effort basis, for pre-selecting the visitor's zone. Falls back to UTC
// when the host does not expose an IANA name.
func CurrentTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}

	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}

	return "UTC"
}
