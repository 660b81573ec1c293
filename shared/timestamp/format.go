package timestamp

import (
	"time"

	"github.com/rs/zerolog/log"

	"epoch/shared/failure"
)

// DisplayMode selects one of the five fixed output formats.
type DisplayMode string

const (
	ModeDefault  DisplayMode = "default"
	ModeDate     DisplayMode = "date"
	ModeCompact  DisplayMode = "compact"
	ModeISO      DisplayMode = "iso"
	ModeRelative DisplayMode = "relative"
)

const (
	layoutDefault = "Mon, 2 Jan 2006, 3:04 pm"
	layoutDate    = "2 January 2006"
	layoutCompact = "02/01/2006 15:04"
	layoutISO     = "2006-01-02T15:04:05"
)

// IsValidDisplayMode reports whether s names one of the five display modes.
func IsValidDisplayMode(s string) bool {
	switch DisplayMode(s) {
	case ModeDefault, ModeDate, ModeCompact, ModeISO, ModeRelative:
		return true
	}

	return false
}

// ParseDisplayMode coerces a raw string to a DisplayMode. Unrecognized values
// map to ModeDefault; validation belongs at the boundary, not here.
func ParseDisplayMode(s string) DisplayMode {
	if IsValidDisplayMode(s) {
		return DisplayMode(s)
	}

	return ModeDefault
}

// FormatTimestamp renders a valid timestamp as text in the requested timezone
// and mode. A negative timestamp or empty timezone is a contract violation and
// fails loudly; callers are expected to have validated first. An unrecognized
// timezone identifier is not fatal: the formatter logs a warning and renders
// in UTC instead. An unknown mode value falls through to the default
// rendering.
func FormatTimestamp(ts int64, timezone string, mode DisplayMode) (string, error) {
	if ts < MinTimestamp {
		return "", failure.InvalidTimestamp
	}

	if timezone == "" {
		return "", failure.InvalidTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn().
			Err(err).
			Str("timezone", timezone).
			Msg("Unrecognized timezone, retrying in UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")

		loc = time.UTC
	}

	t := time.Unix(ts, 0).In(loc)

	switch mode {
	case ModeDate:
		return t.Format(layoutDate), nil
	case ModeCompact:
		return t.Format(layoutCompact), nil
	case ModeISO:
		return t.Format(layoutISO), nil
	case ModeRelative:
		return RelativeTime(t, time.Now()), nil
	default:
		return t.Format(layoutDefault), nil
	}
}
