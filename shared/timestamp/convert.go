package timestamp

import (
	"github.com/rs/zerolog/log"
)

// ConversionResult packages a conversion's inputs together with its output.
type ConversionResult struct {
	Timestamp     int64       `json:"timestamp"`
	Timezone      string      `json:"timezone"`
	Mode          DisplayMode `json:"mode"`
	FormattedDate string      `json:"formattedDate"`
}

// ConvertTimestamp formats once and returns inputs and output as a single
// value. Formatter failures propagate unchanged.
func ConvertTimestamp(ts int64, timezone string, mode DisplayMode) (ConversionResult, error) {
	formatted, err := FormatTimestamp(ts, timezone, mode)
	if err != nil {
		return ConversionResult{}, err
	}

	return ConversionResult{
		Timestamp:     ts,
		Timezone:      timezone,
		Mode:          mode,
		FormattedDate: formatted,
	}, nil
}

// SafeFormatTimestamp formats like FormatTimestamp but absorbs any failure and
// returns the caller-supplied fallback instead. This is the only path where
// formatter failures are intentionally swallowed, and even then a diagnostic
// is logged.
func SafeFormatTimestamp(ts int64, timezone string, mode DisplayMode, fallback string) string {
	formatted, err := FormatTimestamp(ts, timezone, mode)
	if err != nil {
		log.Warn().
			Err(err).
			Int64("timestamp", ts).
			Str("timezone", timezone).
			Str("mode", string(mode)).
			Msg("Formatting failed, returning fallback value")

		return fallback
	}

	return formatted
}
