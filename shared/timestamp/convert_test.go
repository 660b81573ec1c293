package timestamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epoch/shared/failure"
	"epoch/shared/timestamp"
)

func TestConvertTimestamp(t *testing.T) {
	result, err := timestamp.ConvertTimestamp(sampleTimestamp, "Australia/Sydney", timestamp.ModeCompact)

	require.NoError(t, err)
	assert.Equal(t, sampleTimestamp, result.Timestamp)
	assert.Equal(t, "Australia/Sydney", result.Timezone)
	assert.Equal(t, timestamp.ModeCompact, result.Mode)
	assert.Equal(t, "18/05/2025 05:36", result.FormattedDate)
}

func TestConvertTimestamp_PropagatesFormatterFailure(t *testing.T) {
	_, err := timestamp.ConvertTimestamp(-1, "UTC", timestamp.ModeDefault)

	assert.ErrorIs(t, err, failure.InvalidTimestamp)
}

func TestSafeFormatTimestamp(t *testing.T) {
	got := timestamp.SafeFormatTimestamp(sampleTimestamp, "Australia/Sydney", timestamp.ModeDate, "Error occurred")
	assert.Equal(t, "18 May 2025", got)

	got = timestamp.SafeFormatTimestamp(-1, "UTC", timestamp.ModeDefault, "Error occurred")
	assert.Equal(t, "Error occurred", got)

	got = timestamp.SafeFormatTimestamp(sampleTimestamp, "", timestamp.ModeDefault, "n/a")
	assert.Equal(t, "n/a", got)
}
