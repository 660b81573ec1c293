package timestamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"epoch/shared/timestamp"
)

func TestValidateTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  *int64
		valid bool
	}{
		{name: "plain timestamp", raw: "1747510600", want: ptr(1747510600), valid: true},
		{name: "zero is the lower bound", raw: "0", want: ptr(0), valid: true},
		{name: "upper bound inclusive", raw: "4102444800", want: ptr(4102444800), valid: true},
		{name: "one past the upper bound", raw: "4102444801", valid: false},
		{name: "negative", raw: "-1", valid: false},
		{name: "fractional truncates at the dot", raw: "1.5", want: ptr(1), valid: true},
		{name: "leading whitespace skipped", raw: "  42", want: ptr(42), valid: true},
		{name: "explicit plus sign", raw: "+7", want: ptr(7), valid: true},
		{name: "trailing garbage ignored", raw: "1000abc", want: ptr(1000), valid: true},
		{name: "empty string", raw: "", valid: false},
		{name: "no leading digits", raw: "abc", valid: false},
		{name: "sign without digits", raw: "-", valid: false},
		{name: "digit run overflowing int64", raw: "99999999999999999999", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timestamp.ValidateTimestamp(tt.raw)

			if !tt.valid {
				assert.Nil(t, got)

				return
			}

			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

// IsValidTimestamp is intentionally looser than ValidateTimestamp: it guards
// against negative instants but does not enforce the upper bound. Keep both
// behaviors; the asymmetry is part of the contract.
func TestIsValidTimestamp(t *testing.T) {
	assert.True(t, timestamp.IsValidTimestamp(0))
	assert.True(t, timestamp.IsValidTimestamp(1747510600))
	assert.True(t, timestamp.IsValidTimestamp(timestamp.MaxTimestamp+1))
	assert.False(t, timestamp.IsValidTimestamp(-1))
}

func TestGetCurrentTimestamp(t *testing.T) {
	now := timestamp.GetCurrentTimestamp()

	assert.GreaterOrEqual(t, now, int64(1700000000))
	assert.LessOrEqual(t, now, timestamp.MaxTimestamp)
}

func TestCurrentTimezone(t *testing.T) {
	assert.NotEmpty(t, timestamp.CurrentTimezone())
}

func ptr(v int64) *int64 {
	return &v
}
