package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"epoch/shared/validator"
)

type convertPayload struct {
	Timestamp string `json:"timestamp" validate:"required"`
	Timezone  string `json:"timezone"`
	Mode      string `json:"mode" validate:"omitempty,displaymode"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"timestamp":"1747510600","timezone":"Australia/Sydney","mode":"compact"}`,
		},
		{
			name: "mode omitted is fine",
			body: `{"timestamp":"1747510600","timezone":"UTC"}`,
		},
		{
			name:    "missing timestamp",
			body:    `{"timezone":"UTC"}`,
			wantErr: "Timestamp is required",
		},
		{
			name:    "unrecognized mode",
			body:    `{"timestamp":"1","mode":"unix"}`,
			wantErr: "Mode must be one of default, date, compact, iso or relative",
		},
		{
			name:    "malformed json",
			body:    `{"timestamp":`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := convertPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("relative", "displaymode"))
	assert.Error(t, validator.ValidateVar("yesterday", "displaymode"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
