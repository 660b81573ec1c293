package dto

import (
	"epoch/shared/timestamp"
)

// ConvertRequest is the JSON body of POST /v1/convert. The timestamp arrives
// as a string because it is untrusted input; it only becomes a number after
// timestamp.ValidateTimestamp accepts it. Mode is validated at the boundary,
// never inside the formatting logic.
type ConvertRequest struct {
	Timestamp string `json:"timestamp" validate:"required"`
	Timezone  string `json:"timezone"`
	Mode      string `json:"mode" validate:"omitempty,displaymode"`
}

// ConvertResponse mirrors timestamp.ConversionResult on the wire.
type ConvertResponse struct {
	Timestamp     int64  `json:"timestamp"`
	Timezone      string `json:"timezone"`
	Mode          string `json:"mode"`
	FormattedDate string `json:"formattedDate"`
}

func (res *ConvertResponse) FromResult(result timestamp.ConversionResult) {
	res.Timestamp = result.Timestamp
	res.Timezone = result.Timezone
	res.Mode = string(result.Mode)
	res.FormattedDate = result.FormattedDate
}

// NowResponse carries the current Unix timestamp and the host timezone.
type NowResponse struct {
	Timestamp int64  `json:"timestamp"`
	Timezone  string `json:"timezone"`
}
