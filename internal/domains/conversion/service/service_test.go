package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epoch/config"
	"epoch/infras/otel/mocks"
	"epoch/internal/domains/conversion/model/dto"
	"epoch/internal/domains/conversion/service"
	"epoch/shared/failure"
)

func TestConversionService_Convert(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.DefaultTimezone = "Asia/Jakarta"

	svc := service.New(cfg, mocks.NewOtel())

	tests := []struct {
		name     string
		req      dto.ConvertRequest
		want     dto.ConvertResponse
		wantErr  bool
		wantCode int
	}{
		{
			name: "compact conversion in Sydney",
			req:  dto.ConvertRequest{Timestamp: "1747510600", Timezone: "Australia/Sydney", Mode: "compact"},
			want: dto.ConvertResponse{
				Timestamp:     1747510600,
				Timezone:      "Australia/Sydney",
				Mode:          "compact",
				FormattedDate: "18/05/2025 05:36",
			},
		},
		{
			name: "empty timezone uses the configured default",
			req:  dto.ConvertRequest{Timestamp: "1747510600", Mode: "iso"},
			want: dto.ConvertResponse{
				Timestamp: 1747510600,
				Timezone:  "Asia/Jakarta",
				Mode:      "iso",
				// 02:36:40 on May 18 in WIB (UTC+7)
				FormattedDate: "2025-05-18T02:36:40",
			},
		},
		{
			name: "unrecognized mode renders as default",
			req:  dto.ConvertRequest{Timestamp: "1747510600", Timezone: "UTC", Mode: "unix"},
			want: dto.ConvertResponse{
				Timestamp:     1747510600,
				Timezone:      "UTC",
				Mode:          "default",
				FormattedDate: "Sat, 17 May 2025, 7:36 pm",
			},
		},
		{
			name:     "negative timestamp is rejected",
			req:      dto.ConvertRequest{Timestamp: "-1", Timezone: "UTC"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "timestamp past the upper bound is rejected",
			req:      dto.ConvertRequest{Timestamp: "4102444801", Timezone: "UTC"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "non-numeric timestamp is rejected",
			req:      dto.ConvertRequest{Timestamp: "soon", Timezone: "UTC"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestConversionService_Convert_FallsBackToUTCWithoutConfig(t *testing.T) {
	svc := service.New(&config.Config{}, mocks.NewOtel())

	res, err := svc.Convert(context.Background(), dto.ConvertRequest{Timestamp: "1747510600", Mode: "iso"})

	require.NoError(t, err)
	assert.Equal(t, "UTC", res.Timezone)
	assert.Equal(t, "2025-05-17T19:36:40", res.FormattedDate)
}

func TestConversionService_Now(t *testing.T) {
	svc := service.New(&config.Config{}, mocks.NewOtel())

	res := svc.Now(context.Background())

	assert.Positive(t, res.Timestamp)
	assert.NotEmpty(t, res.Timezone)
}
