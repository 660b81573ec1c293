package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"epoch/config"
	"epoch/infras/otel"
	"epoch/internal/domains/conversion/model/dto"
	"epoch/shared/constant"
	"epoch/shared/failure"
	"epoch/shared/timestamp"
)

type Conversion interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
	Now(ctx context.Context) dto.NowResponse
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Conversion {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

// Convert validates the raw timestamp, resolves the target timezone and mode,
// and runs the formatting core once.
func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	ts := timestamp.ValidateTimestamp(req.Timestamp)
	if ts == nil {
		log.Error().Str("timestamp", req.Timestamp).Msg("rejected timestamp input")

		return res, failure.InvalidTimestamp // nolint:wrapcheck
	}

	tz := req.Timezone
	if tz == "" {
		tz = s.cfg.App.DefaultTimezone
	}

	if tz == "" {
		tz = constant.TimezoneUTC
	}

	// unrecognized mode strings from links render as default, per the page contract
	mode := timestamp.ParseDisplayMode(req.Mode)

	result, err := timestamp.ConvertTimestamp(*ts, tz, mode)
	if err != nil {
		log.Error().Err(err).Int64("timestamp", *ts).Str("timezone", tz).Msg("failed to convert timestamp")

		return res, err // nolint:wrapcheck
	}

	scope.SetAttribute("conversion.mode", string(mode))
	scope.SetAttribute("conversion.timezone", tz)

	res.FromResult(result)

	return res, nil
}

// Now reports the current Unix timestamp alongside the host timezone, for
// pre-filling the page.
func (s *serviceImpl) Now(ctx context.Context) dto.NowResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()

	return dto.NowResponse{
		Timestamp: timestamp.GetCurrentTimestamp(),
		Timezone:  timestamp.CurrentTimezone(),
	}
}
