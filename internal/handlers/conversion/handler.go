package conversion

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"epoch/infras/otel"
	"epoch/internal/domains/conversion/model/dto"
	"epoch/internal/domains/conversion/service"
	"epoch/shared/constant"
	"epoch/shared/validator"
	"epoch/transport/http/response"
)

type Handler struct {
	service service.Conversion
	otel    otel.Otel
}

func New(service service.Conversion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/convert", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ConvertQuery)
		routerGroup.Post("/", handler.Convert)
	})
	router.Get("/now", handler.Now)
}

// Convert converts a Unix timestamp supplied as a JSON body.
// @Summary Convert a Unix timestamp
// @Description Convert an integer Unix timestamp to a human-readable string in the requested timezone and display mode.
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse "Conversion result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert timestamp")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ConvertQuery converts a Unix timestamp supplied as query parameters.
// @Summary Convert a Unix timestamp via query parameters
// @Description Convert a timestamp using ?timestamp=&tz=&mode= query parameters. Unrecognized modes render as default.
// @Tags Conversion
// @Produce json
// @Param timestamp query string true "Unix timestamp in seconds"
// @Param tz query string false "IANA timezone identifier"
// @Param mode query string false "Display mode: default, date, compact, iso or relative"
// @Success 200 {object} dto.ConvertResponse "Conversion result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/convert [get]
func (handler *Handler) ConvertQuery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertQuery")
	defer scope.End()

	query := request.URL.Query()
	req := dto.ConvertRequest{
		Timestamp: query.Get(constant.RequestParamTimestamp),
		Timezone:  query.Get(constant.RequestParamTimezone),
		Mode:      query.Get(constant.RequestParamMode),
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert timestamp")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Now reports the current Unix timestamp and the host timezone.
// @Summary Current Unix timestamp
// @Description Return the current Unix timestamp in seconds together with the detected host timezone.
// @Tags Conversion
// @Produce json
// @Success 200 {object} dto.NowResponse "Current timestamp"
// @Router /v1/now [get]
func (handler *Handler) Now(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Now")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Now(ctx))
}
