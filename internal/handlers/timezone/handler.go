package timezone

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"epoch/infras/otel"
	"epoch/internal/domains/timezone/service"
	"epoch/shared/constant"
	"epoch/transport/http/response"
)

type Handler struct {
	service service.Timezone
	otel    otel.Otel
}

func New(service service.Timezone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/timezones", handler.List)
}

// List returns the selectable timezone catalog.
// @Summary List available timezones
// @Description Return the catalog of selectable IANA timezone identifiers with their current UTC offsets.
// @Tags Timezone
// @Produce json
// @Success 200 {array} model.Zone "Timezone catalog"
// @Router /v1/timezones [get]
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.List(ctx))
}
