package web

import (
	"embed"
	"html/template"
	"net/http"

	"epoch/config"
	"epoch/internal/domains/timezone/model"
	"epoch/internal/domains/timezone/service"
	"epoch/shared/constant"
	"epoch/shared/logger"
	"epoch/shared/timestamp"
)

//go:embed index.html
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "index.html"))

type pageData struct {
	AppName      string
	Zones        []model.Zone
	Modes        []timestamp.DisplayMode
	DetectedZone string
	Now          int64
}

// Handler renders the single page. All conversion logic lives behind the API;
// the page only receives the catalog and defaults it needs to populate its
// controls.
type Handler struct {
	catalog service.Timezone
	cfg     *config.Config
}

func New(catalog service.Timezone, cfg *config.Config) Handler {
	return Handler{
		catalog: catalog,
		cfg:     cfg,
	}
}

func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	data := pageData{
		AppName: handler.cfg.App.Name,
		Zones:   handler.catalog.List(request.Context()),
		Modes: []timestamp.DisplayMode{
			timestamp.ModeDefault,
			timestamp.ModeDate,
			timestamp.ModeCompact,
			timestamp.ModeISO,
			timestamp.ModeRelative,
		},
		DetectedZone: timestamp.CurrentTimezone(),
		Now:          timestamp.GetCurrentTimestamp(),
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)

	if err := pageTemplate.Execute(writer, data); err != nil {
		logger.ErrorWithStack(err)
	}
}
