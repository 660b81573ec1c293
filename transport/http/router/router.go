package router

import (
	"github.com/go-chi/chi/v5"

	"epoch/internal/handlers/conversion"
	"epoch/internal/handlers/timezone"
	"epoch/web"
)

type DomainHandlers struct {
	Conversion conversion.Handler
	Timezone   timezone.Handler
	Page       web.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", r.DomainHandlers.Page.Index)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Conversion.Router(routerGroup)
		r.DomainHandlers.Timezone.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
