package router

import (
	"github.com/go-chi/chi/v5"

	"freeroom/internal/handlers/availability"
	"freeroom/internal/handlers/studio"
	"freeroom/transport/http/middleware"
)

type DomainHandlers struct {
	Availability availability.Handler
	Studio       studio.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.RequestID)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Studio.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
