package router

import (
	"agendavet/internal/handlers/consultation"
	"agendavet/internal/handlers/pet"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Pet          pet.Handler
	Consultation consultation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Pet.Router(routerGroup)
		r.DomainHandlers.Consultation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
