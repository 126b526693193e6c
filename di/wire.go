//go:build wireinject
// +build wireinject

package di

import (
	"agendavet/config"
	"agendavet/infras/otel"
	"agendavet/infras/postgres"
	"agendavet/transport/http"
	"agendavet/transport/http/middleware"
	"agendavet/transport/http/router"

	"github.com/google/wire"

	consultationRepository "agendavet/internal/domains/consultation/repository"
	consultationService "agendavet/internal/domains/consultation/service"
	petRepository "agendavet/internal/domains/pet/repository"
	petService "agendavet/internal/domains/pet/service"
	consultationHandler "agendavet/internal/handlers/consultation"
	petHandler "agendavet/internal/handlers/pet"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	wire.Bind(new(http.Database), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var petDomain = wire.NewSet(
	petRepository.New,
	petService.New,
)

var consultationDomain = wire.NewSet(
	consultationRepository.New,
	consultationService.New,
)

var domains = wire.NewSet(
	petDomain,
	consultationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	petHandler.New,
	consultationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
