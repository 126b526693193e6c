package main

import (
	"agendavet/config"
	"agendavet/di"
	"agendavet/helper"
	"agendavet/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Agenda Vet API
// @version 1.0
// @description Pets and consultations of a veterinary clinic.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
