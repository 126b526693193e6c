package main

import (
	"os"

	"agendavet/config"
	"agendavet/helper"
	"agendavet/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msgf("Migration action is required: %s, %s, %s or %s",
			helper.ActionUp, helper.ActionDown, helper.ActionStepUp, helper.ActionDrop)
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
