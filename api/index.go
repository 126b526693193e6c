package handler

import (
	"net/http"
	"sync"

	"agendavet/config"
	"agendavet/di"
	"agendavet/shared/logger"

	transport "agendavet/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless net/http entrypoint, building the dependency graph on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
