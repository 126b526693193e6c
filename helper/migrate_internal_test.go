package helper

import (
	"testing"

	"agendavet/config"

	"github.com/stretchr/testify/assert"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "vet"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "agenda"
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	return cfg
}

func TestDatabaseURL(t *testing.T) {
	assert.Equal(t,
		"postgres://vet:secret@db:5432/agenda?sslmode=disable&x-migrations-table=schema_migrations",
		databaseURL(newConfig()),
	)
}

func TestDatabaseURL_WithPrefix(t *testing.T) {
	cfg := newConfig()
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = ""

	assert.Equal(t, "postgres://vet:secret@db:5432/test_agenda?sslmode=disable", databaseURL(cfg))
}

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(newConfig(), "sideways")

	assert.ErrorIs(t, err, errUnknownAction)
}
