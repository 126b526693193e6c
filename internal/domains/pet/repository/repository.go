package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Pet=MockPetRepository

import (
	"context"

	"agendavet/infras/otel"
	"agendavet/infras/postgres"
	"agendavet/internal/domains/pet/model"
	gDto "agendavet/shared/dto"
	gRepo "agendavet/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Pet interface {
	Insert(ctx context.Context, pet model.Pet) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Pet, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pet, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Pet]
}

func New(db *postgres.Connection, otel otel.Otel) Pet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pet](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
