package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Consultation=MockConsultationRepository

import (
	"context"

	"agendavet/infras/otel"
	"agendavet/infras/postgres"
	"agendavet/internal/domains/consultation/model"
	gDto "agendavet/shared/dto"
	gRepo "agendavet/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Consultation interface {
	Insert(ctx context.Context, consultation model.Consultation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Consultation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Consultation, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Consultation]
}

func New(db *postgres.Connection, otel otel.Otel) Consultation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consultation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
