package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"agendavet/infras/otel/mocks"
	"agendavet/infras/postgres"
	"agendavet/shared"
	"agendavet/shared/dto"
	"agendavet/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type owner struct {
	ID   int64  `db:"id"   insert:"false"`
	Name string `db:"name"`
}

type visit struct {
	ID        int64          `db:"id"         insert:"false"`
	OwnerID   int64          `db:"owner_id"`
	Reason    string         `db:"reason"`
	OwnerName sql.NullString `db:"owner_name" table:"owners" column:"name"`
	Skipped   string         `db:"-"`
	Plain     string
}

func (visit) GetJoinQuery() string {
	return "LEFT JOIN owners ON owners.id = visits.owner_id"
}

func newVisitRepository() Repository[visit] {
	return NewRepository[visit]("visit", "visits", "id", &postgres.Connection{}, mocks.NewOtel())
}

func TestNewRepository(t *testing.T) {
	repo := newVisitRepository()

	assert.Equal(t, []string{"owner_id", "reason"}, repo.InsertColumns)
	assert.Equal(t, "LEFT JOIN owners ON owners.id = visits.owner_id", repo.join)
	assert.Equal(t, []column{
		{name: "id", table: "visits"},
		{name: "owner_id", table: "visits"},
		{name: "reason", table: "visits"},
		{name: "name", table: "owners", alias: "owner_name"},
	}, repo.columns)
}

func TestNewRepository_WithoutJoin(t *testing.T) {
	repo := NewRepository[owner]("owner", "owners", "id", nil, mocks.NewOtel())

	assert.Empty(t, repo.join)
	assert.Equal(t, []string{"name"}, repo.InsertColumns)
}

func TestRepository_getSelectQuery(t *testing.T) {
	repo := newVisitRepository()

	assert.Equal(t,
		"visits.id, visits.owner_id, visits.reason, owners.name AS owner_name",
		repo.getSelectQuery(context.Background()),
	)
	assert.Equal(t, "visits.id, visits.reason", repo.getSelectQuery(context.Background(), "id", "reason"))
}

func TestRepository_insertQuery(t *testing.T) {
	repo := newVisitRepository()

	assert.Equal(t,
		"INSERT INTO visits (owner_id, reason) VALUES (:owner_id, :reason) RETURNING id",
		repo.insertQuery(),
	)
}

func TestUpdateSet(t *testing.T) {
	set := updateSet(shared.TransformFields(visit{OwnerID: 3, Reason: "checkup"}))

	assert.Equal(t, "owner_id = :owner_id, reason = :reason", set)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newVisitRepository()

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), shared.FilterByID(int64(5), "id", "visits"))
	assert.Equal(t, " WHERE (visits.id = :id) ", where)
	assert.Equal(t, map[string]any{"id": int64(5)}, args)
}

func TestRepository_RequiresFilter(t *testing.T) {
	repo := newVisitRepository()
	ctx := context.Background()

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	_, err = repo.Update(ctx, map[string]any{"reason": "x"}, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	_, err = repo.Delete(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	_, err = repo.DeleteTx(ctx, nil, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

func TestRepository_translateError(t *testing.T) {
	repo := newVisitRepository()

	tests := []struct {
		name     string
		err      error
		wantKind string
	}{
		{
			name:     "invalid datetime literal",
			err:      &pq.Error{Code: "22007", Message: `invalid input syntax for type date: "2025-13-01"`},
			wantKind: failure.KindValidation,
		},
		{
			name:     "numeric out of range",
			err:      &pq.Error{Code: "22003", Message: "integer out of range"},
			wantKind: failure.KindValidation,
		},
		{
			name:     "not null violation",
			err:      &pq.Error{Code: "23502", Message: `null value in column "name" violates not-null constraint`},
			wantKind: failure.KindValidation,
		},
		{
			name:     "undefined table",
			err:      &pq.Error{Code: "42P01", Message: `relation "visits" does not exist`},
			wantKind: failure.KindStorageFailure,
		},
		{
			name:     "connection error",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: failure.KindStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.translateError("failed to insert data", tt.err)

			assert.Equal(t, tt.wantKind, failure.GetKind(err))

			if tt.wantKind == failure.KindStorageFailure {
				assert.ErrorIs(t, err, tt.err)
				assert.Contains(t, err.Error(), "failed to insert data (visit)")
			}
		})
	}
}
