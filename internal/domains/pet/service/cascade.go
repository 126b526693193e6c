package service

import (
	"context"
	"fmt"

	consultationModel "agendavet/internal/domains/consultation/model"
	"agendavet/internal/domains/pet/model"
	"agendavet/shared"
	"agendavet/shared/constant"
	"agendavet/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// deleteWithConsultations deletes the consultations of a pet and then the pet itself in one
// transaction, returning how many consultations were removed. Nothing is committed when the
// pet row is already gone.
func (s *serviceImpl) deleteWithConsultations(ctx context.Context, id int64) (removed int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.deleteWithConsultations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		count, err := s.consultations.DeleteTx(ctx, tx, consultationModel.FilterByPet(id))
		if err != nil {
			log.Error().Err(err).Int64("pet_id", id).Msg("failed to delete pet consultations")

			return fmt.Errorf("failed to delete pet consultations: %w", err)
		}

		deleted, err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Int64("id", id).Msg("failed to delete pet")

			return fmt.Errorf("failed to delete pet: %w", err)
		}

		if deleted == 0 {
			return failure.NotFound(msgPetNotFound)
		}

		removed = count

		return nil
	})
	if err != nil {
		return 0, failure.StorageFailure(err)
	}

	return removed, nil
}
