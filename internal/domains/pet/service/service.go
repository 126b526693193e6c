package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Pet=MockPetService

import (
	"context"
	"fmt"

	"agendavet/infras/otel"
	"agendavet/infras/postgres"
	consultationRepo "agendavet/internal/domains/consultation/repository"
	"agendavet/internal/domains/pet/model"
	"agendavet/internal/domains/pet/model/dto"
	"agendavet/internal/domains/pet/repository"
	"agendavet/shared"
	"agendavet/shared/constant"
	"agendavet/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgPetNotFound = "pet not found"

type Pet interface {
	GetAll(ctx context.Context, search string) ([]dto.PetResponse, error)
	Get(ctx context.Context, id int64) (dto.PetResponse, error)
	Create(ctx context.Context, req dto.CreatePetRequest) (dto.PetResponse, error)
	Update(ctx context.Context, req dto.UpdatePetRequest, id int64) (dto.PetResponse, error)
	Delete(ctx context.Context, id int64) (dto.DeletePetResponse, error)
}

type serviceImpl struct {
	repo          repository.Pet
	consultations consultationRepo.Consultation
	tx            postgres.Transactor
	otel          otel.Otel
}

func New(repo repository.Pet, consultations consultationRepo.Consultation, tx postgres.Transactor, otel otel.Otel) Pet {
	return &serviceImpl{
		repo:          repo,
		consultations: consultations,
		tx:            tx,
		otel:          otel,
	}
}

// GetAll lists pets by name. A non-blank search keeps the pets whose name or owner contains it,
// and reports an empty result when none do.
func (s *serviceImpl) GetAll(ctx context.Context, search string) (res []dto.PetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, searching := model.SearchFilter(search)
	if searching {
		scope.SetAttribute(constant.RequestParamSearch, search)
	}

	pets, err := s.repo.GetAll(ctx, model.DefaultOrder(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pets")

		return nil, failure.StorageFailure(fmt.Errorf("failed to get pets: %w", err))
	}

	if searching && len(pets) == 0 {
		return nil, failure.EmptyResult(fmt.Sprintf("no pets match %q", search))
	}

	return dto.FromModels(pets), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pet, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pet)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Pet, error) {
	pet, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get pet")

		return pet, failure.StorageFailure(fmt.Errorf("failed to get pet: %w", err))
	}

	if pet.ID == 0 {
		return pet, failure.NotFound(msgPetNotFound)
	}

	return pet, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePetRequest) (res dto.PetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pet := req.ToModel()

	pet.ID, err = s.repo.Insert(ctx, pet)
	if err != nil {
		log.Error().Err(err).Msg("failed to create pet")

		return res, failure.StorageFailure(fmt.Errorf("failed to create pet: %w", err))
	}

	log.Info().Int64("id", pet.ID).Msg("pet created")

	res.FromModel(pet)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePetRequest, id int64) (res dto.PetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	updatedFields := shared.TransformFields(req.ToModel())

	affected, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update pet")

		return res, failure.StorageFailure(fmt.Errorf("failed to update pet: %w", err))
	}

	if affected == 0 {
		return res, failure.NotFound(msgPetNotFound)
	}

	pet, err := s.get(postgres.ReadPrimary(ctx), id)
	if err != nil {
		return res, err
	}

	res.FromModel(pet)

	return res, nil
}

// Delete removes the pet together with every consultation that references it.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.DeletePetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pet.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(postgres.ReadPrimary(ctx), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check pet existence")

		return res, failure.StorageFailure(fmt.Errorf("failed to check pet existence: %w", err))
	}

	if !exist {
		return res, failure.NotFound(msgPetNotFound)
	}

	removed, err := s.deleteWithConsultations(ctx, id)
	if err != nil {
		return res, err
	}

	log.Info().Int64("id", id).Int64("consultations", removed).Msg("pet deleted")

	return dto.DeletePetResponse{
		ID:                   id,
		DeletedConsultations: removed,
	}, nil
}

