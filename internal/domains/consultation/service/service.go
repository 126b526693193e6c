package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Consultation=MockConsultationService

import (
	"context"
	"fmt"

	"agendavet/infras/otel"
	"agendavet/infras/postgres"
	"agendavet/internal/domains/consultation/model"
	"agendavet/internal/domains/consultation/model/dto"
	"agendavet/internal/domains/consultation/repository"
	petModel "agendavet/internal/domains/pet/model"
	petRepo "agendavet/internal/domains/pet/repository"
	"agendavet/shared"
	"agendavet/shared/constant"
	gDto "agendavet/shared/dto"
	"agendavet/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgConsultationNotFound = "consultation not found"
	msgPetDoesNotExist      = "pet does not exist"
)

type Consultation interface {
	GetAll(ctx context.Context) ([]dto.ConsultationResponse, error)
	Search(ctx context.Context, term string) ([]dto.ConsultationResponse, error)
	Get(ctx context.Context, id int64) (dto.ConsultationResponse, error)
	Create(ctx context.Context, req dto.CreateConsultationRequest) (dto.ConsultationResponse, error)
	Update(ctx context.Context, req dto.UpdateConsultationRequest, id int64) (dto.ConsultationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Consultation
	petRepo petRepo.Pet
	otel    otel.Otel
}

func New(repo repository.Consultation, petRepo petRepo.Pet, otel otel.Otel) Consultation {
	return &serviceImpl{
		repo:    repo,
		petRepo: petRepo,
		otel:    otel,
	}
}

// GetAll lists every consultation, most recent first, including those whose pet is gone.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, gDto.FilterGroup{})
}

// Search keeps the consultations whose veterinarian, pet name or pet owner contains term.
// A blank term is the plain listing.
func (s *serviceImpl) Search(ctx context.Context, term string) (res []dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, searching := model.SearchFilter(term)
	if !searching {
		return s.list(ctx, gDto.FilterGroup{})
	}

	scope.SetAttribute(constant.RequestParamTerm, term)

	res, err = s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, failure.EmptyResult(fmt.Sprintf("no consultations match %q", term))
	}

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.ConsultationResponse, error) {
	consultations, err := s.repo.GetAll(ctx, model.DefaultOrder(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get consultations")

		return nil, failure.StorageFailure(fmt.Errorf("failed to get consultations: %w", err))
	}

	return dto.FromModels(consultations), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	consultation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get consultation")

		return res, failure.StorageFailure(fmt.Errorf("failed to get consultation: %w", err))
	}

	if consultation.ID == 0 {
		return res, failure.NotFound(msgConsultationNotFound)
	}

	res.FromModel(consultation)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateConsultationRequest) (res dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	consultation, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = s.ensurePet(ctx, consultation.PetID); err != nil {
		return res, err
	}

	id, err := s.repo.Insert(ctx, consultation)
	if err != nil {
		log.Error().Err(err).Msg("failed to create consultation")

		return res, failure.StorageFailure(fmt.Errorf("failed to create consultation: %w", err))
	}

	log.Info().Int64("id", id).Int64("pet_id", consultation.PetID).Msg("consultation created")

	return s.Get(postgres.ReadPrimary(ctx), id)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateConsultationRequest, id int64) (res dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	consultation, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = s.ensurePet(ctx, consultation.PetID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	affected, err := s.repo.Update(ctx, shared.TransformFields(consultation), filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update consultation")

		return res, failure.StorageFailure(fmt.Errorf("failed to update consultation: %w", err))
	}

	if affected == 0 {
		return res, failure.NotFound(msgConsultationNotFound)
	}

	return s.Get(postgres.ReadPrimary(ctx), id)
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".consultation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete consultation")

		return failure.StorageFailure(fmt.Errorf("failed to delete consultation: %w", err))
	}

	if affected == 0 {
		return failure.NotFound(msgConsultationNotFound)
	}

	return nil
}

// ensurePet rejects consultations that reference a missing pet. It reads the write pool so a pet
// created a moment ago is already visible.
func (s *serviceImpl) ensurePet(ctx context.Context, petID int64) error {
	exist, err := s.petRepo.Exist(postgres.ReadPrimary(ctx), shared.FilterByID(petID, petModel.FieldID, petModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("pet_id", petID).Msg("failed to check pet existence")

		return failure.StorageFailure(fmt.Errorf("failed to check pet existence: %w", err))
	}

	if !exist {
		return failure.BadRequestFromString(msgPetDoesNotExist)
	}

	return nil
}
