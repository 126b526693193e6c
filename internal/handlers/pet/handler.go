package pet

import (
	"fmt"
	"net/http"

	"agendavet/infras/otel"
	"agendavet/internal/domains/pet/model/dto"
	"agendavet/internal/domains/pet/service"
	"agendavet/shared"
	"agendavet/shared/constant"
	"agendavet/shared/validator"
	"agendavet/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pet
	otel    otel.Otel
}

func New(service service.Pet, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePet)
		routerGroup.Get("/", handler.GetPets)
		routerGroup.Get("/{id}", handler.GetPetByID)
		routerGroup.Put("/{id}", handler.UpdatePet)
		routerGroup.Delete("/{id}", handler.DeletePet)
	})
}

// CreatePet handles the creation of a new pet.
// @Summary Create a new pet
// @Description Register a pet with its owner.
// @Tags Pet
// @Accept json
// @Produce json
// @Param request body dto.CreatePetRequest true "Pet details"
// @Success 201 {object} response.Data[dto.PetResponse] "Created pet"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pets [post]
func (handler *Handler) CreatePet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePet")
	defer scope.End()

	var req dto.CreatePetRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	pet, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pet")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pet created successfully")

	response.WithJSON(writer, http.StatusCreated, pet)
}

// GetPets lists pets, optionally narrowed by a search term.
// @Summary List pets
// @Description List pets ordered by name. A search term keeps pets whose name or owner contains it, ignoring case.
// @Tags Pet
// @Accept json
// @Produce json
// @Param search query string false "Text matched against pet name and owner name"
// @Success 200 {object} response.Data[[]dto.PetResponse] "List of pets"
// @Failure 404 {object} response.Error "No pet matches the search"
// @Failure 500 {object} response.Error
// @Router /v1/pets [get]
func (handler *Handler) GetPets(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPets")
	defer scope.End()

	search := request.URL.Query().Get(constant.RequestParamSearch)

	pets, err := handler.service.GetAll(ctx, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pets")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pets retrieved successfully")

	response.WithJSON(writer, http.StatusOK, pets)
}

// GetPetByID retrieves a pet by its ID.
// @Summary Get a pet by ID
// @Tags Pet
// @Accept json
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} response.Data[dto.PetResponse] "Pet details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pets/{id} [get]
func (handler *Handler) GetPetByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPetByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	pet, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get pet")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, pet)
}

// UpdatePet replaces every field of a pet.
// @Summary Update a pet
// @Tags Pet
// @Accept json
// @Produce json
// @Param id path int true "Pet ID"
// @Param request body dto.UpdatePetRequest true "Pet details"
// @Success 200 {object} response.Data[dto.PetResponse] "Updated pet"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pets/{id} [put]
func (handler *Handler) UpdatePet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePet")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.UpdatePetRequest
	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	pet, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update pet")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pet updated successfully")

	response.WithJSON(writer, http.StatusOK, pet)
}

// DeletePet deletes a pet and all of its consultations.
// @Summary Delete a pet
// @Description Delete a pet together with every consultation booked for it.
// @Tags Pet
// @Accept json
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} response.Data[dto.DeletePetResponse] "Deletion summary"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pets/{id} [delete]
func (handler *Handler) DeletePet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePet")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete pet")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Pet deleted successfully")

	message := fmt.Sprintf("pet %d and its %d consultations were deleted", res.ID, res.DeletedConsultations)
	response.WithJSONMessage(writer, http.StatusOK, message, res)
}
