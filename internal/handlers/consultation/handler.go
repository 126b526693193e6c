package consultation

import (
	"net/http"

	"agendavet/infras/otel"
	"agendavet/internal/domains/consultation/model/dto"
	"agendavet/internal/domains/consultation/service"
	"agendavet/shared"
	"agendavet/shared/constant"
	"agendavet/shared/validator"
	"agendavet/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Consultation
	otel    otel.Otel
}

func New(service service.Consultation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consultations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateConsultation)
		routerGroup.Get("/", handler.GetConsultations)
		routerGroup.Get("/search", handler.SearchConsultations)
		routerGroup.Get("/{id}", handler.GetConsultationByID)
		routerGroup.Put("/{id}", handler.UpdateConsultation)
		routerGroup.Delete("/{id}", handler.DeleteConsultation)
	})
}

// CreateConsultation schedules a consultation for an existing pet.
// @Summary Create a consultation
// @Description Schedule a consultation. The pet must exist. A missing status is stored as Pending.
// @Tags Consultation
// @Accept json
// @Produce json
// @Param request body dto.CreateConsultationRequest true "Consultation details"
// @Success 201 {object} response.Data[dto.ConsultationResponse] "Created consultation"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations [post]
func (handler *Handler) CreateConsultation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConsultation")
	defer scope.End()

	var req dto.CreateConsultationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	consultation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create consultation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Consultation created successfully")

	response.WithJSON(writer, http.StatusCreated, consultation)
}

// GetConsultations lists every consultation.
// @Summary List consultations
// @Description List consultations, most recent first, each with its pet summary.
// @Tags Consultation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.ConsultationResponse] "List of consultations"
// @Failure 500 {object} response.Error
// @Router /v1/consultations [get]
func (handler *Handler) GetConsultations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultations")
	defer scope.End()

	consultations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consultations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, consultations)
}

// SearchConsultations finds consultations by veterinarian, pet name or owner.
// @Summary Search consultations
// @Description Case-insensitive substring search. Consultations whose pet no longer exists are never returned. A blank term lists everything.
// @Tags Consultation
// @Accept json
// @Produce json
// @Param term query string false "Text matched against veterinarian, pet name and owner name"
// @Success 200 {object} response.Data[[]dto.ConsultationResponse] "Matching consultations"
// @Failure 404 {object} response.Error "No consultation matches the term"
// @Failure 500 {object} response.Error
// @Router /v1/consultations/search [get]
func (handler *Handler) SearchConsultations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchConsultations")
	defer scope.End()

	term := request.URL.Query().Get(constant.RequestParamTerm)

	consultations, err := handler.service.Search(ctx, term)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search consultations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, consultations)
}

// GetConsultationByID retrieves a consultation by its ID.
// @Summary Get a consultation by ID
// @Tags Consultation
// @Accept json
// @Produce json
// @Param id path int true "Consultation ID"
// @Success 200 {object} response.Data[dto.ConsultationResponse] "Consultation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/{id} [get]
func (handler *Handler) GetConsultationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultationByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	consultation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get consultation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, consultation)
}

// UpdateConsultation replaces every field of a consultation.
// @Summary Update a consultation
// @Tags Consultation
// @Accept json
// @Produce json
// @Param id path int true "Consultation ID"
// @Param request body dto.UpdateConsultationRequest true "Consultation details"
// @Success 200 {object} response.Data[dto.ConsultationResponse] "Updated consultation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/{id} [put]
func (handler *Handler) UpdateConsultation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateConsultation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.UpdateConsultationRequest
	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	consultation, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update consultation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Consultation updated successfully")

	response.WithJSONMessage(writer, http.StatusOK, "Consultation updated successfully", consultation)
}

// DeleteConsultation deletes a consultation.
// @Summary Delete a consultation
// @Tags Consultation
// @Accept json
// @Produce json
// @Param id path int true "Consultation ID"
// @Success 200 {object} response.Message "Consultation deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/{id} [delete]
func (handler *Handler) DeleteConsultation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConsultation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete consultation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Consultation deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Consultation deleted successfully")
}
