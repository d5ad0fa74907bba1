package bed

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"basera/infras/otel"
	"basera/internal/domains/bed/model"
	"basera/internal/domains/bed/model/dto"
	"basera/internal/domains/bed/service"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/validator"
	"basera/transport/http/response"
)

type Handler struct {
	service service.Bed
	otel    otel.Otel
}

func New(service service.Bed, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/beds", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBed)
		routerGroup.Get("/", handler.GetBeds)
		routerGroup.Get("/{id}", handler.GetBedByID)
		routerGroup.Patch("/{id}", handler.UpdateBed)
		routerGroup.Delete("/{id}", handler.DeleteBed)
		routerGroup.Post("/{id}/readings", handler.RecordReading)
	})
}

// CreateBed adds a bed to a room.
// @Summary Create a new bed
// @Description Add a bed to a room, optionally linked to an IoT power meter.
// @Tags Bed
// @Accept json
// @Produce json
// @Param request body dto.CreateBedRequest true "Bed payload"
// @Success 201 {object} response.Message "Bed created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds [post]
// @Security BearerAuth
func (handler *Handler) CreateBed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBed")
	defer scope.End()

	req := dto.CreateBedRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed created successfully")

	response.WithMessage(w, http.StatusCreated, "Bed created successfully")
}

// GetBeds retrieves all beds based on query parameters.
// @Summary Get all beds
// @Description Retrieve all beds with optional filtering and pagination.
// @Tags Bed
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param is_occupied query bool false "Filter by occupancy"
// @Success 200 {object} response.Data[dto.GetBedsResponse] "List of beds"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds [get]
// @Security BearerAuth
func (handler *Handler) GetBeds(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBeds")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if occupied := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsOccupied)); occupied != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsOccupied,
			Operator: gDto.FilterOperatorEq,
			Value:    *occupied,
			Table:    model.TableName,
		})
	}

	beds, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get beds")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Beds retrieved successfully")

	response.WithJSON(w, http.StatusOK, beds)
}

// GetBedByID retrieves a bed by its ID.
// @Summary Get a bed by ID
// @Description Retrieve a bed by its unique identifier.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Data[dto.BedResponse] "Bed details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBedByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBedByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bed, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bed by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed retrieved successfully")

	response.WithJSON(w, http.StatusOK, bed)
}

// UpdateBed updates an existing bed by its ID.
// @Summary Update a bed by ID
// @Description Update the details of an existing bed.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Param request body dto.UpdateBedRequest true "Bed payload"
// @Success 200 {object} response.Message "Bed updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBed")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBedRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed updated successfully")

	response.WithMessage(w, http.StatusOK, "Bed updated successfully")
}

// DeleteBed deletes a bed by its ID.
// @Summary Delete a bed by ID
// @Description Delete a bed that is not currently occupied.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Message "Bed deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBed(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBed")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bed deleted successfully")

	response.WithMessage(w, http.StatusOK, "Bed deleted successfully")
}

// RecordReading stores an electricity meter reading for a bed.
// @Summary Record an electricity reading
// @Description Store a daily consumption reading from the bed's IoT meter.
// @Tags Bed
// @Accept json
// @Produce json
// @Param id path string true "Bed ID"
// @Param request body dto.RecordReadingRequest true "Reading payload"
// @Success 201 {object} response.Message "Reading recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/beds/{id}/readings [post]
// @Security BearerAuth
func (handler *Handler) RecordReading(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordReading")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordReadingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordReading(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record reading")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reading recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Reading recorded successfully")
}
