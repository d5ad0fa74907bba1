package mess

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"basera/infras/otel"
	"basera/internal/domains/mess/model"
	"basera/internal/domains/mess/model/dto"
	"basera/internal/domains/mess/service"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/validator"
	"basera/transport/http/response"
)

type Handler struct {
	service service.Mess
	otel    otel.Otel
}

func New(service service.Mess, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mess", func(routerGroup chi.Router) {
		routerGroup.Post("/menus", handler.CreateMenu)
		routerGroup.Get("/menus", handler.GetMenus)
		routerGroup.Put("/selections", handler.SetSelection)
		routerGroup.Get("/selections", handler.GetSelection)
		routerGroup.Post("/billing", handler.BillDay)
	})
}

// CreateMenu publishes a mess menu for a property and date.
// @Summary Create a mess menu
// @Description Publish the per-slot meal prices for a property on a date.
// @Tags Mess
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuRequest true "Menu payload"
// @Success 201 {object} response.Message "Menu created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus [post]
// @Security BearerAuth
func (handler *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenu")
	defer scope.End()

	req := dto.CreateMenuRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateMenu(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu created successfully")

	response.WithMessage(w, http.StatusCreated, "Menu created successfully")
}

// GetMenus retrieves mess menus based on query parameters.
// @Summary Get mess menus
// @Description Retrieve mess menus with optional filtering and pagination.
// @Tags Mess
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param menu_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetMenusResponse] "List of menus"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/menus [get]
// @Security BearerAuth
func (handler *Handler) GetMenus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenus")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if propertyID := r.URL.Query().Get(model.MenuFieldPropertyID); propertyID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.MenuFieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.MenuTableName,
		})
	}

	if menuDate := r.URL.Query().Get(model.MenuFieldMenuDate); menuDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.MenuFieldMenuDate,
			Operator: gDto.FilterOperatorEq,
			Value:    menuDate,
			Table:    model.MenuTableName,
		})
	}

	menus, err := handler.service.GetMenus(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menus")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menus retrieved successfully")

	response.WithJSON(w, http.StatusOK, menus)
}

// SetSelection records a tenant's meal choices for a menu.
// @Summary Set a meal selection
// @Description Record or update a booking's per-slot meal choices for a menu; slots left out default to eating.
// @Tags Mess
// @Accept json
// @Produce json
// @Param request body dto.SetSelectionRequest true "Selection payload"
// @Success 200 {object} response.Message "Selection saved successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/selections [put]
// @Security BearerAuth
func (handler *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSelection")
	defer scope.End()

	req := dto.SetSelectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetSelection(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set selection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Selection saved successfully")

	response.WithMessage(w, http.StatusOK, "Selection saved successfully")
}

// GetSelection retrieves a booking's selection for a menu.
// @Summary Get a meal selection
// @Description Retrieve a booking's meal choices for a specific menu.
// @Tags Mess
// @Accept json
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Param menu_id query string true "Menu ID"
// @Success 200 {object} response.Data[dto.SelectionResponse] "Selection details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/selections [get]
// @Security BearerAuth
func (handler *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSelection")
	defer scope.End()

	query := r.URL.Query()

	selection, err := handler.service.GetSelection(ctx, query.Get(model.SelectionFieldBookingID), query.Get(model.SelectionFieldMenuID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get selection")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Selection retrieved successfully")

	response.WithJSON(w, http.StatusOK, selection)
}

// BillDay runs the mess billing sweep for one property and date.
// @Summary Bill a day of meal selections
// @Description Debit every unbilled selection for the property and date; safe to re-run.
// @Tags Mess
// @Accept json
// @Produce json
// @Param request body dto.BillDayRequest true "Billing payload"
// @Success 200 {object} response.Data[dto.BillDayResponse] "Billing summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mess/billing [post]
// @Security BearerAuth
func (handler *Handler) BillDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BillDay")
	defer scope.End()

	req := dto.BillDayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	date, err := time.Parse(constant.DateOnlyLayout, req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid billing date")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.BillDay(ctx, req.PropertyID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to bill day")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mess billing completed successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
