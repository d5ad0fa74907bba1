package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"basera/infras/otel"
	"basera/internal/domains/pricing/model"
	"basera/internal/domains/pricing/model/dto"
	"basera/internal/domains/pricing/service"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/validator"
	"basera/transport/http/response"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing-rules", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePricingRule)
		routerGroup.Get("/", handler.GetPricingRules)
		routerGroup.Get("/resolve", handler.ResolveRent)
		routerGroup.Get("/{id}", handler.GetPricingRuleByID)
		routerGroup.Patch("/{id}", handler.UpdatePricingRule)
		routerGroup.Delete("/{id}", handler.DeactivatePricingRule)
	})
}

// CreatePricingRule registers a seasonal pricing rule.
// @Summary Create a new pricing rule
// @Description Register a seasonal multiplier, either property-specific or platform-wide.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreatePricingRuleRequest true "Pricing rule payload"
// @Success 201 {object} response.Message "Pricing rule created successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [post]
// @Security BearerAuth
func (handler *Handler) CreatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricingRule")
	defer scope.End()

	req := dto.CreatePricingRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule created successfully")

	response.WithMessage(w, http.StatusCreated, "Pricing rule created successfully")
}

// GetPricingRules retrieves all pricing rules based on query parameters.
// @Summary Get all pricing rules
// @Description Retrieve all pricing rules with optional filtering and pagination.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param active query bool false "Filter by active state"
// @Success 200 {object} response.Data[dto.GetPricingRulesResponse] "List of pricing rules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [get]
// @Security BearerAuth
func (handler *Handler) GetPricingRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingRules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if propertyID := r.URL.Query().Get(model.FieldPropertyID); propertyID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	rules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// ResolveRent computes the effective rent for a property and date.
// @Summary Resolve effective rent
// @Description Apply the winning seasonal rule to a base rent for a given date.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param property_id query string true "Property ID"
// @Param base_rent query string true "Base monthly rent"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ResolveRentResponse] "Effective rent"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/resolve [get]
// @Security BearerAuth
func (handler *Handler) ResolveRent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveRent")
	defer scope.End()

	query := r.URL.Query()

	res, err := handler.service.Resolve(ctx, query.Get("property_id"), query.Get("base_rent"), query.Get("date"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve rent")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rent resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetPricingRuleByID retrieves a pricing rule by its ID.
// @Summary Get a pricing rule by ID
// @Description Retrieve a pricing rule by its unique identifier.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} response.Data[dto.PricingRuleResponse] "Pricing rule details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPricingRuleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingRuleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rule, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rule by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule retrieved successfully")

	response.WithJSON(w, http.StatusOK, rule)
}

// UpdatePricingRule updates an existing pricing rule by its ID.
// @Summary Update a pricing rule by ID
// @Description Update the details of an existing pricing rule.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Param request body dto.UpdatePricingRuleRequest true "Pricing rule payload"
// @Success 200 {object} response.Message "Pricing rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule updated successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule updated successfully")
}

// DeactivatePricingRule deactivates a pricing rule by its ID.
// @Summary Deactivate a pricing rule by ID
// @Description Deactivate a pricing rule so it no longer applies to new resolutions.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} response.Message "Pricing rule deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivatePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate pricing rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rule deactivated successfully")

	response.WithMessage(w, http.StatusOK, "Pricing rule deactivated successfully")
}
