package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"basera/infras/otel"
	"basera/internal/domains/invoice/model"
	"basera/internal/domains/invoice/model/dto"
	"basera/internal/domains/invoice/service"
	"basera/shared"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/validator"
	"basera/transport/http/response"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateInvoice)
		routerGroup.Post("/generate", handler.GenerateForPeriod)
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Post("/{id}/pay", handler.MarkPaid)
	})
}

// GenerateInvoice builds the monthly invoice for one booking.
// @Summary Generate an invoice
// @Description Build a booking's invoice for a billing month: prorated rent, mess, electricity and late fee.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoiceRequest true "Invoice payload"
// @Success 201 {object} response.Data[dto.InvoiceResponse] "Invoice generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
// @Security BearerAuth
func (handler *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	req := dto.GenerateInvoiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice generated successfully")

	response.WithJSON(w, http.StatusCreated, invoice)
}

// GenerateForPeriod builds invoices for every occupant of a property.
// @Summary Generate invoices for a billing period
// @Description Build invoices for all occupied bookings at a property; bookings already invoiced for the period are skipped.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.GenerateForPeriodRequest true "Billing period payload"
// @Success 200 {object} response.Data[dto.GenerateForPeriodResponse] "Generation summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateForPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateForPeriod")
	defer scope.End()

	req := dto.GenerateForPeriodRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	periodStart, err := time.Parse(constant.DateOnlyLayout, req.PeriodStart)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid period start")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.GenerateForPeriod(ctx, req.PropertyID, periodStart)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoices for period")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices generated successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetInvoices retrieves invoices based on query parameters.
// @Summary Get all invoices
// @Description Retrieve invoices with optional filtering and pagination.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking"
// @Param property_id query string false "Filter by property"
// @Param is_paid query bool false "Filter by payment state"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse] "List of invoices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
// @Security BearerAuth
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldBookingID, model.FieldPropertyID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if paid := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsPaid)); paid != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsPaid,
			Operator: gDto.FilterOperatorEq,
			Value:    *paid,
			Table:    model.TableName,
		})
	}

	invoices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetInvoiceByID retrieves an invoice by its ID.
// @Summary Get an invoice by ID
// @Description Retrieve an invoice by its unique identifier.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// MarkPaid settles an invoice and posts the rent credit.
// @Summary Mark an invoice as paid
// @Description Settle an unpaid invoice and record the rent credit in the ledger.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.MarkPaidRequest true "Payment payload"
// @Success 200 {object} response.Message "Invoice marked as paid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MarkPaidRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkPaid(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark invoice as paid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice marked as paid")

	response.WithMessage(w, http.StatusOK, "Invoice marked as paid")
}
