package transaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"basera/infras/otel"
	"basera/internal/domains/transaction/model"
	"basera/internal/domains/transaction/model/dto"
	"basera/internal/domains/transaction/service"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/validator"
	"basera/transport/http/response"
)

type Handler struct {
	service service.Transaction
	otel    otel.Otel
}

func New(service service.Transaction, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/transactions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordTransaction)
		routerGroup.Get("/", handler.GetTransactions)
		routerGroup.Get("/wallet/{id}", handler.GetWalletBalance)
		routerGroup.Post("/wallet/{id}/recharge", handler.RechargeWallet)
	})
}

// RecordTransaction appends an entry to the ledger.
// @Summary Record a transaction
// @Description Append a ledger entry; entries are never updated or deleted.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body dto.RecordTransactionRequest true "Transaction payload"
// @Success 201 {object} response.Message "Transaction recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [post]
// @Security BearerAuth
func (handler *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordTransaction")
	defer scope.End()

	req := dto.RecordTransactionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Record(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Transaction recorded successfully")
}

// GetTransactions retrieves ledger entries based on query parameters.
// @Summary Get all transactions
// @Description Retrieve ledger entries with optional filtering and pagination.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param booking_id query string false "Filter by booking"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetTransactionsResponse] "List of transactions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldPropertyID, model.FieldBookingID, model.FieldInvoiceID, model.FieldCategory} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	transactions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// GetWalletBalance retrieves a booking's meal wallet balance.
// @Summary Get a meal wallet balance
// @Description Net a booking's recharges against its mess debits; the balance may be negative.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BalanceResponse] "Wallet balance"
// @Failure 500 {object} response.Error
// @Router /v1/transactions/wallet/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWalletBalance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	balance, err := handler.service.WalletBalance(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wallet balance")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet balance retrieved successfully")

	response.WithJSON(w, http.StatusOK, balance)
}

// RechargeWallet credits a booking's meal wallet.
// @Summary Recharge a meal wallet
// @Description Credit a booking's meal wallet with a recharge amount.
// @Tags Transaction
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.WalletRechargeRequest true "Recharge payload"
// @Success 201 {object} response.Message "Wallet recharged successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/transactions/wallet/{id}/recharge [post]
// @Security BearerAuth
func (handler *Handler) RechargeWallet(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RechargeWallet")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.WalletRechargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Recharge(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to recharge wallet")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wallet recharged successfully")

	response.WithMessage(w, http.StatusCreated, "Wallet recharged successfully")
}
