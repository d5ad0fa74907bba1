package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"basera/config"
	"basera/infras/otel"
	bookingModel "basera/internal/domains/booking/model"
	bookingRepo "basera/internal/domains/booking/repository"
	"basera/internal/domains/transaction/model"
	"basera/internal/domains/transaction/model/dto"
	"basera/internal/domains/transaction/repository"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

const (
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
)

// Wallet entries are the recharge credits and mess debits; their net is the
// tenant's meal wallet balance.
var walletCategories = []string{constant.TxnCategoryWalletRecharge, constant.TxnCategoryMessDebit}

type Transaction interface {
	Record(ctx context.Context, req dto.RecordTransactionRequest) error
	Recharge(ctx context.Context, bookingID string, req dto.WalletRechargeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	WalletBalance(ctx context.Context, bookingID string) (dto.BalanceResponse, error)
}

type serviceImpl struct {
	repo     repository.Transaction
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Transaction, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Transaction {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, req dto.RecordTransactionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	txn, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("invalid transaction amount")

		return failure.BadRequestFromString("amount must be a valid decimal")
	}

	if txn.Amount.Sign() <= 0 {
		return failure.BadRequestFromString("amount must be positive")
	}

	if err = s.repo.Insert(ctx, txn); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()

	return nil
}

// Recharge credits a booking's meal wallet. The property is taken from the
// booking so a recharge can never land on the wrong ledger.
func (s *serviceImpl) Recharge(ctx context.Context, bookingID string, req dto.WalletRechargeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recharge")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		log.Error().Err(err).Msg("invalid recharge amount")

		return failure.BadRequestFromString("amount must be a valid decimal")
	}

	if amount.Sign() <= 0 {
		return failure.BadRequestFromString("amount must be positive")
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for recharge")

		return fmt.Errorf("failed to get booking for recharge: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	var gatewayTxnID *string
	if req.PaymentGatewayTxnID != "" {
		gatewayTxnID = &req.PaymentGatewayTxnID
	}

	txn := model.Transaction{
		ID:                  uuid.NewString(),
		UserID:              booking.TenantID,
		PropertyID:          booking.PropertyID,
		BookingID:           &bookingID,
		Category:            constant.TxnCategoryWalletRecharge,
		Amount:              amount,
		IsCredit:            true,
		Description:         "meal wallet recharge",
		PaymentGatewayTxnID: gatewayTxnID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, txn); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for transactions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transaction count to cache")
		}
	}()

	return res, nil
}

// WalletBalance nets the tenant's recharge credits against their mess
// debits. The wallet belongs to the tenant behind the booking, so it carries
// across re-bookings; the balance may be negative, mess billing never blocks
// on insufficient funds.
func (s *serviceImpl) WalletBalance(ctx context.Context, bookingID string) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WalletBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for wallet balance")

		return res, fmt.Errorf("failed to get booking for wallet balance: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	balance, err := s.repo.SumBalance(ctx, booking.TenantID, walletCategories...)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute wallet balance")

		return res, fmt.Errorf("failed to compute wallet balance: %w", err)
	}

	res.BookingID = bookingID
	res.TenantID = booking.TenantID
	res.Balance = balance.StringFixed(2)

	return res, nil
}
