package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"basera/config"
	"basera/infras/otel"
	"basera/infras/postgres"
	bedRepo "basera/internal/domains/bed/repository"
	bookingModel "basera/internal/domains/booking/model"
	bookingRepo "basera/internal/domains/booking/repository"
	"basera/internal/domains/invoice/model"
	"basera/internal/domains/invoice/model/dto"
	"basera/internal/domains/invoice/repository"
	pricingRepo "basera/internal/domains/pricing/repository"
	pricingService "basera/internal/domains/pricing/service"
	txnModel "basera/internal/domains/transaction/model"
	txnRepo "basera/internal/domains/transaction/repository"
	"basera/internal/events"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gModel "basera/shared/model"
	"basera/shared/money"
	"basera/shared/timezone"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"
)

const percentBase = 100

type Invoice interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (dto.InvoiceResponse, error)
	GenerateForPeriod(ctx context.Context, propertyID string, periodStart time.Time) (dto.GenerateForPeriodResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) error
}

type serviceImpl struct {
	repo         repository.Invoice
	bookings     bookingRepo.Booking
	readings     bedRepo.ElectricityReading
	pricingRules pricingRepo.PricingRule
	transactions txnRepo.Transaction
	publisher    events.Publisher
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Invoice,
	bookings bookingRepo.Booking,
	readings bedRepo.ElectricityReading,
	pricingRules pricingRepo.PricingRule,
	transactions txnRepo.Transaction,
	publisher events.Publisher,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Invoice {
	return &serviceImpl{
		repo:         repo,
		bookings:     bookings,
		readings:     readings,
		pricingRules: pricingRules,
		transactions: transactions,
		publisher:    publisher,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Generate raises the invoice for one booking and one calendar month. Rent is
// prorated by days occupied, mess and electricity charges are pulled from the
// period, and a late fee accrues on overdue balances. The unique constraint
// on booking and period keeps generation idempotent.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	periodStart, err := time.Parse(constant.DateOnlyLayout, req.PeriodStart)
	if err != nil {
		return res, failure.BadRequestFromString("period_start must use format " + constant.DateOnlyLayout)
	}

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	inv, err := s.build(ctx, booking, periodStart)
	if err != nil {
		return res, err
	}

	if err = s.persist(ctx, inv, booking.TenantID); err != nil {
		return res, err
	}

	s.afterGenerate(ctx, inv)
	res.FromModel(inv)

	return res, nil
}

// GenerateForPeriod raises invoices for every occupant of a property. A
// booking that already holds an invoice for the period is skipped, so the
// monthly run can be replayed safely.
func (s *serviceImpl) GenerateForPeriod(ctx context.Context, propertyID string, periodStart time.Time) (res dto.GenerateForPeriodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateForPeriod")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupants, err := s.bookings.GetOccupants(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupants")

		return res, fmt.Errorf("failed to get occupants: %w", err)
	}

	res.PropertyID = propertyID
	res.PeriodStart = periodStart.Format(constant.DateOnlyLayout)

	for _, booking := range occupants {
		inv, buildErr := s.build(ctx, booking, periodStart)
		if buildErr != nil {
			var fail *failure.Failure
			if errors.As(buildErr, &fail) {
				log.Warn().Str("booking", booking.ID).Str("reason", fail.Message).Msg("skipping booking in invoice run")
				res.Skipped++

				continue
			}

			return res, buildErr
		}

		insertErr := s.persist(ctx, inv, booking.TenantID)

		var dup *failure.DuplicateInvoice
		if errors.As(insertErr, &dup) {
			res.Skipped++

			continue
		}

		if insertErr != nil {
			return res, insertErr
		}

		s.afterGenerate(ctx, inv)
		res.Generated++
		res.InvoiceIDs = append(res.InvoiceIDs, inv.ID)
	}

	return res, nil
}

// persist writes the invoice and its receivable charge as one unit, so the
// ledger never shows an invoice without the matching rent debit.
func (s *serviceImpl) persist(ctx context.Context, inv model.Invoice, tenantID string) error {
	return s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, inv); err != nil {
			return err
		}

		bookingID := inv.BookingID
		invoiceID := inv.ID
		now := timezone.Now()

		return s.transactions.InsertTx(ctx, tx, txnModel.Transaction{
			ID:          uuid.NewString(),
			UserID:      tenantID,
			PropertyID:  inv.PropertyID,
			BookingID:   &bookingID,
			InvoiceID:   &invoiceID,
			Category:    constant.TxnCategoryRent,
			Amount:      inv.TotalAmount,
			IsCredit:    false,
			Description: "charge for invoice " + inv.ID,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  constant.LedgerActorSystem,
				ModifiedBy: constant.LedgerActorSystem,
			},
		})
	})
}

func (s *serviceImpl) build(ctx context.Context, booking bookingModel.Booking, periodStart time.Time) (inv model.Invoice, err error) {
	if booking.Status == constant.BookingStatusCancelled {
		return inv, failure.Conflict("cannot invoice a cancelled booking")
	}

	monthStart := time.Date(periodStart.Year(), periodStart.Month(), 1, 0, 0, 0, 0, periodStart.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	first := monthStart
	if booking.StartDate.After(first) {
		first = booking.StartDate
	}

	last := monthEnd
	if booking.ActualExitDate != nil && booking.ActualExitDate.Before(last) {
		last = *booking.ActualExitDate
	}

	if first.After(last) {
		return inv, failure.BadRequestFromString("booking has no billable days in the period")
	}

	rules, err := s.pricingRules.GetActiveForProperty(ctx, booking.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return inv, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	effectiveRent, _ := pricingService.EffectiveRent(booking.MonthlyRent, rules, monthStart.Month())
	rent := money.ProrateMonth(effectiveRent, first, last)

	mess, err := s.transactions.SumDebitsForPeriod(ctx, booking.ID, constant.TxnCategoryMessDebit, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return inv, err
	}

	if mess.Sign() < 0 {
		mess = decimal.Zero
	}

	electricity, err := s.electricityCharge(ctx, booking.BedID, monthStart, monthEnd)
	if err != nil {
		return inv, err
	}

	lateFee, err := s.lateFee(ctx, booking.ID)
	if err != nil {
		return inv, err
	}

	mess = money.Round(mess)
	total := money.Round(rent.Add(mess).Add(electricity).Add(lateFee))

	return model.Invoice{
		ID:                uuid.NewString(),
		BookingID:         booking.ID,
		PropertyID:        booking.PropertyID,
		PeriodStart:       monthStart,
		PeriodEnd:         monthEnd,
		RentAmount:        rent,
		MessAmount:        mess,
		ElectricityAmount: electricity,
		LateFeeAmount:     lateFee,
		TotalAmount:       total,
		IsPaid:            false,
		DueDate:           monthStart.AddDate(0, 0, s.cfg.Billing.InvoiceDueDays),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.LedgerActorSystem,
			ModifiedBy: constant.LedgerActorSystem,
		},
	}, nil
}

func (s *serviceImpl) electricityCharge(ctx context.Context, bedID string, from, to time.Time) (decimal.Decimal, error) {
	units, err := s.readings.SumUnits(ctx, bedID, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	if units.Sign() <= 0 {
		return decimal.Zero, nil
	}

	tariff, err := decimal.NewFromString(s.cfg.Billing.ElectricityTariff)
	if err != nil {
		return decimal.Zero, failure.Configuration("electricity tariff is not a valid decimal")
	}

	return money.Round(units.Mul(tariff)), nil
}

// lateFee charges a percentage of the booking's overdue unpaid balance.
func (s *serviceImpl) lateFee(ctx context.Context, bookingID string) (decimal.Decimal, error) {
	unpaid, err := s.repo.GetUnpaid(ctx, bookingID)
	if err != nil {
		return decimal.Zero, err
	}

	now := timezone.Now()
	overdue := decimal.Zero

	for _, inv := range unpaid {
		if inv.Overdue(now) {
			overdue = overdue.Add(inv.TotalAmount)
		}
	}

	if overdue.Sign() <= 0 {
		return decimal.Zero, nil
	}

	percent, err := decimal.NewFromString(s.cfg.Billing.LateFeePercent)
	if err != nil {
		return decimal.Zero, failure.Configuration("late fee percent is not a valid decimal")
	}

	return money.Round(overdue.Mul(percent).Div(decimal.NewFromInt(percentBase))), nil
}

func (s *serviceImpl) afterGenerate(ctx context.Context, inv model.Invoice) {
	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.InvoiceGenerated(c, events.InvoiceEvent{
			InvoiceID:   inv.ID,
			BookingID:   inv.BookingID,
			PropertyID:  inv.PropertyID,
			PeriodStart: inv.PeriodStart.Format(constant.DateOnlyLayout),
			TotalAmount: inv.TotalAmount.StringFixed(2),
		})

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
		shared.InvalidateCaches(c, s.cache, cacheCountInvoice)
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	inv, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if inv.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	res.FromModel(inv)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

// MarkPaid settles an invoice and posts the payment credit to the ledger in
// one transaction. The guarded flip rejects double settlement.
func (s *serviceImpl) MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	inv, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return err
	}

	if inv.ID == constant.Empty {
		return failure.NotFound("invoice not found")
	}

	booking, err := s.getBooking(ctx, inv.BookingID)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		now := timezone.Now()

		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Value:    id,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldIsPaid,
					Value:    false,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
			},
		}

		fields := map[string]any{
			model.FieldIsPaid:        true,
			model.FieldPaidOn:        now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		affected, updateErr := s.repo.UpdateTxGuarded(ctx, tx, fields, filter)
		if updateErr != nil {
			return updateErr
		}

		if affected == 0 {
			return failure.Conflict("invoice is already paid")
		}

		bookingID := inv.BookingID
		invoiceID := inv.ID

		var gatewayTxnID *string
		if req.PaymentGatewayTxnID != "" {
			gatewayTxnID = &req.PaymentGatewayTxnID
		}

		return s.transactions.InsertTx(ctx, tx, txnModel.Transaction{
			ID:                  uuid.NewString(),
			UserID:              booking.TenantID,
			PropertyID:          inv.PropertyID,
			BookingID:           &bookingID,
			InvoiceID:           &invoiceID,
			Category:            constant.TxnCategoryRent,
			Amount:              inv.TotalAmount,
			IsCredit:            true,
			Description:         "payment for invoice " + inv.ID,
			PaymentGatewayTxnID: gatewayTxnID,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	})
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetInvoice, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
	}()

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}
