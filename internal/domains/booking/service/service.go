package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"basera/config"
	"basera/infras/otel"
	"basera/infras/postgres"
	"basera/infras/s3"
	bedModel "basera/internal/domains/bed/model"
	bedRepo "basera/internal/domains/bed/repository"
	"basera/internal/domains/booking/model"
	"basera/internal/domains/booking/model/dto"
	"basera/internal/domains/booking/repository"
	invoiceModel "basera/internal/domains/invoice/model"
	invoiceRepo "basera/internal/domains/invoice/repository"
	pricingRepo "basera/internal/domains/pricing/repository"
	pricingService "basera/internal/domains/pricing/service"
	roomModel "basera/internal/domains/room/model"
	roomRepo "basera/internal/domains/room/repository"
	txnModel "basera/internal/domains/transaction/model"
	txnRepo "basera/internal/domains/transaction/repository"
	"basera/internal/events"
	"basera/shared"
	"basera/shared/cache"
	"basera/shared/constant"
	gDto "basera/shared/dto"
	"basera/shared/failure"
	gModel "basera/shared/model"
	"basera/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheGetBed        = "bed:get"
	cacheGetAllBed     = "bed:gets"
)

var walletCategories = []string{constant.TxnCategoryWalletRecharge, constant.TxnCategoryMessDebit}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GiveNotice(ctx context.Context, id string, req dto.GiveNoticeRequest) error
	Exit(ctx context.Context, id string, req dto.ExitRequest) (dto.RefundPreviewResponse, error)
	Cancel(ctx context.Context, id string) error
	PreviewRefund(ctx context.Context, id, exitDate string) (dto.RefundPreviewResponse, error)
	UploadAgreement(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) error
}

type serviceImpl struct {
	repo         repository.Booking
	beds         bedRepo.Bed
	rooms        roomRepo.Room
	pricingRules pricingRepo.PricingRule
	invoices     invoiceRepo.Invoice
	transactions txnRepo.Transaction
	publisher    events.Publisher
	s3           s3.S3
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	beds bedRepo.Bed,
	rooms roomRepo.Room,
	pricingRules pricingRepo.PricingRule,
	invoices invoiceRepo.Invoice,
	transactions txnRepo.Transaction,
	publisher events.Publisher,
	s3 s3.S3,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		beds:         beds,
		rooms:        rooms,
		pricingRules: pricingRules,
		invoices:     invoices,
		transactions: transactions,
		publisher:    publisher,
		s3:           s3,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create places a tenant on a bed. The occupancy flip and the booking insert
// commit together, so two tenants racing for the same bed cannot both win.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	deposit, err := decimal.NewFromString(req.DepositAmount)
	if err != nil || deposit.Sign() < 0 {
		return res, failure.BadRequestFromString("deposit_amount must be a non-negative amount")
	}

	startDate, err := timezone.Parse(constant.DateOnlyLayout, req.StartDate)
	if err != nil {
		return res, failure.BadRequestFromString("start_date must use format " + constant.DateOnlyLayout)
	}

	bed, err := s.beds.Get(ctx, shared.FilterByID(req.BedID, bedModel.FieldID, bedModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bed")

		return res, fmt.Errorf("failed to get bed: %w", err)
	}

	if bed.ID == constant.Empty {
		return res, failure.NotFound("bed not found")
	}

	if bed.IsOccupied {
		return res, failure.Conflict("bed is already occupied")
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(bed.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found")
	}

	monthlyRent, err := s.resolveRent(ctx, req.MonthlyRent, room.PropertyID, room.BaseRentPerBed, startDate)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(user, room.PropertyID, monthlyRent, deposit, startDate)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, txErr := s.beds.UpdateTxGuarded(ctx, tx, map[string]any{
			bedModel.FieldIsOccupied: true,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, vacantBedFilter(req.BedID))
		if txErr != nil {
			return txErr
		}

		if affected == 0 {
			return failure.Conflict("bed is already occupied")
		}

		return s.repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		return res, err
	}

	s.afterTransition(ctx, booking)
	res.FromModel(booking)

	return res, nil
}

// GiveNotice moves an active booking into its notice period and pins the
// expected exit date. Only an active booking can give notice; the guarded
// update turns a lost race into a conflict.
func (s *serviceImpl) GiveNotice(ctx context.Context, id string, req dto.GiveNoticeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GiveNotice")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	noticeDate := timezone.Today()
	if req.NoticeDate != "" {
		noticeDate, err = timezone.Parse(constant.DateOnlyLayout, req.NoticeDate)
		if err != nil {
			return failure.BadRequestFromString("notice_date must use format " + constant.DateOnlyLayout)
		}
	}

	if noticeDate.Before(timezone.Today()) {
		return failure.BadRequestFromString("notice_date cannot be in the past")
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusActive {
		return failure.Conflict("only an active booking can give notice")
	}

	expectedExit := noticeDate.AddDate(0, 0, s.cfg.Billing.NoticePeriodDays)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, txErr := s.repo.UpdateTxGuarded(ctx, tx, map[string]any{
			model.FieldStatus:           constant.BookingStatusNoticePeriod,
			model.FieldNoticeGivenDate:  noticeDate,
			model.FieldExpectedExitDate: expectedExit,
			constant.FieldModifiedAt:    timezone.Now(),
			constant.FieldModifiedBy:    user,
		}, statusFilter(id, constant.BookingStatusActive))
		if txErr != nil {
			return txErr
		}

		if affected == 0 {
			return failure.Conflict("only an active booking can give notice")
		}

		return nil
	})
	if err != nil {
		return err
	}

	booking.Status = constant.BookingStatusNoticePeriod
	s.afterTransition(ctx, booking)

	return nil
}

// Exit settles a booking serving notice: the deposit is refunded net of dues
// and penalty, the bed is freed, and the payout hits the ledger, all in one
// transaction.
func (s *serviceImpl) Exit(ctx context.Context, id string, req dto.ExitRequest) (res dto.RefundPreviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != constant.BookingStatusNoticePeriod {
		return res, failure.Conflict("only a booking serving notice can exit")
	}

	exitDate := timezone.Today()
	if req.ExitDate != "" {
		exitDate, err = timezone.Parse(constant.DateOnlyLayout, req.ExitDate)
		if err != nil {
			return res, failure.BadRequestFromString("exit_date must use format " + constant.DateOnlyLayout)
		}
	}

	if exitDate.Before(booking.StartDate) {
		return res, failure.BadRequestFromString("exit_date cannot precede the booking start date")
	}

	if booking.NoticeGivenDate != nil && exitDate.Before(*booking.NoticeGivenDate) {
		return res, failure.BadRequestFromString("exit_date cannot precede the notice date")
	}

	breakdown, err := s.settle(ctx, booking, exitDate)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, txErr := s.repo.UpdateTxGuarded(ctx, tx, map[string]any{
			model.FieldStatus:            constant.BookingStatusExited,
			model.FieldActualExitDate:    exitDate,
			model.FieldRefundAmount:      breakdown.Refund,
			model.FieldRefundProcessedAt: now,
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     user,
		}, statusFilter(id, constant.BookingStatusNoticePeriod))
		if txErr != nil {
			return txErr
		}

		if affected == 0 {
			return failure.Conflict("only a booking serving notice can exit")
		}

		if txErr = s.freeBed(ctx, tx, booking.BedID, user); txErr != nil {
			return txErr
		}

		if breakdown.Refund.Sign() <= 0 {
			return nil
		}

		return s.transactions.InsertTx(ctx, tx, refundTransaction(booking, breakdown.Refund, user, now))
	})
	if err != nil {
		return res, err
	}

	booking.Status = constant.BookingStatusExited
	s.afterTransition(ctx, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.RefundProcessed(c, events.RefundEvent{
			BookingID:    booking.ID,
			PropertyID:   booking.PropertyID,
			RefundAmount: breakdown.Refund.StringFixed(2),
			ProcessedAt:  timezone.Format(now, constant.DateFormat),
		})
	}()

	res.BookingID = booking.ID
	res.DepositAmount = booking.DepositAmount.StringFixed(2)
	res.Dues = breakdown.Dues.StringFixed(2)
	res.Penalty = breakdown.Penalty.StringFixed(2)
	res.RefundAmount = breakdown.Refund.StringFixed(2)

	return res, nil
}

// Cancel voids an active booking and returns the full deposit. Cancellation
// is only legal while no invoice has been paid; after that the tenancy has
// financial history and must exit through notice instead.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusActive {
		return failure.Conflict("only an active booking can be cancelled")
	}

	paidCount, err := s.invoices.Count(ctx, paidInvoiceFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to count paid invoices")

		return fmt.Errorf("failed to count paid invoices: %w", err)
	}

	if paidCount > 0 {
		return failure.Conflict("booking has a paid invoice, give notice instead")
	}

	now := timezone.Now()

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		affected, txErr := s.repo.UpdateTxGuarded(ctx, tx, map[string]any{
			model.FieldStatus:            constant.BookingStatusCancelled,
			model.FieldRefundAmount:      booking.DepositAmount,
			model.FieldRefundProcessedAt: now,
			constant.FieldModifiedAt:     now,
			constant.FieldModifiedBy:     user,
		}, statusFilter(id, constant.BookingStatusActive))
		if txErr != nil {
			return txErr
		}

		if affected == 0 {
			return failure.Conflict("only an active booking can be cancelled")
		}

		if txErr = s.freeBed(ctx, tx, booking.BedID, user); txErr != nil {
			return txErr
		}

		if booking.DepositAmount.Sign() <= 0 {
			return nil
		}

		return s.transactions.InsertTx(ctx, tx, refundTransaction(booking, booking.DepositAmount, user, now))
	})
	if err != nil {
		return err
	}

	booking.Status = constant.BookingStatusCancelled
	s.afterTransition(ctx, booking)

	return nil
}

// PreviewRefund reports what an exit on the given date would settle to,
// without changing anything.
func (s *serviceImpl) PreviewRefund(ctx context.Context, id, exitDate string) (res dto.RefundPreviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PreviewRefund")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != constant.BookingStatusActive && booking.Status != constant.BookingStatusNoticePeriod {
		return res, failure.Conflict("booking is already settled")
	}

	on := timezone.Today()
	if exitDate != "" {
		on, err = timezone.Parse(constant.DateOnlyLayout, exitDate)
		if err != nil {
			return res, failure.BadRequestFromString("exit_date must use format " + constant.DateOnlyLayout)
		}
	}

	breakdown, err := s.settle(ctx, booking, on)
	if err != nil {
		return res, err
	}

	res.BookingID = booking.ID
	res.DepositAmount = booking.DepositAmount.StringFixed(2)
	res.Dues = breakdown.Dues.StringFixed(2)
	res.Penalty = breakdown.Penalty.StringFixed(2)
	res.RefundAmount = breakdown.Refund.StringFixed(2)

	return res, nil
}

// UploadAgreement stores the signed agreement and links it to the booking.
func (s *serviceImpl) UploadAgreement(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAgreement")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	filename := uuid.NewString()

	parts := strings.Split(header.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, "agreement", file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload agreement")

		return fmt.Errorf("failed to upload agreement: %w", err)
	}

	fields := map[string]any{
		model.FieldAgreementURL:  url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, booking.ID))
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// settle gathers the booking's dues and runs the refund computation for an
// exit on the given date.
func (s *serviceImpl) settle(ctx context.Context, booking model.Booking, exitDate time.Time) (RefundBreakdown, error) {
	unpaid, err := s.invoices.GetUnpaid(ctx, booking.ID)
	if err != nil {
		return RefundBreakdown{}, err
	}

	unpaidTotal := decimal.Zero
	for _, inv := range unpaid {
		unpaidTotal = unpaidTotal.Add(inv.TotalAmount)
	}

	wallet, err := s.transactions.SumBalance(ctx, booking.TenantID, walletCategories...)
	if err != nil {
		return RefundBreakdown{}, err
	}

	uninvoicedFrom, err := s.uninvoicedFrom(ctx, booking, exitDate)
	if err != nil {
		return RefundBreakdown{}, err
	}

	return ComputeRefund(RefundInput{
		DepositAmount:    booking.DepositAmount,
		MonthlyRent:      booking.MonthlyRent,
		UnpaidInvoices:   unpaidTotal,
		WalletBalance:    wallet,
		NoticeGivenDate:  booking.NoticeGivenDate,
		ExitDate:         exitDate,
		NoticePeriodDays: s.cfg.Billing.NoticePeriodDays,
		UninvoicedFrom:   uninvoicedFrom,
	})
}

// uninvoicedFrom finds the first day of the exit month that no invoice
// covers yet, or nil when the month is already invoiced.
func (s *serviceImpl) uninvoicedFrom(ctx context.Context, booking model.Booking, exitDate time.Time) (*time.Time, error) {
	monthStart := time.Date(exitDate.Year(), exitDate.Month(), 1, 0, 0, 0, 0, exitDate.Location())

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    invoiceModel.FieldBookingID,
				Value:    booking.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    invoiceModel.TableName,
			},
			gDto.Filter{
				Field:    invoiceModel.FieldPeriodStart,
				Value:    monthStart,
				Operator: gDto.FilterOperatorEq,
				Table:    invoiceModel.TableName,
			},
		},
	}

	inv, err := s.invoices.Get(ctx, filter)
	if err != nil {
		return nil, err
	}

	if inv.ID != constant.Empty {
		return nil, nil
	}

	from := monthStart
	if booking.StartDate.After(from) {
		from = booking.StartDate
	}

	return &from, nil
}

func (s *serviceImpl) freeBed(ctx context.Context, tx *sqlx.Tx, bedID, user string) error {
	_, err := s.beds.UpdateTxGuarded(ctx, tx, map[string]any{
		bedModel.FieldIsOccupied: false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, occupiedBedFilter(bedID))

	return err
}

func (s *serviceImpl) resolveRent(ctx context.Context, requested, propertyID string, baseRent decimal.Decimal, startDate time.Time) (decimal.Decimal, error) {
	if requested != "" {
		rent, err := decimal.NewFromString(requested)
		if err != nil || rent.Sign() < 0 {
			return decimal.Zero, failure.BadRequestFromString("monthly_rent must be a non-negative amount")
		}

		return rent, nil
	}

	rules, err := s.pricingRules.GetActiveForProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return decimal.Zero, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	rent, _ := pricingService.EffectiveRent(baseRent, rules, startDate.Month())

	return rent, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *serviceImpl) afterTransition(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.BookingChanged(c, events.BookingEvent{
			BookingID:  booking.ID,
			PropertyID: booking.PropertyID,
			BedID:      booking.BedID,
			Status:     booking.Status,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		})

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, booking.ID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBed, booking.BedID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBed)
	}()
}

func refundTransaction(booking model.Booking, amount decimal.Decimal, user string, now time.Time) txnModel.Transaction {
	bookingID := booking.ID

	return txnModel.Transaction{
		ID:          uuid.NewString(),
		UserID:      booking.TenantID,
		PropertyID:  booking.PropertyID,
		BookingID:   &bookingID,
		Category:    constant.TxnCategoryRefund,
		Amount:      amount,
		IsCredit:    true,
		Description: "deposit refund for booking " + booking.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func paidInvoiceFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    invoiceModel.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    invoiceModel.TableName,
			},
			gDto.Filter{
				Field:    invoiceModel.FieldIsPaid,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    invoiceModel.TableName,
			},
		},
	}
}

func statusFilter(id, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func vacantBedFilter(bedID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bedModel.FieldID,
				Value:    bedID,
				Operator: gDto.FilterOperatorEq,
				Table:    bedModel.TableName,
			},
			gDto.Filter{
				Field:    bedModel.FieldIsOccupied,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    bedModel.TableName,
			},
		},
	}
}

func occupiedBedFilter(bedID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bedModel.FieldID,
				Value:    bedID,
				Operator: gDto.FilterOperatorEq,
				Table:    bedModel.TableName,
			},
			gDto.Filter{
				Field:    bedModel.FieldIsOccupied,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    bedModel.TableName,
			},
		},
	}
}
