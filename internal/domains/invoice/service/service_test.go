package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"basera/config"
	"basera/infras/otel/mocks"
	"basera/infras/postgres"
	bedMocks "basera/internal/domains/bed/mocks"
	bookingMocks "basera/internal/domains/booking/mocks"
	bookingModel "basera/internal/domains/booking/model"
	invoiceMocks "basera/internal/domains/invoice/mocks"
	"basera/internal/domains/invoice/model"
	"basera/internal/domains/invoice/model/dto"
	"basera/internal/domains/invoice/service"
	pricingMocks "basera/internal/domains/pricing/mocks"
	transactionMocks "basera/internal/domains/transaction/mocks"
	txnModel "basera/internal/domains/transaction/model"
	eventMocks "basera/internal/events/mocks"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
	"basera/shared/failure"
)

type generateFixture struct {
	svc          service.Invoice
	repo         *invoiceMocks.MockInvoice
	bookings     *bookingMocks.MockBooking
	readings     *bedMocks.MockElectricityReading
	pricingRules *pricingMocks.MockPricingRule
	transactions *transactionMocks.MockTransaction
	sqlMock      sqlmock.Sqlmock
}

func newGenerateFixture(t *testing.T, ctrl *gomock.Controller) generateFixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	repo := invoiceMocks.NewMockInvoice(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	readings := bedMocks.NewMockElectricityReading(ctrl)
	pricingRules := pricingMocks.NewMockPricingRule(ctrl)
	transactions := transactionMocks.NewMockTransaction(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	publisher.EXPECT().InvoiceGenerated(gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.LateFeePercent = "5"
	cfg.Billing.ElectricityTariff = "8"
	cfg.Billing.InvoiceDueDays = 7

	return generateFixture{
		svc:          service.New(repo, bookings, readings, pricingRules, transactions, publisher, conn, cfg, mockCache, mockOtel),
		repo:         repo,
		bookings:     bookings,
		readings:     readings,
		pricingRules: pricingRules,
		transactions: transactions,
		sqlMock:      sqlMock,
	}
}

func activeBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:          "booking-id",
		TenantID:    "tenant-id",
		PropertyID:  "property-id",
		BedID:       "bed-id",
		Status:      constant.BookingStatusActive,
		MonthlyRent: decimal.RequireFromString("3000"),
		StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceService_Generate(t *testing.T) {
	req := dto.GenerateInvoiceRequest{
		BookingID:   "booking-id",
		PeriodStart: "2025-06-01",
	}

	t.Run("posts the invoice and its rent charge together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking(), nil)
		f.pricingRules.EXPECT().
			GetActiveForProperty(gomock.Any(), "property-id").
			Return(nil, nil)
		f.transactions.EXPECT().
			SumDebitsForPeriod(gomock.Any(), "booking-id", constant.TxnCategoryMessDebit, gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("450"), nil)
		f.readings.EXPECT().
			SumUnits(gomock.Any(), "bed-id", gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("25"), nil)
		f.repo.EXPECT().
			GetUnpaid(gomock.Any(), "booking-id").
			Return([]model.Invoice{
				{
					ID:          "overdue-id",
					TotalAmount: decimal.RequireFromString("1000"),
					IsPaid:      false,
					DueDate:     time.Date(2025, time.May, 8, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		var charge txnModel.Transaction
		f.transactions.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, txn txnModel.Transaction) error {
				charge = txn

				return nil
			})
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := f.svc.Generate(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "3000.00", res.RentAmount)
		assert.Equal(t, "450.00", res.MessAmount)
		assert.Equal(t, "200.00", res.ElectricityAmount)
		assert.Equal(t, "50.00", res.LateFeeAmount)
		assert.Equal(t, "3700.00", res.TotalAmount)

		assert.Equal(t, constant.TxnCategoryRent, charge.Category)
		assert.Equal(t, "tenant-id", charge.UserID)
		assert.False(t, charge.IsCredit)
		assert.Equal(t, "3700", charge.Amount.String())
		require.NotNil(t, charge.InvoiceID)
		assert.Equal(t, res.ID, *charge.InvoiceID)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate period rolls back the rent charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking(), nil)
		f.pricingRules.EXPECT().
			GetActiveForProperty(gomock.Any(), "property-id").
			Return(nil, nil)
		f.transactions.EXPECT().
			SumDebitsForPeriod(gomock.Any(), "booking-id", constant.TxnCategoryMessDebit, gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		f.readings.EXPECT().
			SumUnits(gomock.Any(), "bed-id", gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		f.repo.EXPECT().
			GetUnpaid(gomock.Any(), "booking-id").
			Return(nil, nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.DuplicateInvoiceForPeriod("booking-id", "2025-06-01"))
		f.sqlMock.ExpectRollback()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Generate(ctx, req)

		var dup *failure.DuplicateInvoice
		assert.ErrorAs(t, err, &dup)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Generate(ctx, req)

		assert.Error(t, err)
	})

	t.Run("cancelled booking is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		cancelled := activeBooking()
		cancelled.Status = constant.BookingStatusCancelled

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Generate(ctx, req)

		assert.Error(t, err)
	})

	t.Run("invalid period start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Generate(ctx, dto.GenerateInvoiceRequest{
			BookingID:   "booking-id",
			PeriodStart: "01-06-2025",
		})

		assert.Error(t, err)
	})
}

func TestInvoiceService_GenerateForPeriod(t *testing.T) {
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("duplicate booking is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.bookings.EXPECT().
			GetOccupants(gomock.Any(), "property-id").
			Return([]bookingModel.Booking{activeBooking()}, nil)
		f.pricingRules.EXPECT().
			GetActiveForProperty(gomock.Any(), "property-id").
			Return(nil, nil)
		f.transactions.EXPECT().
			SumDebitsForPeriod(gomock.Any(), "booking-id", constant.TxnCategoryMessDebit, gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		f.readings.EXPECT().
			SumUnits(gomock.Any(), "bed-id", gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		f.repo.EXPECT().
			GetUnpaid(gomock.Any(), "booking-id").
			Return(nil, nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.DuplicateInvoiceForPeriod("booking-id", "2025-06-01"))
		f.sqlMock.ExpectRollback()

		res, err := f.svc.GenerateForPeriod(context.Background(), "property-id", periodStart)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Generated)
		assert.Equal(t, 1, res.Skipped)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("occupant lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.bookings.EXPECT().
			GetOccupants(gomock.Any(), "property-id").
			Return(nil, errors.New("database error"))

		_, err := f.svc.GenerateForPeriod(context.Background(), "property-id", periodStart)

		assert.Error(t, err)
	})
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	unpaidInvoice := model.Invoice{
		ID:          "invoice-id",
		BookingID:   "booking-id",
		PropertyID:  "property-id",
		TotalAmount: decimal.RequireFromString("3700"),
		IsPaid:      false,
	}

	t.Run("settles the invoice and credits the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unpaidInvoice, nil)
		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking(), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		var credit txnModel.Transaction
		f.transactions.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, txn txnModel.Transaction) error {
				credit = txn

				return nil
			})
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.MarkPaid(ctx, "invoice-id", dto.MarkPaidRequest{})

		assert.NoError(t, err)
		assert.Equal(t, constant.TxnCategoryRent, credit.Category)
		assert.Equal(t, "tenant-id", credit.UserID)
		assert.True(t, credit.IsCredit)
		assert.Equal(t, "3700.00", credit.Amount.StringFixed(2))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("already paid invoice is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newGenerateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unpaidInvoice, nil)
		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking(), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		f.sqlMock.ExpectRollback()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.MarkPaid(ctx, "invoice-id", dto.MarkPaidRequest{})

		assert.Error(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}
