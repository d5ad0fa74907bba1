package service_test

import (
	"context"
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
	bedModel "basera/internal/domains/bed/model"
	bookingMocks "basera/internal/domains/booking/mocks"
	bookingModel "basera/internal/domains/booking/model"
	"basera/internal/domains/booking/model/dto"
	"basera/internal/domains/booking/service"
	invoiceMocks "basera/internal/domains/invoice/mocks"
	pricingMocks "basera/internal/domains/pricing/mocks"
	roomMocks "basera/internal/domains/room/mocks"
	roomModel "basera/internal/domains/room/model"
	transactionMocks "basera/internal/domains/transaction/mocks"
	txnModel "basera/internal/domains/transaction/model"
	eventMocks "basera/internal/events/mocks"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
	"basera/shared/timezone"
)

type createFixture struct {
	svc          service.Booking
	repo         *bookingMocks.MockBooking
	beds         *bedMocks.MockBed
	rooms        *roomMocks.MockRoom
	pricingRules *pricingMocks.MockPricingRule
	invoices     *invoiceMocks.MockInvoice
	transactions *transactionMocks.MockTransaction
	sqlMock      sqlmock.Sqlmock
}

func newCreateFixture(t *testing.T, ctrl *gomock.Controller) createFixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	repo := bookingMocks.NewMockBooking(ctrl)
	beds := bedMocks.NewMockBed(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	pricingRules := pricingMocks.NewMockPricingRule(ctrl)
	invoices := invoiceMocks.NewMockInvoice(ctrl)
	transactions := transactionMocks.NewMockTransaction(ctrl)
	publisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	publisher.EXPECT().BookingChanged(gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Billing.NoticePeriodDays = 30

	return createFixture{
		svc:          service.New(repo, beds, rooms, pricingRules, invoices, transactions, publisher, nil, conn, cfg, mockCache, mockOtel),
		repo:         repo,
		beds:         beds,
		rooms:        rooms,
		pricingRules: pricingRules,
		invoices:     invoices,
		transactions: transactions,
		sqlMock:      sqlMock,
	}
}

func vacantBed() bedModel.Bed {
	return bedModel.Bed{
		ID:         "bed-id",
		RoomID:     "room-id",
		IsOccupied: false,
	}
}

func sharedRoom() roomModel.Room {
	return roomModel.Room{
		ID:             "room-id",
		PropertyID:     "property-id",
		BaseRentPerBed: decimal.RequireFromString("10000"),
	}
}

func noticeBooking(status string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:            "booking-id",
		TenantID:      "tenant-id",
		PropertyID:    "property-id",
		BedID:         "bed-id",
		Status:        status,
		MonthlyRent:   decimal.RequireFromString("10000"),
		DepositAmount: decimal.RequireFromString("20000"),
		StartDate:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		TenantID:      "tenant-id",
		BedID:         "bed-id",
		DepositAmount: "20000",
		StartDate:     "2025-06-01",
		MonthlyRent:   "10000",
	}

	t.Run("claims the bed and inserts the booking in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(vacantBed(), nil)
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sharedRoom(), nil)

		f.sqlMock.ExpectBegin()
		f.beds.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := f.svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusActive, res.Status)
		assert.Equal(t, "10000.00", res.MonthlyRent)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("resolves rent from pricing rules when none is given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		noRent := req
		noRent.MonthlyRent = ""

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(vacantBed(), nil)
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sharedRoom(), nil)
		f.pricingRules.EXPECT().
			GetActiveForProperty(gomock.Any(), "property-id").
			Return(nil, nil)

		f.sqlMock.ExpectBegin()
		f.beds.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := f.svc.Create(ctx, noRent)

		assert.NoError(t, err)
		assert.Equal(t, "10000.00", res.MonthlyRent)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("zero deposit financing details are stored on the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		financed := req
		financed.IsZeroDeposit = true
		financed.FintechPartnerName = "finlease"
		financed.FintechLoanID = "loan-42"

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(vacantBed(), nil)
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sharedRoom(), nil)

		f.sqlMock.ExpectBegin()
		f.beds.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		var inserted bookingModel.Booking
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking bookingModel.Booking) error {
				inserted = booking

				return nil
			})
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := f.svc.Create(ctx, financed)

		assert.NoError(t, err)
		assert.True(t, inserted.IsZeroDeposit)
		require.NotNil(t, inserted.FintechPartner)
		assert.Equal(t, "finlease", *inserted.FintechPartner)
		require.NotNil(t, inserted.FintechLoanID)
		assert.Equal(t, "loan-42", *inserted.FintechLoanID)
		assert.True(t, res.IsZeroDeposit)
		assert.Equal(t, "finlease", res.FintechPartner)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("occupied bed is rejected before the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		occupied := vacantBed()
		occupied.IsOccupied = true

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("losing the bed race rolls back the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(vacantBed(), nil)
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sharedRoom(), nil)

		f.sqlMock.ExpectBegin()
		f.beds.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		f.sqlMock.ExpectRollback()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("bed not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.beds.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bedModel.Bed{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("invalid deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		bad := req
		bad.DepositAmount = "-1"

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Create(ctx, bad)

		assert.Error(t, err)
	})
}

func TestBookingService_GiveNotice(t *testing.T) {
	futureDate := timezone.Today().AddDate(0, 0, 7).Format(constant.DateOnlyLayout)

	t.Run("active booking enters its notice period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusActive), nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.GiveNotice(ctx, "booking-id", dto.GiveNoticeRequest{NoticeDate: futureDate})

		assert.NoError(t, err)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("notice date in the past is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.GiveNotice(ctx, "booking-id", dto.GiveNoticeRequest{NoticeDate: "2020-01-01"})

		assert.Error(t, err)
	})

	t.Run("booking already serving notice is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusNoticePeriod), nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.GiveNotice(ctx, "booking-id", dto.GiveNoticeRequest{NoticeDate: futureDate})

		assert.Error(t, err)
	})
}

func TestBookingService_Exit(t *testing.T) {
	t.Run("exit date before the booking start date is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusNoticePeriod), nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := f.svc.Exit(ctx, "booking-id", dto.ExitRequest{ExitDate: "2024-12-31"})

		assert.Error(t, err)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("refunds the full deposit and frees the bed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusActive), nil)
		f.invoices.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.beds.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		var refund txnModel.Transaction
		f.transactions.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, txn txnModel.Transaction) error {
				refund = txn

				return nil
			})
		f.sqlMock.ExpectCommit()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.Cancel(ctx, "booking-id")

		assert.NoError(t, err)
		assert.Equal(t, constant.TxnCategoryRefund, refund.Category)
		assert.Equal(t, "tenant-id", refund.UserID)
		assert.True(t, refund.IsCredit)
		assert.Equal(t, "20000.00", refund.Amount.StringFixed(2))
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("booking with a paid invoice cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusActive), nil)
		f.invoices.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.Cancel(ctx, "booking-id")

		assert.Error(t, err)
	})

	t.Run("booking serving notice cannot be cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newCreateFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(noticeBooking(constant.BookingStatusNoticePeriod), nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := f.svc.Cancel(ctx, "booking-id")

		assert.Error(t, err)
	})
}
