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
	bookingMocks "basera/internal/domains/booking/mocks"
	messMocks "basera/internal/domains/mess/mocks"
	"basera/internal/domains/mess/model"
	"basera/internal/domains/mess/service"
	transactionMocks "basera/internal/domains/transaction/mocks"
	txnModel "basera/internal/domains/transaction/model"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
)

type billDayFixture struct {
	svc        service.Mess
	selections *messMocks.MockMealSelection
	txns       *transactionMocks.MockTransaction
	sqlMock    sqlmock.Sqlmock
}

func newBillDayFixture(t *testing.T, ctrl *gomock.Controller) billDayFixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{
		Read:  sqlx.NewDb(db, "postgres"),
		Write: sqlx.NewDb(db, "postgres"),
	}

	menus := messMocks.NewMockMessMenu(ctrl)
	selections := messMocks.NewMockMealSelection(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	txns := transactionMocks.NewMockTransaction(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return billDayFixture{
		svc:        service.New(menus, selections, bookings, txns, conn, cfg, mockCache, mockOtel),
		selections: selections,
		txns:       txns,
		sqlMock:    sqlMock,
	}
}

func billableSelection(breakfast, lunch, dinner string) model.BillableSelection {
	return model.BillableSelection{
		DailyMealSelection: model.DailyMealSelection{
			ID:        "selection-id",
			TenantID:  "tenant-id",
			BookingID: "booking-id",
			MenuID:    "menu-id",
			Breakfast: breakfast,
			Lunch:     lunch,
			Dinner:    dinner,
		},
		PropertyID:     "property-id",
		MenuDate:       time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		BreakfastPrice: decimal.RequireFromString("50"),
		LunchPrice:     decimal.RequireFromString("60"),
		DinnerPrice:    decimal.RequireFromString("70"),
	}
}

func TestMessService_BillDay(t *testing.T) {
	billingDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("bills one wallet debit per eaten slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBillDayFixture(t, ctrl)

		f.selections.EXPECT().
			GetBillable(gomock.Any(), "property-id", gomock.Any(), gomock.Any()).
			Return([]model.BillableSelection{
				billableSelection(constant.MealStatusEating, constant.MealStatusSkipping, constant.MealStatusEating),
			}, nil)

		f.sqlMock.ExpectBegin()
		f.selections.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		var debits []txnModel.Transaction
		f.txns.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, txn txnModel.Transaction) error {
				debits = append(debits, txn)

				return nil
			}).
			Times(2)
		f.sqlMock.ExpectCommit()

		res, err := f.svc.BillDay(context.Background(), "property-id", billingDate)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.BilledCount)
		assert.Equal(t, 0, res.SkippedCount)
		assert.Equal(t, "120.00", res.TotalAmount)

		require.Len(t, debits, 2)
		assert.Equal(t, "50.00", debits[0].Amount.StringFixed(2))
		assert.Equal(t, "70.00", debits[1].Amount.StringFixed(2))

		for _, debit := range debits {
			assert.Equal(t, constant.TxnCategoryMessDebit, debit.Category)
			assert.Equal(t, "tenant-id", debit.UserID)
			assert.False(t, debit.IsCredit)
		}

		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("already billed selection is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBillDayFixture(t, ctrl)

		f.selections.EXPECT().
			GetBillable(gomock.Any(), "property-id", gomock.Any(), gomock.Any()).
			Return([]model.BillableSelection{
				billableSelection(constant.MealStatusEating, constant.MealStatusEating, constant.MealStatusEating),
			}, nil)

		f.sqlMock.ExpectBegin()
		f.selections.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		f.sqlMock.ExpectCommit()

		res, err := f.svc.BillDay(context.Background(), "property-id", billingDate)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.BilledCount)
		assert.Equal(t, 1, res.SkippedCount)
		assert.Equal(t, "0.00", res.TotalAmount)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("all slots skipped bills without a debit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBillDayFixture(t, ctrl)

		f.selections.EXPECT().
			GetBillable(gomock.Any(), "property-id", gomock.Any(), gomock.Any()).
			Return([]model.BillableSelection{
				billableSelection(constant.MealStatusSkipping, constant.MealStatusSkipping, constant.MealStatusSkipping),
			}, nil)

		f.sqlMock.ExpectBegin()
		f.selections.EXPECT().
			UpdateTxGuarded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		f.sqlMock.ExpectCommit()

		res, err := f.svc.BillDay(context.Background(), "property-id", billingDate)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.BilledCount)
		assert.Equal(t, "0.00", res.TotalAmount)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("billable lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBillDayFixture(t, ctrl)

		f.selections.EXPECT().
			GetBillable(gomock.Any(), "property-id", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := f.svc.BillDay(context.Background(), "property-id", billingDate)

		assert.Error(t, err)
	})
}
