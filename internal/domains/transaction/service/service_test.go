package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"basera/config"
	"basera/infras/otel/mocks"
	bookingMocks "basera/internal/domains/booking/mocks"
	bookingModel "basera/internal/domains/booking/model"
	transactionMocks "basera/internal/domains/transaction/mocks"
	"basera/internal/domains/transaction/model"
	"basera/internal/domains/transaction/model/dto"
	"basera/internal/domains/transaction/service"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
)

func TestTransactionService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := transactionMocks.NewMockTransaction(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.RecordTransactionRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful record",
			req: dto.RecordTransactionRequest{
				PropertyID: "property-id",
				Category:   constant.TxnCategoryExpense,
				Amount:     "1500.00",
				IsCredit:   false,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid amount",
			req: dto.RecordTransactionRequest{
				PropertyID: "property-id",
				Category:   constant.TxnCategoryExpense,
				Amount:     "not-a-number",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "non-positive amount",
			req: dto.RecordTransactionRequest{
				PropertyID: "property-id",
				Category:   constant.TxnCategoryExpense,
				Amount:     "0",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.RecordTransactionRequest{
				PropertyID: "property-id",
				Category:   constant.TxnCategoryExpense,
				Amount:     "1500.00",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Record(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionService_Recharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := transactionMocks.NewMockTransaction(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel)

	booking := bookingModel.Booking{
		ID:         "booking-id",
		TenantID:   "tenant-id",
		PropertyID: "property-id",
	}

	tests := []struct {
		name      string
		bookingID string
		req       dto.WalletRechargeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "successful recharge credits the tenant wallet",
			bookingID: "booking-id",
			req:       dto.WalletRechargeRequest{Amount: "500.00"},
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn model.Transaction) error {
						assert.Equal(t, "tenant-id", txn.UserID)
						assert.True(t, txn.IsCredit)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "invalid amount",
			bookingID: "booking-id",
			req:       dto.WalletRechargeRequest{Amount: "not-a-number"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "non-positive amount",
			bookingID: "booking-id",
			req:       dto.WalletRechargeRequest{Amount: "-100"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "booking not found",
			bookingID: "missing-id",
			req:       dto.WalletRechargeRequest{Amount: "500.00"},
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "repository error",
			bookingID: "booking-id",
			req:       dto.WalletRechargeRequest{Amount: "500.00"},
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Recharge(ctx, tt.bookingID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionService_WalletBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := transactionMocks.NewMockTransaction(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookings, cfg, mockCache, mockOtel)

	booking := bookingModel.Booking{
		ID:         "booking-id",
		TenantID:   "tenant-id",
		PropertyID: "property-id",
	}

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantBalance string
	}{
		{
			name: "positive balance keyed by the tenant",
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					SumBalance(gomock.Any(), "tenant-id", gomock.Any(), gomock.Any()).
					Return(decimal.RequireFromString("150.50"), nil)
			},
			wantErr:     false,
			wantBalance: "150.50",
		},
		{
			name: "negative balance is reported, not clamped",
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					SumBalance(gomock.Any(), "tenant-id", gomock.Any(), gomock.Any()).
					Return(decimal.RequireFromString("-75.25"), nil)
			},
			wantErr:     false,
			wantBalance: "-75.25",
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockBookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					SumBalance(gomock.Any(), "tenant-id", gomock.Any(), gomock.Any()).
					Return(decimal.Zero, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.WalletBalance(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantBalance, result.Balance)
				assert.Equal(t, "tenant-id", result.TenantID)
			}
		})
	}
}
