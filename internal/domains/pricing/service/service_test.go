package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"basera/config"
	"basera/infras/otel/mocks"
	pricingMocks "basera/internal/domains/pricing/mocks"
	"basera/internal/domains/pricing/model"
	"basera/internal/domains/pricing/model/dto"
	"basera/internal/domains/pricing/service"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
)

func TestPricingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricingRule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreatePricingRuleRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreatePricingRuleRequest{
				Name:            "Summer Season",
				StartMonth:      4,
				EndMonth:        6,
				PriceMultiplier: "1.10",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid multiplier",
			req: dto.CreatePricingRuleRequest{
				Name:            "Summer Season",
				StartMonth:      4,
				EndMonth:        6,
				PriceMultiplier: "not-a-number",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "non-positive multiplier",
			req: dto.CreatePricingRuleRequest{
				Name:            "Summer Season",
				StartMonth:      4,
				EndMonth:        6,
				PriceMultiplier: "0",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreatePricingRuleRequest{
				Name:            "Summer Season",
				StartMonth:      4,
				EndMonth:        6,
				PriceMultiplier: "1.10",
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
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPricingService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricingRule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	createdAt := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		baseRent       string
		date           string
		setupMock      func()
		wantErr        bool
		wantEffective  string
		wantMultiplier string
	}{
		{
			name:     "seasonal multiplier applied",
			baseRent: "10000",
			date:     "2025-05-10",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetActiveForProperty(gomock.Any(), gomock.Any()).
					Return([]model.PricingRule{rule("summer", 4, 6, "1.10", true, createdAt)}, nil)
			},
			wantErr:        false,
			wantEffective:  "11000.00",
			wantMultiplier: "1.1",
		},
		{
			name:     "no covering rule keeps the base rent",
			baseRent: "10000",
			date:     "2025-09-10",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetActiveForProperty(gomock.Any(), gomock.Any()).
					Return([]model.PricingRule{rule("summer", 4, 6, "1.10", true, createdAt)}, nil)
			},
			wantErr:        false,
			wantEffective:  "10000.00",
			wantMultiplier: "1",
		},
		{
			name:      "invalid base rent",
			baseRent:  "not-a-number",
			date:      "2025-05-10",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "invalid date",
			baseRent:  "10000",
			date:      "10-05-2025",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:     "negative base rent",
			baseRent: "-100",
			date:     "2025-05-10",
			setupMock: func() {
			},
			wantErr: true,
		},
		{
			name:     "zero base rent is a configuration fault",
			baseRent: "0",
			date:     "2025-05-10",
			setupMock: func() {
			},
			wantErr: true,
		},
		{
			name:     "corrupt rule with non-positive multiplier",
			baseRent: "10000",
			date:     "2025-05-10",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetActiveForProperty(gomock.Any(), gomock.Any()).
					Return([]model.PricingRule{rule("broken", 4, 6, "0", true, createdAt)}, nil)
			},
			wantErr: true,
		},
		{
			name:     "repository error",
			baseRent: "10000",
			date:     "2025-05-10",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetActiveForProperty(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Resolve(ctx, "property-id", tt.baseRent, tt.date)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantEffective, result.EffectiveRent)
				assert.Equal(t, tt.wantMultiplier, result.Multiplier)
			}
		})
	}
}

func TestPricingService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := pricingMocks.NewMockPricingRule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deactivation",
			id:   "rule-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rule not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Deactivate(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
