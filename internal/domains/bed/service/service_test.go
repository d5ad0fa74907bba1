package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"basera/config"
	"basera/infras/otel/mocks"
	bedMocks "basera/internal/domains/bed/mocks"
	"basera/internal/domains/bed/model/dto"
	"basera/internal/domains/bed/service"
	cacheMocks "basera/shared/cache/mocks"
	"basera/shared/constant"
)

func TestBedService_RecordReading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bedMocks.NewMockBed(ctrl)
	mockReadings := bedMocks.NewMockElectricityReading(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockReadings, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		bedID     string
		req       dto.RecordReadingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "successful reading",
			bedID: "bed-id",
			req: dto.RecordReadingRequest{
				ReadingDate: "2025-06-15",
				Units:       "12.50",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockReadings.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "bed not found",
			bedID: "missing-id",
			req: dto.RecordReadingRequest{
				ReadingDate: "2025-06-15",
				Units:       "12.50",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:  "invalid units",
			bedID: "bed-id",
			req: dto.RecordReadingRequest{
				ReadingDate: "2025-06-15",
				Units:       "not-a-number",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:  "repository error",
			bedID: "bed-id",
			req: dto.RecordReadingRequest{
				ReadingDate: "2025-06-15",
				Units:       "12.50",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.RecordReading(ctx, tt.bedID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
