package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"freeroom/config"
	otelMocks "freeroom/infras/otel/mocks"
	"freeroom/infras/quickstudio"
	quickstudioMocks "freeroom/infras/quickstudio/mocks"
	studioMocks "freeroom/internal/domains/studio/mocks"
	"freeroom/internal/domains/studio/model"
	"freeroom/internal/domains/studio/service"
	cacheMocks "freeroom/shared/cache/mocks"
	"freeroom/shared/failure"
	"freeroom/shared/timezone"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Studio.Names = []string{testStudioName}
	cfg.Studio.StalenessSeconds = 300
	cfg.Cache.TTL = 300

	return cfg
}

func TestStudioService_EnsureFresh(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("unknown studio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.EnsureFresh(context.Background(), "unknown-studio", date)

		var fail *failure.Failure
		assert.True(t, errors.As(err, &fail))
		assert.Equal(t, 404, fail.Code)
	})

	t.Run("fresh record skips the upstream fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().
			GetFreshness(gomock.Any(), testStudioName, date).
			Return(model.DataFreshness{
				StudioName:  testStudioName,
				Date:        date,
				LastRefresh: timezone.Now(),
			}, nil)

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.EnsureFresh(context.Background(), testStudioName, date)

		assert.NoError(t, err)
	})

	t.Run("stale record triggers a refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().
			GetFreshness(gomock.Any(), testStudioName, date).
			Return(model.DataFreshness{
				StudioName:  testStudioName,
				Date:        date,
				LastRefresh: timezone.Now().Add(-time.Hour),
			}, nil)
		mockClient.EXPECT().
			GetBookings(gomock.Any(), testStudioName, date).
			Return([]quickstudio.RoomBooking{rawRoom(1)}, nil)
		mockRepo.EXPECT().
			ReplaceDay(gomock.Any(), testStudioName, date, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		// Invalidation runs on a detached goroutine after the refresh.
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.EnsureFresh(context.Background(), testStudioName, date)

		assert.NoError(t, err)
	})

	t.Run("missing record triggers a refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().
			GetFreshness(gomock.Any(), testStudioName, date).
			Return(model.DataFreshness{}, sql.ErrNoRows)
		mockClient.EXPECT().
			GetBookings(gomock.Any(), testStudioName, date).
			Return([]quickstudio.RoomBooking{rawRoom(1)}, nil)
		mockRepo.EXPECT().
			ReplaceDay(gomock.Any(), testStudioName, date, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.EnsureFresh(context.Background(), testStudioName, date)

		assert.NoError(t, err)
	})
}

func TestStudioService_Refresh(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("upstream failure leaves stored data untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		upstreamErr := &failure.UpstreamError{StudioName: testStudioName, Date: date, StatusCode: 502}
		mockClient.EXPECT().
			GetBookings(gomock.Any(), testStudioName, date).
			Return(nil, upstreamErr)

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.Refresh(context.Background(), testStudioName, date)

		var upstream *failure.UpstreamError
		assert.True(t, errors.As(err, &upstream))
	})

	t.Run("integrity violation aborts before the store is touched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		badRecord := rawRoom(1, rawBooking(model.BookingTypeBand, nil,
			time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC),
		))
		mockClient.EXPECT().
			GetBookings(gomock.Any(), testStudioName, date).
			Return([]quickstudio.RoomBooking{badRecord}, nil)

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.Refresh(context.Background(), testStudioName, date)

		var integrity *failure.DataIntegrityError
		assert.True(t, errors.As(err, &integrity))
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockClient.EXPECT().
			GetBookings(gomock.Any(), testStudioName, date).
			Return([]quickstudio.RoomBooking{rawRoom(1)}, nil)
		mockRepo.EXPECT().
			ReplaceDay(gomock.Any(), testStudioName, date, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("tx failed"))

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		err := svc.Refresh(context.Background(), testStudioName, date)

		assert.ErrorContains(t, err, "failed to replace booking data")
	})
}

func TestStudioService_GetAll(t *testing.T) {
	t.Run("cache miss reads the repository and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().CountRooms(gomock.Any(), testStudioName).Return(4, nil)
		mockRepo.EXPECT().
			GetLatestFreshness(gomock.Any(), testStudioName).
			Return(model.DataFreshness{LastRefresh: timezone.Now()}, nil)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Studios, 1)
		assert.Equal(t, testStudioName, res.Studios[0].Name)
		assert.Equal(t, 4, res.Studios[0].RoomCount)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := studioMocks.NewMockStudio(ctrl)
		mockClient := quickstudioMocks.NewMockClient(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().CountRooms(gomock.Any(), testStudioName).Return(0, errors.New("db down"))

		svc := service.New(mockRepo, mockClient, newTestConfig(), mockCache, nil, otelMocks.NewOtel())

		_, err := svc.GetAll(context.Background())

		assert.ErrorContains(t, err, "failed to count rooms")
	})
}
