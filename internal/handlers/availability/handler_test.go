package availability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "freeroom/infras/otel/mocks"
	"freeroom/internal/domains/availability/mocks"
	"freeroom/internal/domains/availability/model/dto"
	"freeroom/internal/handlers/availability"
	"freeroom/shared/failure"
)

func newTestRouter(service *mocks.MockAvailability) chi.Router {
	handler := availability.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return router
}

func TestAvailabilityHandler_Search(t *testing.T) {
	t.Run("valid query with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		mockService.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
				assert.Equal(t, "hf-music-studio-14", req.StudioName)
				assert.Equal(t, "2025-06-02", req.StartDate.Format("2006-01-02"))
				assert.Equal(t, "2025-06-04", req.EndDate.Format("2006-01-02"))
				assert.Empty(t, req.DaysOfWeek)
				assert.Equal(t, 50, req.MinRoomSize)
				assert.Equal(t, time.Hour, req.MinDuration)
				assert.Equal(t, 19, req.FromTime.Hour())
				assert.Equal(t, 0, req.ToTime.Hour())

				return dto.SearchResponse{Availabilities: map[string][]dto.Availability{}}, nil
			})

		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=2025-06-02&end_date=2025-06-04", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "availabilities")
	})

	t.Run("explicit filters are parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		mockService.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
				assert.Equal(t, []int{1, 3, 5}, req.DaysOfWeek)
				assert.Equal(t, 100, req.MinRoomSize)
				assert.Equal(t, 90*time.Minute, req.MinDuration)
				assert.Equal(t, 20, req.FromTime.Hour())
				assert.Equal(t, 30, req.FromTime.Minute())
				assert.Equal(t, 23, req.ToTime.Hour())

				return dto.SearchResponse{}, nil
			})

		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=2025-06-02&end_date=2025-06-04"+
				"&days_of_week=1,3&days_of_week=5&min_room_size=100&min_availability_duration=90"+
				"&from_time=20:30&to_time=23:00", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=bogus&end_date=2025-06-04", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid date parameter")
	})

	t.Run("invalid time of day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=2025-06-02&end_date=2025-06-04&from_time=25:99", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=2025-06-02&end_date=2025-06-04&days_of_week=8", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing studio name fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?start_date=2025-06-02&end_date=2025-06-04", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("service failure code is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockAvailability(ctrl)
		mockService.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(dto.SearchResponse{}, failure.NotFound("studio hf-music-studio-14 is not supported"))

		router := newTestRouter(mockService)

		request := httptest.NewRequest(http.MethodGet,
			"/v1/availability/?studio_name=hf-music-studio-14&start_date=2025-06-02&end_date=2025-06-04", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
