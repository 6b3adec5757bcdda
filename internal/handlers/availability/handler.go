package availability

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"freeroom/infras/otel"
	"freeroom/internal/domains/availability/model/dto"
	"freeroom/internal/domains/availability/service"
	"freeroom/shared"
	"freeroom/shared/constant"
	"freeroom/shared/failure"
	"freeroom/shared/timezone"
	"freeroom/shared/validator"
	"freeroom/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Search)
	})
}

// Search returns the free-time windows per room per day for one studio.
// @Summary Search room availability
// @Description Compute free-time windows per room for a date range, subject to filters.
// @Tags Availability
// @Accept json
// @Produce json
// @Param studio_name query string true "Studio name"
// @Param start_date query string true "First date (YYYY-MM-DD)"
// @Param end_date query string true "Last date (YYYY-MM-DD)"
// @Param days_of_week query []int false "ISO weekdays to include, 1=Monday through 7=Sunday (default all)"
// @Param min_room_size query int false "Minimum room capacity (default 50)"
// @Param min_availability_duration query int false "Minimum window duration in minutes (default 60)"
// @Param from_time query string false "Earliest time of day, HH:MM (default 19:00)"
// @Param to_time query string false "Latest time of day, HH:MM; 00:00 means midnight at the end of the day (default 00:00)"
// @Success 200 {object} response.Data[dto.SearchResponse] "Availability windows keyed by date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	req, err := parseSearchRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability query")

		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability computed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

func parseSearchRequest(r *http.Request) (dto.SearchRequest, error) {
	query := r.URL.Query()

	req := dto.SearchRequest{
		StudioName:  query.Get(constant.RequestParamStudioName),
		MinRoomSize: constant.DefaultValueMinRoomSize,
		MinDuration: constant.DefaultValueMinDuration * time.Minute,
	}

	var err error

	req.StartDate, err = timezone.Parse(constant.DateOnlyFormat, query.Get(constant.RequestParamStartDate))
	if err != nil {
		return req, failure.InvalidDateParam
	}

	req.EndDate, err = timezone.Parse(constant.DateOnlyFormat, query.Get(constant.RequestParamEndDate))
	if err != nil {
		return req, failure.InvalidDateParam
	}

	for _, raw := range query[constant.RequestParamDaysOfWeek] {
		for _, part := range strings.Split(raw, ",") {
			day, err := shared.ConvertStringToInt(strings.TrimSpace(part))
			if err != nil {
				return req, failure.BadRequestFromString("invalid days_of_week parameter")
			}

			req.DaysOfWeek = append(req.DaysOfWeek, day)
		}
	}

	if raw := query.Get(constant.RequestParamMinRoomSize); raw != "" {
		size, err := shared.ConvertStringToInt(raw)
		if err != nil {
			return req, failure.BadRequestFromString("invalid min_room_size parameter")
		}

		req.MinRoomSize = size
	}

	if raw := query.Get(constant.RequestParamMinDuration); raw != "" {
		minutes, err := shared.ConvertStringToInt(raw)
		if err != nil || minutes < 0 {
			return req, failure.BadRequestFromString("invalid min_availability_duration parameter")
		}

		req.MinDuration = time.Duration(minutes) * time.Minute
	}

	req.FromTime, err = parseTimeOfDay(query.Get(constant.RequestParamFromTime), constant.DefaultValueFromTime)
	if err != nil {
		return req, failure.InvalidTimeParam
	}

	req.ToTime, err = parseTimeOfDay(query.Get(constant.RequestParamToTime), constant.DefaultValueToTime)
	if err != nil {
		return req, failure.InvalidTimeParam
	}

	return req, nil
}

func parseTimeOfDay(raw, defaultValue string) (time.Time, error) {
	if raw == "" {
		raw = defaultValue
	}

	return time.Parse(constant.TimeOnlyFormat, raw) //nolint:wrapcheck
}
