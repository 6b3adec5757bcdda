package studio

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"freeroom/infras/otel"
	"freeroom/internal/domains/studio/service"
	"freeroom/shared"
	"freeroom/shared/constant"
	"freeroom/shared/failure"
	"freeroom/shared/timezone"
	"freeroom/transport/http/response"
)

type Handler struct {
	service service.Studio
	otel    otel.Otel
}

func New(service service.Studio, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/studios", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAll)
		routerGroup.Post("/{name}/refresh", handler.Refresh)
	})
}

// GetAll lists the configured studios with their room counts.
// @Summary List studios
// @Description List the supported studios with room count and last refresh time.
// @Tags Studio
// @Produce json
// @Success 200 {object} response.Data[dto.GetStudiosResponse]
// @Failure 500 {object} response.Error
// @Router /v1/studios [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get studios")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Refresh forces a refresh cycle for one studio and date, bypassing the
// staleness check.
// @Summary Force a booking-data refresh
// @Description Fetch, normalize and store the booking data for one studio and date.
// @Tags Studio
// @Produce json
// @Param name path string true "Studio name"
// @Param date query string false "Date to refresh (YYYY-MM-DD, default today)"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/studios/{name}/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	studioName := chi.URLParam(r, constant.RequestParamName)

	date := shared.StartOfDay(timezone.Now())

	if raw := r.URL.Query().Get(constant.RequestParamDate); raw != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, raw)
		if err != nil {
			scope.TraceError(failure.InvalidDateParam)
			log.Error().Err(err).Str("date", raw).Msg("failed to parse refresh date")

			response.WithError(w, failure.InvalidDateParam)

			return
		}

		date = parsed
	}

	if err := handler.service.Refresh(ctx, studioName, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("studio", studioName).Msg("failed to refresh studio")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Studio refreshed successfully")

	response.WithMessage(w, http.StatusOK, "refresh completed")
}
