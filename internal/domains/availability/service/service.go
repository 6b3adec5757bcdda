package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"freeroom/config"
	"freeroom/infras/otel"
	"freeroom/internal/domains/availability/model/dto"
	"freeroom/internal/domains/studio/repository"
	studioService "freeroom/internal/domains/studio/service"
	"freeroom/shared"
	"freeroom/shared/constant"
	"freeroom/shared/failure"
	"freeroom/shared/timezone"
)

type Availability interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type serviceImpl struct {
	studios studioService.Studio
	repo    repository.Studio
	cfg     *config.Config
	otel    otel.Otel
}

func New(studios studioService.Studio, repo repository.Studio, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		studios: studios,
		repo:    repo,
		cfg:     cfg,
		otel:    otel,
	}
}

// Search resolves the requested date range, brings every date's booking data
// up to freshness with bounded concurrency, and computes the filtered free
// windows per date. A date that cannot be resolved is omitted from the result
// and surfaced as a warning; it never aborts its siblings.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !slices.Contains(s.cfg.Studio.Names, req.StudioName) {
		return res, failure.NotFound(fmt.Sprintf("studio %s is not supported", req.StudioName)) //nolint:wrapcheck
	}

	if req.EndDate.Before(req.StartDate) {
		return res, failure.InvalidDateRange
	}

	dates := filterDates(shared.DateRange(req.StartDate, req.EndDate), req.DaysOfWeek)

	failures := s.ensureDatesFresh(ctx, req.StudioName, dates)

	rooms, err := s.repo.GetRooms(ctx, req.StudioName)
	if err != nil {
		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	loc := timezone.GetLocation()

	res.Availabilities = map[string][]dto.Availability{}
	res.Warnings = []dto.Warning{}

	for _, date := range dates {
		dateKey := date.Format(constant.DateOnlyFormat)

		if dateErr, ok := failures[dateKey]; ok {
			res.Warnings = append(res.Warnings, dto.Warning{Date: dateKey, Reason: dateErr.Error()})

			continue
		}

		bookings, err := s.repo.GetBookings(ctx, req.StudioName, date)
		if err != nil {
			log.Error().Err(err).Str("date", dateKey).Msg("failed to get bookings")
			res.Warnings = append(res.Warnings, dto.Warning{Date: dateKey, Reason: "stored booking data unavailable"})

			continue
		}

		res.Availabilities[dateKey] = computeRoomAvailabilities(rooms, bookings, date, req, loc)
	}

	if len(res.Warnings) == 0 {
		res.Warnings = nil
	}

	return res, nil
}

// ensureDatesFresh fans out one freshness check per distinct date and waits
// for all of them. The upstream client bounds the fetch concurrency; the whole
// batch shares one deadline. Per-date failures are collected, keyed by date.
func (s *serviceImpl) ensureDatesFresh(ctx context.Context, studioName string, dates []time.Time) map[string]error {
	deadline := time.Duration(s.cfg.Studio.BatchDeadlineSeconds) * time.Second

	batchCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = map[string]error{}
	)

	for _, date := range dates {
		wg.Add(1)

		go func(date time.Time) {
			defer wg.Done()

			if err := s.studios.EnsureFresh(batchCtx, studioName, date); err != nil {
				mu.Lock()
				failures[date.Format(constant.DateOnlyFormat)] = err
				mu.Unlock()
			}
		}(date)
	}

	wg.Wait()

	return failures
}

func filterDates(dates []time.Time, daysOfWeek []int) []time.Time {
	if len(daysOfWeek) == 0 {
		return dates
	}

	filtered := []time.Time{}
	for _, date := range dates {
		if slices.Contains(daysOfWeek, shared.ISOWeekday(date)) {
			filtered = append(filtered, date)
		}
	}

	return filtered
}
