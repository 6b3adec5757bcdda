package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"freeroom/config"
	"freeroom/infras/kafka"
	"freeroom/infras/otel"
	"freeroom/infras/quickstudio"
	"freeroom/internal/domains/studio/model"
	"freeroom/internal/domains/studio/model/dto"
	"freeroom/internal/domains/studio/repository"
	"freeroom/shared"
	"freeroom/shared/cache"
	"freeroom/shared/constant"
	"freeroom/shared/failure"
	"freeroom/shared/timezone"
)

const (
	cacheGetAllStudio = "studio:gets"
)

// RefreshEvent is published after every successful durable refresh of one
// (studio, date).
type RefreshEvent struct {
	EventID     string `json:"event_id"`
	StudioName  string `json:"studio_name"`
	Date        string `json:"date"`
	Rooms       int    `json:"rooms"`
	Bookings    int    `json:"bookings"`
	RefreshedAt string `json:"refreshed_at"`
}

type Studio interface {
	EnsureFresh(ctx context.Context, studioName string, date time.Time) error
	Refresh(ctx context.Context, studioName string, date time.Time) error
	GetAll(ctx context.Context) (dto.GetStudiosResponse, error)
}

type serviceImpl struct {
	repo   repository.Studio
	client quickstudio.Client
	cfg    *config.Config
	cache  cache.RedisCache
	kafka  kafka.Client
	otel   otel.Otel
}

func New(repo repository.Studio, client quickstudio.Client, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Studio {
	return &serviceImpl{
		repo:   repo,
		client: client,
		cfg:    cfg,
		cache:  cache,
		kafka:  kafkaClient,
		otel:   otel,
	}
}

// EnsureFresh guarantees the durable store holds data for (studio, date) that
// is younger than the staleness threshold, refreshing it from upstream when
// the freshness record is missing or too old.
func (s *serviceImpl) EnsureFresh(ctx context.Context, studioName string, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".studio.EnsureFresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.known(studioName) {
		return failure.NotFound(fmt.Sprintf("studio %s is not supported", studioName)) //nolint:wrapcheck
	}

	staleness := time.Duration(s.cfg.Studio.StalenessSeconds) * time.Second

	freshness, err := s.repo.GetFreshness(ctx, studioName, date)
	if err == nil && timezone.Now().Sub(freshness.LastRefresh) < staleness {
		return nil
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Warn().Err(err).Str("studio", studioName).Msg("failed to read freshness record, forcing refresh")
	}

	return s.Refresh(ctx, studioName, date)
}

// Refresh runs one full refresh cycle for (studio, date): fetch, normalize,
// transactional replace. On any failure the previously stored data for the
// date is left untouched.
func (s *serviceImpl) Refresh(ctx context.Context, studioName string, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".studio.Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.known(studioName) {
		return failure.NotFound(fmt.Sprintf("studio %s is not supported", studioName)) //nolint:wrapcheck
	}

	records, err := s.client.GetBookings(ctx, studioName, date)
	if err != nil {
		log.Error().Err(err).Str("studio", studioName).Str("date", date.Format(constant.DateOnlyFormat)).Msg("failed to fetch bookings from upstream")

		return err
	}

	rooms, bands, bookings, err := ConvertRoomBookings(studioName, date, records, timezone.GetLocation())
	if err != nil {
		log.Error().Err(err).Str("studio", studioName).Str("date", date.Format(constant.DateOnlyFormat)).Msg("failed to normalize upstream response")

		return err
	}

	refreshedAt := timezone.Now()

	if err = s.repo.ReplaceDay(ctx, studioName, date, refreshedAt, rooms, bands, bookings); err != nil {
		log.Error().Err(err).Str("studio", studioName).Msg("failed to replace booking data")

		return fmt.Errorf("failed to replace booking data: %w", err)
	}

	log.Info().
		Str("studio", studioName).
		Str("date", date.Format(constant.DateOnlyFormat)).
		Int("rooms", len(rooms)).
		Int("bookings", len(bookings)).
		Msg("booking data refreshed")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheGetAllStudio); err != nil {
			log.Error().Err(err).Msg("failed to invalidate studio cache")
		}

		s.publishRefreshEvent(c, studioName, date, len(rooms), len(bookings), refreshedAt)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetStudiosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".studio.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllStudio, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllStudio).Msg("cache hit for studios")

		return res, nil
	}

	res.Studios = []dto.StudioResponse{}

	for _, name := range s.cfg.Studio.Names {
		roomCount, err := s.repo.CountRooms(ctx, name)
		if err != nil {
			log.Error().Err(err).Str("studio", name).Msg("failed to count rooms")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		var lastRefresh time.Time

		freshness, err := s.repo.GetLatestFreshness(ctx, name)
		if err == nil {
			lastRefresh = freshness.LastRefresh
		} else if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("studio", name).Msg("failed to get latest freshness")

			return res, fmt.Errorf("failed to get latest freshness: %w", err)
		}

		studioResponse := dto.StudioResponse{}
		studioResponse.FromModel(model.Studio{Name: name}, roomCount, lastRefresh)

		res.Studios = append(res.Studios, studioResponse)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllStudio, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save studios to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) known(studioName string) bool {
	return slices.Contains(s.cfg.Studio.Names, studioName)
}

func (s *serviceImpl) publishRefreshEvent(ctx context.Context, studioName string, date time.Time, rooms, bookings int, refreshedAt time.Time) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := RefreshEvent{
		EventID:     uuid.NewString(),
		StudioName:  studioName,
		Date:        date.Format(constant.DateOnlyFormat),
		Rooms:       rooms,
		Bookings:    bookings,
		RefreshedAt: refreshedAt.Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   shared.BuildCacheKey(studioName, event.Date),
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.RefreshTopic, message); err != nil {
		log.Error().Err(err).Str("studio", studioName).Msg("failed to publish refresh event")
	}
}
