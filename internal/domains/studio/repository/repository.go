package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"freeroom/infras/otel"
	"freeroom/infras/postgres"
	"freeroom/internal/domains/studio/model"
	"freeroom/shared/constant"
	"freeroom/shared/logger"
)

type Studio interface {
	GetStudio(ctx context.Context, name string) (model.Studio, error)
	GetRooms(ctx context.Context, studioName string) ([]model.Room, error)
	GetBookings(ctx context.Context, studioName string, date time.Time) ([]model.Booking, error)
	GetFreshness(ctx context.Context, studioName string, date time.Time) (model.DataFreshness, error)
	GetLatestFreshness(ctx context.Context, studioName string) (model.DataFreshness, error)
	CountRooms(ctx context.Context, studioName string) (int, error)
	ReplaceDay(ctx context.Context, studioName string, date, refreshedAt time.Time, rooms []model.Room, bands []model.Band, bookings []model.Booking) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Studio {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const (
	queryGetStudio = `SELECT name FROM studios WHERE name = $1`

	queryGetRooms = `SELECT id, name, description, size, open, close, studio_name
		FROM rooms WHERE studio_name = $1 ORDER BY id`

	queryGetBookings = `SELECT b.id, b.type, b.date, b.start, b."end", b.band_id, b.room_id
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE r.studio_name = $1 AND b.date = $2
		ORDER BY b.start`

	queryGetFreshness = `SELECT studio_name, date, last_refresh
		FROM data_freshness WHERE studio_name = $1 AND date = $2`

	queryGetLatestFreshness = `SELECT studio_name, date, last_refresh
		FROM data_freshness WHERE studio_name = $1
		ORDER BY last_refresh DESC LIMIT 1`

	queryCountRooms = `SELECT COUNT(*) FROM rooms WHERE studio_name = $1`

	queryUpsertStudio = `INSERT INTO studios (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING`

	queryUpsertRooms = `INSERT INTO rooms (id, name, description, size, open, close, studio_name)
		VALUES (:id, :name, :description, :size, :open, :close, :studio_name)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			size = EXCLUDED.size,
			open = EXCLUDED.open,
			close = EXCLUDED.close,
			studio_name = EXCLUDED.studio_name`

	queryUpsertBands = `INSERT INTO bands (id, name) VALUES (:id, :name)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

	queryDeleteBookings = `DELETE FROM bookings USING rooms
		WHERE bookings.room_id = rooms.id AND rooms.studio_name = $1 AND bookings.date = $2`

	queryInsertBookings = `INSERT INTO bookings (type, date, start, "end", band_id, room_id)
		VALUES (:type, :date, :start, :end, :band_id, :room_id)`

	queryUpsertFreshness = `INSERT INTO data_freshness (studio_name, date, last_refresh)
		VALUES ($1, $2, $3)
		ON CONFLICT (studio_name, date) DO UPDATE SET last_refresh = EXCLUDED.last_refresh`
)

func (repo *repositoryImpl) GetStudio(ctx context.Context, name string) (res model.Studio, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetStudio")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetStudio)

	if err = repo.db.Read.GetContext(ctx, &res, queryGetStudio, name); err != nil {
		return res, fmt.Errorf("failed to get data (%s): %w", model.StudioEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetRooms(ctx context.Context, studioName string) (res []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetRooms)

	if err = repo.db.Read.SelectContext(ctx, &res, queryGetRooms, studioName); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.RoomEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetBookings(ctx context.Context, studioName string, date time.Time) (res []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetBookings)

	if err = repo.db.Read.SelectContext(ctx, &res, queryGetBookings, studioName, date); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.BookingEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetFreshness(ctx context.Context, studioName string, date time.Time) (res model.DataFreshness, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetFreshness")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetFreshness)

	if err = repo.db.Read.GetContext(ctx, &res, queryGetFreshness, studioName, date); err != nil {
		return res, fmt.Errorf("failed to get data (%s): %w", model.FreshnessEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetLatestFreshness(ctx context.Context, studioName string) (res model.DataFreshness, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetLatestFreshness")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetLatestFreshness)

	if err = repo.db.Read.GetContext(ctx, &res, queryGetLatestFreshness, studioName); err != nil {
		return res, fmt.Errorf("failed to get data (%s): %w", model.FreshnessEntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) CountRooms(ctx context.Context, studioName string) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.CountRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountRooms)

	if err = repo.db.Read.GetContext(ctx, &res, queryCountRooms, studioName); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", model.RoomEntityName, err)
	}

	return res, nil
}

// ReplaceDay atomically replaces one calendar day of booking data for a studio:
// rooms and bands are upserted by id, the day's bookings are deleted and
// re-inserted, and the freshness record is bumped. Concurrent refreshes of the
// same (studio, date) resolve by last writer wins on the freshness timestamp.
func (repo *repositoryImpl) ReplaceDay(ctx context.Context, studioName string, date, refreshedAt time.Time, rooms []model.Room, bands []model.Band, bookings []model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.ReplaceDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, queryUpsertStudio, studioName); err != nil {
		return fmt.Errorf("failed to upsert data (%s): %w", model.StudioEntityName, err)
	}

	if len(rooms) > 0 {
		if _, err = tx.NamedExecContext(ctx, queryUpsertRooms, rooms); err != nil {
			return fmt.Errorf("failed to upsert data (%s): %w", model.RoomEntityName, err)
		}
	}

	if len(bands) > 0 {
		if _, err = tx.NamedExecContext(ctx, queryUpsertBands, bands); err != nil {
			return fmt.Errorf("failed to upsert data (%s): %w", model.BandEntityName, err)
		}
	}

	if _, err = tx.ExecContext(ctx, queryDeleteBookings, studioName, date); err != nil {
		return fmt.Errorf("failed to delete data (%s): %w", model.BookingEntityName, err)
	}

	if len(bookings) > 0 {
		if _, err = tx.NamedExecContext(ctx, queryInsertBookings, bookings); err != nil {
			return fmt.Errorf("failed to insert data (%s): %w", model.BookingEntityName, err)
		}
	}

	if _, err = tx.ExecContext(ctx, queryUpsertFreshness, studioName, date, refreshedAt); err != nil {
		return fmt.Errorf("failed to upsert data (%s): %w", model.FreshnessEntityName, err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
