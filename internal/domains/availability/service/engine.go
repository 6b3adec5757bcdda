package service

import (
	"sort"
	"time"

	"freeroom/internal/domains/availability/model/dto"
	studioModel "freeroom/internal/domains/studio/model"
	"freeroom/shared/constant"
)

// computeRoomAvailabilities runs the gap-finding sweep for one date over every
// qualifying room and returns the surviving windows sorted by start time.
func computeRoomAvailabilities(rooms []studioModel.Room, bookings []studioModel.Booking, date time.Time, query dto.SearchRequest, loc *time.Location) []dto.Availability {
	bookingsPerRoom := map[int64][]studioModel.Booking{}
	for _, booking := range bookings {
		bookingsPerRoom[booking.RoomID] = append(bookingsPerRoom[booking.RoomID], booking)
	}

	candidates := []dto.Availability{}

	for _, room := range rooms {
		if room.Size < query.MinRoomSize {
			continue
		}

		candidates = append(candidates, sweepRoom(room, bookingsPerRoom[room.ID], date, query, loc)...)
	}

	availabilities := []dto.Availability{}
	for _, candidate := range candidates {
		if candidate.End.Sub(candidate.Start) >= query.MinDuration {
			availabilities = append(availabilities, candidate)
		}
	}

	sort.SliceStable(availabilities, func(i, j int) bool {
		return availabilities[i].Start.Before(availabilities[j].Start)
	})

	return availabilities
}

// sweepRoom walks one room's bookings in start order with a forward-moving
// cursor and emits the maximal free intervals inside the effective opening
// window. Overlapping bookings are handled because the cursor never moves
// backwards; all emitted windows are clamped to [open, close).
func sweepRoom(room studioModel.Room, bookings []studioModel.Booking, date time.Time, query dto.SearchRequest, loc *time.Location) []dto.Availability {
	openClock := max(clockMinutes(room.Open), clockMinutes(query.FromTime))
	closeClock := min(clockMinutes(room.Close), clockMinutes(query.ToTime))

	cursor := combineClock(date, openClock, loc)
	closeBoundary := combineClockMidnightAware(date, closeClock, loc)

	sorted := make([]studioModel.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	windows := []dto.Availability{}

	emit := func(start, end time.Time) {
		windows = append(windows, dto.Availability{
			RoomName:        dto.StripRoomName(room.Name),
			Date:            date.Format(constant.DateOnlyFormat),
			Start:           start,
			End:             end,
			DurationMinutes: int(end.Sub(start).Minutes()),
		})
	}

	for _, booking := range sorted {
		start := booking.Start
		if start.After(closeBoundary) {
			start = closeBoundary
		}

		if start.After(cursor) {
			emit(cursor, start)
		}

		if booking.End.After(cursor) {
			cursor = booking.End
		}

		if !cursor.Before(closeBoundary) {
			return windows
		}
	}

	if closeBoundary.After(cursor) {
		emit(cursor, closeBoundary)
	}

	return windows
}

// clockMinutes reads the wall clock of a time-of-day value as stored, without
// location conversion: open/close clocks are zone-naive studio-local times.
func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func combineClock(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// combineClockMidnightAware resolves midnight to the start of the following
// calendar day: a close boundary of 00:00 means "end of this day", never
// "start of it".
func combineClockMidnightAware(date time.Time, minutes int, loc *time.Location) time.Time {
	if minutes == 0 {
		date = date.AddDate(0, 0, 1)
	}

	return combineClock(date, minutes, loc)
}
