package service

import (
	"fmt"
	"time"

	"freeroom/infras/quickstudio"
	"freeroom/internal/domains/studio/model"
	"freeroom/shared"
	"freeroom/shared/failure"
)

// ConvertRoomBookings normalizes one upstream response into canonical rooms,
// bands and bookings. Rooms and bands are deduplicated by id; type-4
// placeholder slots are dropped; any other violation of the upstream contract
// aborts the whole response with a DataIntegrityError so that a date is never
// partially applied.
func ConvertRoomBookings(studioName string, date time.Time, records []quickstudio.RoomBooking, loc *time.Location) ([]model.Room, []model.Band, []model.Booking, error) {
	rooms := []model.Room{}
	roomSeen := map[int64]bool{}

	bands := []model.Band{}
	bandSeen := map[int64]bool{}

	bookings := []model.Booking{}

	for _, record := range records {
		if !roomSeen[record.ID] {
			roomSeen[record.ID] = true
			rooms = append(rooms, model.Room{
				ID:          record.ID,
				Name:        record.Name,
				Description: record.Description,
				Size:        record.Size,
				Open:        record.Open.In(loc),
				Close:       record.Close.In(loc),
				StudioName:  studioName,
			})
		}

		for _, raw := range record.Bookings {
			switch raw.Type {
			case model.BookingTypeBand:
				booking, band, err := convertBandBooking(studioName, date, record, raw, loc)
				if err != nil {
					return nil, nil, nil, err
				}

				if !bandSeen[band.ID] {
					bandSeen[band.ID] = true
					bands = append(bands, band)
				}

				bookings = append(bookings, booking)
			case model.BookingTypeClosed:
				// Placeholder for non-opening hours, carries no information.
			default:
				return nil, nil, nil, &failure.DataIntegrityError{
					StudioName: studioName,
					Date:       date,
					Reason:     fmt.Sprintf("unknown booking type %d for room %q", raw.Type, record.Name),
					Record:     raw,
				}
			}
		}
	}

	return rooms, bands, bookings, nil
}

func convertBandBooking(studioName string, date time.Time, record quickstudio.RoomBooking, raw quickstudio.Booking, loc *time.Location) (model.Booking, model.Band, error) {
	if raw.Band == nil {
		return model.Booking{}, model.Band{}, &failure.DataIntegrityError{
			StudioName: studioName,
			Date:       date,
			Reason:     fmt.Sprintf("booking for room %q has no band but has type %d", record.Name, raw.Type),
			Record:     raw,
		}
	}

	start := raw.Start.In(loc)
	end := raw.End.In(loc)
	day := shared.StartOfDay(start)

	// A booking may only leave its calendar day when it ends exactly at
	// midnight, which resolves to the start of the following day.
	if !shared.StartOfDay(end).Equal(day) && !end.Equal(day.AddDate(0, 0, 1)) {
		return model.Booking{}, model.Band{}, &failure.DataIntegrityError{
			StudioName: studioName,
			Date:       date,
			Reason:     fmt.Sprintf("booking for room %q spans more than one day (%s - %s)", record.Name, start, end),
			Record:     raw,
		}
	}

	booking := model.Booking{
		Type:   raw.Type,
		Date:   day,
		Start:  start,
		End:    end,
		BandID: raw.Band.ID,
		RoomID: record.ID,
	}

	band := model.Band{
		ID:   raw.Band.ID,
		Name: raw.Band.Name,
	}

	return booking, band, nil
}
