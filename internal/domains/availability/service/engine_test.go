package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"freeroom/internal/domains/availability/model/dto"
	studioModel "freeroom/internal/domains/studio/model"
)

var engineLoc = time.UTC

func clock(hour, minute int) time.Time {
	return time.Date(2000, 1, 1, hour, minute, 0, 0, engineLoc)
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, engineLoc)
}

func testRoom(id int64, size int, open, close time.Time) studioModel.Room {
	return studioModel.Room{
		ID:    id,
		Name:  "1.Studio A bigroom",
		Size:  size,
		Open:  open,
		Close: close,
	}
}

func testBooking(roomID int64, start, end time.Time) studioModel.Booking {
	return studioModel.Booking{
		Type:   studioModel.BookingTypeBand,
		Start:  start,
		End:    end,
		RoomID: roomID,
	}
}

func testQuery(from, to time.Time, minSize int, minDuration time.Duration) dto.SearchRequest {
	return dto.SearchRequest{
		StudioName:  "hf-music-studio-14",
		MinRoomSize: minSize,
		MinDuration: minDuration,
		FromTime:    from,
		ToTime:      to,
	}
}

func TestComputeRoomAvailabilities_EmptyDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, nil, date, query, engineLoc)

	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 23, 0), got[0].End)
	assert.Equal(t, 240, got[0].DurationMinutes)
	assert.Equal(t, "Studio A", got[0].RoomName)
	assert.Equal(t, "2025-06-02", got[0].Date)
}

func TestComputeRoomAvailabilities_BookingSplitsWindow(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 20, 0), at(date, 21, 0))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	assert.Len(t, got, 2)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 20, 0), got[0].End)
	assert.Equal(t, at(date, 21, 0), got[1].Start)
	assert.Equal(t, at(date, 23, 0), got[1].End)
}

func TestComputeRoomAvailabilities_OverlappingBookings(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{
		testBooking(1, at(date, 19, 30), at(date, 21, 0)),
		testBooking(1, at(date, 20, 0), at(date, 20, 30)),
	}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Minute*30)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	// The cursor never moves backwards: the nested booking adds no window.
	assert.Len(t, got, 2)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 19, 30), got[0].End)
	assert.Equal(t, at(date, 21, 0), got[1].Start)
	assert.Equal(t, at(date, 23, 0), got[1].End)
}

func TestComputeRoomAvailabilities_BookingPastClose(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 22, 0), at(date, 23, 30))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 22, 0), got[0].End)
}

func TestComputeRoomAvailabilities_BookingBeforeOpen(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 18, 0), at(date, 19, 30))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 19, 30), got[0].Start)
	assert.Equal(t, at(date, 23, 0), got[0].End)
}

func TestComputeRoomAvailabilities_MidnightClose(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(0, 0))}
	query := testQuery(clock(19, 0), clock(0, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, nil, date, query, engineLoc)

	// A close of 00:00 means end of the day, so the window runs to the next
	// day's midnight.
	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date.AddDate(0, 0, 1), 0, 0), got[0].End)
	assert.Equal(t, 300, got[0].DurationMinutes)
}

func TestComputeRoomAvailabilities_MidnightBookingConsumesBoundary(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(0, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 23, 0), at(date.AddDate(0, 0, 1), 0, 0))}
	query := testQuery(clock(19, 0), clock(0, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	// The booking ends exactly at the midnight boundary, so only the gap
	// before it survives.
	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 23, 0), got[0].End)
	assert.Equal(t, 240, got[0].DurationMinutes)
}

func TestComputeRoomAvailabilities_MidnightWinsClockMinimum(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(22, 0))}
	query := testQuery(clock(19, 0), clock(0, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, nil, date, query, engineLoc)

	// Close clocks compare as raw minutes, so the midnight sentinel is the
	// minimum and resolves to the end of the day.
	assert.Len(t, got, 1)
	assert.Equal(t, at(date.AddDate(0, 0, 1), 0, 0), got[0].End)
}

func TestComputeRoomAvailabilities_OpenClampedByRoom(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(20, 0), clock(23, 0))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, nil, date, query, engineLoc)

	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 20, 0), got[0].Start)
}

func TestComputeRoomAvailabilities_MinDurationFilter(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 19, 30), at(date, 22, 0))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	// The 30-minute gap before the booking is dropped.
	assert.Len(t, got, 1)
	assert.Equal(t, at(date, 22, 0), got[0].Start)
	assert.Equal(t, at(date, 23, 0), got[0].End)
}

func TestComputeRoomAvailabilities_RoomSizeFilter(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{
		testRoom(1, 30, clock(10, 0), clock(23, 0)),
		testRoom(2, 80, clock(10, 0), clock(23, 0)),
	}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, nil, date, query, engineLoc)

	assert.Len(t, got, 1)
}

func TestComputeRoomAvailabilities_SortedAcrossRooms(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{
		testRoom(1, 100, clock(10, 0), clock(23, 0)),
		testRoom(2, 100, clock(10, 0), clock(23, 0)),
	}
	bookings := []studioModel.Booking{
		// Room 1 is busy until 20:00, room 2 is free all evening.
		testBooking(1, at(date, 19, 0), at(date, 20, 0)),
	}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	assert.Len(t, got, 2)
	assert.False(t, got[0].Start.After(got[1].Start))
	assert.Equal(t, at(date, 19, 0), got[0].Start)
	assert.Equal(t, at(date, 20, 0), got[1].Start)
}

func TestComputeRoomAvailabilities_FullyBookedDay(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, engineLoc)
	rooms := []studioModel.Room{testRoom(1, 100, clock(10, 0), clock(23, 0))}
	bookings := []studioModel.Booking{testBooking(1, at(date, 18, 0), at(date, 23, 0))}
	query := testQuery(clock(19, 0), clock(23, 0), 50, time.Hour)

	got := computeRoomAvailabilities(rooms, bookings, date, query, engineLoc)

	assert.Empty(t, got)
}

func TestStripRoomName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "prefixed name is stripped",
			input:    "3.Studio B bigroom",
			expected: "Studio B",
		},
		{
			name:     "unmatched name passes through",
			input:    "Rehearsal Room",
			expected: "Rehearsal Room",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.StripRoomName(tt.input))
		})
	}
}
