package model

import "time"

const (
	StudioTableName    = "studios"
	RoomTableName      = "rooms"
	BandTableName      = "bands"
	BookingTableName   = "bookings"
	FreshnessTableName = "data_freshness"

	StudioEntityName    = "studio"
	RoomEntityName      = "room"
	BandEntityName      = "band"
	BookingEntityName   = "booking"
	FreshnessEntityName = "freshness"
)

// Booking type codes used by the upstream provider.
const (
	BookingTypeBand   = 1
	BookingTypeClosed = 4
)

type Studio struct {
	Name string `db:"name"`
}

// Room identity is the upstream-assigned id; two values with the same id are
// the same room even if other fields differ across a refresh.
type Room struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Size        int       `db:"size"`
	Open        time.Time `db:"open"`
	Close       time.Time `db:"close"`
	StudioName  string    `db:"studio_name"`
}

type Band struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Booking start and end are full date-times. An end of exactly midnight has
// already been resolved to the start of the following calendar day by the
// normalizer.
type Booking struct {
	ID     int64     `db:"id"`
	Type   int       `db:"type"`
	Date   time.Time `db:"date"`
	Start  time.Time `db:"start"`
	End    time.Time `db:"end"`
	BandID int64     `db:"band_id"`
	RoomID int64     `db:"room_id"`
}

// DataFreshness records the last successful refresh per (studio, date). It is
// bookkeeping for the durable-refresh decision and never surfaced to callers.
type DataFreshness struct {
	StudioName  string    `db:"studio_name"`
	Date        time.Time `db:"date"`
	LastRefresh time.Time `db:"last_refresh"`
}
