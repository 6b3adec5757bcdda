package dto

import (
	"regexp"
	"time"
)

// Room names arrive from the provider with a numeric prefix and trailing noise,
// e.g. "3.Studio A bigroom". The display form keeps only the first run of word
// and space characters after the prefix.
var roomNamePattern = regexp.MustCompile(`^\d+\.([\w\s]+)\s.*$`)

func StripRoomName(roomName string) string {
	if m := roomNamePattern.FindStringSubmatch(roomName); m != nil {
		return m[1]
	}

	return roomName
}

// SearchRequest is the fully parsed availability query. Time-of-day fields
// carry only their clock part; the date part is ignored.
type SearchRequest struct {
	StudioName  string `validate:"required"`
	StartDate   time.Time
	EndDate     time.Time
	DaysOfWeek  []int `validate:"omitempty,dive,gte=1,lte=7"`
	MinRoomSize int   `validate:"gte=0"`
	MinDuration time.Duration
	FromTime    time.Time
	ToTime      time.Time
}

// Availability is one free window of a room. Start and End are full date-times
// because a window may end past midnight.
type Availability struct {
	RoomName        string    `json:"room_name"`
	Date            string    `json:"date"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type Warning struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// SearchResponse maps each requested calendar date to its availability
// windows. Dates that could not be resolved are omitted from the map and
// reported in Warnings instead.
type SearchResponse struct {
	Availabilities map[string][]Availability `json:"availabilities"`
	Warnings       []Warning                 `json:"warnings,omitempty"`
}
