package shared

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins key segments with the cache separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return 0, err //nolint:wrapcheck
	}

	return intValue, nil
}

// DateRange returns every calendar day from start to end inclusive.
// Dates are truncated to midnight in start's location.
func DateRange(start, end time.Time) []time.Time {
	start = StartOfDay(start)
	end = StartOfDay(end)

	dates := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISOWeekday returns the ISO-8601 day of week, Monday = 1 through Sunday = 7.
func ISOWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}

	return weekday
}
