package quickstudio

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"freeroom/config"
	"freeroom/shared"
	"freeroom/shared/constant"
)

// cachedClient caches raw provider responses per (studio, date) with a TTL and
// a capacity bound, and coalesces concurrent misses for the same key into one
// underlying fetch. Errors are never cached.
type cachedClient struct {
	next  Client
	group singleflight.Group
	cache *lru.LRU[string, []RoomBooking]
}

func NewCached(cfg *config.Config, next Client) Client {
	return &cachedClient{
		next: next,
		cache: lru.NewLRU[string, []RoomBooking](
			cfg.Upstream.CacheCapacity,
			nil,
			time.Duration(cfg.Upstream.CacheTTLSeconds)*time.Second,
		),
	}
}

func (c *cachedClient) GetBookings(ctx context.Context, studioName string, date time.Time) ([]RoomBooking, error) {
	key := shared.BuildCacheKey(studioName, date.Format(constant.DateOnlyFormat))

	if rooms, ok := c.cache.Get(key); ok {
		return rooms, nil
	}

	value, err, coalesced := c.group.Do(key, func() (any, error) {
		// A waiter may have populated the cache while we queued for the flight.
		if rooms, ok := c.cache.Get(key); ok {
			return rooms, nil
		}

		rooms, err := c.next.GetBookings(ctx, studioName, date)
		if err != nil {
			return nil, err
		}

		c.cache.Add(key, rooms)

		return rooms, nil
	})
	if err != nil {
		return nil, err
	}

	if coalesced {
		log.Debug().Str("key", key).Msg("upstream fetch shared between concurrent callers")
	}

	rooms, _ := value.([]RoomBooking)

	return rooms, nil
}
