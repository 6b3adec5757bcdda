package quickstudio

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"freeroom/config"
	"freeroom/infras/otel"
	"freeroom/shared/constant"
	"freeroom/shared/failure"
)

const (
	otelScopeName = "quickstudio"

	// Error bodies are kept short; the provider returns HTML on failure pages.
	maxErrorBodyBytes = 4 << 10
)

// Band is the provider's band record attached to a real booking.
type Band struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Booking is one raw booking slot as returned by the provider. Band is nil for
// placeholder slots; the normalizer decides what that means.
type Booking struct {
	Type  int       `json:"type"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Band  *Band     `json:"band"`
}

// RoomBooking is the provider's per-room calendar for a single date.
type RoomBooking struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Size        int       `json:"size"`
	Open        time.Time `json:"open"`
	Close       time.Time `json:"close"`
	Bookings    []Booking `json:"bookings"`
}

type Client interface {
	GetBookings(ctx context.Context, studioName string, date time.Time) ([]RoomBooking, error)
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	// The provider is fragile under load; connections above the cap queue here
	// instead of failing.
	connections *semaphore.Weighted
	otel        otel.Otel
}

// New returns the production client: an HTTP client behind the in-process
// TTL/LRU response cache with per-date single-flight coalescing.
func New(cfg *config.Config, ot otel.Otel) Client {
	return NewCached(cfg, NewHTTPClient(cfg, ot))
}

// NewHTTPClient returns the uncached transport-level client.
func NewHTTPClient(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		connections: semaphore.NewWeighted(cfg.Upstream.MaxConnections),
		otel:        ot,
	}
}

func (c *clientImpl) GetBookings(ctx context.Context, studioName string, date time.Time) (res []RoomBooking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("studio.name", studioName)
	scope.SetAttribute("booking.date", date.Format(constant.DateOnlyFormat))

	if err = c.connections.Acquire(ctx, 1); err != nil {
		return nil, &failure.UpstreamError{StudioName: studioName, Date: date, Err: err}
	}
	defer c.connections.Release(1)

	url := fmt.Sprintf("%s/%s/bookings", c.config.Upstream.BaseURL, studioName)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	query := request.URL.Query()
	query.Set(constant.RequestParamDate, date.Format(constant.DateOnlyFormat))
	request.URL.RawQuery = query.Encode()
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("studio", studioName).Str("url", url).Msg("upstream request failed")

		return nil, &failure.UpstreamError{StudioName: studioName, Date: date, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))

		log.Error().
			Int("status", response.StatusCode).
			Str("studio", studioName).
			Msg("upstream returned non-success status")

		return nil, &failure.UpstreamError{
			StudioName: studioName,
			Date:       date,
			StatusCode: response.StatusCode,
			Body:       string(body),
		}
	}

	if err = json.NewDecoder(response.Body).Decode(&res); err != nil {
		return nil, &failure.UpstreamError{StudioName: studioName, Date: date, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return res, nil
}
