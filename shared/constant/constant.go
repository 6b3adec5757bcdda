package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamStudioName  = "studio_name"
	RequestParamStartDate   = "start_date"
	RequestParamEndDate     = "end_date"
	RequestParamDaysOfWeek  = "days_of_week"
	RequestParamMinRoomSize = "min_room_size"
	RequestParamMinDuration = "min_availability_duration"
	RequestParamFromTime    = "from_time"
	RequestParamToTime      = "to_time"
	RequestParamDate        = "date"
	RequestParamName        = "name"
)

const (
	DefaultValueMinRoomSize = 50
	DefaultValueMinDuration = 60
	DefaultValueFromTime    = "19:00"
	DefaultValueToTime      = "00:00"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	TimeOnlyFormat = "15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAccept             = "Accept"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
