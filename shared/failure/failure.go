package failure

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidDateParam = &Failure{Code: http.StatusBadRequest, Message: "invalid date parameter"}
var InvalidTimeParam = &Failure{Code: http.StatusBadRequest, Message: "invalid time parameter"}
var InvalidDateRange = &Failure{Code: http.StatusBadRequest, Message: "end_date must not be before start_date"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// UpstreamError reports a non-success response or timeout from the booking provider.
// It is scoped to a single (studio, date) fetch and never aborts sibling dates.
type UpstreamError struct {
	StudioName string
	Date       time.Time
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream fetch for studio %q on %s failed: %v", e.StudioName, e.Date.Format("2006-01-02"), e.Err)
	}

	return fmt.Sprintf("upstream returned status %d for studio %q on %s", e.StatusCode, e.StudioName, e.Date.Format("2006-01-02"))
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// DataIntegrityError reports a normalization invariant violation in an upstream
// response. The whole refresh for the date is aborted; Record carries the raw
// upstream record for diagnostics.
type DataIntegrityError struct {
	StudioName string
	Date       time.Time
	Reason     string
	Record     any
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation for studio %q on %s: %s", e.StudioName, e.Date.Format("2006-01-02"), e.Reason)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}

	var integrity *DataIntegrityError
	if errors.As(err, &integrity) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
