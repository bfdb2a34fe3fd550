package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// Authentication Errors

// ErrAuthenticationFailed covers a failed OAuth token exchange with Zoom.
// The provider response is carried in Raw for logging and must never reach
// an HTTP client.
func ErrAuthenticationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AUTH_TOKEN_EXCHANGE_FAILED,
		Message:  "Failed to retrieve access token",
	}
}

// Integration Errors

// ErrZoomAPIFailed covers a failed call to the Zoom REST API after a token
// was acquired (rate limit, invalid payload, provider outage).
func ErrZoomAPIFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_ZOOM_FAILED,
		Message:  fmt.Sprintf("Zoom API call failed: %s", operation),
	}
}

// Meeting Errors

// ErrMeetingExpired is the expected outcome of joining after the meeting
// window closed. It is a 400-class result, not an operational failure.
func ErrMeetingExpired(endTime string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MEETING_EXPIRED,
		Message:  "Meeting time has expired, you cannot join.",
	}.WithDetail("end_time", endTime)
}
