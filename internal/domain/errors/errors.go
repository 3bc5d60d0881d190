package errors

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"backoffice/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches on the error code so WithDetails copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// ErrSessionExpired means the refresh token was rejected and the tokens were purged.
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"Please sign in",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please correct the highlighted fields",
		"",
	)

	ErrPreviewNotFound = NewBaseError(
		http.StatusNotFound,
		"PREVIEW_NOT_FOUND",
		"The uploaded file is no longer available",
		"",
	)

	ErrUnsupportedMedia = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA",
		"Unsupported file type",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)
)

// ErrRemoteGeneric is the failure marker used when the API sent no payload.
var ErrRemoteGeneric = errors.New("Error")

// ErrSessionCleared marks a 401 after which the refresh token was rejected
// and the stored tokens were purged.
var ErrSessionCleared = errors.New("session tokens cleared")

// APIError is a non-success response from the back office API. Payload is
// the raw JSON body when the server sent one.
type APIError struct {
	StatusCode int
	Payload    json.RawMessage
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Payload) == 0 {
		return http.StatusText(e.StatusCode)
	}

	return http.StatusText(e.StatusCode) + ": " + string(e.Payload)
}

// Unwrap lets errors.Is(err, ErrRemoteGeneric) hold for payload-less failures.
func (e *APIError) Unwrap() error {
	if len(e.Payload) == 0 {
		return ErrRemoteGeneric
	}

	return nil
}

func (e *APIError) HTTPCode() int {
	if e.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}

	return http.StatusBadGateway
}

func (e *APIError) ErrorCode() string {
	return "REMOTE_" + strings.ToUpper(strings.ReplaceAll(http.StatusText(e.StatusCode), " ", "_"))
}

func (e *APIError) Message() string {
	if msg := e.PayloadMessage(); msg != "" {
		return msg
	}

	return "The back office API rejected the request"
}

func (e *APIError) Details() string {
	return string(e.Payload)
}

// PayloadMessage extracts a human message from common payload shapes:
// {"detail": "..."}, {"error": "..."}, {"message": "..."} or {"field": ["..."]}.
func (e *APIError) PayloadMessage() string {
	if len(e.Payload) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(e.Payload, &obj); err != nil {
		var s string
		if json.Unmarshal(e.Payload, &s) == nil {
			return s
		}

		return ""
	}

	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}

	var parts []string
	for field, v := range obj {
		if list, ok := v.([]any); ok && len(list) > 0 {
			if s, ok := list[0].(string); ok {
				parts = append(parts, field+": "+s)
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	slices.Sort(parts)

	return strings.Join(parts, "; ")
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr, ok := errors.AsType[*APIError](err)

	return ok && apiErr.StatusCode == http.StatusUnauthorized
}
