package coachdesk

import (
	"errors"

	internalTypes "github.com/coachdesk/coachdesk-go/internal/types"
)

// Sentinel errors for the failure taxonomy. Use errors.Is against API call
// results; the concrete error is usually an *Error carrying the backend
// message and status code.
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrInvalidCredentials is returned when login is rejected
	ErrInvalidCredentials = internalTypes.ErrInvalidCredentials

	// ErrUnauthorized is returned for rejected auth-endpoint requests
	ErrUnauthorized = internalTypes.ErrUnauthorized

	// ErrSessionExpired is returned when the session could not be refreshed
	// and the user has been logged out
	ErrSessionExpired = internalTypes.ErrSessionExpired

	// ErrForbidden is returned when the server denies permission
	ErrForbidden = internalTypes.ErrForbidden

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError

	// ErrConnectivity is returned when no response was received
	ErrConnectivity = internalTypes.ErrConnectivity
)

// Error represents an API error with the backend-supplied message when one
// was present.
type Error = internalTypes.Error

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrSessionExpired)
}

// IsPermissionError checks if the server denied the operation for the
// current role
func IsPermissionError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTransient checks if the failure is worth retrying later
func IsTransient(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrConnectivity) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
