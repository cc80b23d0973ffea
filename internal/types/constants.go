package types

import (
	"errors"
	"time"
)

const (
	// DefaultBaseURL is the default CoachDesk API base URL
	DefaultBaseURL = "https://api.coachdesk.app"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "coachdesk-go/1.0.0"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials is returned when login is rejected
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned for rejected auth-endpoint requests
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionExpired is returned when the session cannot be refreshed
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrForbidden is returned when the server denies permission
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error, try again later")

	// ErrConnectivity is returned when no response was received
	ErrConnectivity = errors.New("network error, check your connection")
)
