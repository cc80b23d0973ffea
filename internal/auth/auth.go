// Package auth implements the CoachDesk authentication operations: coach and
// player login, registration, email availability checks and logout. Token
// refresh lives in the transport's coordinator, not here.
package auth

import (
	"context"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/session"
	"github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	loginEndpoint          = "/auth/login"
	loginPlayerEndpoint    = "/auth/login-player"
	registerEndpoint       = "/auth/register"
	registerPlayerEndpoint = "/auth/register-player"
	checkEmailEndpoint     = "/auth/check-email"
	logoutEndpoint         = "/auth/logout"

	// fallback when the token carries no decodable expiry
	defaultSessionTTL = 24 * time.Hour
)

var validate = validator.New()

// Doer executes an API request. Satisfied by the REST transport; auth
// endpoints are on its skip-list, so these calls go out without a bearer
// header and never trigger a refresh.
type Doer interface {
	Do(ctx context.Context, method, path string, body, result interface{}) error
}

// Service handles authentication operations
type Service struct {
	doer       Doer
	store      *session.Store
	logger     types.Logger
	deviceUUID string
}

// RegisterParams are the fields for coach registration
type RegisterParams struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	ClubName  string `json:"clubName,omitempty"`
}

// RegisterPlayerParams are the fields for player self-registration via a
// team invite code.
type RegisterPlayerParams struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	InviteCode string `json:"inviteCode" validate:"required"`
	Position   string `json:"position,omitempty"`
}

// NewService creates a new auth service
func NewService(doer Doer, store *session.Store, logger types.Logger) *Service {
	return &Service{
		doer:       doer,
		store:      store,
		logger:     logger,
		deviceUUID: uuid.New().String(),
	}
}

// DeviceUUID returns the per-process device identifier
func (s *Service) DeviceUUID() string {
	return s.deviceUUID
}

// Login authenticates a coach and replaces the stored session
func (s *Service) Login(ctx context.Context, email, password string) (*types.Session, error) {
	return s.login(ctx, loginEndpoint, email, password)
}

// LoginPlayer authenticates a player and replaces the stored session
func (s *Service) LoginPlayer(ctx context.Context, email, password string) (*types.Session, error) {
	return s.login(ctx, loginPlayerEndpoint, email, password)
}

func (s *Service) login(ctx context.Context, endpoint, email, password string) (*types.Session, error) {
	reqBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	if s.logger != nil {
		s.logger.Debug("Login request", "email", email, "endpoint", endpoint)
	}

	var resp loginResponse
	if err := s.doer.Do(ctx, "POST", endpoint, reqBody, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, errors.New("no token in login response")
	}

	sess := &types.Session{
		Token:      resp.Token,
		UserID:     resp.Profile.ID,
		Role:       resp.Profile.Role,
		Email:      resp.Profile.Email,
		FirstName:  resp.Profile.FirstName,
		LastName:   resp.Profile.LastName,
		DeviceUUID: s.deviceUUID,
	}
	if sess.Email == "" {
		sess.Email = email
	}

	if exp, ok := types.TokenExpiry(resp.Token); ok {
		sess.ExpiresAt = exp
	} else {
		sess.ExpiresAt = time.Now().Add(defaultSessionTTL)
	}

	s.store.Set(sess)

	if s.logger != nil {
		s.logger.Info("Login successful", "email", sess.Email, "role", sess.Role)
	}

	return sess, nil
}

// Register creates a coach account. Params are validated locally before any
// network call.
func (s *Service) Register(ctx context.Context, params *RegisterParams) (string, error) {
	if err := validate.Struct(params); err != nil {
		return "", errors.Wrap(err, "invalid registration details")
	}

	var resp messageResponse
	if err := s.doer.Do(ctx, "POST", registerEndpoint, params, &resp); err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("Registration submitted", "email", params.Email)
	}

	return resp.Message, nil
}

// RegisterPlayer creates a player account from a team invite
func (s *Service) RegisterPlayer(ctx context.Context, params *RegisterPlayerParams) (string, error) {
	if err := validate.Struct(params); err != nil {
		return "", errors.Wrap(err, "invalid registration details")
	}

	var resp messageResponse
	if err := s.doer.Do(ctx, "POST", registerPlayerEndpoint, params, &resp); err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("Player registration submitted", "email", params.Email)
	}

	return resp.Message, nil
}

// CheckEmail reports whether an account already exists for the address
func (s *Service) CheckEmail(ctx context.Context, email string) (bool, error) {
	reqBody := map[string]interface{}{"email": email}

	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := s.doer.Do(ctx, "POST", checkEmailEndpoint, reqBody, &resp); err != nil {
		return false, err
	}

	return resp.Exists, nil
}

// Logout tells the server to revoke the refresh credential and clears the
// local session. The server call is best-effort: failures are logged and the
// local session is cleared regardless. Logging out while already logged out
// is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.doer.Do(ctx, "POST", logoutEndpoint, nil, nil); err != nil {
		if s.logger != nil {
			s.logger.Warn("Logout request failed, clearing local session anyway", "error", err)
		}
	}

	s.store.Clear()

	if s.logger != nil {
		s.logger.Info("Logged out")
	}

	return nil
}

// loginResponse represents the login API response
type loginResponse struct {
	Token   string         `json:"token"`
	Profile profilePayload `json:"profile"`
	Message string         `json:"message"`
}

type profilePayload struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type messageResponse struct {
	Message string `json:"message"`
}
