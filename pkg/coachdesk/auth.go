package coachdesk

import (
	"context"

	"github.com/coachdesk/coachdesk-go/internal/auth"
	internalTypes "github.com/coachdesk/coachdesk-go/internal/types"
)

// authService implements the AuthService interface
type authService struct {
	client  *Client
	service *auth.Service
}

// newAuthService creates a new auth service
func newAuthService(client *Client) *authService {
	return &authService{
		client:  client,
		service: auth.NewService(client.transport, client.store, client.options.Logger),
	}
}

// convertSession converts internal types.Session to coachdesk.Session
func convertSession(s *internalTypes.Session) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		Token:      s.Token,
		UserID:     s.UserID,
		Role:       s.Role,
		Email:      s.Email,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		ExpiresAt:  s.ExpiresAt,
		DeviceUUID: s.DeviceUUID,
	}
}

// Login authenticates a coach
func (a *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	sess, err := a.service.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	a.persistSession()
	return convertSession(sess), nil
}

// LoginPlayer authenticates a player
func (a *authService) LoginPlayer(ctx context.Context, email, password string) (*Session, error) {
	sess, err := a.service.LoginPlayer(ctx, email, password)
	if err != nil {
		return nil, err
	}

	a.persistSession()
	return convertSession(sess), nil
}

// Register creates a coach account
func (a *authService) Register(ctx context.Context, params *RegisterParams) (string, error) {
	return a.service.Register(ctx, params)
}

// RegisterPlayer creates a player account from a team invite
func (a *authService) RegisterPlayer(ctx context.Context, params *RegisterPlayerParams) (string, error) {
	return a.service.RegisterPlayer(ctx, params)
}

// CheckEmail reports whether an account exists for the address
func (a *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return a.service.CheckEmail(ctx, email)
}

// Refresh forces a coordinated token refresh through the same single-flight
// guard the 401 handler uses.
func (a *authService) Refresh(ctx context.Context) error {
	if _, err := a.client.transport.Refresh(ctx); err != nil {
		return err
	}

	a.persistSession()
	return nil
}

// Logout revokes the refresh credential and clears the local session
func (a *authService) Logout(ctx context.Context) error {
	return a.service.Logout(ctx)
}

// Session returns the current session
func (a *authService) Session() (*Session, error) {
	sess := a.client.store.Session()
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	return convertSession(sess), nil
}

// SaveSession saves session to file
func (a *authService) SaveSession(path string) error {
	return a.client.store.Save(path)
}

// LoadSession loads session from file
func (a *authService) LoadSession(path string) error {
	return a.client.store.Load(path)
}

// persistSession writes the session to the configured file, if any
func (a *authService) persistSession() {
	if a.client.options.SessionFile == "" {
		return
	}
	if err := a.client.store.Save(a.client.options.SessionFile); err != nil && a.client.options.Logger != nil {
		a.client.options.Logger.Warn("Failed to save session", "error", err)
	}
}
