package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/session"
	"github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDoer captures the last request and plays back a canned JSON response
type fakeDoer struct {
	calls    int
	method   string
	path     string
	body     interface{}
	response string
	err      error
}

func (f *fakeDoer) Do(ctx context.Context, method, path string, body, result interface{}) error {
	f.calls++
	f.method = method
	f.path = path
	f.body = body

	if f.err != nil {
		return f.err
	}
	if f.response != "" && result != nil {
		return json.Unmarshal([]byte(f.response), result)
	}
	return nil
}

func TestService_Login(t *testing.T) {
	doer := &fakeDoer{
		response: `{
			"token": "token1",
			"profile": {
				"id": "user-1",
				"role": "coach",
				"email": "coach@test.com",
				"firstName": "Alex",
				"lastName": "Morgan"
			}
		}`,
	}
	store := session.NewStore(nil)
	service := NewService(doer, store, nil)

	sess, err := service.Login(context.Background(), "coach@test.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "POST", doer.method)
	assert.Equal(t, "/auth/login", doer.path)
	assert.Equal(t, "token1", sess.Token)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "coach", sess.Role)
	assert.Equal(t, "Alex", sess.FirstName)
	assert.NotEmpty(t, sess.DeviceUUID)

	// Opaque token: expiry falls back to the default TTL
	assert.WithinDuration(t, time.Now().Add(defaultSessionTTL), sess.ExpiresAt, time.Minute)

	// Session is stored for the transport to read
	assert.Equal(t, "token1", store.Token())
}

func TestService_LoginPlayer(t *testing.T) {
	doer := &fakeDoer{
		response: `{"token": "token1", "profile": {"id": "player-1", "role": "player"}}`,
	}
	store := session.NewStore(nil)
	service := NewService(doer, store, nil)

	sess, err := service.LoginPlayer(context.Background(), "player@test.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "/auth/login-player", doer.path)
	assert.Equal(t, "player", sess.Role)
	assert.Equal(t, "player@test.com", sess.Email, "email falls back to the login input")
}

func TestService_LoginErrorPropagates(t *testing.T) {
	doer := &fakeDoer{err: types.ErrInvalidCredentials}
	store := session.NewStore(nil)
	service := NewService(doer, store, nil)

	_, err := service.Login(context.Background(), "coach@test.com", "wrong")

	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	assert.Equal(t, "", store.Token(), "no session on failed login")
}

func TestService_LoginMissingToken(t *testing.T) {
	doer := &fakeDoer{response: `{"message": "ok but no token"}`}
	service := NewService(doer, session.NewStore(nil), nil)

	_, err := service.Login(context.Background(), "coach@test.com", "secret")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestService_RegisterValidatesLocally(t *testing.T) {
	doer := &fakeDoer{}
	service := NewService(doer, session.NewStore(nil), nil)

	_, err := service.Register(context.Background(), &RegisterParams{
		Email:     "not-an-email",
		Password:  "short",
		FirstName: "Alex",
		LastName:  "Morgan",
	})

	require.Error(t, err)
	assert.Equal(t, 0, doer.calls, "invalid params must not hit the network")
}

func TestService_Register(t *testing.T) {
	doer := &fakeDoer{response: `{"message": "account created"}`}
	service := NewService(doer, session.NewStore(nil), nil)

	msg, err := service.Register(context.Background(), &RegisterParams{
		Email:     "coach@test.com",
		Password:  "long-enough-secret",
		FirstName: "Alex",
		LastName:  "Morgan",
	})

	require.NoError(t, err)
	assert.Equal(t, "account created", msg)
	assert.Equal(t, "/auth/register", doer.path)
}

func TestService_RegisterPlayerRequiresInvite(t *testing.T) {
	doer := &fakeDoer{}
	service := NewService(doer, session.NewStore(nil), nil)

	_, err := service.RegisterPlayer(context.Background(), &RegisterPlayerParams{
		Email:     "player@test.com",
		Password:  "long-enough-secret",
		FirstName: "Sam",
		LastName:  "Kerr",
	})

	require.Error(t, err)
	assert.Equal(t, 0, doer.calls)
}

func TestService_CheckEmail(t *testing.T) {
	doer := &fakeDoer{response: `{"exists": true}`}
	service := NewService(doer, session.NewStore(nil), nil)

	exists, err := service.CheckEmail(context.Background(), "coach@test.com")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/auth/check-email", doer.path)
}

func TestService_Logout(t *testing.T) {
	doer := &fakeDoer{}
	store := session.NewStore(nil)
	store.Set(&types.Session{Token: "token1"})
	service := NewService(doer, store, nil)

	require.NoError(t, service.Logout(context.Background()))
	assert.Equal(t, "/auth/logout", doer.path)
	assert.Equal(t, "", store.Token())
}

func TestService_LogoutBestEffort(t *testing.T) {
	doer := &fakeDoer{err: types.ErrConnectivity}
	store := session.NewStore(nil)
	store.Set(&types.Session{Token: "token1"})
	service := NewService(doer, store, nil)

	// Server unreachable: the local session is cleared anyway
	require.NoError(t, service.Logout(context.Background()))
	assert.Equal(t, "", store.Token())
}

func TestService_LogoutIdempotent(t *testing.T) {
	doer := &fakeDoer{}
	store := session.NewStore(nil)
	service := NewService(doer, store, nil)

	require.NoError(t, service.Logout(context.Background()))
	require.NoError(t, service.Logout(context.Background()))
	assert.Nil(t, store.Session())
}
