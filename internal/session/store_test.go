package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/coachdesk/coachdesk-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndClear(t *testing.T) {
	store := NewStore(nil)

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.Session())

	store.Set(&types.Session{Token: "token1", Email: "coach@test.com"})
	assert.Equal(t, "token1", store.Token())
	require.NotNil(t, store.Session())
	assert.Equal(t, "coach@test.com", store.Session().Email)

	store.Clear()
	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.Session())

	// Clearing an empty store is a no-op, not a panic
	store.Clear()
	assert.Nil(t, store.Session())
}

func TestStore_SessionReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.Set(&types.Session{Token: "token1"})

	copy := store.Session()
	copy.Token = "mutated"

	assert.Equal(t, "token1", store.Token())
}

func TestStore_SetTokenIf(t *testing.T) {
	store := NewStore(nil)
	store.Set(&types.Session{Token: "token1"})

	gen := store.Generation()
	assert.True(t, store.SetTokenIf(gen, "token2"))
	assert.Equal(t, "token2", store.Token())

	// Stale generation: a logout happened in between
	gen = store.Generation()
	store.Clear()
	assert.False(t, store.SetTokenIf(gen, "token3"))
	assert.Equal(t, "", store.Token(), "refresh must not resurrect a cleared session")
}

func TestStore_SetTokenIfAfterRelogin(t *testing.T) {
	store := NewStore(nil)
	store.Set(&types.Session{Token: "token1", Email: "a@test.com"})

	gen := store.Generation()
	store.Set(&types.Session{Token: "other", Email: "b@test.com"})

	// The refresh belonged to the previous session
	assert.False(t, store.SetTokenIf(gen, "token2"))
	assert.Equal(t, "other", store.Token())
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "session.json")

	store := NewStore(nil)
	store.Set(&types.Session{
		Token:     "token1",
		UserID:    "user-1",
		Role:      "coach",
		Email:     "coach@test.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	require.NoError(t, store.Save(path))

	restored := NewStore(nil)
	require.NoError(t, restored.Load(path))
	assert.Equal(t, "token1", restored.Token())
	assert.Equal(t, "coach", restored.Session().Role)
	assert.Equal(t, "coach@test.com", restored.Session().Email)
}

func TestStore_SaveRequiresSession(t *testing.T) {
	store := NewStore(nil)
	err := store.Save(filepath.Join(t.TempDir(), "session.json"))
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(nil)
	err := store.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestStore_LoadExpiredSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")

	store := NewStore(nil)
	store.Set(&types.Session{
		Token:     "token1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, store.Save(path))

	// Rewrite with an expiry in the past
	expired := NewStore(nil)
	expired.Set(&types.Session{
		Token:     "token1",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, expired.Save(path))

	restored := NewStore(nil)
	err := restored.Load(path)
	assert.ErrorIs(t, err, types.ErrSessionExpired)
	assert.Nil(t, restored.Session())
}
