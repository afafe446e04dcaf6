package app

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/internal/backendtest"
	"github.com/Akash8377/futuresoulmate-admin/internal/config"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

func testConfig(t *testing.T, b *backendtest.Backend) *config.Config {
	cfg := config.NewForTesting()
	cfg.APIBaseURL = b.URL()
	cfg.StateHome = t.TempDir()
	return cfg
}

func TestSessionSurvivesReopen(t *testing.T) {
	b := backendtest.New(t)
	cfg := testConfig(t, b)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.ErrorIs(t, a.RequireSession(), ErrNotLoggedIn)

	_, err = a.Store.Do(ctx, store.Login(client.Credentials{Email: backendtest.AdminEmail, Password: backendtest.AdminPassword}))
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", a.History.Last())
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "Close is idempotent")

	a, err = Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.RequireSession())
	sess := a.Store.State().Session
	assert.Equal(t, backendtest.AdminToken, sess.Token)
	assert.Equal(t, client.ID(backendtest.AdminID), sess.UserID)
	assert.Nil(t, sess.Profile, "the profile is fetched, not persisted")

	// The hydrated token authenticates requests.
	_, err = a.Store.Do(ctx, store.FetchProfile())
	require.NoError(t, err)
	require.NotNil(t, a.Store.State().Session.Profile)
}

func TestOpenWithMemoryStorage(t *testing.T) {
	b := backendtest.New(t)
	cfg := testConfig(t, b)
	mem := localstate.NewMemoryStore()
	require.NoError(t, mem.Set(context.Background(), localstate.KeyToken, "stale"))

	a, err := Open(context.Background(), cfg, zerolog.Nop(), WithStorage(mem))
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, "stale", a.Store.State().Session.Token)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.APIBaseURL = "not a url"
	_, err := Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
