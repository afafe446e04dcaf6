package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
)

func TestLogin_BlankFieldsNeverReachNetwork(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	err := h.do(t, Login(client.Credentials{Email: "   ", Password: "pw"}))
	require.Error(t, err)
	assert.True(t, client.IsKind(err, client.KindValidation))
	assert.Equal(t, "Email ID is required!", h.store.State().Session.ErrMessage())

	err = h.do(t, Login(client.Credentials{Email: "admin@example.com", Password: ""}))
	require.Error(t, err)
	assert.Equal(t, "Password is required!", h.store.State().Session.ErrMessage())

	assert.Zero(t, h.api.count("Login"))
	assert.False(t, h.store.State().Session.IsAuthenticated())
	assert.False(t, h.store.State().Session.Loading)
}

func TestLogin_SendsPasswordAsTyped(t *testing.T) {
	var sent client.Credentials
	api := &fakeAPI{login: func(_ context.Context, c client.Credentials) (*client.LoginResult, error) {
		sent = c
		return &client.LoginResult{Token: "t1", User: client.User{ID: "7"}}, nil
	}}
	h := newHarness(t, api)

	require.NoError(t, h.do(t, Login(client.Credentials{Email: " a@x.com ", Password: "  secret  "})))
	assert.Equal(t, "a@x.com", sent.Email)
	assert.Equal(t, "  secret  ", sent.Password)

	err := h.do(t, Login(client.Credentials{Email: "a@x.com", Password: "   "}))
	require.Error(t, err, "a whitespace-only password is blank")
	assert.Equal(t, 1, h.api.count("Login"))
}

func TestLogin_PersistsBeforeAuthenticating(t *testing.T) {
	api := &fakeAPI{login: func(_ context.Context, c client.Credentials) (*client.LoginResult, error) {
		if c.Email != "admin@example.com" {
			return nil, errors.New("email was not trimmed")
		}
		return &client.LoginResult{Token: "t1", User: client.User{ID: "7", FirstName: "Root"}}, nil
	}}
	h := newHarness(t, api)

	var persistedAtAuth map[string]string
	unsubscribe := h.store.Subscribe(func(st State) {
		if st.Session.IsAuthenticated() && persistedAtAuth == nil {
			persistedAtAuth = h.storage.Snapshot()
		}
	})
	defer unsubscribe()

	require.NoError(t, h.do(t, Login(client.Credentials{Email: " admin@example.com ", Password: "pw"})))

	st := h.store.State().Session
	assert.Equal(t, "t1", st.Token)
	assert.Equal(t, client.ID("7"), st.UserID)
	require.NotNil(t, st.Profile)
	assert.Equal(t, client.Text("Root"), st.Profile.FirstName)
	assert.False(t, st.Loading)
	assert.Equal(t, map[string]string{localstate.KeyToken: "t1", localstate.KeyID: "7"}, persistedAtAuth)
	assert.Equal(t, []string{DashboardPath}, h.nav.all())
}

func TestLogin_FailureKeepsSessionAnonymous(t *testing.T) {
	api := &fakeAPI{login: func(context.Context, client.Credentials) (*client.LoginResult, error) {
		return nil, &client.Error{Kind: client.KindAuth, Category: client.Irrecoverable, StatusCode: 401, Message: "Invalid credentials"}
	}}
	h := newHarness(t, api)

	require.Error(t, h.do(t, Login(client.Credentials{Email: "a@b.c", Password: "nope"})))
	st := h.store.State().Session
	assert.Equal(t, "Invalid credentials", st.ErrMessage())
	assert.Empty(t, st.Token)
	assert.Empty(t, h.storage.Snapshot())
	assert.Empty(t, h.nav.all())

	api.login = func(context.Context, client.Credentials) (*client.LoginResult, error) {
		return nil, client.NewNetworkError("login", errors.New("connection refused"))
	}
	require.Error(t, h.do(t, Login(client.Credentials{Email: "a@b.c", Password: "nope"})))
	assert.Equal(t, "Login failed", h.store.State().Session.ErrMessage())
}

func TestFetchProfile_MissingCredential(t *testing.T) {
	h := newHarness(t, &fakeAPI{})

	err := h.do(t, FetchProfile())
	require.Error(t, err)
	assert.True(t, client.IsKind(err, client.KindAuth))
	assert.Equal(t, "missing credential", h.store.State().Session.ErrMessage())
	assert.Zero(t, h.api.count("GetUserDetails"))
}

func TestFetchProfile_UsesPersistedCredentials(t *testing.T) {
	api := &fakeAPI{userDetails: func(_ context.Context, id client.ID) (*client.User, error) {
		return &client.User{ID: id, Email: "admin@example.com"}, nil
	}}
	h := &harness{api: api, storage: localstate.NewMemoryStore(), nav: &navRecorder{}}
	ctx := context.Background()
	require.NoError(t, h.storage.Set(ctx, localstate.KeyToken, "t1"))
	require.NoError(t, h.storage.Set(ctx, localstate.KeyID, "7"))
	h.store = h.open(t)

	require.True(t, h.store.State().Session.IsAuthenticated())
	require.False(t, h.store.State().Session.ProfileLoaded())

	require.NoError(t, h.do(t, FetchProfile()))
	st := h.store.State().Session
	require.True(t, st.ProfileLoaded())
	assert.Equal(t, client.ID("7"), st.Profile.ID)
	assert.Equal(t, 1, api.count("GetUserDetails"))
}

func TestFetchProfile_FailureUsesFallback(t *testing.T) {
	api := &fakeAPI{userDetails: func(context.Context, client.ID) (*client.User, error) {
		return nil, &client.Error{Kind: client.KindNetwork, Category: client.Irrecoverable, StatusCode: 404}
	}}
	h := &harness{api: api, storage: localstate.NewMemoryStore(), nav: &navRecorder{}}
	require.NoError(t, h.storage.Set(context.Background(), localstate.KeyToken, "t1"))
	require.NoError(t, h.storage.Set(context.Background(), localstate.KeyID, "7"))
	h.store = h.open(t)

	require.Error(t, h.do(t, FetchProfile()))
	assert.Equal(t, "Failed to fetch user details", h.store.State().Session.ErrMessage())
	assert.False(t, h.store.State().Session.Loading)
}

func TestLogout_Idempotent(t *testing.T) {
	api := &fakeAPI{login: func(context.Context, client.Credentials) (*client.LoginResult, error) {
		return &client.LoginResult{Token: "t1", User: client.User{ID: "7"}}, nil
	}}
	h := newHarness(t, api)
	require.NoError(t, h.do(t, Login(client.Credentials{Email: "a@b.c", Password: "pw"})))

	require.NoError(t, h.do(t, Logout()))
	once := h.store.State()
	require.NoError(t, h.do(t, Logout()))
	twice := h.store.State()

	assert.Equal(t, once, twice)
	assert.Equal(t, Session{}, twice.Session)
	assert.Empty(t, h.storage.Snapshot())
}

func TestUpdateProfile_RequiresPersistedToken(t *testing.T) {
	h := newHarness(t, &fakeAPI{})
	err := h.do(t, UpdateProfile("7", client.ProfileUpdate{Email: "a@b.c", Username: "root"}))
	require.Error(t, err)
	assert.True(t, client.IsKind(err, client.KindAuth))
	assert.Equal(t, "Token is missing", h.store.State().Session.ErrMessage())
	assert.Zero(t, h.api.count("UpdateAdmin"))
}

func TestUpdateProfile_ReplacesProfile(t *testing.T) {
	api := &fakeAPI{updateAdmin: func(_ context.Context, id client.ID, r client.ProfileUpdate) (*client.User, error) {
		return &client.User{ID: id, Email: client.Text(r.Email), Username: client.Text(r.Username)}, nil
	}}
	h := &harness{api: api, storage: localstate.NewMemoryStore(), nav: &navRecorder{}}
	require.NoError(t, h.storage.Set(context.Background(), localstate.KeyToken, "t1"))
	h.store = h.open(t)

	require.NoError(t, h.do(t, UpdateProfile("7", client.ProfileUpdate{Email: "new@example.com", Username: "root"})))
	p := h.store.State().Session.Profile
	require.NotNil(t, p)
	assert.Equal(t, client.Text("new@example.com"), p.Email)
}

func TestHydrate_ReadsTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)

	h := newHarness(t, &fakeAPI{})
	assert.False(t, h.store.State().Session.IsAuthenticated())

	require.NoError(t, h.storage.Set(context.Background(), localstate.KeyToken, token))
	require.NoError(t, h.storage.Set(context.Background(), localstate.KeyID, "7"))
	require.NoError(t, h.do(t, Hydrate()))

	st := h.store.State().Session
	assert.Equal(t, token, st.Token)
	assert.Equal(t, client.ID("7"), st.UserID)
	assert.True(t, exp.Equal(st.ExpiresAt), "exp %v != %v", st.ExpiresAt, exp)
}

func TestTokenExpiry_OpaqueTokenIsZero(t *testing.T) {
	assert.True(t, tokenExpiry("not-a-jwt").IsZero())
	assert.True(t, tokenExpiry("").IsZero())
}
