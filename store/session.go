package store

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
)

// DashboardPath is where a successful login lands.
const DashboardPath = "/dashboard"

// Login authenticates the operator. Fields that are blank after trimming
// are rejected locally with no request. On success the token and account
// id are persisted before the session is marked authenticated.
func Login(creds client.Credentials) Command {
	const op = "session.login"
	trimmed := client.TrimCredentials(creds)
	// Only the email is trimmed on the wire; the password is sent as typed.
	creds.Email = trimmed.Email
	return reducer{name: "session/login", fn: func(st State) (State, []Effect) {
		if err := client.Validate(trimmed); err != nil {
			ce := client.NewValidationError(op, err.Error())
			st.Session.Loading = false
			st.Session.Err = ce
			return st, []Effect{reportEffect{err: ce}}
		}
		st.Session.Loading = true
		st.Session.Err = nil
		return st, []Effect{callEffect{
			name: "session/login",
			do: func(ctx context.Context, e *env) (Command, error) {
				res, err := e.api.Login(ctx, creds)
				if err != nil {
					return nil, err
				}
				if err := e.storage.Set(ctx, localstate.KeyToken, res.Token); err != nil {
					return nil, err
				}
				if err := e.storage.Set(ctx, localstate.KeyID, res.User.ID.String()); err != nil {
					return nil, err
				}
				user := res.User
				return reducer{name: "session/login/fulfilled", fn: func(st State) (State, []Effect) {
					st.Session = Session{
						Token:     res.Token,
						UserID:    user.ID,
						Profile:   &user,
						ExpiresAt: tokenExpiry(res.Token),
					}
					return st, []Effect{navigateEffect{path: DashboardPath}}
				}}, nil
			},
			fail: func(err error) Command {
				ce := normalize(op, err, "Login failed")
				return reducer{name: "session/login/rejected", fn: func(st State) (State, []Effect) {
					st.Session.Loading = false
					st.Session.Err = ce
					return st, nil
				}}
			},
		}}
	}}
}

// FetchProfile loads the operator's account. The id comes from the session,
// then from storage; the token likewise.
func FetchProfile() Command {
	const op = "session.fetchProfile"
	return reducer{name: "session/fetchProfile", fn: func(st State) (State, []Effect) {
		id, token := st.Session.UserID, st.Session.Token
		st.Session.Loading = true
		st.Session.Err = nil
		return st, []Effect{callEffect{
			name:      "session/fetchProfile",
			retryable: true,
			do: func(ctx context.Context, e *env) (Command, error) {
				var err error
				if id == "" {
					var raw string
					if raw, err = stored(ctx, e.storage, localstate.KeyID); err != nil {
						return nil, err
					}
					id = client.ID(raw)
				}
				if token == "" {
					if token, err = stored(ctx, e.storage, localstate.KeyToken); err != nil {
						return nil, err
					}
				}
				if id == "" || token == "" {
					return nil, client.NewAuthError(op, "missing credential")
				}
				user, err := e.api.GetUserDetails(ctx, id)
				if err != nil {
					return nil, err
				}
				return reducer{name: "session/fetchProfile/fulfilled", fn: func(st State) (State, []Effect) {
					st.Session.Profile = user
					st.Session.Loading = false
					return st, nil
				}}, nil
			},
			fail: sessionRejected("session/fetchProfile", op, "Failed to fetch user details"),
		}}
	}}
}

// UpdateProfile saves the operator's own account. A persisted token is
// required.
func UpdateProfile(id client.ID, req client.ProfileUpdate) Command {
	const op = "session.updateProfile"
	return reducer{name: "session/updateProfile", fn: func(st State) (State, []Effect) {
		st.Session.Loading = true
		st.Session.Err = nil
		return st, []Effect{callEffect{
			name: "session/updateProfile",
			do: func(ctx context.Context, e *env) (Command, error) {
				token, err := stored(ctx, e.storage, localstate.KeyToken)
				if err != nil {
					return nil, err
				}
				if token == "" {
					return nil, client.NewAuthError(op, "Token is missing")
				}
				user, err := e.api.UpdateAdmin(ctx, id, req)
				if err != nil {
					return nil, err
				}
				return reducer{name: "session/updateProfile/fulfilled", fn: func(st State) (State, []Effect) {
					st.Session.Profile = user
					st.Session.Loading = false
					return st, nil
				}}, nil
			},
			fail: sessionRejected("session/updateProfile", op, "Failed to update profile"),
		}}
	}}
}

// Logout clears the session and its persisted credentials. Repeating it is
// harmless.
func Logout() Command {
	return reducer{name: "session/logout", fn: func(st State) (State, []Effect) {
		st.Session = Session{}
		return st, []Effect{inlineEffect{
			name: "session/logout/forget",
			run: func(ctx context.Context, e *env) (Command, error) {
				return nil, e.storage.Delete(ctx, localstate.KeyToken, localstate.KeyID)
			},
		}}
	}}
}

// Hydrate re-reads the persisted token and id. The profile is dropped when
// the token changed.
func Hydrate() Command {
	return reducer{name: "session/hydrate", fn: func(st State) (State, []Effect) {
		return st, []Effect{inlineEffect{
			name: "session/hydrate/read",
			run: func(ctx context.Context, e *env) (Command, error) {
				token, err := stored(ctx, e.storage, localstate.KeyToken)
				if err != nil {
					return nil, err
				}
				id, err := stored(ctx, e.storage, localstate.KeyID)
				if err != nil {
					return nil, err
				}
				return reducer{name: "session/hydrate/loaded", fn: func(st State) (State, []Effect) {
					if token != st.Session.Token {
						st.Session = Session{Token: token, ExpiresAt: tokenExpiry(token)}
					}
					st.Session.UserID = client.ID(id)
					return st, nil
				}}, nil
			},
		}}
	}}
}

func sessionRejected(name, op, fallback string) func(error) Command {
	return func(err error) Command {
		ce := normalize(op, err, fallback)
		return reducer{name: name + "/rejected", fn: func(st State) (State, []Effect) {
			st.Session.Loading = false
			st.Session.Err = ce
			return st, nil
		}}
	}
}

// stored returns key's value, or "" when absent.
func stored(ctx context.Context, s Storage, key string) (string, error) {
	v, _, err := s.Get(ctx, key)
	return v, err
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend remains the authority on validity.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// TokenFrom reads the bearer token from storage on every request, so the
// client follows logins and logouts made by this or another process.
func TokenFrom(s Storage) client.TokenSource {
	return client.TokenFunc(func() string {
		token, err := stored(context.Background(), s, localstate.KeyToken)
		if err != nil {
			return ""
		}
		return token
	})
}
