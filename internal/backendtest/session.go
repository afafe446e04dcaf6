package backendtest

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// Store builds a store over a fresh client and in-memory storage pointed
// at b. The store is closed when t ends.
func (b *Backend) Store(t testing.TB, opts ...store.Option) (*store.Store, *localstate.MemoryStore) {
	t.Helper()
	storage := localstate.NewMemoryStore()
	c, err := client.New(b.URL(), client.WithTokenSource(store.TokenFrom(storage)))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	base := []store.Option{
		store.WithRunner(store.RunnerConfig{Workers: 4, MaxAttempts: 1}),
		store.WithRequestTimeout(5 * time.Second),
	}
	st, err := store.New(store.Deps{Client: c, Storage: storage, Logger: zerolog.Nop()}, append(base, opts...)...)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st, storage
}

// LoggedIn is Store followed by a successful admin login.
func (b *Backend) LoggedIn(t testing.TB, opts ...store.Option) (*store.Store, *localstate.MemoryStore) {
	t.Helper()
	st, storage := b.Store(t, opts...)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := st.Do(ctx, store.Login(client.Credentials{Email: AdminEmail, Password: AdminPassword})); err != nil {
		t.Fatalf("login: %v", err)
	}
	return st, storage
}
