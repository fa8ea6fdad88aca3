// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/privategxt-tui/internal/api"
)

// newTestManager wires a Manager to an httptest gateway and a temp token
// store.
func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager, *Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL).WithHTTPClient(srv.Client())
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	return NewManager(client, store), store
}

// =============================================================================
// TOKEN STORE TESTS
// =============================================================================

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save("tok-abc"))
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
}

func TestStore_RejectsEmptyToken(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	assert.Error(t, store.Save("   "))
}

// =============================================================================
// BOOTSTRAP TESTS
// =============================================================================

func TestBootstrap_NoTokenSettlesUnauthenticated(t *testing.T) {
	m, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("bootstrap without a token must not call the gateway")
	})

	state := m.Bootstrap(context.Background())
	assert.Equal(t, StateUnauthenticated, state)
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestBootstrap_ValidTokenSettlesAuthenticated(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-live", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id": 7, "email": "a@b.example"}`))
	})
	require.NoError(t, store.Save("tok-live"))

	state := m.Bootstrap(context.Background())
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, m.User())
	assert.Equal(t, "a@b.example", m.User().Email)
}

func TestBootstrap_RejectedTokenIsDiscarded(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	})
	require.NoError(t, store.Save("tok-stale"))

	state := m.Bootstrap(context.Background())
	assert.Equal(t, StateUnauthenticated, state)

	// The dead token must not survive on disk.
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestBootstrap_NetworkFailureDiscardsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := api.NewClient(srv.URL)
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Save("tok-live"))
	m := NewManager(client, store)

	state := m.Bootstrap(context.Background())
	assert.Equal(t, StateUnauthenticated, state)

	// Validation failures of any kind leave no token behind, on disk or
	// on the client.
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, client.IsAuthenticated())
}

func TestBootstrap_RunsOnlyOnce(t *testing.T) {
	calls := 0
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"id": 1, "email": "a@b.example"}`))
	})
	require.NoError(t, store.Save("tok"))

	m.Bootstrap(context.Background())
	m.Bootstrap(context.Background())
	m.Bootstrap(context.Background())

	assert.Equal(t, 1, calls, "bootstrap must hit the gateway exactly once")
}

// =============================================================================
// SIGN-IN / SIGN-OUT TESTS
// =============================================================================

func TestLogin_PersistsTokenAndLoadsUser(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"access_token": "tok-new"}`))
		case "/auth/me":
			w.Write([]byte(`{"id": 2, "email": "a@b.example"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	require.NoError(t, m.Login(context.Background(), "a@b.example", "hunter2"))
	assert.Equal(t, StateAuthenticated, m.State())

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-new", tok)
}

func TestLogin_BadCredentialsLeaveStateUntouched(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "bad credentials"}`))
	})

	err := m.Login(context.Background(), "a@b.example", "wrong")
	require.Error(t, err)
	assert.NotEqual(t, StateAuthenticated, m.State())

	_, loadErr := store.Load()
	assert.ErrorIs(t, loadErr, ErrNoToken)
}

func TestVerifyMagicLink(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/verify":
			require.Equal(t, "magic-1", r.URL.Query().Get("token"))
			w.Write([]byte(`{"access_token": "tok-magic"}`))
		case "/auth/me":
			w.Write([]byte(`{"id": 3, "email": "m@b.example"}`))
		}
	})

	require.NoError(t, m.VerifyMagicLink(context.Background(), "magic-1"))
	assert.Equal(t, StateAuthenticated, m.State())

	tok, _ := store.Load()
	assert.Equal(t, "tok-magic", tok)
}

func TestLogout_ClearsEverything(t *testing.T) {
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"access_token": "tok"}`))
		case "/auth/me":
			w.Write([]byte(`{"id": 4, "email": "a@b.example"}`))
		}
	})
	require.NoError(t, m.Login(context.Background(), "a@b.example", "pw"))

	require.NoError(t, m.Logout())
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestDeleteAccount(t *testing.T) {
	deleted := false
	m, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/login":
			w.Write([]byte(`{"access_token": "tok"}`))
		case r.URL.Path == "/auth/me":
			w.Write([]byte(`{"id": 5, "email": "a@b.example"}`))
		case r.URL.Path == "/users/me" && r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	})
	require.NoError(t, m.Login(context.Background(), "a@b.example", "pw"))

	require.NoError(t, m.DeleteAccount(context.Background()))
	assert.True(t, deleted)
	assert.Equal(t, StateUnauthenticated, m.State())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}
