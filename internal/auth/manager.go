// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// State represents the session bootstrap state.
type State int

const (
	// StateUnknown means bootstrap has not completed yet.
	StateUnknown State = iota
	// StateAuthenticated means a valid session token is installed.
	StateAuthenticated
	// StateUnauthenticated means no token exists or the stored one was
	// rejected by the gateway.
	StateUnauthenticated
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "AUTHENTICATED"
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// Manager owns the session token lifecycle: bootstrap, sign-in in its
// three flavors, sign-out, and account deletion.
type Manager struct {
	client *api.Client
	store  *Store

	mu           sync.Mutex
	state        State
	user         *model.User
	bootstrapped bool
}

// NewManager creates a session manager for the given client and store.
func NewManager(client *api.Client, store *Store) *Manager {
	return &Manager{
		client: client,
		store:  store,
		state:  StateUnknown,
	}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the account loaded during bootstrap or sign-in, or nil
// when unauthenticated.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Bootstrap settles the session state exactly once.
//
// It loads the stored token, installs it on the client, and validates it
// with a single call to the gateway. Any failure to validate settles to
// Unauthenticated and discards the stored token: expired, rejected, and
// unreachable-gateway all land the user at the sign-in screen with a
// clean slate. Repeat calls return the already-settled state without
// touching the network.
func (m *Manager) Bootstrap(ctx context.Context) State {
	m.mu.Lock()
	if m.bootstrapped {
		defer m.mu.Unlock()
		return m.state
	}
	m.bootstrapped = true
	m.mu.Unlock()

	token, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			log.Printf("token load failed: %v", err)
		}
		return m.settle(StateUnauthenticated, nil)
	}

	m.client.SetToken(token)
	user, err := m.client.Me(ctx)
	if err != nil {
		if !api.IsUnauthorized(err) {
			log.Printf("session validation failed: %v", err)
		}
		// The token could not be validated; discard it and start over.
		m.client.ClearToken()
		if clearErr := m.store.Clear(); clearErr != nil {
			log.Printf("stale token cleanup failed: %v", clearErr)
		}
		return m.settle(StateUnauthenticated, nil)
	}

	return m.settle(StateAuthenticated, user)
}

// settle records the outcome of bootstrap or a sign-in flow.
func (m *Manager) settle(state State, user *model.User) State {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.bootstrapped = true
	m.mu.Unlock()
	return state
}

// ===== SIGN-IN FLOWS =====

// RequestMagicLink asks the gateway to email a sign-in link.
func (m *Manager) RequestMagicLink(ctx context.Context, email string) error {
	return m.client.RequestMagicLink(ctx, email)
}

// VerifyMagicLink completes the magic-link flow with the emailed token.
func (m *Manager) VerifyMagicLink(ctx context.Context, linkToken string) error {
	tr, err := m.client.VerifyMagicLink(ctx, linkToken)
	if err != nil {
		return err
	}
	return m.installSession(ctx, tr.AccessToken)
}

// Login signs in with email and password.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tr, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.installSession(ctx, tr.AccessToken)
}

// Register creates a new account and signs into it.
func (m *Manager) Register(ctx context.Context, email, password string) error {
	tr, err := m.client.Register(ctx, email, password)
	if err != nil {
		return err
	}
	return m.installSession(ctx, tr.AccessToken)
}

// installSession installs a fresh token, persists it, and loads the
// account behind it.
func (m *Manager) installSession(ctx context.Context, token string) error {
	m.client.SetToken(token)
	if err := m.store.Save(token); err != nil {
		// The session still works for this run; persistence is best effort.
		log.Printf("token persistence failed: %v", err)
	}

	user, err := m.client.Me(ctx)
	if err != nil {
		log.Printf("account lookup after sign-in failed: %v", err)
		m.settle(StateAuthenticated, nil)
		return nil
	}
	m.settle(StateAuthenticated, user)
	return nil
}

// Logout clears the session locally. The gateway keeps no server-side
// session state beyond token expiry, so there is nothing to call.
func (m *Manager) Logout() error {
	m.client.ClearToken()
	err := m.store.Clear()
	m.settle(StateUnauthenticated, nil)
	return err
}

// DeleteAccount permanently deletes the account and clears the local
// session.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	if err := m.client.DeleteAccount(ctx); err != nil {
		return err
	}
	return m.Logout()
}
