// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin exposes the gateway's model management to admin users.
//
// Whether the current account is an admin is probed once per session and
// cached; the admin panel simply does not render for everyone else.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/jeranaias/privategxt-tui/internal/api"
)

// ErrNotAdmin indicates the current account has no admin rights.
var ErrNotAdmin = errors.New("account is not an admin")

// Service wraps the gateway's admin endpoints.
type Service struct {
	client *api.Client

	mu      sync.Mutex
	probed  bool
	isAdmin bool
}

// NewService creates an admin service backed by the gateway client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// IsAdmin reports whether the current account is an admin. The first
// call asks the gateway; the answer is cached for the session. A probe
// failure is reported but not cached, so a transient error does not
// lock the panel shut.
func (s *Service) IsAdmin(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.probed {
		defer s.mu.Unlock()
		return s.isAdmin, nil
	}
	s.mu.Unlock()

	isAdmin, err := s.client.IsAdmin(ctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.probed = true
	s.isAdmin = isAdmin
	s.mu.Unlock()
	return isAdmin, nil
}

// Models returns the models installed on the gateway.
func (s *Service) Models(ctx context.Context) ([]api.ModelInfo, error) {
	if err := s.require(ctx); err != nil {
		return nil, err
	}
	return s.client.ListModels(ctx)
}

// CurrentModel returns the model currently answering chats.
func (s *Service) CurrentModel(ctx context.Context) (string, error) {
	if err := s.require(ctx); err != nil {
		return "", err
	}
	return s.client.CurrentModel(ctx)
}

// SwitchModel makes the gateway answer with a different model.
func (s *Service) SwitchModel(ctx context.Context, name string) error {
	if err := s.require(ctx); err != nil {
		return err
	}
	return s.client.SetCurrentModel(ctx, name)
}

// Reset forgets the cached probe. Called on logout.
func (s *Service) Reset() {
	s.mu.Lock()
	s.probed = false
	s.isAdmin = false
	s.mu.Unlock()
}

// require fails fast when the account is known not to be an admin.
func (s *Service) require(ctx context.Context) error {
	isAdmin, err := s.IsAdmin(ctx)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return nil
}
