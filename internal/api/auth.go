// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jeranaias/privategxt-tui/internal/model"
)

// TokenResponse is the gateway's reply to a successful authentication.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// magicLinkRequest is the body for requesting a sign-in email.
type magicLinkRequest struct {
	Email string `json:"email"`
}

// credentialsRequest is the body for password-based login and registration.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestMagicLink asks the gateway to email a one-time sign-in link.
// The gateway always answers 200 for well-formed addresses so that the
// endpoint cannot be used to probe which emails have accounts.
func (c *Client) RequestMagicLink(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/request-magic-link", magicLinkRequest{Email: email}, nil, false)
}

// VerifyMagicLink exchanges a magic-link token for a session token.
// The token comes from the emailed URL's query string.
func (c *Client) VerifyMagicLink(ctx context.Context, token string) (*TokenResponse, error) {
	var tr TokenResponse
	path := "/auth/verify?token=" + url.QueryEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, &tr, false); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Login exchanges email and password for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{Email: email, Password: password}, &tr, false); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Register creates a new account and returns a session token for it.
func (c *Client) Register(ctx context.Context, email, password string) (*TokenResponse, error) {
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", credentialsRequest{Email: email, Password: password}, &tr, false); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Me returns the account behind the current session token. A 401 here is
// how the dashboard discovers a stored token has expired.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.get(ctx, "/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteAccount permanently removes the current account and everything
// attached to it: assistants, documents, and chat history.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.del(ctx, "/users/me")
}
