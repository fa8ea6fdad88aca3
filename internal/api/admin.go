// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
)

// adminCheckResponse is the reply to the admin membership probe.
type adminCheckResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// ModelInfo describes one language model the gateway can serve.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Loaded      bool   `json:"loaded"`
}

// currentModelResponse is the reply to the current-model query.
type currentModelResponse struct {
	Name string `json:"name"`
}

// setModelRequest is the body for switching the active model.
type setModelRequest struct {
	Name string `json:"name"`
}

// IsAdmin reports whether the current account has admin rights.
// Non-admins get a clean false, not an error.
func (c *Client) IsAdmin(ctx context.Context) (bool, error) {
	var r adminCheckResponse
	if err := c.get(ctx, "/admin/check", &r); err != nil {
		if IsUnauthorized(err) {
			return false, err
		}
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
			return false, nil
		}
		return false, err
	}
	return r.IsAdmin, nil
}

// ListModels returns the language models installed on the gateway.
// Admin only.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	if err := c.get(ctx, "/admin/models", &models); err != nil {
		return nil, err
	}
	return models, nil
}

// CurrentModel returns the name of the model currently answering chats.
// Admin only.
func (c *Client) CurrentModel(ctx context.Context) (string, error) {
	var r currentModelResponse
	if err := c.get(ctx, "/admin/models/current", &r); err != nil {
		return "", err
	}
	return r.Name, nil
}

// SetCurrentModel switches the gateway to a different model. Admin only.
func (c *Client) SetCurrentModel(ctx context.Context, name string) error {
	return c.post(ctx, "/admin/models/current", setModelRequest{Name: name}, nil)
}
