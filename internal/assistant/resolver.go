// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant resolves the user's working assistant.
//
// Each account works against exactly one assistant: the first one the
// gateway lists, or a freshly created one for brand-new accounts. The
// resolver settles this once per session; documents and chat key every
// call off the resolved id.
package assistant

import (
	"context"
	"log"
	"sync"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// Resolver finds or creates the account's assistant.
type Resolver struct {
	client *api.Client

	mu       sync.Mutex
	resolved *model.Assistant
}

// NewResolver creates a resolver backed by the gateway client.
func NewResolver(client *api.Client) *Resolver {
	return &Resolver{client: client}
}

// Current returns the resolved assistant, or nil before Resolve succeeds.
func (r *Resolver) Current() *model.Assistant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}

// Resolve returns the account's assistant, creating one if the account
// has none yet. The first successful resolution is cached for the rest
// of the session; a failed attempt leaves nothing cached so a later call
// can try again.
func (r *Resolver) Resolve(ctx context.Context) (*model.Assistant, error) {
	r.mu.Lock()
	if r.resolved != nil {
		defer r.mu.Unlock()
		return r.resolved, nil
	}
	r.mu.Unlock()

	assistants, err := r.client.ListAssistants(ctx)
	if err != nil {
		log.Printf("assistant listing failed: %v", err)
		return nil, err
	}

	var a *model.Assistant
	if len(assistants) > 0 {
		a = &assistants[0]
	} else {
		// The gateway names the assistant itself; the create call takes
		// no body.
		created, err := r.client.CreateAssistant(ctx)
		if err != nil {
			log.Printf("assistant creation failed: %v", err)
			return nil, err
		}
		a = created
	}

	r.mu.Lock()
	// Another goroutine may have resolved concurrently; first one wins so
	// every caller sees the same id.
	if r.resolved == nil {
		r.resolved = a
	}
	a = r.resolved
	r.mu.Unlock()
	return a, nil
}

// Reset forgets the cached assistant. Called on logout.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.resolved = nil
	r.mu.Unlock()
}
