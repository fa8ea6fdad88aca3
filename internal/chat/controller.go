// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat drives the conversation with an assistant.
//
// The controller keeps the transcript the UI renders. A sent message is
// inserted locally right away as a pending entry so the user sees it
// without waiting on the round trip; once the gateway confirms, the whole
// transcript is refetched and replaces the local one, which both promotes
// the pending entry to its server-issued form and picks up the
// assistant's reply. If the send fails, the pending entry is rolled back
// by its correlation id and nothing else changes.
//
// One send runs at a time. The transcript is never merged or patched
// entry by entry: apart from the optimistic insert and its rollback,
// every change is a wholesale replacement with what the server returned.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// Error variables for send preconditions. The UI treats all three as
// silent no-ops: nothing is rendered, nothing is logged at error level.
var (
	// ErrEmptyMessage indicates the input was empty after trimming.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSendInProgress indicates a send is already running.
	ErrSendInProgress = errors.New("send already in progress")

	// ErrNoAssistant indicates the controller has no assistant to talk to.
	ErrNoAssistant = errors.New("no assistant resolved")

	// ErrNothingToClear indicates ClearAll found an empty transcript. The
	// UI shows it as an informational notice, not an error.
	ErrNothingToClear = errors.New("no messages to clear")
)

// Controller owns the transcript for one assistant.
type Controller struct {
	client      *api.Client
	assistantID int64

	mu       sync.Mutex
	messages []model.Message
	sending  bool
}

// NewController creates a chat controller for the given assistant.
func NewController(client *api.Client, assistantID int64) *Controller {
	return &Controller{
		client:      client,
		assistantID: assistantID,
	}
}

// Messages returns a copy of the transcript in display order.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Sending reports whether a send is in flight.
func (c *Controller) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Load replaces the transcript with the gateway's. On failure the current
// transcript is kept untouched.
func (c *Controller) Load(ctx context.Context) error {
	if c.assistantID == 0 {
		return ErrNoAssistant
	}
	msgs, err := c.client.ListMessages(ctx, c.assistantID)
	if err != nil {
		log.Printf("message load failed: %v", err)
		return err
	}
	c.mu.Lock()
	c.messages = msgs
	c.mu.Unlock()
	return nil
}

// Send sends a user message and reconciles the transcript.
//
// The trimmed content is inserted immediately as a pending message so the
// UI shows it while the gateway works. On success the transcript is
// refetched wholesale, which replaces the pending entry with its
// confirmed twin and appends the assistant's reply. On failure only the
// pending entry is removed; everything the server previously confirmed
// stays.
func (c *Controller) Send(ctx context.Context, content string) error {
	if c.assistantID == 0 {
		return ErrNoAssistant
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}

	pending := model.NewPendingMessage(content)

	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return ErrSendInProgress
	}
	c.sending = true
	c.messages = append(c.messages, pending)
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.sending = false
		c.mu.Unlock()
	}()

	if _, err := c.client.SendMessage(ctx, c.assistantID, content); err != nil {
		log.Printf("send failed: %v", err)
		c.rollback(pending.CorrelationID)
		return err
	}

	// Reconcile: the server's transcript is the truth. If the refetch
	// itself fails, the pending entry still comes out; the message was
	// delivered, and the next successful load will show it confirmed.
	if err := c.Load(ctx); err != nil {
		c.rollback(pending.CorrelationID)
	}
	return nil
}

// rollback removes the pending message with the given correlation id.
// Confirmed messages are never touched: the two id namespaces cannot
// collide, so the match is exact.
func (c *Controller) rollback(correlationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.messages {
		if m.CorrelationID == correlationID {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}

// ClearAll deletes the entire chat history. An already-empty transcript
// short-circuits with ErrNothingToClear and no network call. Once the
// gateway confirms, the local transcript is dropped outright; there is
// nothing left server-side worth refetching.
func (c *Controller) ClearAll(ctx context.Context) error {
	if c.assistantID == 0 {
		return ErrNoAssistant
	}

	c.mu.Lock()
	empty := len(c.messages) == 0
	c.mu.Unlock()
	if empty {
		return ErrNothingToClear
	}

	if err := c.client.ClearMessages(ctx, c.assistantID); err != nil {
		log.Printf("history clear failed: %v", err)
		return err
	}
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
	return nil
}
