// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package documents manages the knowledge base attached to an assistant.
//
// The manager keeps a local projection of the server's document list and
// guards mutations with simple gates: one upload at a time, and one
// in-flight delete per document. After any successful mutation the list
// is refreshed wholesale from the gateway; the local copy is never
// patched by hand, so it can only ever show what the server confirmed.
package documents

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

// Error variables for gate violations. The UI treats these as silent
// no-ops rather than user-facing failures.
var (
	// ErrUploadInProgress indicates an upload is already running.
	ErrUploadInProgress = errors.New("upload already in progress")

	// ErrDeleteInProgress indicates this document is already being deleted.
	ErrDeleteInProgress = errors.New("delete already in progress for this document")
)

// Manager owns the document list for one assistant.
type Manager struct {
	client      *api.Client
	assistantID int64

	mu        sync.Mutex
	docs      []model.Document
	uploading bool
	deleting  map[int64]bool
}

// NewManager creates a document manager for the given assistant.
func NewManager(client *api.Client, assistantID int64) *Manager {
	return &Manager{
		client:      client,
		assistantID: assistantID,
		deleting:    make(map[int64]bool),
	}
}

// Documents returns a copy of the current document list.
func (m *Manager) Documents() []model.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Document, len(m.docs))
	copy(out, m.docs)
	return out
}

// Uploading reports whether an upload is in flight.
func (m *Manager) Uploading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploading
}

// Deleting reports whether the given document has a delete in flight.
func (m *Manager) Deleting(docID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleting[docID]
}

// Refresh replaces the local list with the gateway's. On failure the
// previous list is kept untouched.
func (m *Manager) Refresh(ctx context.Context) error {
	docs, err := m.client.ListDocuments(ctx, m.assistantID)
	if err != nil {
		log.Printf("document refresh failed: %v", err)
		return err
	}
	m.mu.Lock()
	m.docs = docs
	m.mu.Unlock()
	return nil
}

// Upload sends a file to the assistant's knowledge base and refreshes
// the list. Only one upload may run at a time; a second attempt returns
// ErrUploadInProgress without touching the network.
func (m *Manager) Upload(ctx context.Context, filename string, content io.Reader) error {
	m.mu.Lock()
	if m.uploading {
		m.mu.Unlock()
		return ErrUploadInProgress
	}
	m.uploading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.uploading = false
		m.mu.Unlock()
	}()

	if _, err := m.client.UploadDocument(ctx, m.assistantID, filename, content); err != nil {
		log.Printf("document upload failed: %v", err)
		return err
	}

	// The upload response already carries the new record, but the list is
	// authoritative, refetch instead of splicing.
	return m.Refresh(ctx)
}

// Delete removes a document and refreshes the list. Deletes of distinct
// documents may overlap; a second delete of the same document returns
// ErrDeleteInProgress.
func (m *Manager) Delete(ctx context.Context, docID int64) error {
	m.mu.Lock()
	if m.deleting[docID] {
		m.mu.Unlock()
		return ErrDeleteInProgress
	}
	m.deleting[docID] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.deleting, docID)
		m.mu.Unlock()
	}()

	if err := m.client.DeleteDocument(ctx, m.assistantID, docID); err != nil {
		log.Printf("document delete failed: %v", err)
		return err
	}

	return m.Refresh(ctx)
}
