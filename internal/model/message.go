// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "PrivateGxT"
	default:
		return string(r)
	}
}

// =============================================================================
// SOURCE TYPE
// =============================================================================

// SourceType classifies how the server produced an assistant reply.
// It is server-determined and opaque to the client beyond display/export.
type SourceType string

const (
	// SourceLLMOnly means the reply came from the base model alone.
	SourceLLMOnly SourceType = "llm_only"
	// SourceRAG means the reply was grounded in retrieved documents.
	SourceRAG SourceType = "rag"
	// SourceHybrid means retrieved documents were combined with web search.
	SourceHybrid SourceType = "hybrid"
)

// Tag returns an upper-cased bracket tag for transcripts, e.g. "[RAG]".
// Returns the empty string when no source type is set.
func (s SourceType) Tag() string {
	if s == "" {
		return ""
	}
	tag := make([]byte, 0, len(s)+2)
	tag = append(tag, '[')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		tag = append(tag, c)
	}
	return string(append(tag, ']'))
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat message scoped to an assistant.
//
// A message is in exactly one of two states:
//
//   - Confirmed: fetched from the server; ID is the server-issued identifier
//     and CorrelationID is empty.
//   - Pending: inserted optimistically before server acknowledgment;
//     ID is zero and CorrelationID holds a client-only token used to locate
//     the entry for rollback.
//
// The two identifier namespaces never overlap, so a pending entry can never
// be mistaken for (or collide with) a confirmed one.
type Message struct {
	ID        int64     `json:"id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Assistant messages only.
	SourceType    SourceType `json:"source_type,omitempty"`
	SourceDetails string     `json:"source_details,omitempty"`

	// CorrelationID is set only on optimistic entries awaiting server
	// confirmation. Never serialized, never sent to the server.
	CorrelationID string `json:"-"`
}

// NewPendingMessage creates an optimistic user message awaiting confirmation.
func NewPendingMessage(content string) Message {
	return Message{
		Role:          RoleUser,
		Content:       content,
		CreatedAt:     time.Now(),
		CorrelationID: uuid.NewString(),
	}
}

// Pending reports whether the message is an unconfirmed optimistic entry.
func (m Message) Pending() bool {
	return m.CorrelationID != ""
}

// Preview returns a truncated single-line preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
