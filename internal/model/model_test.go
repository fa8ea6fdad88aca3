// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

// =============================================================================
// MESSAGE STATE TESTS
// =============================================================================

func TestNewPendingMessage(t *testing.T) {
	msg := NewPendingMessage("hello")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "hello")
	}
	if msg.ID != 0 {
		t.Errorf("ID = %d, want 0 (pending messages have no server id)", msg.ID)
	}
	if msg.CorrelationID == "" {
		t.Error("CorrelationID should be set on a pending message")
	}
	if !msg.Pending() {
		t.Error("Pending() should be true")
	}
	if time.Since(msg.CreatedAt) > time.Minute {
		t.Error("CreatedAt should be approximately now")
	}
}

func TestPendingMessage_UniqueCorrelationIDs(t *testing.T) {
	a := NewPendingMessage("one")
	b := NewPendingMessage("two")
	if a.CorrelationID == b.CorrelationID {
		t.Error("two pending messages must not share a correlation id")
	}
}

func TestMessage_ConfirmedIsNotPending(t *testing.T) {
	msg := Message{ID: 42, Role: RoleAssistant, Content: "hi"}
	if msg.Pending() {
		t.Error("a server-issued message must not report Pending()")
	}
}

// =============================================================================
// SOURCE TYPE TESTS
// =============================================================================

func TestSourceType_Tag(t *testing.T) {
	tests := []struct {
		source SourceType
		want   string
	}{
		{SourceLLMOnly, "[LLM_ONLY]"},
		{SourceRAG, "[RAG]"},
		{SourceHybrid, "[HYBRID]"},
		{SourceType(""), ""},
	}

	for _, tc := range tests {
		if got := tc.source.Tag(); got != tc.want {
			t.Errorf("Tag(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("RoleUser.DisplayName() = %q, want %q", got, "You")
	}
	if got := RoleAssistant.DisplayName(); got != "PrivateGxT" {
		t.Errorf("RoleAssistant.DisplayName() = %q, want %q", got, "PrivateGxT")
	}
	if got := Role("system").DisplayName(); got != "system" {
		t.Errorf("unknown role should fall back to itself, got %q", got)
	}
}

// =============================================================================
// PREVIEW / SIZE HELPERS
// =============================================================================

func TestMessage_Preview(t *testing.T) {
	msg := Message{Content: "The quick brown fox jumps over the lazy dog"}

	if got := msg.Preview(100); got != msg.Content {
		t.Errorf("short content should be returned unchanged, got %q", got)
	}
	if got := msg.Preview(12); got != "The quick..." {
		t.Errorf("Preview(12) = %q, want %q", got, "The quick...")
	}

	unicode := Message{Content: "日本語のテキストです"}
	if got := unicode.Preview(5); len([]rune(got)) != 5 {
		t.Errorf("Preview must truncate by runes, got %q", got)
	}
}

func TestDocument_SizeKB(t *testing.T) {
	tests := []struct {
		size int64
		want int64
	}{
		{0, 0},
		{1024, 1},
		{1536, 2}, // rounds to nearest
		{204800, 200},
	}

	for _, tc := range tests {
		doc := Document{FileSize: tc.size}
		if got := doc.SizeKB(); got != tc.want {
			t.Errorf("SizeKB(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}
