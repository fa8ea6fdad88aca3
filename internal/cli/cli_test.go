// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"

	"github.com/jeranaias/privategxt-tui/internal/api"
)

func TestArgParser_Subcommand(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want string
	}{
		{"empty", nil, ""},
		{"subcommand only", []string{"list"}, "list"},
		{"subcommand with flags", []string{"add", "--stars", "5"}, "add"},
		{"flag first", []string{"--confirm", "delete"}, "delete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.raw)
			if got := p.Subcommand(); got != tt.want {
				t.Errorf("Subcommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgParser_Flags(t *testing.T) {
	p := NewArgParser([]string{"add", "--stars", "5", "--comment=sehr gut", "--confirm"})

	if got := p.Flag("stars"); got != "5" {
		t.Errorf("Flag(stars) = %q, want %q", got, "5")
	}
	if got := p.Flag("comment"); got != "sehr gut" {
		t.Errorf("Flag(comment) = %q, want %q", got, "sehr gut")
	}
	if !p.BoolFlag("confirm") {
		t.Error("BoolFlag(confirm) = false, want true")
	}
	if p.BoolFlag("missing") {
		t.Error("BoolFlag(missing) = true, want false")
	}
	if got := p.Flag("missing"); got != "" {
		t.Errorf("Flag(missing) = %q, want empty", got)
	}
}

func TestArgParser_FlagInt(t *testing.T) {
	p := NewArgParser([]string{"--stars", "5", "--bad", "abc"})

	n, err := p.FlagInt("stars")
	if err != nil || n != 5 {
		t.Errorf("FlagInt(stars) = %d, %v, want 5, nil", n, err)
	}
	if _, err := p.FlagInt("bad"); err == nil {
		t.Error("FlagInt(bad) should fail on non-numeric value")
	}
	if _, err := p.FlagInt("missing"); err == nil {
		t.Error("FlagInt(missing) should fail")
	}
	if got := p.FlagIntOrDefault("missing", 3); got != 3 {
		t.Errorf("FlagIntOrDefault(missing, 3) = %d, want 3", got)
	}
}

func TestArgParser_BoolFlagEquals(t *testing.T) {
	p := NewArgParser([]string{"--open=true", "--quiet=false"})

	if !p.BoolFlag("open") {
		t.Error("BoolFlag(open) = false, want true")
	}
	if p.BoolFlag("quiet") {
		t.Error("BoolFlag(quiet) = true, want false")
	}
}

func TestArgParser_Positionals(t *testing.T) {
	p := NewArgParser([]string{"upload", "notes.pdf", "--confirm"})

	if got := p.PositionalCount(); got != 2 {
		t.Fatalf("PositionalCount() = %d, want 2", got)
	}
	if got := p.Positional(1); got != "notes.pdf" {
		t.Errorf("Positional(1) = %q, want %q", got, "notes.pdf")
	}
	if got := p.Positional(9); got != "" {
		t.Errorf("Positional(9) = %q, want empty", got)
	}
}

func TestArgParser_PositionalInt64(t *testing.T) {
	p := NewArgParser([]string{"delete", "42", "abc"})

	id, ok := p.PositionalInt64(1)
	if !ok || id != 42 {
		t.Errorf("PositionalInt64(1) = %d, %v, want 42, true", id, ok)
	}
	if _, ok := p.PositionalInt64(2); ok {
		t.Error("PositionalInt64(2) should fail on non-numeric argument")
	}
	if _, ok := p.PositionalInt64(5); ok {
		t.Error("PositionalInt64(5) should fail on missing argument")
	}
}

func TestArgParser_Rest(t *testing.T) {
	p := NewArgParser([]string{"add", "sehr", "hilfreich", "--stars", "4"})

	if got := p.Rest(); got != "sehr hilfreich" {
		t.Errorf("Rest() = %q, want %q", got, "sehr hilfreich")
	}
	if got := NewArgParser([]string{"add"}).Rest(); got != "" {
		t.Errorf("Rest() on single positional = %q, want empty", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneralError},
		{"usage", UsageError("bad flag"), ExitUsageError},
		{"not authenticated", api.ErrNotAuthenticated, ExitAuthError},
		{"unauthorized", &api.Error{Status: 401, Detail: "no"}, ExitAuthError},
		{"gateway error", &api.Error{Status: 500, Detail: "boom"}, ExitNetworkError},
		{"wrapped usage", &CommandError{Err: errors.New("x"), Code: ExitConfigError}, ExitConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestStarBar(t *testing.T) {
	tests := []struct {
		stars int
		want  string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := starBar(tt.stars); got != tt.want {
			t.Errorf("starBar(%d) = %q, want %q", tt.stars, got, tt.want)
		}
	}
}
