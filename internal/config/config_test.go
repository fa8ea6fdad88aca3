// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
	if cfg.Server.URL == "" {
		t.Error("default server URL must be set")
	}
}

func TestValidate_BadServerURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"no scheme", "gxt.example.com"},
		{"bad scheme", "ftp://gxt.example.com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Server.URL = tc.url
			if err := cfg.Validate(); err == nil {
				t.Errorf("URL %q should fail validation", tc.url)
			}
		})
	}
}

func TestValidate_BadTheme(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown theme should fail validation")
	}
}

func TestValidate_BadExportFormat(t *testing.T) {
	cfg := Default()
	cfg.Export.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown export format should fail validation")
	}
}

// =============================================================================
// LOAD / SAVE ROUND TRIPS
// =============================================================================

func TestSaveTOMLAndLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Server.URL = "https://gxt.internal:8443"
	cfg.UI.CompactMode = true
	cfg.Export.Format = "json"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	// SECURITY: saved config must be owner-only.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Server.URL != "https://gxt.internal:8443" {
		t.Errorf("Server.URL = %q", loaded.Server.URL)
	}
	if !loaded.UI.CompactMode {
		t.Error("CompactMode should survive the round trip")
	}
	if loaded.Export.Format != "json" {
		t.Errorf("Export.Format = %q", loaded.Export.Format)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Server.Locale = "de"
	if err := SaveJSON(cfg, path); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Server.Locale != "de" {
		t.Errorf("Server.Locale = %q, want de", loaded.Server.Locale)
	}
}

func TestLoadFromPath_FillsMissingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	// Partial file: only a server URL.
	partial := "[server]\nurl = \"http://10.0.0.5:8000\"\n"
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Server.URL != "http://10.0.0.5:8000" {
		t.Errorf("Server.URL = %q", loaded.Server.URL)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("missing theme should default to dark, got %q", loaded.UI.Theme)
	}
	if loaded.Export.Format != "txt" {
		t.Errorf("missing format should default to txt, got %q", loaded.Export.Format)
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PRIVATEGXT_SERVER_URL", "https://override.example")
	t.Setenv("PRIVATEGXT_LOCALE", "es")
	t.Setenv("PRIVATEGXT_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "https://override.example" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.Locale != "es" {
		t.Errorf("Server.Locale = %q", cfg.Server.Locale)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
}
