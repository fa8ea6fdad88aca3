// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeranaias/privategxt-tui/internal/api"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL).WithHTTPClient(srv.Client())
	client.SetToken("tok")
	return NewService(client)
}

func TestIsAdmin_ProbesOnce(t *testing.T) {
	probes := 0
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		probes++
		w.Write([]byte(`{"is_admin": true}`))
	})

	for i := 0; i < 3; i++ {
		isAdmin, err := s.IsAdmin(context.Background())
		if err != nil {
			t.Fatalf("IsAdmin failed: %v", err)
		}
		if !isAdmin {
			t.Error("IsAdmin should be true")
		}
	}
	if probes != 1 {
		t.Errorf("gateway probed %d times, want 1", probes)
	}
}

func TestIsAdmin_ProbeFailureIsNotCached(t *testing.T) {
	fail := true
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "boom"}`))
			return
		}
		w.Write([]byte(`{"is_admin": true}`))
	})

	if _, err := s.IsAdmin(context.Background()); err == nil {
		t.Fatal("expected probe error")
	}

	fail = false
	isAdmin, err := s.IsAdmin(context.Background())
	if err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if !isAdmin {
		t.Error("IsAdmin should be true after successful retry")
	}
}

func TestModels_RequiresAdmin(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/check" {
			w.Write([]byte(`{"is_admin": false}`))
			return
		}
		t.Errorf("non-admin must not reach %s", r.URL.Path)
	})

	if _, err := s.Models(context.Background()); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("err = %v, want ErrNotAdmin", err)
	}
}

func TestModelManagement(t *testing.T) {
	current := "llama3-8b"
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/admin/check":
			w.Write([]byte(`{"is_admin": true}`))
		case r.URL.Path == "/admin/models":
			json.NewEncoder(w).Encode([]api.ModelInfo{
				{Name: "llama3-8b", DisplayName: "Llama 3 8B", Loaded: true},
				{Name: "mistral-7b", DisplayName: "Mistral 7B"},
			})
		case r.URL.Path == "/admin/models/current" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{"name": current})
		case r.URL.Path == "/admin/models/current" && r.Method == http.MethodPost:
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			current = req["name"]
			w.WriteHeader(http.StatusOK)
		}
	})
	ctx := context.Background()

	models, err := s.Models(ctx)
	if err != nil {
		t.Fatalf("Models failed: %v", err)
	}
	if len(models) != 2 || models[0].Name != "llama3-8b" {
		t.Errorf("models = %+v", models)
	}

	got, err := s.CurrentModel(ctx)
	if err != nil {
		t.Fatalf("CurrentModel failed: %v", err)
	}
	if got != "llama3-8b" {
		t.Errorf("current = %q", got)
	}

	if err := s.SwitchModel(ctx, "mistral-7b"); err != nil {
		t.Fatalf("SwitchModel failed: %v", err)
	}
	got, _ = s.CurrentModel(ctx)
	if got != "mistral-7b" {
		t.Errorf("current after switch = %q", got)
	}
}
