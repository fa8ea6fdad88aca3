// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeranaias/privategxt-tui/internal/api"
	"github.com/jeranaias/privategxt-tui/internal/model"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL).WithHTTPClient(srv.Client())
	client.SetToken("tok")
	return NewResolver(client)
}

func TestResolve_PicksFirstExisting(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPost {
			t.Error("must not create when assistants exist")
		}
		json.NewEncoder(w).Encode([]model.Assistant{
			{ID: 11, Name: "First"},
			{ID: 12, Name: "Second"},
		})
	})

	a, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.ID != 11 {
		t.Errorf("resolved ID = %d, want the first listed", a.ID)
	}
}

func TestResolve_CreatesWhenEmpty(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			w.Write([]byte(`[]`))
		case http.MethodPost:
			// The gateway assigns the name; the create request must not
			// carry a body.
			body, _ := io.ReadAll(req.Body)
			if len(body) != 0 {
				t.Errorf("create request body = %q, want empty", body)
			}
			json.NewEncoder(w).Encode(model.Assistant{ID: 21, Name: "Mein Assistent"})
		}
	})

	a, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.ID != 21 || a.Name != "Mein Assistent" {
		t.Errorf("resolved = %+v", a)
	}
}

func TestResolve_CachesAcrossCalls(t *testing.T) {
	lists := 0
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		lists++
		json.NewEncoder(w).Encode([]model.Assistant{{ID: 31, Name: "A"}})
	})

	first, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if lists != 1 {
		t.Errorf("gateway hit %d times, want 1", lists)
	}
	if first.ID != second.ID {
		t.Error("repeat resolution must return the same assistant")
	}
	if r.Current() == nil {
		t.Error("Current should expose the cached assistant")
	}
}

func TestResolve_FailureLeavesNothingCached(t *testing.T) {
	fail := true
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "db down"}`))
			return
		}
		json.NewEncoder(w).Encode([]model.Assistant{{ID: 41, Name: "A"}})
	})

	if _, err := r.Resolve(context.Background()); err == nil {
		t.Fatal("expected error from failing gateway")
	}
	if r.Current() != nil {
		t.Error("failed resolution must not cache anything")
	}

	fail = false
	a, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if a.ID != 41 {
		t.Errorf("resolved ID = %d", a.ID)
	}
}

func TestReset(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]model.Assistant{{ID: 51, Name: "A"}})
	})

	if _, err := r.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	r.Reset()
	if r.Current() != nil {
		t.Error("Reset must forget the cached assistant")
	}
}
