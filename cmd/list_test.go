// ABOUTME: Tests for the list command
// ABOUTME: Covers resource routing, filters, auth guard, and output formats

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/tourbase/tourbase-admin/internal/api"
)

func listBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/destinations":
			items := []api.Destination{
				{DID: 1, Name: "Pokhara", DType: "domestic"},
				{DID: 2, Name: "Paris", DType: "international"},
			}
			if dtype := r.URL.Query().Get("dtype"); dtype != "" {
				var scoped []api.Destination
				for _, d := range items {
					if d.DType == dtype {
						scoped = append(scoped, d)
					}
				}
				items = scoped
			}
			json.NewEncoder(w).Encode(items)
		case "/api/activities":
			json.NewEncoder(w).Encode(map[string]any{
				"activities": []api.Activity{{AID: 4, ADetail: "Paragliding", DID: 1}},
			})
		case "/api/users":
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
				return
			}
			json.NewEncoder(w).Encode([]api.User{{ID: 1, FullName: "Admin One", Email: "a@x.y", Role: "admin"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestListDestinations(t *testing.T) {
	testEnv(t, listBackend())

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "destinations"); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "Pokhara") || !strings.Contains(out, "Paris") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestListDestinationsFiltered(t *testing.T) {
	testEnv(t, listBackend())
	listDType = "domestic"
	t.Cleanup(func() { listDType = "" })

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "destinations"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "Pokhara") || strings.Contains(out, "Paris") {
		t.Errorf("filter should scope the list, got %q", out)
	}
}

func TestListActivitiesUnwrapped(t *testing.T) {
	testEnv(t, listBackend())

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "activities"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "Paragliding") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestListUsersRequiresSession(t *testing.T) {
	testEnv(t, listBackend())

	var buf bytes.Buffer
	code := runList(context.Background(), &buf, "users")
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not signed in") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestListUsersWithSession(t *testing.T) {
	dir := testEnv(t, listBackend())
	seedSession(t, dir)

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "users"); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Admin One") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestListUnknownResource(t *testing.T) {
	testEnv(t, listBackend())

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "widgets"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestListJSONOutput(t *testing.T) {
	testEnv(t, listBackend())
	jsonOutput = true

	var buf bytes.Buffer
	if code := runList(context.Background(), &buf, "destinations"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	var items []api.Destination
	if err := json.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}
