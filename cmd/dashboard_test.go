// ABOUTME: Tests for the dashboard command
// ABOUTME: Covers the auth guard and both output formats

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

func countsBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/destinations/counts":
			json.NewEncoder(w).Encode(api.DestinationCounts{Total: 10, Domestic: 6, International: 4})
		case "/api/users/counts":
			json.NewEncoder(w).Encode(api.UserCounts{Total: 25, Regular: 23, Admin: 2})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestDashboardRequiresSession(t *testing.T) {
	testEnv(t, countsBackend())

	var buf bytes.Buffer
	if code := runDashboard(context.Background(), &buf); code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
}

func TestDashboardHuman(t *testing.T) {
	dir := testEnv(t, countsBackend())
	seedSession(t, dir)

	var buf bytes.Buffer
	if code := runDashboard(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "10 (6 domestic, 4 international)") {
		t.Errorf("unexpected destinations line in %q", out)
	}
	if !strings.Contains(out, "25 (23 regular, 2 admin)") {
		t.Errorf("unexpected users line in %q", out)
	}
}

func TestDashboardJSON(t *testing.T) {
	dir := testEnv(t, countsBackend())
	seedSession(t, dir)
	jsonOutput = true

	var buf bytes.Buffer
	if code := runDashboard(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	var out struct {
		Destinations api.DestinationCounts `json:"destinations"`
		Users        api.UserCounts        `json:"users"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Destinations.Total != 10 || out.Users.Admin != 2 {
		t.Errorf("unexpected payload %+v", out)
	}
}

func TestDashboardBackendError(t *testing.T) {
	dir := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "database down"})
	}))
	seedSession(t, dir)

	var buf bytes.Buffer
	if code := runDashboard(context.Background(), &buf); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "database down") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
