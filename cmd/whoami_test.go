// ABOUTME: Tests for the whoami and logout commands
// ABOUTME: Both operate only on local session state

package cmd

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/tourbase/tourbase-admin/internal/session"
)

func seedSession(t *testing.T, dir string) {
	t.Helper()
	store := session.NewStore(dir)
	err := store.Set("tok-seed", &session.User{
		ID: 1, FullName: "Admin One", Email: "admin@example.com", Role: session.RoleAdmin,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWhoamiNotSignedIn(t *testing.T) {
	testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var buf bytes.Buffer
	code := runWhoami(&buf)
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not signed in") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWhoamiShowsProfile(t *testing.T) {
	dir := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	seedSession(t, dir)

	var buf bytes.Buffer
	code := runWhoami(&buf)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "Admin One") || !strings.Contains(out, "admin@example.com") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestWhoamiJSON(t *testing.T) {
	dir := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	seedSession(t, dir)
	jsonOutput = true

	var buf bytes.Buffer
	if code := runWhoami(&buf); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), `"fullname": "Admin One"`) {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLogoutWipesSession(t *testing.T) {
	dir := testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	seedSession(t, dir)

	var buf bytes.Buffer
	if code := runLogout(&buf); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	store := session.NewStore(dir)
	store.Load()
	if !store.Get().Empty() {
		t.Error("logout must wipe the session")
	}
}

func TestLogoutTwiceIsFine(t *testing.T) {
	testEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var buf bytes.Buffer
	if code := runLogout(&buf); code != 0 {
		t.Fatalf("first logout: expected exit 0, got %d", code)
	}
	if code := runLogout(&buf); code != 0 {
		t.Fatalf("second logout: expected exit 0, got %d", code)
	}
}
