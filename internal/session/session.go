// ABOUTME: Durable session store for the admin's token and profile
// ABOUTME: Persists both to the config directory so sessions survive restarts

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Accepted role values for a stored profile.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ErrInvalidRole is returned by Set when the profile carries an unknown role.
var ErrInvalidRole = errors.New("invalid session role")

// ExpiredMsg reports that the backend rejected the stored token. Screens emit
// it on an unauthorized response; the root app clears the store and routes
// back to login.
type ExpiredMsg struct {
	Err error
}

// User is the authenticated account's profile as returned by the backend.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Session pairs a bearer token with its profile. Token is non-empty exactly
// when User is non-nil.
type Session struct {
	Token string
	User  *User
}

// Empty reports whether no one is signed in.
func (s Session) Empty() bool {
	return s.Token == ""
}

// IsAdmin reports whether the session belongs to an admin account.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == RoleAdmin
}

// Store is the single source of truth for "who is logged in". It keeps the
// session in memory and mirrors it to two files under dir: a bare token file
// and a JSON profile, always written and cleared together.
type Store struct {
	dir string

	mu      sync.Mutex
	current Session
}

// NewStore creates a store rooted at the given config directory. Call Load to
// pick up a persisted session.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) tokenFile() string {
	return filepath.Join(s.dir, "token")
}

func (s *Store) userFile() string {
	return filepath.Join(s.dir, "user.json")
}

// Load reads a previously persisted session. A missing or half-written pair
// is treated as signed out and wiped, so the token/user invariant holds from
// process start.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenBytes, tokenErr := os.ReadFile(s.tokenFile())
	userBytes, userErr := os.ReadFile(s.userFile())

	if os.IsNotExist(tokenErr) || os.IsNotExist(userErr) {
		s.current = Session{}
		return s.removeFiles()
	}
	if tokenErr != nil {
		return tokenErr
	}
	if userErr != nil {
		return userErr
	}

	token := strings.TrimSpace(string(tokenBytes))
	var user User
	if token == "" || json.Unmarshal(userBytes, &user) != nil || !validRole(user.Role) {
		// Corrupt or tampered state, start fresh.
		s.current = Session{}
		return s.removeFiles()
	}

	s.current = Session{Token: token, User: &user}
	return nil
}

// Get returns the current session. Never fails; the zero Session means
// signed out.
func (s *Store) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the current bearer token, or "" when signed out. Satisfies
// the api.TokenSource interface.
func (s *Store) Token() string {
	return s.Get().Token
}

// Set stores the token and profile together, both in memory and on disk.
func (s *Store) Set(token string, user *User) error {
	if token == "" || user == nil {
		return errors.New("session requires both token and user")
	}
	if !validRole(user.Role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}

	userBytes, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.userFile(), userBytes, 0600); err != nil {
		return err
	}
	// Token written last: a crash in between leaves a profile without a
	// token, which Load discards.
	if err := os.WriteFile(s.tokenFile(), []byte(token), 0600); err != nil {
		s.removeFiles()
		return err
	}

	u := *user
	s.current = Session{Token: token, User: &u}
	return nil
}

// Clear wipes the session in memory and on disk. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	return s.removeFiles()
}

func (s *Store) removeFiles() error {
	var firstErr error
	for _, path := range []string{s.tokenFile(), s.userFile()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func validRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
