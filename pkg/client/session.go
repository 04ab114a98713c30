package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session is the client-side source of truth for the signed-in user. The
// record is persisted as a JSON blob at path; there is no server-side
// session to invalidate.
type Session struct {
	client *Client
	path   string

	mu      sync.Mutex
	user    *User
	loading bool
	lastErr error
}

// NewSession creates a session persisted at path, e.g. a file under the
// user config dir.
func NewSession(c *Client, path string) *Session {
	return &Session{client: c, path: path}
}

// Load restores the persisted user record. A missing or corrupt blob
// means logged out, never an error: the stale file is discarded.
func (s *Session) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.user = nil
		return
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == 0 {
		s.user = nil
		_ = os.Remove(s.path)
		return
	}
	s.user = &user
}

// Login authenticates and persists the returned record.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	if err := s.store(user); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.setErr(nil)
	return user, nil
}

// Register creates an account and persists the returned record, leaving
// the new user signed in.
func (s *Session) Register(ctx context.Context, input RegisterInput) (*User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.client.Register(ctx, input)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	if err := s.store(user); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.setErr(nil)
	return user, nil
}

// Logout drops the in-memory record and deletes the blob.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// UpdateProfile sends a profile update for the signed-in user and
// persists the merged record.
func (s *Session) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*User, error) {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()

	if current == nil {
		return nil, &APIError{Kind: KindRequest, Message: "Nenhum usuário autenticado"}
	}

	user, err := s.client.UpdateUser(ctx, current.ID, fields)
	if err != nil {
		s.setErr(err)
		return nil, err
	}

	if err := s.store(user); err != nil {
		s.setErr(err)
		return nil, err
	}
	s.setErr(nil)
	return user, nil
}

// User returns a copy of the signed-in user record, or nil.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user record is loaded.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// UserType returns the signed-in user's role, or "" when logged out.
func (s *Session) UserType() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ""
	}
	return s.user.UserType
}

// Loading reports whether an auth call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the error of the most recent auth call, nil after a
// success.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) store(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}
