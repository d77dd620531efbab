package storage

import (
	"context"
	"fmt"
)

// Keys of the persisted session record.
const (
	TokenKey = "auth_token"
	UserKey  = "user"
)

// SessionStore reads and writes the persisted session record. The user
// profile is kept as raw JSON; decoding it is the session manager's job.
type SessionStore struct {
	repo Repository
}

func NewSessionStore(repo Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Token returns the stored bearer token, or "" when there is none.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// User returns the stored profile JSON, or nil when there is none.
func (s *SessionStore) User(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, UserKey)
}

// Save stores token and profile together.
func (s *SessionStore) Save(ctx context.Context, token string, user []byte) error {
	if err := s.repo.SetMany(ctx, map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  user,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SaveUser replaces the stored profile, keeping the token.
func (s *SessionStore) SaveUser(ctx context.Context, user []byte) error {
	return s.repo.Set(ctx, UserKey, user)
}

// ClearSession removes both keys of the session record.
func (s *SessionStore) ClearSession(ctx context.Context) error {
	if err := s.repo.DeleteMany(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// HasSession reports whether a profile is persisted. Like the browser
// guard it mirrors, only the "user" key is consulted; read errors count as
// "no session".
func (s *SessionStore) HasSession(ctx context.Context) bool {
	v, err := s.repo.Get(ctx, UserKey)
	return err == nil && len(v) > 0
}
