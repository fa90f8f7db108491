// Package client mirrors the identity state a browser client keeps between
// requests: the raw token and a serialized user summary under two well-known
// storage keys. It only drives navigation. The server re-verifies the token
// on every protected request, so nothing here is a trust boundary.
package client

import (
	"encoding/json"
	"sync"

	"nishlen_auth/internal/model"
)

// Well-known storage keys, shared with the web client.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Storage is a localStorage-like string key-value store.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage is the in-process Storage used by CLI callers and tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Session holds the locally cached identity.
type Session struct {
	store Storage
}

// NewSession creates a session over the given storage.
func NewSession(store Storage) *Session {
	return &Session{store: store}
}

// SaveLogin caches the token and user summary returned by a successful login.
func (s *Session) SaveLogin(token string, user model.UserSummary) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.store.Set(TokenKey, token)
	s.store.Set(UserKey, string(data))
	return nil
}

// Credentials returns the cached token and user. ok is false when either
// value is missing or the user blob does not parse.
func (s *Session) Credentials() (token string, user *model.UserSummary, ok bool) {
	token, hasToken := s.store.Get(TokenKey)
	userStr, hasUser := s.store.Get(UserKey)
	if !hasToken || token == "" || !hasUser {
		return "", nil, false
	}
	u := &model.UserSummary{}
	if err := json.Unmarshal([]byte(userStr), u); err != nil || u.Role == "" {
		return "", nil, false
	}
	return token, u, true
}

// Logout clears both cached values together.
func (s *Session) Logout() {
	s.store.Delete(TokenKey)
	s.store.Delete(UserKey)
}

// Authenticated reports whether the session holds a parsable identity.
func (s *Session) Authenticated() bool {
	_, _, ok := s.Credentials()
	return ok
}
