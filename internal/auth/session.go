package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
)

// TokenStore maps bearer tokens to user ids. Injected wherever sessions are
// needed so the process carries no hidden global state; swap the in-memory
// implementation for Redis or similar when scaling out.
type TokenStore interface {
	Put(token, userID string)
	Get(token string) (string, bool)
	Delete(token string)
}

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]string)}
}

func (s *MemoryTokenStore) Put(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
}

func (s *MemoryTokenStore) Get(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.tokens[token]
	return userID, ok
}

func (s *MemoryTokenStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// NewToken returns a 32-byte URL-safe random token.
func NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure means the host is broken
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
