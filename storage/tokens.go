package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenTTL matches the 30-day login lifetime of the web client.
const TokenTTL = 30 * 24 * time.Hour

// TokenStore maps opaque session tokens to user IDs. Tokens live in
// memory; a restart just logs everyone out.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenRecord
	now    func() time.Time
}

type tokenRecord struct {
	userID    string
	expiresAt time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]tokenRecord), now: time.Now}
}

// NewTokenStoreWithClock is for tests that need to control expiry.
func NewTokenStoreWithClock(now func() time.Time) *TokenStore {
	return &TokenStore{tokens: make(map[string]tokenRecord), now: now}
}

// Issue creates a fresh token for a user.
func (s *TokenStore) Issue(userID string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = tokenRecord{userID: userID, expiresAt: s.now().Add(TokenTTL)}
	return token
}

// Resolve returns the user ID behind a token, if it is valid and
// unexpired. Expired tokens are dropped on sight.
func (s *TokenStore) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tokens[token]
	if !ok {
		return "", false
	}
	if s.now().After(rec.expiresAt) {
		delete(s.tokens, token)
		return "", false
	}
	return rec.userID, true
}

// Revoke invalidates a token (logout).
func (s *TokenStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}
