package auth

import (
	"fmt"
	"sync"

	"github.com/fiscus-app/fiscus/internal/platform/httpx"
)

// Store is an in-memory credential table keyed by username. Records live for
// the process lifetime; there is no persistence across restarts.
type Store struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{creds: make(map[string]Credential)}
}

// Insert adds a credential record. Registering an already-taken username
// fails with httpx.ErrDuplicate instead of silently overwriting.
func (s *Store) Insert(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.creds[cred.Username]; exists {
		return fmt.Errorf("username %q: %w", cred.Username, httpx.ErrDuplicate)
	}
	s.creds[cred.Username] = cred
	return nil
}

// Lookup returns the record stored for username.
func (s *Store) Lookup(username string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[username]
	if !ok {
		return Credential{}, fmt.Errorf("username %q: %w", username, httpx.ErrNotFound)
	}
	return cred, nil
}
