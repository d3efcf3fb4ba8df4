package memory

import (
	"sync"
	"time"

	"github.com/barista-preorder/internal/domain"
)

// CodeStore holds the active verification code per email. It is
// process-lifetime state: a restart loses all pending codes, which is
// acceptable given the short validity window promised to users.
type CodeStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]domain.VerificationCode
}

// NewCodeStore creates an empty store. Codes older than ttl are treated as
// absent; ttl == 0 disables expiry.
func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		ttl:   ttl,
		codes: make(map[string]domain.VerificationCode),
	}
}

// Set stores a code for email, replacing (and thereby invalidating) any
// previous entry for that email.
func (s *CodeStore) Set(email, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = domain.VerificationCode{
		Email:    email,
		Code:     code,
		IssuedAt: time.Now(),
	}
}

// Get returns the active code for email, if any. Expired entries are
// removed and reported as absent.
func (s *CodeStore) Get(email string) (domain.VerificationCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vc, ok := s.codes[email]
	if !ok {
		return domain.VerificationCode{}, false
	}
	if s.expired(vc) {
		delete(s.codes, email)
		return domain.VerificationCode{}, false
	}
	return vc, true
}

// Clear removes the entry for email, if any.
func (s *CodeStore) Clear(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
}

// Redeem atomically compares supplied against the stored code for email and
// deletes the entry on an exact match. The check and the delete share one
// critical section, so of two concurrent redemptions for the same email at
// most one can return true. A mismatch leaves the entry untouched; a matching
// but expired entry is removed and reported as a failure.
func (s *CodeStore) Redeem(email, supplied string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	vc, ok := s.codes[email]
	if !ok || vc.Code != supplied {
		return false
	}
	delete(s.codes, email)
	return !s.expired(vc)
}

func (s *CodeStore) expired(vc domain.VerificationCode) bool {
	return s.ttl > 0 && time.Since(vc.IssuedAt) > s.ttl
}
