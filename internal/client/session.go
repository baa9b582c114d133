package client

import (
	"sync"

	"github.com/AwwwRyan/coverletter-gen/internal/letter"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

// Session keeps the raw generated letter next to the current profile.
// Render derives the display text on every call, so a profile edit made
// after generation shows up without regenerating.
type Session struct {
	mu      sync.RWMutex
	raw     string
	profile *profile.Profile
}

func NewSession(p *profile.Profile) *Session {
	return &Session{profile: p}
}

func (s *Session) SetLetter(raw string) {
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}

func (s *Session) SetProfile(p *profile.Profile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

func (s *Session) Raw() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

func (s *Session) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return letter.Clean(s.raw, s.profile)
}
