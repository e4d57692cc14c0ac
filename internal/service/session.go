package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/forgo/volunteer/internal/model"
)

// Session holds the single logged-in user shared by the services. Starting
// a session replaces whoever was logged in before.
type Session struct {
	mu   sync.Mutex
	id   string
	user model.User
}

// NewSession returns an empty session
func NewSession() *Session {
	return &Session{}
}

// Start logs user in under a fresh session id and returns that id
func (s *Session) Start(user model.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.New().String()
	s.user = user
	return s.id
}

// Clear logs the current user out. Clearing an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	s.user = nil
}

// ID returns the current session id, or "" when nobody is logged in
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// User returns the logged-in user, or nil
func (s *Session) User() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Organization returns the logged-in organization, if the session holds one
func (s *Session) Organization() (*model.Organization, bool) {
	org, ok := s.User().(*model.Organization)
	return org, ok && org != nil
}

// Volunteer returns the logged-in volunteer, if the session holds one
func (s *Session) Volunteer() (*model.Volunteer, bool) {
	v, ok := s.User().(*model.Volunteer)
	return v, ok && v != nil
}
