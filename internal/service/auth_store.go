package service

import (
	"context"
	"sync"

	"restaurant-storefront/internal/domain"
)

// AuthStore holds the single active session. It performs no credential
// checks; see Authenticator.
type AuthStore struct {
	mu        sync.RWMutex
	session   domain.Session
	snapshots SnapshotStore
}

func NewAuthStore(ctx context.Context, snapshots SnapshotStore) *AuthStore {
	s := &AuthStore{snapshots: snapshots}
	var saved domain.Session
	if restore(ctx, snapshots, AuthKey, &saved) {
		s.session = saved
	}
	return s
}

// Login replaces the session wholesale.
func (s *AuthStore) Login(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{
		User:            &user,
		IsAuthenticated: true,
		IsAdmin:         user.Role == domain.RoleAdmin,
	}
	return persist(ctx, s.snapshots, AuthKey, s.session)
}

func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	return persist(ctx, s.snapshots, AuthKey, s.session)
}

func (s *AuthStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session := s.session
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}
