package service

import (
	"context"
	"strings"

	"restaurant-storefront/internal/domain"
)

// Authenticator checks the shared mock password against the user directory
// and opens the session in the AuthStore.
type Authenticator struct {
	users    UserInterface
	sessions AuthInterface
	password string
	latency  Latency
}

func NewAuthenticator(users UserInterface, sessions AuthInterface, password string, latency Latency) *Authenticator {
	return &Authenticator{users: users, sessions: sessions, password: password, latency: latency}
}

func (a *Authenticator) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Session{}, domain.ErrMissingFields
	}
	if err := wait(ctx, a.latency.Login); err != nil {
		return domain.Session{}, err
	}
	user, err := a.users.FindByEmail(email)
	if err != nil || password != a.password {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	if err := a.sessions.Login(ctx, user); err != nil {
		return a.sessions.Session(), err
	}
	return a.sessions.Session(), nil
}

// Register creates a customer account without opening a session. The
// password is only checked for presence; every account shares the mock one.
func (a *Authenticator) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	if password == "" {
		return domain.User{}, domain.ErrMissingFields
	}
	return a.users.Register(ctx, email, name)
}

func (a *Authenticator) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}
