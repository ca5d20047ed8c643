package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gulshan-laundry/laundry-svc/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService holds the single configured admin account and exchanges its
// credentials for opaque session tokens kept in the session store.
type AuthService struct {
	email    string
	password string
	sessions SessionStore
}

func NewAuthService(email, password string, sessions SessionStore) *AuthService {
	return &AuthService{email: email, password: password, sessions: sessions}
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email != s.email || password != s.password {
		return nil, ErrInvalidCredentials
	}
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	user := domain.AdminUser{ID: "1", Name: "Admin User", Email: s.email, Role: "admin"}
	if err := s.sessions.SaveSession(ctx, token, user); err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, User: user}, nil
}

func (s *AuthService) Verify(ctx context.Context, token string) (*domain.AdminUser, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

var _ AuthServiceInterface = (*AuthService)(nil)
