package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every authentication failure.
// The message never distinguishes "unknown user" from "wrong password".
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service encapsulates admin-user business logic.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Authenticate checks the credential pair against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByUsername returns the user or nil when no such user exists.
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// EnsureAdmin creates the admin account when it does not exist yet.
// Used by the seeder; a no-op when the user is already present.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return errors.New("admin password is required to create the admin user")
	}
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user lookup: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, &User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}
