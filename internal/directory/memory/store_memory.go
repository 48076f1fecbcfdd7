// Package memory provides an in-memory identity directory. It keeps the
// initial implementation lightweight and testable and intentionally favors
// clarity over performance.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"credlock/internal/lockout/models"
	"credlock/pkg/sentinel"
)

// Store implements both the Directory and Profiles ports against process
// memory. Dev mode and tests seed it directly.
type Store struct {
	mu         sync.RWMutex
	byEmail    map[string]models.DirectoryAccount
	byUsername map[string]string // username -> email
}

func New() *Store {
	return &Store{
		byEmail:    make(map[string]models.DirectoryAccount),
		byUsername: make(map[string]string),
	}
}

// Seed registers an account, generating a UID when none is set.
func (s *Store) Seed(account models.DirectoryAccount) models.DirectoryAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.UID == "" {
		account.UID = uuid.NewString()
	}
	s.byEmail[account.Email] = account
	if account.Username != "" {
		s.byUsername[account.Username] = account.Email
	}
	return account
}

func (s *Store) EmailByUsername(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.byUsername[username]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return email, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*models.DirectoryAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byEmail[email]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copy := account
	return &copy, nil
}

func (s *Store) SetDisabled(_ context.Context, uid string, disabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, account := range s.byEmail {
		if account.UID == uid {
			account.Disabled = disabled
			s.byEmail[email] = account
			return nil
		}
	}
	return sentinel.ErrNotFound
}
