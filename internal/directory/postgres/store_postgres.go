// Package postgres provides the PostgreSQL-backed identity directory.
// This store is pure I/O; the read-before-write guard and all lockout rules
// belong in the services.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"credlock/internal/lockout/models"
	"credlock/pkg/sentinel"
)

// Schema:
//
//	CREATE TABLE accounts (
//	    uid      TEXT PRIMARY KEY,
//	    username TEXT NOT NULL UNIQUE,
//	    email    TEXT NOT NULL UNIQUE,
//	    disabled BOOLEAN NOT NULL DEFAULT FALSE
//	);
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EmailByUsername(ctx context.Context, username string) (string, error) {
	var email string
	err := s.db.QueryRowContext(ctx,
		`SELECT email FROM accounts WHERE username = $1`, username,
	).Scan(&email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("email by username: %w", err)
	}
	return email, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*models.DirectoryAccount, error) {
	var account models.DirectoryAccount
	err := s.db.QueryRowContext(ctx,
		`SELECT uid, username, email, disabled FROM accounts WHERE email = $1`, email,
	).Scan(&account.UID, &account.Username, &account.Email, &account.Disabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find by email: %w", err)
	}
	return &account, nil
}

// SetDisabled flips the disabled flag with a single conditional update. Zero
// rows affected means the flag already held the requested value, which the
// services treat as success; an unknown uid is reported as not found.
func (s *Store) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET disabled = $2 WHERE uid = $1 AND disabled <> $2`, uid, disabled,
	)
	if err != nil {
		return fmt.Errorf("set disabled: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set disabled: %w", err)
	}
	if affected == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM accounts WHERE uid = $1)`, uid,
		).Scan(&exists); err != nil {
			return fmt.Errorf("set disabled: %w", err)
		}
		if !exists {
			return sentinel.ErrNotFound
		}
	}
	return nil
}

// Seed inserts or replaces an account. Used by dev tooling and tests.
func (s *Store) Seed(ctx context.Context, account models.DirectoryAccount) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (uid, username, email, disabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			disabled = EXCLUDED.disabled
	`, account.UID, account.Username, account.Email, account.Disabled)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	return nil
}
