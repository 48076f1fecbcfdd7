//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"credlock/internal/directory/postgres"
	"credlock/internal/lockout/models"
	"credlock/pkg/sentinel"
	"credlock/pkg/testutil/containers"
)

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		uid      TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email    TEXT NOT NULL UNIQUE,
		disabled BOOLEAN NOT NULL DEFAULT FALSE
	);
`

type postgresStoreSuite struct {
	suite.Suite
	store *postgres.Store
	reset func()
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := containers.NewPostgresDB(t, schema)
	s := &postgresStoreSuite{
		store: postgres.New(db),
		reset: func() {
			_, err := db.Exec(`TRUNCATE accounts`)
			if err != nil {
				t.Fatalf("truncate accounts: %v", err)
			}
		},
	}
	suite.Run(t, s)
}

func (s *postgresStoreSuite) SetupTest() {
	s.reset()
}

func (s *postgresStoreSuite) seedAlice(disabled bool) {
	s.Require().NoError(s.store.Seed(context.Background(), models.DirectoryAccount{
		UID:      "U1",
		Username: "alice",
		Email:    "alice@example.com",
		Disabled: disabled,
	}))
}

func (s *postgresStoreSuite) TestLookups() {
	ctx := context.Background()
	s.seedAlice(false)

	email, err := s.store.EmailByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice@example.com", email)

	account, err := s.store.FindByEmail(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("U1", account.UID)
	s.False(account.Disabled)

	_, err = s.store.EmailByUsername(ctx, "ghost")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByEmail(ctx, "ghost@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *postgresStoreSuite) TestSetDisabled() {
	ctx := context.Background()
	s.seedAlice(false)

	s.Require().NoError(s.store.SetDisabled(ctx, "U1", true))
	account, err := s.store.FindByEmail(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.True(account.Disabled)

	// Setting the flag to its current value is a successful no-op.
	s.Require().NoError(s.store.SetDisabled(ctx, "U1", true))

	s.Require().NoError(s.store.SetDisabled(ctx, "U1", false))
	account, err = s.store.FindByEmail(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.False(account.Disabled)
}

func (s *postgresStoreSuite) TestSetDisabled_UnknownUID() {
	err := s.store.SetDisabled(context.Background(), "no-such-uid", true)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
