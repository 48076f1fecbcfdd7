package attempts

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"credlock/internal/lockout/models"
	pkgerrors "credlock/pkg/errors"
)

type AttemptsServiceSuite struct {
	suite.Suite
	ctx context.Context

	store    *InMemoryStore
	received []models.AttemptChangeEvent
	service  *Service
}

func TestAttemptsServiceSuite(t *testing.T) {
	suite.Run(t, new(AttemptsServiceSuite))
}

func (s *AttemptsServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
	s.received = nil

	notifier := NotifierFunc(func(_ context.Context, event models.AttemptChangeEvent) error {
		s.received = append(s.received, event)
		return nil
	})

	var err error
	s.service, err = New(s.store, notifier,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
}

func (s *AttemptsServiceSuite) TestRecordFailure_EmitsBeforeAfterPair() {
	s.Require().NoError(s.service.RecordFailure(s.ctx, "alice"))
	s.Require().NoError(s.service.RecordFailure(s.ctx, "alice"))
	s.Require().NoError(s.service.RecordFailure(s.ctx, "alice"))

	s.Require().Len(s.received, 3)
	for i, event := range s.received {
		s.Equal("alice", event.Identity)
		s.Equal(i, event.BeforeCount)
		s.Require().NotNil(event.AfterCount)
		s.Equal(i+1, *event.AfterCount)
	}
}

func (s *AttemptsServiceSuite) TestRecordFailure_EmptyIdentityRejected() {
	err := s.service.RecordFailure(s.ctx, "")
	s.Equal(pkgerrors.CodeInvalidArgument, pkgerrors.CodeOf(err))
	s.Empty(s.received)
}

func (s *AttemptsServiceSuite) TestClear_EmitsDeletionEvent() {
	s.Require().NoError(s.service.RecordFailure(s.ctx, "alice"))
	s.Require().NoError(s.service.RecordFailure(s.ctx, "alice"))
	s.received = nil

	s.Require().NoError(s.service.Clear(s.ctx, "alice"))

	s.Require().Len(s.received, 1)
	s.Equal("alice", s.received[0].Identity)
	s.Equal(2, s.received[0].BeforeCount)
	s.True(s.received[0].Deleted())
}

func (s *AttemptsServiceSuite) TestClear_NoRecordNoEvent() {
	s.Require().NoError(s.service.Clear(s.ctx, "nobody"))
	s.Empty(s.received)
}

func TestInMemoryStore_Counters(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	before, after, err := store.RecordFailure(ctx, "alice")
	if err != nil || before != 0 || after != 1 {
		t.Fatalf("first failure: got (%d, %d, %v)", before, after, err)
	}

	before, after, err = store.RecordFailure(ctx, "alice")
	if err != nil || before != 1 || after != 2 {
		t.Fatalf("second failure: got (%d, %d, %v)", before, after, err)
	}

	prior, existed, err := store.Clear(ctx, "alice")
	if err != nil || !existed || prior != 2 {
		t.Fatalf("clear: got (%d, %v, %v)", prior, existed, err)
	}

	_, existed, err = store.Clear(ctx, "alice")
	if err != nil || existed {
		t.Fatalf("clear of missing record: got existed=%v err=%v", existed, err)
	}
}
