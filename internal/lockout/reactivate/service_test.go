package reactivate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"credlock/internal/lockout/models"
	"credlock/internal/lockout/ports/mocks"
	"credlock/pkg/audit"
	pkgerrors "credlock/pkg/errors"
	"credlock/pkg/sentinel"
)

type ReactivateSuite struct {
	suite.Suite
	ctx context.Context

	ctrl      *gomock.Controller
	directory *mocks.MockDirectory
	publisher *mocks.MockAuditPublisher
	service   *Service
}

func TestReactivateSuite(t *testing.T) {
	suite.Run(t, new(ReactivateSuite))
}

func (s *ReactivateSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.directory = mocks.NewMockDirectory(s.ctrl)
	s.publisher = mocks.NewMockAuditPublisher(s.ctrl)

	var err error
	s.service, err = New(s.directory,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(s.publisher),
	)
	s.Require().NoError(err)
}

func (s *ReactivateSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReactivateSuite) TestEmptyEmail_InvalidArgument() {
	// No directory EXPECTs: validation must fail before any lookup.
	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: ""})
	s.Nil(result)
	s.Equal(pkgerrors.CodeInvalidArgument, pkgerrors.CodeOf(err))
}

func (s *ReactivateSuite) TestUnknownEmail_NotFound() {
	s.directory.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, sentinel.ErrNotFound)

	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: "nobody@example.com"})
	s.Nil(result)
	s.Equal(pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func (s *ReactivateSuite) TestDisabledAccount_Reenabled() {
	s.directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&models.DirectoryAccount{
		UID:      "U1",
		Email:    "a@x.com",
		Username: "alice",
		Disabled: true,
	}, nil)
	s.directory.EXPECT().SetDisabled(gomock.Any(), "U1", false).Return(nil)
	s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionAccountReactivated, event.Action)
			s.Equal("alice", event.Subject)
			return nil
		})

	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: "a@x.com"})
	s.NoError(err)
	s.Require().NotNil(result)
	s.True(result.Success)
}

func (s *ReactivateSuite) TestEnabledAccount_IdempotentSuccess() {
	s.directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&models.DirectoryAccount{
		UID:      "U1",
		Email:    "a@x.com",
		Username: "alice",
		Disabled: false,
	}, nil)
	// No SetDisabled EXPECT: already-enabled must not mutate.
	s.publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal(audit.ActionReactivationNoop, event.Action)
			return nil
		})

	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: "a@x.com"})
	s.NoError(err)
	s.Require().NotNil(result)
	s.True(result.Success)
}

func (s *ReactivateSuite) TestTransientLookupFailure_Propagates() {
	s.directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("connection reset"))

	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: "a@x.com"})
	s.Nil(result)
	s.Equal(pkgerrors.CodeUnavailable, pkgerrors.CodeOf(err))
}

func (s *ReactivateSuite) TestTransientMutationFailure_Propagates() {
	s.directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&models.DirectoryAccount{
		UID: "U1", Email: "a@x.com", Username: "alice", Disabled: true,
	}, nil)
	s.directory.EXPECT().SetDisabled(gomock.Any(), "U1", false).Return(errors.New("timeout"))

	result, err := s.service.Reactivate(s.ctx, models.ReactivationRequest{Email: "a@x.com"})
	s.Nil(result)
	s.Equal(pkgerrors.CodeUnavailable, pkgerrors.CodeOf(err))
}
