package pushups

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/robuso/conclave/internal/common/clock/mocks"
	pushupsRepo "github.com/robuso/conclave/internal/repositories/pushups"
)

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) Send(_ context.Context, _, content string) error {
	f.sent = append(f.sent, content)
	return nil
}

type PushupServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	notifier  *fakeNotifier
	ctx       context.Context

	// now is the mock clock's current time
	now time.Time

	service *service
}

func (s *PushupServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.notifier = &fakeNotifier{}
	s.ctx = context.Background()

	// Day 10 of a challenge that started 2025-06-08
	s.now = time.Date(2025, 6, 17, 16, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	repo, err := pushupsRepo.NewFile(&pushupsRepo.Config{
		Path: filepath.Join(s.T().TempDir(), "pushups.json"),
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Repo:      repo,
		Notifier:  s.notifier,
		Clock:     s.mockClock,
		UserID:    "user-1",
		ChannelID: "channel-1",
		StartDate: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *PushupServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPushupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PushupServiceTestSuite))
}

func (s *PushupServiceTestSuite) TestTickSendsReminderOnce() {
	s.Require().NoError(s.service.Tick(s.ctx))
	s.Require().Len(s.notifier.sent, 1)
	s.Contains(s.notifier.sent[0], "día 10")
	s.Contains(s.notifier.sent[0], "10 flexiones")

	// Same day, later minute: no repeat.
	s.now = s.now.Add(30 * time.Minute)
	s.Require().NoError(s.service.Tick(s.ctx))
	s.Len(s.notifier.sent, 1)
}

func (s *PushupServiceTestSuite) TestTickBeforeReminderHourIsQuiet() {
	s.now = time.Date(2025, 6, 17, 15, 59, 0, 0, time.UTC)

	s.Require().NoError(s.service.Tick(s.ctx))
	s.Empty(s.notifier.sent)
}

func (s *PushupServiceTestSuite) TestNagWhenUnconfirmed() {
	s.Require().NoError(s.service.Tick(s.ctx))

	s.now = time.Date(2025, 6, 17, 23, 59, 0, 0, time.UTC)
	s.Require().NoError(s.service.Tick(s.ctx))

	s.Require().Len(s.notifier.sent, 2)
	s.Contains(s.notifier.sent[1], "no has confirmado")
}

func (s *PushupServiceTestSuite) TestNoNagAfterConfirmation() {
	s.Require().NoError(s.service.Tick(s.ctx))

	output, err := s.service.Confirm(s.ctx, &ConfirmInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(10, output.Day)

	s.now = time.Date(2025, 6, 17, 23, 59, 0, 0, time.UTC)
	s.Require().NoError(s.service.Tick(s.ctx))
	s.Len(s.notifier.sent, 1)
}

func (s *PushupServiceTestSuite) TestConfirmRejectsOtherUsers() {
	_, err := s.service.Confirm(s.ctx, &ConfirmInput{UserID: "user-2"})
	s.ErrorIs(err, ErrNotTracked)
}

func (s *PushupServiceTestSuite) TestConfirmTwiceFails() {
	_, err := s.service.Confirm(s.ctx, &ConfirmInput{UserID: "user-1"})
	s.Require().NoError(err)

	_, err = s.service.Confirm(s.ctx, &ConfirmInput{UserID: "user-1"})
	s.ErrorIs(err, ErrAlreadyConfirmed)
}

func (s *PushupServiceTestSuite) TestStatusTracksState() {
	status, err := s.service.Status(s.ctx)
	s.Require().NoError(err)
	s.Equal(10, status.Day)
	s.False(status.Reminded)
	s.False(status.Confirmed)

	s.Require().NoError(s.service.Tick(s.ctx))
	_, err = s.service.Confirm(s.ctx, &ConfirmInput{UserID: "user-1"})
	s.Require().NoError(err)

	status, err = s.service.Status(s.ctx)
	s.Require().NoError(err)
	s.True(status.Reminded)
	s.True(status.Confirmed)
}
