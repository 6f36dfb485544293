package birthdays

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/robuso/conclave/internal/common/clock/mocks"
	"github.com/robuso/conclave/internal/models"
	birthdaysRepo "github.com/robuso/conclave/internal/repositories/birthdays"
)

type fakeMessenger struct {
	greeted map[string]string
	fail    map[string]error
}

func (f *fakeMessenger) DirectMessage(_ context.Context, userID, content string) error {
	if err := f.fail[userID]; err != nil {
		return err
	}
	if f.greeted == nil {
		f.greeted = make(map[string]string)
	}
	f.greeted[userID] = content
	return nil
}

// fakeRepo keeps birthdays in memory; the file repository has its own
// suite.
type fakeRepo struct {
	entries map[string]*models.Birthday
}

func (f *fakeRepo) Set(_ context.Context, input *birthdaysRepo.SetInput) error {
	if f.entries == nil {
		f.entries = make(map[string]*models.Birthday)
	}
	f.entries[input.Birthday.UserID] = input.Birthday
	return nil
}

func (f *fakeRepo) Get(_ context.Context, input *birthdaysRepo.GetInput) (*birthdaysRepo.GetOutput, error) {
	return &birthdaysRepo.GetOutput{Birthday: f.entries[input.UserID]}, nil
}

func (f *fakeRepo) List(_ context.Context) (*birthdaysRepo.ListOutput, error) {
	out := &birthdaysRepo.ListOutput{}
	for _, entry := range f.entries {
		out.Birthdays = append(out.Birthdays, entry)
	}
	return out, nil
}

type BirthdayServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	repo      *fakeRepo
	messenger *fakeMessenger
	ctx       context.Context
	testTime  time.Time
	service   *service
}

func (s *BirthdayServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.repo = &fakeRepo{}
	s.messenger = &fakeMessenger{}
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Repo:      s.repo,
		Messenger: s.messenger,
		Clock:     s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *BirthdayServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBirthdayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BirthdayServiceTestSuite))
}

func (s *BirthdayServiceTestSuite) TestRegisterAndGet() {
	_, err := s.service.Register(s.ctx, &RegisterInput{
		UserID: "user-1",
		Name:   "Alice",
		Day:    14,
		Month:  3,
		Year:   1992,
	})
	s.Require().NoError(err)

	output, err := s.service.Get(s.ctx, &GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().NotNil(output.Birthday)
	s.Equal(14, output.Birthday.Day)
}

func (s *BirthdayServiceTestSuite) TestRegisterRejectsImpossibleDates() {
	for _, input := range []*RegisterInput{
		{UserID: "user-1", Day: 31, Month: 2},
		{UserID: "user-1", Day: 0, Month: 5},
		{UserID: "user-1", Day: 10, Month: 13},
		{UserID: "user-1", Day: 29, Month: 2, Year: 2023},
	} {
		_, err := s.service.Register(s.ctx, input)
		s.ErrorIs(err, ErrInvalidDate)
	}
}

func (s *BirthdayServiceTestSuite) TestRegisterAllowsLeapDayWithoutYear() {
	_, err := s.service.Register(s.ctx, &RegisterInput{
		UserID: "user-1",
		Name:   "Alice",
		Day:    29,
		Month:  2,
	})
	s.NoError(err)
}

func (s *BirthdayServiceTestSuite) TestCheckTodayGreetsCelebrants() {
	s.repo.entries = map[string]*models.Birthday{
		"user-1": {UserID: "user-1", Name: "Alice", Day: 14, Month: 3},
		"user-2": {UserID: "user-2", Name: "Bob", Day: 15, Month: 3},
	}

	s.Require().NoError(s.service.CheckToday(s.ctx))

	s.Len(s.messenger.greeted, 1)
	s.Contains(s.messenger.greeted["user-1"], "Alice")
}

func (s *BirthdayServiceTestSuite) TestCheckTodaySurvivesDeliveryFailure() {
	s.repo.entries = map[string]*models.Birthday{
		"user-1": {UserID: "user-1", Name: "Alice", Day: 14, Month: 3},
		"user-2": {UserID: "user-2", Name: "Bob", Day: 14, Month: 3},
	}
	s.messenger.fail = map[string]error{"user-1": errors.New("dms closed")}

	s.Require().NoError(s.service.CheckToday(s.ctx))

	s.Len(s.messenger.greeted, 1)
	s.Contains(s.messenger.greeted, "user-2")
}
