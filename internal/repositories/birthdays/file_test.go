package birthdays

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robuso/conclave/internal/models"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "birthdays.json")

	repo, err := NewFile(&Config{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestSetAndGet() {
	err := s.repo.Set(context.Background(), &SetInput{
		Birthday: &models.Birthday{
			UserID: "user-1",
			Name:   "Alice",
			Day:    14,
			Month:  3,
			Year:   1992,
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.Get(context.Background(), &GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().NotNil(output.Birthday)
	s.Equal("Alice", output.Birthday.Name)
	s.Equal(14, output.Birthday.Day)
	s.Equal(3, output.Birthday.Month)
	s.Equal(1992, output.Birthday.Year)
}

func (s *FileRepositoryTestSuite) TestGetUnregisteredUser() {
	output, err := s.repo.Get(context.Background(), &GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Nil(output.Birthday)
}

func (s *FileRepositoryTestSuite) TestSetReplacesEntry() {
	ctx := context.Background()

	err := s.repo.Set(ctx, &SetInput{
		Birthday: &models.Birthday{UserID: "user-1", Name: "Alice", Day: 1, Month: 1},
	})
	s.Require().NoError(err)

	err = s.repo.Set(ctx, &SetInput{
		Birthday: &models.Birthday{UserID: "user-1", Name: "Alice", Day: 14, Month: 3},
	})
	s.Require().NoError(err)

	output, err := s.repo.Get(ctx, &GetInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(14, output.Birthday.Day)
	s.Equal(3, output.Birthday.Month)
}

func (s *FileRepositoryTestSuite) TestListSortedByUserID() {
	ctx := context.Background()

	for _, b := range []*models.Birthday{
		{UserID: "user-2", Name: "Bob", Day: 2, Month: 2},
		{UserID: "user-1", Name: "Alice", Day: 1, Month: 1},
	} {
		s.Require().NoError(s.repo.Set(ctx, &SetInput{Birthday: b}))
	}

	output, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Birthdays, 2)
	s.Equal("user-1", output.Birthdays[0].UserID)
	s.Equal("user-2", output.Birthdays[1].UserID)
}

func (s *FileRepositoryTestSuite) TestMalformedFileTreatedAsEmpty() {
	s.Require().NoError(os.WriteFile(s.path, []byte("not json"), 0o644))

	output, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Birthdays)
}

func (s *FileRepositoryTestSuite) TestUserIDStaysOutOfDocument() {
	err := s.repo.Set(context.Background(), &SetInput{
		Birthday: &models.Birthday{UserID: "user-1", Name: "Alice", Day: 1, Month: 1},
	})
	s.Require().NoError(err)

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), `"user-1"`)
	s.NotContains(string(data), `"user_id"`)
}
