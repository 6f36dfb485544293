package pushups

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
	s.path = filepath.Join(s.T().TempDir(), "pushups.json")

	repo, err := NewFile(&Config{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestGetWithoutFile() {
	output, err := s.repo.Get(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(output.Log)
	s.Empty(output.Log.LastReminder)
	s.False(output.Log.Confirmed)
}

func (s *FileRepositoryTestSuite) TestSetAndGet() {
	ctx := context.Background()

	err := s.repo.Set(ctx, &SetInput{
		Log: &models.PushupLog{LastReminder: "2025-07-18", Confirmed: true},
	})
	s.Require().NoError(err)

	output, err := s.repo.Get(ctx)
	s.Require().NoError(err)
	s.Equal("2025-07-18", output.Log.LastReminder)
	s.True(output.Log.Confirmed)
}

func (s *FileRepositoryTestSuite) TestMalformedFileYieldsZeroLog() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{"), 0o644))

	output, err := s.repo.Get(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Log.LastReminder)
	s.False(output.Log.Confirmed)
}
