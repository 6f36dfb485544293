package playlist

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
	s.path = filepath.Join(s.T().TempDir(), "queue.json")

	repo, err := NewFile(&Config{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestSaveAndLoadPreservesOrder() {
	ctx := context.Background()

	err := s.repo.Save(ctx, &SaveInput{
		Tracks: []*models.Track{
			{URL: "https://example.com/a", Title: "First", Duration: 180, RequestedBy: "user-1"},
			{URL: "https://example.com/b", Title: "Second", Duration: 240},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Tracks, 2)
	s.Equal("First", output.Tracks[0].Title)
	s.Equal("Second", output.Tracks[1].Title)
	s.Equal("user-1", output.Tracks[0].RequestedBy)
}

func (s *FileRepositoryTestSuite) TestLoadWithoutFile() {
	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Tracks)
}

func (s *FileRepositoryTestSuite) TestMalformedFileTreatedAsEmpty() {
	s.Require().NoError(os.WriteFile(s.path, []byte("["), 0o644))

	output, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Tracks)
}

func (s *FileRepositoryTestSuite) TestSaveEmptyQueueClearsFile() {
	ctx := context.Background()

	err := s.repo.Save(ctx, &SaveInput{
		Tracks: []*models.Track{{URL: "https://example.com/a", Title: "First"}},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Save(ctx, &SaveInput{}))

	output, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Empty(output.Tracks)
}
