package playlist

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robuso/conclave/internal/models"
	playlistRepo "github.com/robuso/conclave/internal/repositories/playlist"
)

// fakeResolver returns a track named after the query
type fakeResolver struct{}

func (fakeResolver) Resolve(_ context.Context, query string) (*models.Track, error) {
	return &models.Track{
		URL:      "https://example.com/" + query,
		Title:    query,
		Duration: 180,
	}, nil
}

type PlaylistServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    playlistRepo.Repository
	service *service
}

func (s *PlaylistServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := playlistRepo.NewFile(&playlistRepo.Config{
		Path: filepath.Join(s.T().TempDir(), "queue.json"),
	})
	s.Require().NoError(err)
	s.repo = repo

	svc, err := New(&Config{
		Repo:     repo,
		Resolver: fakeResolver{},
		MaxQueue: 3,
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestPlaylistServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlaylistServiceTestSuite))
}

func (s *PlaylistServiceTestSuite) TestAddAssignsPositions() {
	first, err := s.service.Add(s.ctx, &AddInput{Query: "song-a", RequestedBy: "user-1"})
	s.Require().NoError(err)
	s.Equal(1, first.Position)
	s.Equal("song-a", first.Track.Title)
	s.Equal("user-1", first.Track.RequestedBy)

	second, err := s.service.Add(s.ctx, &AddInput{Query: "song-b"})
	s.Require().NoError(err)
	s.Equal(2, second.Position)
}

func (s *PlaylistServiceTestSuite) TestAddRespectsCapacity() {
	for i := 0; i < 3; i++ {
		_, err := s.service.Add(s.ctx, &AddInput{Query: fmt.Sprintf("song-%d", i)})
		s.Require().NoError(err)
	}

	_, err := s.service.Add(s.ctx, &AddInput{Query: "one too many"})
	s.ErrorIs(err, ErrQueueFull)
}

func (s *PlaylistServiceTestSuite) TestSkipAdvancesQueue() {
	_, err := s.service.Add(s.ctx, &AddInput{Query: "song-a"})
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, &AddInput{Query: "song-b"})
	s.Require().NoError(err)

	output, err := s.service.Skip(s.ctx)
	s.Require().NoError(err)
	s.Equal("song-a", output.Skipped.Title)
	s.Require().NotNil(output.Next)
	s.Equal("song-b", output.Next.Title)

	output, err = s.service.Skip(s.ctx)
	s.Require().NoError(err)
	s.Nil(output.Next)

	_, err = s.service.Skip(s.ctx)
	s.ErrorIs(err, ErrQueueEmpty)
}

func (s *PlaylistServiceTestSuite) TestClearEmptiesQueue() {
	_, err := s.service.Add(s.ctx, &AddInput{Query: "song-a"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Clear(s.ctx))

	output, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(output.Tracks)
}

func (s *PlaylistServiceTestSuite) TestRestoreSurvivesRestart() {
	_, err := s.service.Add(s.ctx, &AddInput{Query: "song-a"})
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, &AddInput{Query: "song-b"})
	s.Require().NoError(err)

	// A fresh service over the same repository sees the same queue.
	restarted, err := New(&Config{Repo: s.repo, Resolver: fakeResolver{}, MaxQueue: 3})
	s.Require().NoError(err)
	s.Require().NoError(restarted.Restore(s.ctx))

	output, err := restarted.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Tracks, 2)
	s.Equal("song-a", output.Tracks[0].Title)
}
