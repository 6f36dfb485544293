package gamewatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/robuso/conclave/internal/models"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path    string
	repo    Repository
	testNow time.Time
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "active_events.json")

	repo, err := NewFile(&Config{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 7, 12, 21, 30, 0, 0, time.UTC)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) newSession(game, eventID string, players ...string) *models.GameSession {
	session := models.NewGameSession(game)
	session.EventID = eventID
	session.StartTime = s.testNow
	session.LastUpdate = s.testNow.Add(time.Minute)
	for _, player := range players {
		session.ActivePlayers[player] = struct{}{}
		session.PlayerNames = append(session.PlayerNames, "name-"+player)
	}
	return session
}

func (s *FileRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	session := s.newSession("Chess", "event-1", "a", "b")

	err := s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-1",
		Sessions: []*models.GameSession{session},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)

	restored := out.Sessions[0]
	s.Equal("Chess", restored.Game)
	s.Equal("event-1", restored.EventID)
	s.Equal(s.testNow, restored.StartTime)
	s.Equal(s.testNow.Add(time.Minute), restored.LastUpdate)
	s.ElementsMatch([]string{"name-a", "name-b"}, restored.PlayerNames)

	// Player membership is rediscovered live, never restored.
	s.Empty(restored.ActivePlayers)
}

func (s *FileRepositoryTestSuite) TestSaveSkipsSessionsWithoutEventOrPlayers() {
	noEvent := s.newSession("Chess", "", "a", "b")
	noPlayers := s.newSession("Tetris", "event-2")
	complete := s.newSession("Factorio", "event-3", "c", "d")

	err := s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-1",
		Sessions: []*models.GameSession{noEvent, noPlayers, complete},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("Factorio", out.Sessions[0].Game)
}

func (s *FileRepositoryTestSuite) TestSaveRemovesEndedSessions() {
	session := s.newSession("Chess", "event-1", "a", "b")

	err := s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-1",
		Sessions: []*models.GameSession{session},
	})
	s.Require().NoError(err)

	// Ended: event closed, entry gone from the table.
	err = s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-1",
		Sessions: []*models.GameSession{},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *FileRepositoryTestSuite) TestSavePreservesOtherGuilds() {
	err := s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-1",
		Sessions: []*models.GameSession{s.newSession("Chess", "event-1", "a", "b")},
	})
	s.Require().NoError(err)

	err = s.repo.Save(context.Background(), &SaveInput{
		GuildID:  "guild-2",
		Sessions: []*models.GameSession{s.newSession("Tetris", "event-2", "c", "d")},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("Chess", out.Sessions[0].Game)
}

func (s *FileRepositoryTestSuite) TestLoadMissingFile() {
	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *FileRepositoryTestSuite) TestLoadMalformedFile() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	out, err := s.repo.Load(context.Background(), &LoadInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}
