package beernight

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/robuso/conclave/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 7, 18, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) session(id string) *models.BeerNight {
	return &models.BeerNight{
		ID:             id,
		GuildID:        "guild-1",
		ChannelID:      "channel-1",
		StartedBy:      "user-1",
		StartedAt:      s.testNow,
		ActiveRules:    []string{"rule one"},
		RemainingRules: []string{"rule two", "rule three"},
		Active:         true,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCurrent() {
	err := s.repo.Save(context.Background(), &SaveInput{
		BeerNight: s.session("night-1"),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetCurrent(context.Background(), &GetCurrentInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.BeerNight)

	s.Equal("night-1", output.BeerNight.ID)
	s.Equal("channel-1", output.BeerNight.ChannelID)
	s.Equal("user-1", output.BeerNight.StartedBy)
	s.Equal(s.testNow.Unix(), output.BeerNight.StartedAt.Unix())
	s.Equal([]string{"rule one"}, output.BeerNight.ActiveRules)
	s.Equal([]string{"rule two", "rule three"}, output.BeerNight.RemainingRules)
	s.True(output.BeerNight.Active)
}

func (s *RedisRepositoryTestSuite) TestGetCurrentWithoutSession() {
	output, err := s.repo.GetCurrent(context.Background(), &GetCurrentInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Nil(output.BeerNight)
}

func (s *RedisRepositoryTestSuite) TestEndingSessionClearsCurrent() {
	session := s.session("night-1")
	err := s.repo.Save(context.Background(), &SaveInput{BeerNight: session})
	s.Require().NoError(err)

	session.Active = false
	err = s.repo.Save(context.Background(), &SaveInput{BeerNight: session})
	s.Require().NoError(err)

	output, err := s.repo.GetCurrent(context.Background(), &GetCurrentInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Nil(output.BeerNight)
}

func (s *RedisRepositoryTestSuite) TestSaveUpdatesRuleState() {
	session := s.session("night-1")
	err := s.repo.Save(context.Background(), &SaveInput{BeerNight: session})
	s.Require().NoError(err)

	session.ActiveRules = append(session.ActiveRules, "rule two")
	session.RemainingRules = []string{"rule three"}
	err = s.repo.Save(context.Background(), &SaveInput{BeerNight: session})
	s.Require().NoError(err)

	output, err := s.repo.GetCurrent(context.Background(), &GetCurrentInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.BeerNight)
	s.Equal([]string{"rule one", "rule two"}, output.BeerNight.ActiveRules)
	s.Equal([]string{"rule three"}, output.BeerNight.RemainingRules)
}

func (s *RedisRepositoryTestSuite) TestGetCurrentClearsDanglingPointer() {
	err := s.repo.Save(context.Background(), &SaveInput{
		BeerNight: s.session("night-1"),
	})
	s.Require().NoError(err)

	// Session record removed out of band
	s.mr.Del(sessionKeyPrefix + "night-1")

	output, err := s.repo.GetCurrent(context.Background(), &GetCurrentInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Nil(output.BeerNight)

	s.False(s.mr.Exists(guildSessionPrefix + "guild-1"))
}

func (s *RedisRepositoryTestSuite) TestSaveValidatesInput() {
	err := s.repo.Save(context.Background(), nil)
	s.Error(err)

	err = s.repo.Save(context.Background(), &SaveInput{
		BeerNight: &models.BeerNight{GuildID: "guild-1"},
	})
	s.Error(err)

	err = s.repo.Save(context.Background(), &SaveInput{
		BeerNight: &models.BeerNight{ID: "night-1"},
	})
	s.Error(err)
}
