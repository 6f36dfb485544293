package observer

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type ObserverTestSuite struct {
	suite.Suite
	observer *Observer
}

func (s *ObserverTestSuite) SetupTest() {
	obs, err := New(&Config{MonitoredRoleIDs: []string{"role-members", "role-vip"}})
	s.Require().NoError(err)
	s.observer = obs
}

func TestObserverTestSuite(t *testing.T) {
	suite.Run(t, new(ObserverTestSuite))
}

func member(id, username, nick string, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: id, Username: username},
		Nick:  nick,
		Roles: roles,
	}
}

func presence(userID string, activities ...*discordgo.Activity) *discordgo.Presence {
	return &discordgo.Presence{
		User:       &discordgo.User{ID: userID},
		Activities: activities,
	}
}

func game(name string) *discordgo.Activity {
	return &discordgo.Activity{Name: name, Type: discordgo.ActivityTypeGame}
}

func (s *ObserverTestSuite) TestNewRequiresRoles() {
	_, err := New(&Config{})
	s.Error(err)

	_, err = New(nil)
	s.Error(err)
}

func (s *ObserverTestSuite) TestObserveSkipsUnmonitoredMembers() {
	members := []*discordgo.Member{
		member("a", "alice", "", "role-members"),
		member("b", "bob", "", "role-other"),
	}
	presences := []*discordgo.Presence{
		presence("a", game("Chess")),
		presence("b", game("Chess")),
	}

	observations := s.observer.Observe(members, presences)

	s.Require().Len(observations, 1)
	s.Equal("a", observations[0].MemberID)
	s.Equal("Chess", observations[0].Game)
}

func (s *ObserverTestSuite) TestObserveEmitsIdleMembers() {
	members := []*discordgo.Member{
		member("a", "alice", "", "role-members"),
	}

	observations := s.observer.Observe(members, nil)

	s.Require().Len(observations, 1)
	s.Empty(observations[0].Game)
}

func (s *ObserverTestSuite) TestObservePicksFirstPlayingActivity() {
	members := []*discordgo.Member{
		member("a", "alice", "", "role-vip"),
	}
	presences := []*discordgo.Presence{
		presence("a",
			&discordgo.Activity{Name: "lofi beats", Type: discordgo.ActivityTypeListening},
			game("Chess"),
			game("Tetris"),
		),
	}

	observations := s.observer.Observe(members, presences)

	s.Require().Len(observations, 1)
	s.Equal("Chess", observations[0].Game)
}

func (s *ObserverTestSuite) TestObservePrefersNickname() {
	members := []*discordgo.Member{
		member("a", "alice", "Ali", "role-members"),
		member("b", "bob", "", "role-members"),
	}

	observations := s.observer.Observe(members, nil)

	s.Require().Len(observations, 2)
	s.Equal("Ali", observations[0].DisplayName)
	s.Equal("bob", observations[1].DisplayName)
}

func (s *ObserverTestSuite) TestObserveDeduplicatesMembers() {
	members := []*discordgo.Member{
		member("a", "alice", "", "role-members"),
		member("a", "alice", "", "role-members"),
	}

	observations := s.observer.Observe(members, nil)

	s.Len(observations, 1)
}

func (s *ObserverTestSuite) TestObserveSkipsNilUsers() {
	members := []*discordgo.Member{
		{Roles: []string{"role-members"}},
		member("a", "alice", "", "role-members"),
	}

	observations := s.observer.Observe(members, nil)

	s.Require().Len(observations, 1)
	s.Equal("a", observations[0].MemberID)
}
