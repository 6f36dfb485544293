package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/robuso/conclave/internal/models"
	"github.com/robuso/conclave/internal/observer"
)

// StateSnapshotter produces member observations from the session's
// state cache. The guild members and presences intents must be
// enabled for the cache to be populated.
type StateSnapshotter struct {
	session  *discordgo.Session
	observer *observer.Observer
	guildID  string
}

// NewStateSnapshotter creates a snapshotter over the session state
func NewStateSnapshotter(session *discordgo.Session, obs *observer.Observer, guildID string) (*StateSnapshotter, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if obs == nil {
		return nil, errors.New("observer cannot be nil")
	}

	if guildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	return &StateSnapshotter{
		session:  session,
		observer: obs,
		guildID:  guildID,
	}, nil
}

// Snapshot reads the cached guild and runs the observer over it
func (s *StateSnapshotter) Snapshot(ctx context.Context) ([]models.Observation, error) {
	guild, err := s.session.State.Guild(s.guildID)
	if err != nil {
		return nil, fmt.Errorf("guild not in state cache: %w", err)
	}

	return s.observer.Observe(guild.Members, guild.Presences), nil
}
