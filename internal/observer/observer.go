package observer

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/robuso/conclave/internal/models"
)

// Config holds configuration for the presence observer
type Config struct {
	// MonitoredRoleIDs are the roles whose holders are observed
	MonitoredRoleIDs []string
}

// Observer turns a guild member/presence snapshot into a list of
// observations for the monitored role set. It never mutates platform
// state.
type Observer struct {
	monitored map[string]struct{}
}

// New creates a new presence observer
func New(cfg *Config) (*Observer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if len(cfg.MonitoredRoleIDs) == 0 {
		return nil, errors.New("at least one monitored role is required")
	}

	monitored := make(map[string]struct{}, len(cfg.MonitoredRoleIDs))
	for _, id := range cfg.MonitoredRoleIDs {
		monitored[id] = struct{}{}
	}

	return &Observer{monitored: monitored}, nil
}

// Observe produces one observation per monitored member. A member's
// current game is the first activity of kind "playing" in their
// presence; members without any monitored role are skipped entirely.
func (o *Observer) Observe(members []*discordgo.Member, presences []*discordgo.Presence) []models.Observation {
	presenceByUser := make(map[string]*discordgo.Presence, len(presences))
	for _, p := range presences {
		if p.User != nil {
			presenceByUser[p.User.ID] = p
		}
	}

	observations := make([]models.Observation, 0, len(members))
	seen := make(map[string]struct{}, len(members))

	for _, member := range members {
		if member.User == nil || !o.hasMonitoredRole(member.Roles) {
			continue
		}

		if _, ok := seen[member.User.ID]; ok {
			continue
		}
		seen[member.User.ID] = struct{}{}

		observations = append(observations, models.Observation{
			MemberID:    member.User.ID,
			DisplayName: displayName(member),
			Game:        currentGame(presenceByUser[member.User.ID]),
			AvatarURL:   member.AvatarURL("128"),
		})
	}

	return observations
}

func (o *Observer) hasMonitoredRole(roles []string) bool {
	for _, role := range roles {
		if _, ok := o.monitored[role]; ok {
			return true
		}
	}
	return false
}

// currentGame returns the first "playing" activity name. Clients can
// report several activities; the first match wins.
func currentGame(p *discordgo.Presence) string {
	if p == nil {
		return ""
	}

	for _, activity := range p.Activities {
		if activity != nil && activity.Type == discordgo.ActivityTypeGame {
			return activity.Name
		}
	}

	return ""
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
