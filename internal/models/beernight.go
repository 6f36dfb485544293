package models

import "time"

// BeerNight is a drinking session running in a guild. At most one is
// active per guild at a time.
type BeerNight struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	ChannelID string    `json:"channel_id"`
	StartedBy string    `json:"started_by"`
	StartedAt time.Time `json:"started_at"`

	// ActiveRules are the rules currently in force, in draw order
	ActiveRules []string `json:"active_rules"`

	// RemainingRules are the rules not yet drawn this session
	RemainingRules []string `json:"remaining_rules"`

	Active bool `json:"active"`
}
