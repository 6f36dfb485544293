package gamewatch

import "github.com/robuso/conclave/internal/models"

// SaveInput contains parameters for checkpointing session state
type SaveInput struct {
	// GuildID keys the persisted document
	GuildID string

	// Sessions is the full state table; sessions without a live
	// event or without players are filtered out on write
	Sessions []*models.GameSession
}

// LoadInput contains parameters for restoring session state
type LoadInput struct {
	GuildID string
}

// LoadOutput contains the restored sessions. ActivePlayers is always
// empty on restored sessions; membership is rediscovered by the next
// poll cycle.
type LoadOutput struct {
	Sessions []*models.GameSession
}
