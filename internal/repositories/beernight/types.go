package beernight

import (
	"github.com/robuso/conclave/internal/models"
)

// SaveInput contains parameters for storing a session
type SaveInput struct {
	// BeerNight is the session to store
	BeerNight *models.BeerNight
}

// GetCurrentInput contains parameters for retrieving the current session
type GetCurrentInput struct {
	// GuildID is the guild to get the session for
	GuildID string
}

// GetCurrentOutput contains the result of retrieving the current session
type GetCurrentOutput struct {
	// BeerNight is the active session, or nil if none exists
	BeerNight *models.BeerNight
}
