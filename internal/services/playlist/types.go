package playlist

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/models"
	playlistRepo "github.com/robuso/conclave/internal/repositories/playlist"
)

// DefaultMaxQueue is the queue size cap
const DefaultMaxQueue = 50

// Resolver turns a user query into track metadata. Playback sources
// implement this; the queue never touches audio itself.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*models.Track, error)
}

// Config holds configuration for the playlist service
type Config struct {
	// Repo persists the queue across restarts
	Repo playlistRepo.Repository

	// Resolver turns queries into tracks
	Resolver Resolver

	// MaxQueue caps the number of queued tracks
	MaxQueue int

	Logger zerolog.Logger
}

// AddInput contains parameters for queueing a track
type AddInput struct {
	// Query is a URL or search text for the resolver
	Query string

	// RequestedBy is the user queueing the track
	RequestedBy string
}

// AddOutput contains the result of queueing a track
type AddOutput struct {
	// Track is the resolved track
	Track *models.Track

	// Position is the track's 1-based place in the queue
	Position int
}

// SkipOutput contains the result of skipping the head of the queue
type SkipOutput struct {
	// Skipped is the track that was removed
	Skipped *models.Track

	// Next is the new head of the queue, nil when empty
	Next *models.Track
}

// ListOutput contains the queue in play order
type ListOutput struct {
	Tracks []*models.Track
}
