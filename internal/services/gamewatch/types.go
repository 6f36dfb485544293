package gamewatch

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/eventbridge"
	"github.com/robuso/conclave/internal/models"
	gamewatchRepo "github.com/robuso/conclave/internal/repositories/gamewatch"
)

const (
	// DefaultActivationThreshold is the minimum concurrent players
	// for a session to be considered active
	DefaultActivationThreshold = 2

	// DefaultGracePeriod is how long a below-threshold session is
	// kept before teardown
	DefaultGracePeriod = 900 * time.Second

	// DefaultPollInterval is the monitor tick period
	DefaultPollInterval = 20 * time.Second
)

// Snapshotter produces the guild's current member observations. The
// discord handler implements this over the session state cache.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]models.Observation, error)
}

// Config holds configuration for the game watch service
type Config struct {
	// Bridge manages the platform-side event/message per session
	Bridge eventbridge.Bridge

	// Repo checkpoints in-flight sessions across restarts
	Repo gamewatchRepo.Repository

	// Snapshotter feeds the poll cycle with observations
	Snapshotter Snapshotter

	// Clock provides the current time
	Clock clock.Clock

	// GuildID keys the persisted checkpoint
	GuildID string

	// ActivationThreshold is the minimum concurrent players for an
	// active session
	ActivationThreshold int

	// GracePeriod is how long a below-threshold session survives
	// before its event is torn down
	GracePeriod time.Duration

	// PollInterval is both the tick period and the minimum spacing
	// between two cycles
	PollInterval time.Duration

	Logger zerolog.Logger
}

// GameGroup is a read-only view of one tracked game, used by the
// status command.
type GameGroup struct {
	// Game is the activity name
	Game string

	// PlayerNames are the current players, in join order
	PlayerNames []string

	// EventID is set while a scheduled event is live for this game
	EventID string

	// StartTime is when the session activated, zero while forming
	StartTime time.Time
}
