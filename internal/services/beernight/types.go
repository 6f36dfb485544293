package beernight

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/common/uuid"
	"github.com/robuso/conclave/internal/models"
	beernightRepo "github.com/robuso/conclave/internal/repositories/beernight"
)

const (
	// DefaultSessionDuration is how long a session runs before the
	// automatic end
	DefaultSessionDuration = 2 * time.Hour

	// DefaultNudgeInterval is the base spacing between drink nudges
	DefaultNudgeInterval = 10 * time.Minute
)

// Notifier posts session messages into the channel the session was
// started from. The discord handler implements this.
type Notifier interface {
	Send(ctx context.Context, channelID, content string) error
}

// Config holds configuration for the beer night service
type Config struct {
	// Repo persists the session so a restart keeps the rule state
	Repo beernightRepo.Repository

	// Notifier posts nudges and the auto-end announcement
	Notifier Notifier

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates session IDs
	UUID uuid.UUID

	// SessionDuration is how long a session runs before auto-end
	SessionDuration time.Duration

	// NudgeInterval is the base spacing between drink nudges
	NudgeInterval time.Duration

	// Rules overrides the built-in rule deck, mainly for tests
	Rules []string

	Logger zerolog.Logger
}

// StartInput contains parameters for starting a session
type StartInput struct {
	GuildID   string
	ChannelID string
	StartedBy string
}

// StartOutput contains the result of starting a session
type StartOutput struct {
	// BeerNight is the new session
	BeerNight *models.BeerNight

	// Rule is the first rule drawn
	Rule string
}

// MoreRulesInput contains parameters for drawing another rule
type MoreRulesInput struct {
	GuildID string
}

// MoreRulesOutput contains the result of drawing another rule
type MoreRulesOutput struct {
	// Rule is the newly drawn rule
	Rule string

	// ActiveRules are all rules in force, in draw order
	ActiveRules []string
}

// EndInput contains parameters for ending a session
type EndInput struct {
	GuildID string
}

// EndOutput contains the ended session
type EndOutput struct {
	BeerNight *models.BeerNight
}
