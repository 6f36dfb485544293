package pushups

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	pushupsRepo "github.com/robuso/conclave/internal/repositories/pushups"
)

// Notifier posts reminder messages into the tracked channel. The
// discord handler implements this.
type Notifier interface {
	Send(ctx context.Context, channelID, content string) error
}

// Config holds configuration for the push-up service
type Config struct {
	// Repo persists the reminder log
	Repo pushupsRepo.Repository

	// Notifier posts the daily reminder and the late nag
	Notifier Notifier

	// Clock provides the current time
	Clock clock.Clock

	// UserID is the tracked member
	UserID string

	// ChannelID receives reminders
	ChannelID string

	// StartDate is day one of the challenge
	StartDate time.Time

	Logger zerolog.Logger
}

// ConfirmInput contains parameters for confirming today's set
type ConfirmInput struct {
	// UserID is the member confirming; only the tracked member may
	UserID string
}

// ConfirmOutput contains the result of confirming
type ConfirmOutput struct {
	// Day is the challenge day that was confirmed
	Day int
}

// StatusOutput describes today's challenge state
type StatusOutput struct {
	// Day is today's challenge day, which is also the rep count
	Day int

	// Reminded is true once today's reminder went out
	Reminded bool

	// Confirmed is true once today's set was confirmed
	Confirmed bool
}
