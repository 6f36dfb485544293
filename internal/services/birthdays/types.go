package birthdays

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/models"
	birthdaysRepo "github.com/robuso/conclave/internal/repositories/birthdays"
)

// Messenger delivers the birthday greeting. The discord handler
// implements this with a direct message.
type Messenger interface {
	DirectMessage(ctx context.Context, userID, content string) error
}

// Config holds configuration for the birthday service
type Config struct {
	// Repo persists registered birthdays
	Repo birthdaysRepo.Repository

	// Messenger delivers greetings on the day
	Messenger Messenger

	// Clock provides the current time
	Clock clock.Clock

	Logger zerolog.Logger
}

// RegisterInput contains parameters for registering a birthday
type RegisterInput struct {
	UserID string
	Name   string
	Day    int
	Month  int
	Year   int
}

// RegisterOutput contains the stored birthday
type RegisterOutput struct {
	Birthday *models.Birthday
}

// GetInput contains parameters for looking up a birthday
type GetInput struct {
	UserID string
}

// GetOutput contains the result of looking up a birthday
type GetOutput struct {
	// Birthday is nil when the user has none registered
	Birthday *models.Birthday
}
