package worksched

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/models"
	schedulesRepo "github.com/robuso/conclave/internal/repositories/schedules"
)

// Notifier posts shift notifications. The discord handler implements
// this with channel embeds.
type Notifier interface {
	ShiftStarted(ctx context.Context, userID, weekday string, shift *models.WorkShift) error
	ShiftEnded(ctx context.Context, userID, weekday string, shift *models.WorkShift) error
}

// Config holds configuration for the work schedule service
type Config struct {
	// Repo persists per-user schedules
	Repo schedulesRepo.Repository

	// Notifier posts start/end-of-shift notifications
	Notifier Notifier

	// Clock provides the current time
	Clock clock.Clock

	// DefaultChannelID receives notifications when a shift names no
	// channel
	DefaultChannelID string

	Logger zerolog.Logger
}

// SetShiftInput contains parameters for registering a shift
type SetShiftInput struct {
	UserID    string
	Weekday   string
	Entry     string
	Exit      string
	ChannelID string
	Name      string
}

// SetShiftOutput contains the stored shift
type SetShiftOutput struct {
	// Weekday is the normalized weekday name
	Weekday string

	Shift *models.WorkShift
}

// GetScheduleInput contains parameters for retrieving a schedule
type GetScheduleInput struct {
	UserID string
}

// GetScheduleOutput contains the result of retrieving a schedule
type GetScheduleOutput struct {
	// Schedule is nil when the user has nothing registered
	Schedule models.WorkSchedule
}
