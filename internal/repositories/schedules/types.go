package schedules

import (
	"github.com/robuso/conclave/internal/models"
)

// SetShiftInput contains parameters for registering a shift
type SetShiftInput struct {
	// UserID is the platform user ID
	UserID string

	// Weekday is the lowercase weekday name the shift applies to
	Weekday string

	// Shift is the entry/exit window to store
	Shift *models.WorkShift
}

// GetInput contains parameters for retrieving a schedule
type GetInput struct {
	// UserID is the platform user ID
	UserID string
}

// GetOutput contains the result of retrieving a schedule
type GetOutput struct {
	// Schedule maps weekday names to shifts, nil if none registered
	Schedule models.WorkSchedule
}

// ListOutput contains every registered schedule keyed by user ID
type ListOutput struct {
	Schedules map[string]models.WorkSchedule
}
