package worksched

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/robuso/conclave/internal/services/worksched Service

// Service tracks per-user weekly work schedules and announces shift
// starts and ends on the minute they happen.
type Service interface {
	// SetShift registers or replaces one weekday's working hours
	SetShift(ctx context.Context, input *SetShiftInput) (*SetShiftOutput, error)

	// GetSchedule retrieves a user's full weekly schedule
	GetSchedule(ctx context.Context, input *GetScheduleInput) (*GetScheduleOutput, error)

	// Tick announces shifts whose entry or exit matches the current
	// minute; Run calls it every minute
	Tick(ctx context.Context) error

	// Run ticks every minute until the context is cancelled
	Run(ctx context.Context)
}
