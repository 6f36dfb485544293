package schedules

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/robuso/conclave/internal/repositories/schedules Repository

// Repository persists per-user work schedules
type Repository interface {
	// SetShift registers or replaces one weekday's shift for a user
	SetShift(ctx context.Context, input *SetShiftInput) error

	// Get retrieves one user's full schedule, nil when none exists
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List retrieves every user's schedule
	List(ctx context.Context) (*ListOutput, error)
}
