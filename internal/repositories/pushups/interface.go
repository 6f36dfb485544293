package pushups

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/robuso/conclave/internal/repositories/pushups Repository

// Repository persists the daily push-up reminder state
type Repository interface {
	// Get retrieves the reminder log; a fresh log when none exists
	Get(ctx context.Context) (*GetOutput, error)

	// Set stores the reminder log
	Set(ctx context.Context, input *SetInput) error
}
