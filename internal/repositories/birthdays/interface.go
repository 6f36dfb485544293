package birthdays

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/robuso/conclave/internal/repositories/birthdays Repository

// Repository persists registered birthdays
type Repository interface {
	// Set registers or replaces a user's birthday
	Set(ctx context.Context, input *SetInput) error

	// Get retrieves one user's birthday, nil when not registered
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List retrieves every registered birthday
	List(ctx context.Context) (*ListOutput, error)
}
