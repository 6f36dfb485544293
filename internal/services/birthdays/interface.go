package birthdays

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/robuso/conclave/internal/services/birthdays Service

// Service registers birthdays and greets celebrants on their day.
type Service interface {
	// Register stores or replaces a user's birthday
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Get looks up a user's registered birthday
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// CheckToday greets every member whose birthday is today
	CheckToday(ctx context.Context) error

	// Run checks daily until the context is cancelled
	Run(ctx context.Context)
}
