package beernight

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/robuso/conclave/internal/repositories/beernight Repository

// Repository persists beer night sessions
type Repository interface {
	// Save stores a session and updates the guild's current-session
	// pointer to match its Active flag
	Save(ctx context.Context, input *SaveInput) error

	// GetCurrent retrieves the guild's active session, nil when none
	GetCurrent(ctx context.Context, input *GetCurrentInput) (*GetCurrentOutput, error)
}
