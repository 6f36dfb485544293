package gamewatch

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/robuso/conclave/internal/repositories/gamewatch Repository

// Repository checkpoints in-flight game sessions so external events
// survive a process restart.
type Repository interface {
	// Save writes the sessions that have a live external event
	Save(ctx context.Context, input *SaveInput) error

	// Load restores previously checkpointed sessions
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
