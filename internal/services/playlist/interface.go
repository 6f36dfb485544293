package playlist

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/robuso/conclave/internal/services/playlist Service

// Service manages the song queue. Resolution is delegated to the
// configured Resolver and every mutation is persisted.
type Service interface {
	// Restore loads the persisted queue; call once at startup
	Restore(ctx context.Context) error

	// Add resolves a query and appends the track
	Add(ctx context.Context, input *AddInput) (*AddOutput, error)

	// Skip removes the head of the queue
	Skip(ctx context.Context) (*SkipOutput, error)

	// List returns the queue in play order
	List(ctx context.Context) (*ListOutput, error)

	// Clear empties the queue
	Clear(ctx context.Context) error
}
