package playlist

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/robuso/conclave/internal/repositories/playlist Repository

// Repository persists the song queue across restarts
type Repository interface {
	// Save stores the queue in order
	Save(ctx context.Context, input *SaveInput) error

	// Load retrieves the stored queue
	Load(ctx context.Context) (*LoadOutput, error)
}
