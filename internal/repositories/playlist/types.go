package playlist

import (
	"github.com/robuso/conclave/internal/models"
)

// SaveInput contains the queue to store
type SaveInput struct {
	Tracks []*models.Track
}

// LoadOutput contains the stored queue in order
type LoadOutput struct {
	Tracks []*models.Track
}
