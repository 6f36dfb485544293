package birthdays

import (
	"github.com/robuso/conclave/internal/models"
)

// SetInput contains parameters for registering a birthday
type SetInput struct {
	// Birthday is the entry to store, keyed by its UserID
	Birthday *models.Birthday
}

// GetInput contains parameters for retrieving a birthday
type GetInput struct {
	// UserID is the platform user ID
	UserID string
}

// GetOutput contains the result of retrieving a birthday
type GetOutput struct {
	// Birthday is the stored entry, or nil if none exists
	Birthday *models.Birthday
}

// ListOutput contains every registered birthday
type ListOutput struct {
	Birthdays []*models.Birthday
}
