package pushups

import (
	"github.com/robuso/conclave/internal/models"
)

// GetOutput contains the stored reminder log
type GetOutput struct {
	Log *models.PushupLog
}

// SetInput contains the log to store
type SetInput struct {
	Log *models.PushupLog
}
