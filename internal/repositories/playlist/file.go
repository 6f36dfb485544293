package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/robuso/conclave/internal/models"
)

// Config holds configuration for the file-backed queue repository
type Config struct {
	// Path is the JSON document location
	Path string
}

// fileRepository implements the Repository interface on a JSON array
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed queue repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{path: cfg.Path}, nil
}

// Save stores the queue in order
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tracks := input.Tracks
	if tracks == nil {
		tracks = []*models.Track{}
	}

	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write queue: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace queue: %w", err)
	}

	return nil
}

// Load retrieves the stored queue. Missing or malformed files are
// treated as an empty queue.
func (r *fileRepository) Load(ctx context.Context) (*LoadOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tracks []*models.Track

	data, err := os.ReadFile(r.path)
	if err != nil {
		return &LoadOutput{Tracks: []*models.Track{}}, nil
	}

	if err := json.Unmarshal(data, &tracks); err != nil {
		return &LoadOutput{Tracks: []*models.Track{}}, nil
	}

	return &LoadOutput{Tracks: tracks}, nil
}
