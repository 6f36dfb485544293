package pushups

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

// Config holds configuration for the file-backed push-up repository
type Config struct {
	// Path is the JSON document location
	Path string
}

// fileRepository implements the Repository interface on a single JSON
// document
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed push-up repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{path: cfg.Path}, nil
}

// Get retrieves the reminder log. Missing or malformed files yield a
// zero log, which the service treats as "nothing sent today".
func (r *fileRepository) Get(ctx context.Context) (*GetOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := &models.PushupLog{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return &GetOutput{Log: log}, nil
	}

	if err := json.Unmarshal(data, log); err != nil {
		return &GetOutput{Log: &models.PushupLog{}}, nil
	}

	return &GetOutput{Log: log}, nil
}

// Set stores the reminder log
func (r *fileRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Log == nil {
		return errors.New("input and log cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(input.Log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal push-up log: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write push-up log: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace push-up log: %w", err)
	}

	return nil
}
