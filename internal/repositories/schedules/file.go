package schedules

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

// Config holds configuration for the file-backed schedule repository
type Config struct {
	// Path is the JSON document location
	Path string
}

// fileRepository implements the Repository interface on a flat JSON
// file keyed by user ID then weekday
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed schedule repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{path: cfg.Path}, nil
}

// SetShift registers or replaces one weekday's shift for a user
func (r *fileRepository) SetShift(ctx context.Context, input *SetShiftInput) error {
	if input == nil || input.Shift == nil {
		return errors.New("input and shift cannot be nil")
	}

	if input.UserID == "" {
		return errors.New("user ID is required")
	}

	if input.Weekday == "" {
		return errors.New("weekday is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	schedule, ok := doc[input.UserID]
	if !ok {
		schedule = make(models.WorkSchedule)
		doc[input.UserID] = schedule
	}
	schedule[input.Weekday] = input.Shift

	return r.writeDocument(doc)
}

// Get retrieves one user's full schedule
func (r *fileRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	return &GetOutput{Schedule: doc[input.UserID]}, nil
}

// List retrieves every user's schedule
func (r *fileRepository) List(ctx context.Context) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &ListOutput{Schedules: r.readDocument()}, nil
}

func (r *fileRepository) readDocument() map[string]models.WorkSchedule {
	doc := make(map[string]models.WorkSchedule)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return make(map[string]models.WorkSchedule)
	}

	return doc
}

func (r *fileRepository) writeDocument(doc map[string]models.WorkSchedule) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule document: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schedule document: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace schedule document: %w", err)
	}

	return nil
}
