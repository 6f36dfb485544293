package birthdays

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/robuso/conclave/internal/models"
)

// Config holds configuration for the file-backed birthday repository
type Config struct {
	// Path is the JSON document location
	Path string
}

// fileRepository implements the Repository interface on a flat JSON
// file keyed by user ID
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed birthday repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{path: cfg.Path}, nil
}

// Set registers or replaces a user's birthday
func (r *fileRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Birthday == nil {
		return errors.New("input and birthday cannot be nil")
	}

	if input.Birthday.UserID == "" {
		return errors.New("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()
	doc[input.Birthday.UserID] = input.Birthday

	return r.writeDocument(doc)
}

// Get retrieves one user's birthday
func (r *fileRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	entry, ok := doc[input.UserID]
	if !ok {
		return &GetOutput{Birthday: nil}, nil
	}

	entry.UserID = input.UserID
	return &GetOutput{Birthday: entry}, nil
}

// List retrieves every registered birthday, sorted by user ID for
// stable output
func (r *fileRepository) List(ctx context.Context) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	entries := make([]*models.Birthday, 0, len(doc))
	for userID, entry := range doc {
		entry.UserID = userID
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].UserID < entries[j].UserID
	})

	return &ListOutput{Birthdays: entries}, nil
}

func (r *fileRepository) readDocument() map[string]*models.Birthday {
	doc := make(map[string]*models.Birthday)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return doc
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return make(map[string]*models.Birthday)
	}

	return doc
}

func (r *fileRepository) writeDocument(doc map[string]*models.Birthday) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal birthday document: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write birthday document: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace birthday document: %w", err)
	}

	return nil
}
