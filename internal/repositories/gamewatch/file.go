package gamewatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robuso/conclave/internal/models"
)

// Config holds configuration for the file-backed session repository
type Config struct {
	// Path is the JSON document location
	Path string
}

// eventRecord is the persisted subset of a session
type eventRecord struct {
	EventID     string    `json:"event_id"`
	StartTime   time.Time `json:"start_time"`
	LastUpdate  time.Time `json:"last_update"`
	PlayerNames []string  `json:"player_names"`
}

// document is the on-disk shape, keyed by guild then game name
type document struct {
	ActiveEvents map[string]map[string]eventRecord `json:"active_events"`
}

// fileRepository implements the Repository interface on a flat JSON
// file
type fileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a new file-backed session repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileRepository{path: cfg.Path}, nil
}

// Save persists every session that has both players and a live event.
// Other guilds' entries in the document are left untouched.
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	records := make(map[string]eventRecord)
	for _, session := range input.Sessions {
		if session.EventID == "" || session.PlayerCount() == 0 {
			continue
		}
		records[session.Game] = eventRecord{
			EventID:     session.EventID,
			StartTime:   session.StartTime,
			LastUpdate:  session.LastUpdate,
			PlayerNames: append([]string{}, session.PlayerNames...),
		}
	}

	if len(records) == 0 {
		delete(doc.ActiveEvents, input.GuildID)
	} else {
		doc.ActiveEvents[input.GuildID] = records
	}

	return r.writeDocument(doc)
}

// Load restores the checkpointed sessions for a guild. A missing or
// malformed file is treated as an empty document.
func (r *fileRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.readDocument()

	records := doc.ActiveEvents[input.GuildID]
	sessions := make([]*models.GameSession, 0, len(records))
	for game, record := range records {
		session := models.NewGameSession(game)
		session.EventID = record.EventID
		session.StartTime = record.StartTime
		session.LastUpdate = record.LastUpdate
		session.PlayerNames = append([]string{}, record.PlayerNames...)
		sessions = append(sessions, session)
	}

	return &LoadOutput{Sessions: sessions}, nil
}

func (r *fileRepository) readDocument() *document {
	doc := &document{ActiveEvents: make(map[string]map[string]eventRecord)}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return doc
	}

	if err := json.Unmarshal(data, doc); err != nil || doc.ActiveEvents == nil {
		doc.ActiveEvents = make(map[string]map[string]eventRecord)
	}

	return doc
}

func (r *fileRepository) writeDocument(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session document: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	// Write through a temp file so a crash mid-write cannot corrupt
	// the checkpoint.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session document: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace session document: %w", err)
	}

	return nil
}
