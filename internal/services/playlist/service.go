package playlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/models"
	playlistRepo "github.com/robuso/conclave/internal/repositories/playlist"
)

var (
	// ErrQueueFull is returned when the queue is at capacity
	ErrQueueFull = errors.New("queue is full")

	// ErrQueueEmpty is returned when skipping an empty queue
	ErrQueueEmpty = errors.New("queue is empty")
)

// service implements the Service interface
type service struct {
	repo     playlistRepo.Repository
	resolver Resolver
	maxQueue int
	logger   zerolog.Logger

	mu     sync.Mutex
	tracks []*models.Track
}

// New creates a new playlist service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.Resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}

	maxQueue := cfg.MaxQueue
	if maxQueue <= 0 {
		maxQueue = DefaultMaxQueue
	}

	return &service{
		repo:     cfg.Repo,
		resolver: cfg.Resolver,
		maxQueue: maxQueue,
		logger:   cfg.Logger.With().Str("component", "playlist").Logger(),
	}, nil
}

// Restore loads the persisted queue
func (s *service) Restore(ctx context.Context) error {
	out, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = out.Tracks
	if len(s.tracks) > 0 {
		s.logger.Info().Int("tracks", len(s.tracks)).Msg("restored queue")
	}

	return nil
}

// Add resolves a query and appends the track to the queue
func (s *service) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil || input.Query == "" {
		return nil, errors.New("input and query cannot be empty")
	}

	track, err := s.resolver.Resolve(ctx, input.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve track: %w", err)
	}
	track.RequestedBy = input.RequestedBy

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tracks) >= s.maxQueue {
		return nil, ErrQueueFull
	}

	s.tracks = append(s.tracks, track)

	if err := s.persistLocked(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist queue")
	}

	return &AddOutput{Track: track, Position: len(s.tracks)}, nil
}

// Skip removes the head of the queue
func (s *service) Skip(ctx context.Context) (*SkipOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tracks) == 0 {
		return nil, ErrQueueEmpty
	}

	skipped := s.tracks[0]
	s.tracks = s.tracks[1:]

	if err := s.persistLocked(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist queue")
	}

	out := &SkipOutput{Skipped: skipped}
	if len(s.tracks) > 0 {
		out.Next = s.tracks[0]
	}

	return out, nil
}

// List returns a copy of the queue in play order
func (s *service) List(ctx context.Context) (*ListOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &ListOutput{Tracks: append([]*models.Track{}, s.tracks...)}, nil
}

// Clear empties the queue
func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracks = nil

	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}

	return nil
}

func (s *service) persistLocked(ctx context.Context) error {
	return s.repo.Save(ctx, &playlistRepo.SaveInput{
		Tracks: append([]*models.Track{}, s.tracks...),
	})
}
