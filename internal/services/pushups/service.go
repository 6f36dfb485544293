package pushups

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	pushupsRepo "github.com/robuso/conclave/internal/repositories/pushups"
)

var (
	// ErrNotTracked is returned when someone else tries to confirm
	ErrNotTracked = errors.New("only the tracked member can confirm")

	// ErrAlreadyConfirmed is returned when today is already confirmed
	ErrAlreadyConfirmed = errors.New("today is already confirmed")
)

const (
	// reminderHour is when the daily reminder goes out
	reminderHour = 16

	// nagMinute is the last-call minute for unconfirmed days
	nagMinute = "23:59"

	dateLayout = "2006-01-02"
)

// service implements the Service interface
type service struct {
	repo      pushupsRepo.Repository
	notifier  Notifier
	clock     clock.Clock
	userID    string
	channelID string
	startDate time.Time
	logger    zerolog.Logger
}

// New creates a new push-up service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UserID == "" {
		return nil, errors.New("tracked user ID cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.StartDate.IsZero() {
		return nil, errors.New("start date cannot be zero")
	}

	return &service{
		repo:      cfg.Repo,
		notifier:  cfg.Notifier,
		clock:     cfg.Clock,
		userID:    cfg.UserID,
		channelID: cfg.ChannelID,
		startDate: cfg.StartDate,
		logger:    cfg.Logger.With().Str("component", "pushups").Logger(),
	}, nil
}

// Confirm marks today's set as done
func (s *service) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID != s.userID {
		return nil, ErrNotTracked
	}

	out, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load push-up log: %w", err)
	}

	now := s.clock.Now()
	today := now.Format(dateLayout)

	log := out.Log
	if log.LastReminder == today && log.Confirmed {
		return nil, ErrAlreadyConfirmed
	}

	log.LastReminder = today
	log.Confirmed = true

	if err := s.repo.Set(ctx, &pushupsRepo.SetInput{Log: log}); err != nil {
		return nil, fmt.Errorf("failed to save push-up log: %w", err)
	}

	return &ConfirmOutput{Day: s.day(now)}, nil
}

// Status reports today's day number and reminder state
func (s *service) Status(ctx context.Context) (*StatusOutput, error) {
	out, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load push-up log: %w", err)
	}

	now := s.clock.Now()
	today := now.Format(dateLayout)

	return &StatusOutput{
		Day:       s.day(now),
		Reminded:  out.Log.LastReminder == today,
		Confirmed: out.Log.LastReminder == today && out.Log.Confirmed,
	}, nil
}

// Tick sends the 16:00 reminder once per day and the 23:59 nag when
// the day is still unconfirmed.
func (s *service) Tick(ctx context.Context) error {
	out, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load push-up log: %w", err)
	}

	now := s.clock.Now()
	today := now.Format(dateLayout)
	log := out.Log

	if now.Hour() >= reminderHour && log.LastReminder != today {
		day := s.day(now)
		content := fmt.Sprintf(
			"<@%s> ¡ES HORA DE TUS FLEXIONES DIARIAS! 💪\nHoy es el día %d, así que toca hacer %d flexiones 🏋️\n¡Cada día más fuerte! 💪💪",
			s.userID, day, day)
		if err := s.notifier.Send(ctx, s.channelID, content); err != nil {
			return fmt.Errorf("failed to send reminder: %w", err)
		}

		log.LastReminder = today
		log.Confirmed = false
		if err := s.repo.Set(ctx, &pushupsRepo.SetInput{Log: log}); err != nil {
			return fmt.Errorf("failed to save push-up log: %w", err)
		}

		s.logger.Info().Int("day", day).Msg("push-up reminder sent")
		return nil
	}

	if now.Format("15:04") == nagMinute && log.LastReminder == today && !log.Confirmed {
		content := fmt.Sprintf("<@%s> El día se acaba y aún no has confirmado tus flexiones... 👀", s.userID)
		if err := s.notifier.Send(ctx, s.channelID, content); err != nil {
			return fmt.Errorf("failed to send nag: %w", err)
		}
	}

	return nil
}

// Run ticks every minute until the context is cancelled
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				s.logger.Error().Err(err).Msg("push-up pass failed")
			}
		}
	}
}

// day returns the challenge day number, where the start date is day
// one. Days are counted by calendar date, not elapsed hours.
func (s *service) day(now time.Time) int {
	start := time.Date(s.startDate.Year(), s.startDate.Month(), s.startDate.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(today.Sub(start).Hours()/24) + 1
}
