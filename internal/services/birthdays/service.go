package birthdays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/models"
	birthdaysRepo "github.com/robuso/conclave/internal/repositories/birthdays"
)

// ErrInvalidDate is returned when the given day/month/year is not a
// real calendar date
var ErrInvalidDate = errors.New("invalid birthday date")

// checkInterval is how often the daily greeting pass runs
const checkInterval = 24 * time.Hour

// service implements the Service interface
type service struct {
	repo      birthdaysRepo.Repository
	messenger Messenger
	clock     clock.Clock
	logger    zerolog.Logger
}

// New creates a new birthday service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		repo:      cfg.Repo,
		messenger: cfg.Messenger,
		clock:     cfg.Clock,
		logger:    cfg.Logger.With().Str("component", "birthdays").Logger(),
	}, nil
}

// Register stores or replaces a user's birthday
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	if !validDate(input.Day, input.Month, input.Year) {
		return nil, ErrInvalidDate
	}

	birthday := &models.Birthday{
		UserID: input.UserID,
		Name:   input.Name,
		Day:    input.Day,
		Month:  input.Month,
		Year:   input.Year,
	}

	if err := s.repo.Set(ctx, &birthdaysRepo.SetInput{Birthday: birthday}); err != nil {
		return nil, fmt.Errorf("failed to save birthday: %w", err)
	}

	return &RegisterOutput{Birthday: birthday}, nil
}

// Get looks up a user's registered birthday
func (s *service) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	out, err := s.repo.Get(ctx, &birthdaysRepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up birthday: %w", err)
	}

	return &GetOutput{Birthday: out.Birthday}, nil
}

// CheckToday greets every member whose birthday is today. Delivery
// failures are logged per member and do not stop the pass.
func (s *service) CheckToday(ctx context.Context) error {
	out, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}

	now := s.clock.Now()

	for _, birthday := range out.Birthdays {
		if birthday.Day != now.Day() || birthday.Month != int(now.Month()) {
			continue
		}

		greeting := fmt.Sprintf("🎉 ¡Feliz cumpleaños, %s! 🎉", birthday.Name)
		if err := s.messenger.DirectMessage(ctx, birthday.UserID, greeting); err != nil {
			s.logger.Warn().Err(err).Str("user_id", birthday.UserID).Msg("failed to deliver birthday greeting")
			continue
		}

		s.logger.Info().Str("user_id", birthday.UserID).Msg("birthday greeting sent")
	}

	return nil
}

// Run checks once at startup and then daily until the context is
// cancelled.
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	if err := s.CheckToday(ctx); err != nil {
		s.logger.Error().Err(err).Msg("birthday pass failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CheckToday(ctx); err != nil {
				s.logger.Error().Err(err).Msg("birthday pass failed")
			}
		}
	}
}

// validDate reports whether day/month/year names a real calendar
// date. Year zero means the member kept it private.
func validDate(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	checkYear := year
	if checkYear == 0 {
		// Use a leap year so 29 February stays registrable
		checkYear = 2000
	}

	date := time.Date(checkYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return date.Day() == day && int(date.Month()) == month
}
