package worksched

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/models"
	schedulesRepo "github.com/robuso/conclave/internal/repositories/schedules"
)

var (
	// ErrInvalidWeekday is returned when the weekday name is not
	// recognised
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidTime is returned when a clock time is not HH:MM
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
)

// weekdayNames maps Go weekdays to the Spanish names used in commands
// and in the schedule document
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miercoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sabado",
	time.Sunday:    "domingo",
}

// service implements the Service interface
type service struct {
	repo           schedulesRepo.Repository
	notifier       Notifier
	clock          clock.Clock
	defaultChannel string
	logger         zerolog.Logger
}

// New creates a new work schedule service
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

	return &service{
		repo:           cfg.Repo,
		notifier:       cfg.Notifier,
		clock:          cfg.Clock,
		defaultChannel: cfg.DefaultChannelID,
		logger:         cfg.Logger.With().Str("component", "worksched").Logger(),
	}, nil
}

// SetShift registers or replaces one weekday's working hours
func (s *service) SetShift(ctx context.Context, input *SetShiftInput) (*SetShiftOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	weekday := strings.ToLower(strings.TrimSpace(input.Weekday))
	if !validWeekday(weekday) {
		return nil, ErrInvalidWeekday
	}

	if _, err := parseClockTime(input.Entry); err != nil {
		return nil, err
	}
	if _, err := parseClockTime(input.Exit); err != nil {
		return nil, err
	}

	channelID := input.ChannelID
	if channelID == "" {
		channelID = s.defaultChannel
	}

	shift := &models.WorkShift{
		Entry:     input.Entry,
		Exit:      input.Exit,
		ChannelID: channelID,
		Name:      input.Name,
	}

	err := s.repo.SetShift(ctx, &schedulesRepo.SetShiftInput{
		UserID:  input.UserID,
		Weekday: weekday,
		Shift:   shift,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	return &SetShiftOutput{Weekday: weekday, Shift: shift}, nil
}

// GetSchedule retrieves a user's full weekly schedule
func (s *service) GetSchedule(ctx context.Context, input *GetScheduleInput) (*GetScheduleOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	out, err := s.repo.Get(ctx, &schedulesRepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	return &GetScheduleOutput{Schedule: out.Schedule}, nil
}

// Tick announces every shift whose entry or exit matches the current
// minute. Notification failures are logged per user and do not stop
// the pass.
func (s *service) Tick(ctx context.Context) error {
	out, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	now := s.clock.Now()
	minute := now.Format("15:04")
	weekday := weekdayNames[now.Weekday()]

	for userID, schedule := range out.Schedules {
		shift, ok := schedule[weekday]
		if !ok || shift == nil {
			continue
		}

		switch minute {
		case shift.Entry:
			if err := s.notifier.ShiftStarted(ctx, userID, weekday, shift); err != nil {
				s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to announce shift start")
			}
		case shift.Exit:
			if err := s.notifier.ShiftEnded(ctx, userID, weekday, shift); err != nil {
				s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to announce shift end")
			}
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
				s.logger.Error().Err(err).Msg("schedule pass failed")
			}
		}
	}
}

func validWeekday(weekday string) bool {
	for _, name := range weekdayNames {
		if name == weekday {
			return true
		}
	}
	return false
}

func parseClockTime(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return t, nil
}
