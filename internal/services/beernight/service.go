package beernight

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/common/uuid"
	"github.com/robuso/conclave/internal/models"
	beernightRepo "github.com/robuso/conclave/internal/repositories/beernight"
)

var (
	// ErrSessionActive is returned when a session is already running
	ErrSessionActive = errors.New("a beer night is already running")

	// ErrNoSession is returned when no session is running
	ErrNoSession = errors.New("no beer night is running")

	// ErrNoRulesLeft is returned when the rule deck is exhausted
	ErrNoRulesLeft = errors.New("no rules left to draw")
)

// defaultRules is the built-in rule deck
var defaultRules = []string{
	"Acabar top muertes = un trago",
	"Una triple = un trago",
	"Acabar top daños = bebes",
	"Si te quejas de ir borracho = bebes",
	"Decir 'gg' o 'ez' = bebes",
	"Morir por caída = un trago extra",
	"Conseguir un 'ace' = el equipo contrario bebe",
	"Si te mata el mismo enemigo 3 veces seguidas = bebes 2 tragos",
	"Si un aliado te roba el 'kill' = el aliado bebe",
	"Ser el primero en morir = bebes",
	"Si un enemigo te hace 'emote' después de matarte = bebes",
	"Si pierdes una ronda importante = bebes",
	"Cada 1000 de daño = un trago",
	"Si fallas un ultimátum = bebes",
	"Conseguir un 'clutch' = el equipo contrario bebe",
}

// service implements the Service interface
type service struct {
	repo     beernightRepo.Repository
	notifier Notifier
	clock    clock.Clock
	uuider   uuid.UUID
	duration time.Duration
	interval time.Duration
	rules    []string
	rand     *rand.Rand
	logger   zerolog.Logger
}

// New creates a new beer night service
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

	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = DefaultSessionDuration
	}

	interval := cfg.NudgeInterval
	if interval <= 0 {
		interval = DefaultNudgeInterval
	}

	rules := cfg.Rules
	if len(rules) == 0 {
		rules = defaultRules
	}

	return &service{
		repo:     cfg.Repo,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
		uuider:   cfg.UUID,
		duration: duration,
		interval: interval,
		rules:    rules,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   cfg.Logger.With().Str("component", "beernight").Logger(),
	}, nil
}

// Start begins a session and draws the first rule
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	current, err := s.repo.GetCurrent(ctx, &beernightRepo.GetCurrentInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up current session: %w", err)
	}
	if current.BeerNight != nil {
		return nil, ErrSessionActive
	}

	session := &models.BeerNight{
		ID:             s.uuider.NewUUID(),
		GuildID:        input.GuildID,
		ChannelID:      input.ChannelID,
		StartedBy:      input.StartedBy,
		StartedAt:      s.clock.Now(),
		RemainingRules: append([]string{}, s.rules...),
		Active:         true,
	}

	rule := s.drawRule(session)

	if err := s.repo.Save(ctx, &beernightRepo.SaveInput{BeerNight: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info().Str("guild_id", input.GuildID).Str("session_id", session.ID).Msg("beer night started")

	return &StartOutput{BeerNight: session, Rule: rule}, nil
}

// MoreRules draws another rule into the active session
func (s *service) MoreRules(ctx context.Context, input *MoreRulesInput) (*MoreRulesOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	current, err := s.repo.GetCurrent(ctx, &beernightRepo.GetCurrentInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up current session: %w", err)
	}
	if current.BeerNight == nil {
		return nil, ErrNoSession
	}

	session := current.BeerNight
	if len(session.RemainingRules) == 0 {
		return nil, ErrNoRulesLeft
	}

	rule := s.drawRule(session)

	if err := s.repo.Save(ctx, &beernightRepo.SaveInput{BeerNight: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &MoreRulesOutput{
		Rule:        rule,
		ActiveRules: append([]string{}, session.ActiveRules...),
	}, nil
}

// End finishes the active session
func (s *service) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	current, err := s.repo.GetCurrent(ctx, &beernightRepo.GetCurrentInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up current session: %w", err)
	}
	if current.BeerNight == nil {
		return nil, ErrNoSession
	}

	session := current.BeerNight
	session.Active = false

	if err := s.repo.Save(ctx, &beernightRepo.SaveInput{BeerNight: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info().Str("guild_id", input.GuildID).Str("session_id", session.ID).Msg("beer night ended")

	return &EndOutput{BeerNight: session}, nil
}

// Tick sends a drink nudge to the active session and auto-ends it
// once its time is up. A no-op when nothing is running.
func (s *service) Tick(ctx context.Context, guildID string) error {
	current, err := s.repo.GetCurrent(ctx, &beernightRepo.GetCurrentInput{GuildID: guildID})
	if err != nil {
		return fmt.Errorf("failed to look up current session: %w", err)
	}
	if current.BeerNight == nil {
		return nil
	}

	session := current.BeerNight

	if s.clock.Now().Sub(session.StartedAt) >= s.duration {
		if _, err := s.End(ctx, &EndInput{GuildID: guildID}); err != nil {
			return err
		}
		return s.notifier.Send(ctx, session.ChannelID,
			"El tiempo se ha acabado, ¡la Beer Night ha finalizado automáticamente! Que los efectos secundarios sean leves. 🤢")
	}

	return s.notifier.Send(ctx, session.ChannelID, "¡A BEBER! 🍻")
}

// Run nudges the guild's session on a jittered interval until the
// context is cancelled.
func (s *service) Run(ctx context.Context, guildID string) {
	for {
		wait := s.interval/2 + time.Duration(s.rand.Int63n(int64(s.interval)))

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			if err := s.Tick(ctx, guildID); err != nil {
				s.logger.Error().Err(err).Msg("beer night tick failed")
			}
		}
	}
}

// drawRule moves one random remaining rule into the active set
func (s *service) drawRule(session *models.BeerNight) string {
	idx := s.rand.Intn(len(session.RemainingRules))
	rule := session.RemainingRules[idx]
	session.RemainingRules = append(session.RemainingRules[:idx], session.RemainingRules[idx+1:]...)
	session.ActiveRules = append(session.ActiveRules, rule)
	return rule
}
