package gamewatch

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/eventbridge"
	"github.com/robuso/conclave/internal/models"
	gamewatchRepo "github.com/robuso/conclave/internal/repositories/gamewatch"
)

// service implements the Service interface
type service struct {
	bridge      eventbridge.Bridge
	repo        gamewatchRepo.Repository
	snapshotter Snapshotter
	clock       clock.Clock
	guildID     string
	threshold   int
	grace       time.Duration
	interval    time.Duration
	logger      zerolog.Logger

	// mu guards the table; mutation only ever happens from the poll
	// goroutine, the lock exists for Snapshot readers
	mu        sync.Mutex
	table     map[string]*models.GameSession
	dirty     bool
	lastCycle time.Time
}

// New creates a new game watch service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Bridge == nil {
		return nil, errors.New("event bridge cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.Snapshotter == nil {
		return nil, errors.New("snapshotter cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	threshold := cfg.ActivationThreshold
	if threshold <= 0 {
		threshold = DefaultActivationThreshold
	}

	grace := cfg.GracePeriod
	if grace <= 0 {
		grace = DefaultGracePeriod
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &service{
		bridge:      cfg.Bridge,
		repo:        cfg.Repo,
		snapshotter: cfg.Snapshotter,
		clock:       cfg.Clock,
		guildID:     cfg.GuildID,
		threshold:   threshold,
		grace:       grace,
		interval:    interval,
		logger:      cfg.Logger.With().Str("component", "gamewatch").Logger(),
		table:       make(map[string]*models.GameSession),
	}, nil
}

// Restore loads checkpointed sessions so in-flight external events are
// not orphaned by a restart. Player membership is not restored; the
// next poll cycle rediscovers it.
func (s *service) Restore(ctx context.Context) error {
	out, err := s.repo.Load(ctx, &gamewatchRepo.LoadInput{GuildID: s.guildID})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range out.Sessions {
		s.table[session.Game] = session
	}

	if len(out.Sessions) > 0 {
		s.logger.Info().Int("sessions", len(out.Sessions)).Msg("restored in-flight sessions")
	}

	return nil
}

// bridgeAction is one platform call decided under the lock and
// executed outside it, on a cloned session.
type bridgeAction struct {
	game    string
	end     bool
	session *models.GameSession
}

// RunCycle executes one full poll cycle: observe, fold into the table,
// apply the session policy, checkpoint if anything changed. Cycles are
// throttled to the configured interval. The snapshot and the bridge
// calls run without the lock so Snapshot readers are not held up by
// platform latency.
func (s *service) RunCycle(ctx context.Context) error {
	now := s.clock.Now()

	s.mu.Lock()
	if !s.lastCycle.IsZero() && now.Sub(s.lastCycle) < s.interval {
		s.mu.Unlock()
		return nil
	}
	s.lastCycle = now
	s.mu.Unlock()

	observations, err := s.snapshotter.Snapshot(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	seen := make(map[string]struct{}, len(observations))
	for _, obs := range observations {
		seen[obs.MemberID] = struct{}{}
		s.update(obs.MemberID, obs.DisplayName, obs.Game)
	}
	s.prune(seen)
	actions := s.plan(now)
	s.mu.Unlock()

	applied := s.apply(ctx, actions)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.merge(applied)

	if s.dirty {
		if err := s.checkpointLocked(ctx); err != nil {
			// In-memory state stays authoritative; the next
			// successful save catches up.
			s.logger.Error().Err(err).Msg("failed to checkpoint session state")
		} else {
			s.dirty = false
		}
	}

	return nil
}

// plan runs the policy state machine over every tracked game and
// returns the platform calls this cycle needs. Caller holds the lock.
func (s *service) plan(now time.Time) []bridgeAction {
	var actions []bridgeAction

	for _, game := range s.sortedGames() {
		session := s.table[game]

		if session.PlayerCount() >= s.threshold {
			// Active: cancel any pending teardown, activate the
			// platform footprint.
			session.TrackingStart = time.Time{}
			if session.StartTime.IsZero() {
				session.StartTime = now
			}

			actions = append(actions, bridgeAction{game: game, session: session.Clone()})
			continue
		}

		// Below threshold: start the grace countdown on the cycle the
		// drop is observed, end the session once it has run out.
		if session.TrackingStart.IsZero() {
			session.TrackingStart = now
			continue
		}

		if now.Sub(session.TrackingStart) < s.grace {
			continue
		}

		actions = append(actions, bridgeAction{game: game, end: true, session: session.Clone()})
	}

	return actions
}

// apply performs the planned bridge calls. Per-game failures are
// logged and left for the next cycle to reconcile; only the calls
// that went through are returned for the merge.
func (s *service) apply(ctx context.Context, actions []bridgeAction) []bridgeAction {
	applied := make([]bridgeAction, 0, len(actions))

	for _, action := range actions {
		if action.end {
			if err := s.bridge.End(ctx, action.session); err != nil {
				s.logger.Error().Err(err).Str("game", action.game).Msg("failed to end event")
				continue
			}
		} else {
			if err := s.bridge.EnsureActive(ctx, action.session); err != nil {
				s.logger.Error().Err(err).Str("game", action.game).Msg("failed to ensure active event")
				continue
			}
		}
		applied = append(applied, action)
	}

	return applied
}

// merge folds successful bridge calls back into the table. Any change
// to the linked event or message marks the checkpoint stale, covering
// both first activation and events recreated after an out-of-band
// deletion. Caller holds the lock.
func (s *service) merge(applied []bridgeAction) {
	for _, action := range applied {
		session, ok := s.table[action.game]
		if !ok {
			continue
		}

		if action.end {
			delete(s.table, action.game)
			s.dirty = true
			s.logger.Info().Str("game", action.game).Msg("session ended")
			continue
		}

		if session.EventID == action.session.EventID && session.MessageID == action.session.MessageID {
			continue
		}

		if session.EventID == "" {
			s.logger.Info().Str("game", action.game).Strs("players", session.PlayerNames).Msg("session activated")
		} else {
			s.logger.Warn().Str("game", action.game).
				Str("event_id", action.session.EventID).
				Msg("event recreated after out-of-band deletion")
		}

		session.EventID = action.session.EventID
		session.MessageID = action.session.MessageID
		s.dirty = true
	}
}

// Run ticks RunCycle until the context is cancelled. A final
// checkpoint is attempted on the way out.
func (s *service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("game watch running")

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Checkpoint(saveCtx); err != nil {
				s.logger.Error().Err(err).Msg("final checkpoint failed")
			}
			cancel()
			return
		case <-ticker.C:
			if err := s.RunCycle(ctx); err != nil {
				s.logger.Error().Err(err).Msg("poll cycle failed")
			}
		}
	}
}

// Snapshot returns a copy of the tracked games for rendering, sorted
// by player count descending then by name.
func (s *service) Snapshot() []GameGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]GameGroup, 0, len(s.table))
	for _, session := range s.table {
		groups = append(groups, GameGroup{
			Game:        session.Game,
			PlayerNames: append([]string{}, session.PlayerNames...),
			EventID:     session.EventID,
			StartTime:   session.StartTime,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].PlayerNames) != len(groups[j].PlayerNames) {
			return len(groups[i].PlayerNames) > len(groups[j].PlayerNames)
		}
		return groups[i].Game < groups[j].Game
	})

	return groups
}

// Checkpoint persists the current table.
func (s *service) Checkpoint(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkpointLocked(ctx)
}

func (s *service) checkpointLocked(ctx context.Context) error {
	sessions := make([]*models.GameSession, 0, len(s.table))
	for _, session := range s.table {
		sessions = append(sessions, session)
	}

	return s.repo.Save(ctx, &gamewatchRepo.SaveInput{
		GuildID:  s.guildID,
		Sessions: sessions,
	})
}

func (s *service) sortedGames() []string {
	games := make([]string, 0, len(s.table))
	for game := range s.table {
		games = append(games, game)
	}
	sort.Strings(games)
	return games
}
