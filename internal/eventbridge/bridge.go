package eventbridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/models"
)

const (
	defaultEventLead     = 5 * time.Minute
	defaultEventDuration = 2 * time.Hour
)

// Config holds configuration for the event bridge
type Config struct {
	// API is the platform client slice the bridge talks to
	API DiscordAPI

	// Clock provides the current time
	Clock clock.Clock

	// GuildID is the guild events are created in
	GuildID string

	// ChannelID is where status messages are posted
	ChannelID string

	// EventLead is how far in the future the event window nominally
	// starts; the event is activated immediately regardless
	EventLead time.Duration

	// EventDuration caps the scheduled event window
	EventDuration time.Duration

	Logger zerolog.Logger
}

type bridge struct {
	api           DiscordAPI
	clock         clock.Clock
	guildID       string
	channelID     string
	eventLead     time.Duration
	eventDuration time.Duration
	logger        zerolog.Logger
}

// New creates a new event bridge
func New(cfg *Config) (*bridge, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("discord API cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	lead := cfg.EventLead
	if lead <= 0 {
		lead = defaultEventLead
	}

	duration := cfg.EventDuration
	if duration <= 0 {
		duration = defaultEventDuration
	}

	return &bridge{
		api:           cfg.API,
		clock:         cfg.Clock,
		guildID:       cfg.GuildID,
		channelID:     cfg.ChannelID,
		eventLead:     lead,
		eventDuration: duration,
		logger:        cfg.Logger.With().Str("component", "eventbridge").Logger(),
	}, nil
}

// EnsureActive creates and starts a scheduled event for the session
// unless a live one already exists, then posts or refreshes the status
// message. The event is created first so the message can reference it.
func (b *bridge) EnsureActive(ctx context.Context, session *models.GameSession) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}

	if session.EventID != "" {
		event, err := b.api.ScheduledEvent(b.guildID, session.EventID)
		switch {
		case isNotFound(err):
			// Deleted out-of-band; recreate below.
			session.EventID = ""
		case err != nil:
			return fmt.Errorf("failed to fetch scheduled event: %w", err)
		case event.Status == discordgo.GuildScheduledEventStatusActive ||
			event.Status == discordgo.GuildScheduledEventStatusScheduled:
			// Still live; just keep the status message current.
			return b.refreshStatusMessage(session)
		default:
			session.EventID = ""
		}
	}

	now := b.clock.Now()
	startTime := now.Add(b.eventLead)
	endTime := now.Add(b.eventDuration)

	event, err := b.api.ScheduledEventCreate(b.guildID, &discordgo.GuildScheduledEventParams{
		Name:               fmt.Sprintf("%s Game Session", session.Game),
		Description:        fmt.Sprintf("Join us for a %s gaming session!", session.Game),
		ScheduledStartTime: &startTime,
		ScheduledEndTime:   &endTime,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: session.Game},
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduled event: %w", err)
	}

	session.EventID = event.ID

	// Activate right away; the future start time is only the nominal
	// calendar window.
	if _, err := b.api.ScheduledEventEdit(b.guildID, event.ID, &discordgo.GuildScheduledEventParams{
		Status: discordgo.GuildScheduledEventStatusActive,
	}); err != nil && !isNotFound(err) {
		b.logger.Warn().Err(err).Str("game", session.Game).Msg("failed to start scheduled event")
	}

	b.logger.Info().Str("game", session.Game).Str("event_id", event.ID).Msg("scheduled event created")

	return b.refreshStatusMessage(session)
}

// End closes the scheduled event, then edits the status message with
// the final duration. The event is ended first so the reported figures
// are final.
func (b *bridge) End(ctx context.Context, session *models.GameSession) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}

	if session.EventID != "" {
		_, err := b.api.ScheduledEventEdit(b.guildID, session.EventID, &discordgo.GuildScheduledEventParams{
			Status: discordgo.GuildScheduledEventStatusCompleted,
		})
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to end scheduled event: %w", err)
		}
	}

	endTime := b.clock.Now()
	if session.MessageID != "" {
		embed := b.finishedEmbed(session, endTime)
		content := ""
		edit := &discordgo.MessageEdit{
			Channel: b.channelID,
			ID:      session.MessageID,
			Content: &content,
			Embeds:  &[]*discordgo.MessageEmbed{embed},
		}
		if _, err := b.api.MessageEdit(edit); err != nil && !isNotFound(err) {
			b.logger.Warn().Err(err).Str("game", session.Game).Msg("failed to edit finished message")
		}
	}

	b.logger.Info().Str("game", session.Game).Str("event_id", session.EventID).Msg("scheduled event ended")

	session.EventID = ""
	session.MessageID = ""

	return nil
}

// refreshStatusMessage edits the tracked status message in place, or
// sends a fresh one when none is tracked or it was deleted.
func (b *bridge) refreshStatusMessage(session *models.GameSession) error {
	embed := b.activeEmbed(session)

	if session.MessageID != "" {
		edit := &discordgo.MessageEdit{
			Channel: b.channelID,
			ID:      session.MessageID,
			Embeds:  &[]*discordgo.MessageEmbed{embed},
		}
		_, err := b.api.MessageEdit(edit)
		if err == nil {
			return nil
		}
		if !isNotFound(err) {
			return fmt.Errorf("failed to edit status message: %w", err)
		}
		session.MessageID = ""
	}

	message, err := b.api.MessageSend(b.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("failed to send status message: %w", err)
	}

	session.MessageID = message.ID
	return nil
}

func (b *bridge) activeEmbed(session *models.GameSession) *discordgo.MessageEmbed {
	players := "nobody yet"
	if len(session.PlayerNames) > 0 {
		players = ""
		for _, name := range session.PlayerNames {
			players += fmt.Sprintf("• %s\n", name)
		}
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  "✅ Session in progress",
			Inline: false,
		},
		{
			Name:   "Players",
			Value:  players,
			Inline: false,
		},
	}

	if !session.StartTime.IsZero() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Started",
			Value:  fmt.Sprintf("<t:%d:R>", session.StartTime.Unix()),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "🎮 Session in progress!",
		Description: fmt.Sprintf("A **%s** session is underway", session.Game),
		Color:       0x00ff00,
		Fields:      fields,
	}
}

func (b *bridge) finishedEmbed(session *models.GameSession, endTime time.Time) *discordgo.MessageEmbed {
	startTime := session.StartTime
	if startTime.IsZero() {
		startTime = endTime
	}
	duration := endTime.Sub(startTime)

	return &discordgo.MessageEmbed{
		Title:       "🎮 Session finished",
		Description: fmt.Sprintf("The **%s** session has ended", session.Game),
		Color:       0xff0000,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Started",
				Value:  fmt.Sprintf("<t:%d:F>", startTime.Unix()),
				Inline: true,
			},
			{
				Name:   "Ended",
				Value:  fmt.Sprintf("<t:%d:F>", endTime.Unix()),
				Inline: true,
			},
			{
				Name:   "Duration",
				Value:  fmt.Sprintf("%d minutes", int(duration.Minutes())),
				Inline: true,
			},
		},
	}
}

// isNotFound reports whether the platform rejected the call because
// the target no longer exists. Out-of-band deletions are expected and
// never escalate.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}

	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMessage {
		return true
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
