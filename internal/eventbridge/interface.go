package eventbridge

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/robuso/conclave/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_bridge.go github.com/robuso/conclave/internal/eventbridge Bridge,DiscordAPI

// Bridge owns the platform-side footprint of a game session: one
// scheduled event and one status message per game, at most.
type Bridge interface {
	// EnsureActive makes sure a live scheduled event and a status
	// message exist for the session, creating them if needed. It is
	// idempotent and records the event/message linkage on the session.
	EnsureActive(ctx context.Context, session *models.GameSession) error

	// End closes the session's scheduled event, rewrites the status
	// message with a finished summary and clears the linkage
	End(ctx context.Context, session *models.GameSession) error
}

// DiscordAPI is the slice of the platform client the bridge consumes.
type DiscordAPI interface {
	ScheduledEventCreate(guildID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error)
	ScheduledEventEdit(guildID, eventID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error)
	ScheduledEvent(guildID, eventID string) (*discordgo.GuildScheduledEvent, error)
	MessageSend(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	MessageEdit(edit *discordgo.MessageEdit) (*discordgo.Message, error)
}
