package eventbridge

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// sessionAPI implements DiscordAPI over a live discordgo session.
type sessionAPI struct {
	session *discordgo.Session
}

// NewSessionAPI wraps a discordgo session as a DiscordAPI
func NewSessionAPI(session *discordgo.Session) (*sessionAPI, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &sessionAPI{session: session}, nil
}

func (a *sessionAPI) ScheduledEventCreate(guildID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error) {
	return a.session.GuildScheduledEventCreate(guildID, params)
}

func (a *sessionAPI) ScheduledEventEdit(guildID, eventID string, params *discordgo.GuildScheduledEventParams) (*discordgo.GuildScheduledEvent, error) {
	return a.session.GuildScheduledEventEdit(guildID, eventID, params)
}

func (a *sessionAPI) ScheduledEvent(guildID, eventID string) (*discordgo.GuildScheduledEvent, error) {
	return a.session.GuildScheduledEvent(guildID, eventID, false)
}

func (a *sessionAPI) MessageSend(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return a.session.ChannelMessageSendComplex(channelID, data)
}

func (a *sessionAPI) MessageEdit(edit *discordgo.MessageEdit) (*discordgo.Message, error) {
	return a.session.ChannelMessageEditComplex(edit)
}
