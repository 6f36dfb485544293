package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/robuso/conclave/internal/models"
)

// Notifier delivers service notifications through Discord: plain
// channel messages, direct messages and shift embeds. The feature
// services depend on its narrow interfaces.
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a notifier over the session
func NewNotifier(session *discordgo.Session) (*Notifier, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	return &Notifier{session: session}, nil
}

// Send posts a plain message into a channel
func (n *Notifier) Send(ctx context.Context, channelID, content string) error {
	if _, err := n.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// DirectMessage delivers a message to a user's DM channel
func (n *Notifier) DirectMessage(ctx context.Context, userID, content string) error {
	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}

// ShiftStarted posts the start-of-shift embed
func (n *Notifier) ShiftStarted(ctx context.Context, userID, weekday string, shift *models.WorkShift) error {
	embed := shiftEmbed("🏢 Inicio de Jornada",
		fmt.Sprintf("%s ha empezado su jornada laboral del **%s**", shift.Name, weekday),
		0x00ff00, weekday, shift)

	if _, err := n.session.ChannelMessageSendEmbed(shift.ChannelID, embed); err != nil {
		return fmt.Errorf("failed to send shift start embed: %w", err)
	}
	return nil
}

// ShiftEnded posts the end-of-shift embed
func (n *Notifier) ShiftEnded(ctx context.Context, userID, weekday string, shift *models.WorkShift) error {
	embed := shiftEmbed("🏠 Fin de Jornada",
		fmt.Sprintf("%s ha terminado su jornada laboral del **%s**", shift.Name, weekday),
		0xff6600, weekday, shift)

	if _, err := n.session.ChannelMessageSendEmbed(shift.ChannelID, embed); err != nil {
		return fmt.Errorf("failed to send shift end embed: %w", err)
	}
	return nil
}

func shiftEmbed(title, description string, color int, weekday string, shift *models.WorkShift) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Día", Value: weekday, Inline: true},
			{Name: "Entrada", Value: shift.Entry, Inline: true},
			{Name: "Salida", Value: shift.Exit, Inline: true},
		},
	}
}
