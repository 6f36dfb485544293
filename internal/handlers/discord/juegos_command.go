package discord

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/avatars"
	"github.com/robuso/conclave/internal/models"
	gamewatchSvc "github.com/robuso/conclave/internal/services/gamewatch"
)

const avatarAttachmentName = "jugadores.png"

// JuegosCommand handles the /juegos command: who is playing what,
// with a combined avatar strip and the idle list.
type JuegosCommand struct {
	BaseCommand
	watch       gamewatchSvc.Service
	snapshotter gamewatchSvc.Snapshotter
	compositor  *avatars.Compositor
	logger      zerolog.Logger
}

// NewJuegosCommand creates a new juegos command handler
func NewJuegosCommand(watch gamewatchSvc.Service, snapshotter gamewatchSvc.Snapshotter, compositor *avatars.Compositor, logger zerolog.Logger) *JuegosCommand {
	return &JuegosCommand{
		BaseCommand: BaseCommand{
			Name:        "juegos",
			Description: "Muestra quién está jugando a qué ahora mismo",
		},
		watch:       watch,
		snapshotter: snapshotter,
		compositor:  compositor,
		logger:      logger.With().Str("command", "juegos").Logger(),
	}
}

// Handle processes a Discord interaction for the juegos command
func (c *JuegosCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	observations, err := c.snapshotter.Snapshot(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to snapshot presences")
		return RespondWithError(s, i, "No he podido obtener el estado de los juegos. Inténtalo de nuevo.")
	}

	groups := c.watch.Snapshot()

	embeds := []*discordgo.MessageEmbed{c.groupsEmbed(groups)}
	if idle := c.idleEmbed(observations); idle != nil {
		embeds = append(embeds, idle)
	}

	files := c.avatarFile(ctx, observations, embeds[0])

	return RespondWithEmbeds(s, i, embeds, files)
}

// groupsEmbed renders one field per tracked game, busiest first
func (c *JuegosCommand) groupsEmbed(groups []gamewatchSvc.GameGroup) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎮 Juegos en curso",
		Color: 0x0099ff,
	}

	if len(groups) == 0 {
		embed.Description = "Nadie está jugando a nada ahora mismo."
		return embed
	}

	for _, group := range groups {
		name := fmt.Sprintf("%s (%d)", group.Game, len(group.PlayerNames))
		value := strings.Join(group.PlayerNames, ", ")
		if len(group.PlayerNames) == 1 {
			value += "\n*falta 1 para montar evento*"
		}
		if group.EventID != "" && !group.StartTime.IsZero() {
			value += fmt.Sprintf("\nEn sesión desde <t:%d:R>", group.StartTime.Unix())
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: value,
		})
	}

	return embed
}

// idleEmbed lists monitored members who are online but not playing
func (c *JuegosCommand) idleEmbed(observations []models.Observation) *discordgo.MessageEmbed {
	var idle []string
	for _, obs := range observations {
		if obs.Game == "" {
			idle = append(idle, obs.DisplayName)
		}
	}

	if len(idle) == 0 {
		return nil
	}

	return &discordgo.MessageEmbed{
		Title:       "😴 Sin jugar",
		Description: strings.Join(idle, ", "),
		Color:       0x999999,
	}
}

// avatarFile composes the avatars of up to four active players and
// wires the attachment into the main embed. Failures only cost the
// image.
func (c *JuegosCommand) avatarFile(ctx context.Context, observations []models.Observation, embed *discordgo.MessageEmbed) []*discordgo.File {
	if c.compositor == nil {
		return nil
	}

	var urls []string
	for _, obs := range observations {
		if obs.Game != "" && obs.AvatarURL != "" {
			urls = append(urls, obs.AvatarURL)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	data, err := c.compositor.Composite(ctx, urls)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to compose avatars")
		return nil
	}

	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + avatarAttachmentName}

	return []*discordgo.File{{
		Name:        avatarAttachmentName,
		ContentType: "image/png",
		Reader:      bytes.NewReader(data),
	}}
}
