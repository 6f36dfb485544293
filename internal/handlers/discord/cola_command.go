package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	playlistSvc "github.com/robuso/conclave/internal/services/playlist"
)

// ColaCommand handles the /cola command for the song queue
type ColaCommand struct {
	BaseCommand
	playlist playlistSvc.Service
}

// NewColaCommand creates a new cola command handler
func NewColaCommand(playlist playlistSvc.Service) *ColaCommand {
	return &ColaCommand{
		BaseCommand: BaseCommand{
			Name:        "cola",
			Description: "Gestiona la cola de canciones",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Añade una canción a la cola",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cancion",
							Description: "URL o texto de búsqueda",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "skip",
					Description: "Salta la canción actual",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lista",
					Description: "Muestra la cola",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "limpiar",
					Description: "Vacía la cola",
				},
			},
		},
		playlist: playlist,
	}
}

// Handle processes a Discord interaction for the cola command
func (c *ColaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	userID, _ := interactionUser(i)

	switch data.Options[0].Name {
	case "add":
		return c.handleAdd(s, i, userID, data.Options[0].Options)
	case "skip":
		return c.handleSkip(s, i)
	case "lista":
		return c.handleList(s, i)
	case "limpiar":
		return c.handleClear(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *ColaCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	var query string
	for _, opt := range options {
		if opt.Name == "cancion" {
			query = opt.StringValue()
		}
	}

	output, err := c.playlist.Add(context.Background(), &playlistSvc.AddInput{
		Query:       query,
		RequestedBy: userID,
	})
	if err != nil {
		if errors.Is(err, playlistSvc.ErrQueueFull) {
			return RespondWithEphemeralMessage(s, i, "La cola está llena. Prueba más tarde.")
		}
		return RespondWithError(s, i, "No he podido añadir esa canción.")
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("🎵 **%s** añadida a la cola (posición %d)", output.Track.Title, output.Position))
}

func (c *ColaCommand) handleSkip(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.playlist.Skip(context.Background())
	if err != nil {
		if errors.Is(err, playlistSvc.ErrQueueEmpty) {
			return RespondWithEphemeralMessage(s, i, "La cola está vacía.")
		}
		return RespondWithError(s, i, "No he podido saltar la canción.")
	}

	if output.Next == nil {
		return RespondWithMessage(s, i,
			fmt.Sprintf("⏭️ **%s** saltada. La cola se ha quedado vacía.", output.Skipped.Title))
	}
	return RespondWithMessage(s, i,
		fmt.Sprintf("⏭️ **%s** saltada. Ahora suena **%s**.", output.Skipped.Title, output.Next.Title))
}

func (c *ColaCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.playlist.List(context.Background())
	if err != nil {
		return RespondWithError(s, i, "No he podido consultar la cola.")
	}

	if len(output.Tracks) == 0 {
		return RespondWithMessage(s, i, "La cola está vacía.")
	}

	var list strings.Builder
	for idx, track := range output.Tracks {
		fmt.Fprintf(&list, "%d. **%s** (%d:%02d)\n", idx+1, track.Title, track.Duration/60, track.Duration%60)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{{
		Title:       "🎶 Cola de canciones",
		Description: list.String(),
		Color:       0x9b59b6,
	}}, nil)
}

func (c *ColaCommand) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := c.playlist.Clear(context.Background()); err != nil {
		return RespondWithError(s, i, "No he podido vaciar la cola.")
	}

	return RespondWithMessage(s, i, "🗑️ Cola vaciada.")
}
