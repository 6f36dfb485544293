package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	beernightSvc "github.com/robuso/conclave/internal/services/beernight"
)

// BeerNightCommand handles the /beernight command
type BeerNightCommand struct {
	BaseCommand
	beernight beernightSvc.Service
}

// NewBeerNightCommand creates a new beernight command handler
func NewBeerNightCommand(beernight beernightSvc.Service) *BeerNightCommand {
	return &BeerNightCommand{
		BaseCommand: BaseCommand{
			Name:        "beernight",
			Description: "Sesión de beber con reglas",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "empezar",
					Description: "Empieza la Beer Night con una regla aleatoria",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "masreglas",
					Description: "Añade otra regla a la sesión",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "terminar",
					Description: "Termina la Beer Night",
				},
			},
		},
		beernight: beernight,
	}
}

// Handle processes a Discord interaction for the beernight command
func (c *BeerNightCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	userID, _ := interactionUser(i)

	switch data.Options[0].Name {
	case "empezar":
		return c.handleStart(s, i, userID)
	case "masreglas":
		return c.handleMoreRules(s, i)
	case "terminar":
		return c.handleEnd(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *BeerNightCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.beernight.Start(context.Background(), &beernightSvc.StartInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		StartedBy: userID,
	})
	if err != nil {
		if errors.Is(err, beernightSvc.ErrSessionActive) {
			return RespondWithEphemeralMessage(s, i,
				"¡La Beer Night ya está en curso! Usa `/beernight terminar` o `/beernight masreglas`.")
		}
		return RespondWithError(s, i, "No he podido empezar la Beer Night.")
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("Empieza la noche del alcohol 🍻\n\n**Mandamientos divinos:**\n>>> %s", output.Rule))
}

func (c *BeerNightCommand) handleMoreRules(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.beernight.MoreRules(context.Background(), &beernightSvc.MoreRulesInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		switch {
		case errors.Is(err, beernightSvc.ErrNoSession):
			return RespondWithEphemeralMessage(s, i,
				"No hay una Beer Night activa. ¡Empieza una con `/beernight empezar`!")
		case errors.Is(err, beernightSvc.ErrNoRulesLeft):
			return RespondWithEphemeralMessage(s, i,
				"¡No quedan normas por poner en esta sesión! ¡A cumplir las que ya hay! 😈")
		default:
			return RespondWithError(s, i, "No he podido añadir más reglas.")
		}
	}

	var rules strings.Builder
	for _, rule := range output.ActiveRules {
		fmt.Fprintf(&rules, "- %s\n", rule)
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("¡Más reglas para la Beer Night! 🤯\n\n**Mandamientos Actuales:**\n>>> %s", rules.String()))
}

func (c *BeerNightCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	_, err := c.beernight.End(context.Background(), &beernightSvc.EndInput{GuildID: i.GuildID})
	if err != nil {
		if errors.Is(err, beernightSvc.ErrNoSession) {
			return RespondWithEphemeralMessage(s, i, "No hay ninguna Beer Night activa.")
		}
		return RespondWithError(s, i, "No he podido terminar la Beer Night.")
	}

	return RespondWithMessage(s, i,
		"¡La Beer Night ha terminado! Que los efectos secundarios sean leves. 🤢")
}
