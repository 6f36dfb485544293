package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	birthdaysSvc "github.com/robuso/conclave/internal/services/birthdays"
)

// CumpleCommand handles the /cumple command
type CumpleCommand struct {
	BaseCommand
	birthdays birthdaysSvc.Service
}

// NewCumpleCommand creates a new cumple command handler
func NewCumpleCommand(birthdays birthdaysSvc.Service) *CumpleCommand {
	return &CumpleCommand{
		BaseCommand: BaseCommand{
			Name:        "cumple",
			Description: "Registra o consulta tu cumpleaños",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "registrar",
					Description: "Registra tu cumpleaños",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "dia",
							Description: "Día del mes",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "mes",
							Description: "Mes",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "anio",
							Description: "Año (opcional)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ver",
					Description: "Muestra tu cumpleaños registrado",
				},
			},
		},
		birthdays: birthdays,
	}
}

// Handle processes a Discord interaction for the cumple command
func (c *CumpleCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	userID, name := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "No he podido identificarte.")
	}

	switch data.Options[0].Name {
	case "registrar":
		return c.handleRegister(s, i, userID, name, data.Options[0].Options)
	case "ver":
		return c.handleView(s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *CumpleCommand) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate, userID, name string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &birthdaysSvc.RegisterInput{UserID: userID, Name: name}
	for _, opt := range options {
		switch opt.Name {
		case "dia":
			input.Day = int(opt.IntValue())
		case "mes":
			input.Month = int(opt.IntValue())
		case "anio":
			input.Year = int(opt.IntValue())
		}
	}

	output, err := c.birthdays.Register(context.Background(), input)
	if err != nil {
		if errors.Is(err, birthdaysSvc.ErrInvalidDate) {
			return RespondWithError(s, i, "Esa fecha no existe. Revisa el día y el mes.")
		}
		return RespondWithError(s, i, "No he podido registrar tu cumpleaños.")
	}

	b := output.Birthday
	return RespondWithMessage(s, i,
		fmt.Sprintf("🎉 Cumpleaños registrado para %s: %d/%d/%d", b.Name, b.Day, b.Month, b.Year))
}

func (c *CumpleCommand) handleView(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.birthdays.Get(context.Background(), &birthdaysSvc.GetInput{UserID: userID})
	if err != nil {
		return RespondWithError(s, i, "No he podido consultar tu cumpleaños.")
	}

	if output.Birthday == nil {
		return RespondWithEphemeralMessage(s, i,
			"No tienes cumpleaños registrado. Usa `/cumple registrar` para hacerlo.")
	}

	b := output.Birthday
	return RespondWithMessage(s, i,
		fmt.Sprintf("🎂 Tu cumpleaños registrado es: %d/%d/%d", b.Day, b.Month, b.Year))
}
