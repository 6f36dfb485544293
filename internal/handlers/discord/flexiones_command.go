package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	pushupsSvc "github.com/robuso/conclave/internal/services/pushups"
)

// FlexionesCommand handles the /flexiones command
type FlexionesCommand struct {
	BaseCommand
	pushups pushupsSvc.Service
}

// NewFlexionesCommand creates a new flexiones command handler
func NewFlexionesCommand(pushups pushupsSvc.Service) *FlexionesCommand {
	return &FlexionesCommand{
		BaseCommand: BaseCommand{
			Name:        "flexiones",
			Description: "Reto diario de flexiones",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hechas",
					Description: "Confirma las flexiones de hoy",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "estado",
					Description: "Muestra el estado del reto de hoy",
				},
			},
		},
		pushups: pushups,
	}
}

// Handle processes a Discord interaction for the flexiones command
func (c *FlexionesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	userID, _ := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "No he podido identificarte.")
	}

	switch data.Options[0].Name {
	case "hechas":
		return c.handleConfirm(s, i, userID)
	case "estado":
		return c.handleStatus(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *FlexionesCommand) handleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.pushups.Confirm(context.Background(), &pushupsSvc.ConfirmInput{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, pushupsSvc.ErrNotTracked):
			return RespondWithEphemeralMessage(s, i, "Este reto no es para ti. 😏")
		case errors.Is(err, pushupsSvc.ErrAlreadyConfirmed):
			return RespondWithEphemeralMessage(s, i, "Ya habías confirmado las flexiones de hoy. 💪")
		default:
			return RespondWithError(s, i, "No he podido confirmar tus flexiones.")
		}
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("💪 ¡Día %d completado! %d flexiones más fuertes que ayer.", output.Day, output.Day))
}

func (c *FlexionesCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	status, err := c.pushups.Status(context.Background())
	if err != nil {
		return RespondWithError(s, i, "No he podido consultar el estado del reto.")
	}

	state := "pendiente ⏳"
	if status.Confirmed {
		state = "confirmado ✅"
	} else if !status.Reminded {
		state = "aún sin recordatorio 💤"
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("Día %d del reto: tocan %d flexiones. Estado de hoy: %s", status.Day, status.Day, state))
}
