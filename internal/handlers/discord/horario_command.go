package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	workschedSvc "github.com/robuso/conclave/internal/services/worksched"
)

// weekdayOrder is the display order for the schedule embed
var weekdayOrder = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// HorarioCommand handles the /horario command
type HorarioCommand struct {
	BaseCommand
	worksched workschedSvc.Service
}

// NewHorarioCommand creates a new horario command handler
func NewHorarioCommand(worksched workschedSvc.Service) *HorarioCommand {
	return &HorarioCommand{
		BaseCommand: BaseCommand{
			Name:        "horario",
			Description: "Gestiona tu horario de trabajo",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "establecer",
					Description: "Establece tu horario para un día",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "dia",
							Description: "Día de la semana (lunes a domingo)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "entrada",
							Description: "Hora de entrada HH:MM",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "salida",
							Description: "Hora de salida HH:MM",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "canal",
							Description: "Canal para las notificaciones",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ver",
					Description: "Muestra tu horario semanal",
				},
			},
		},
		worksched: worksched,
	}
}

// Handle processes a Discord interaction for the horario command
func (c *HorarioCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	userID, name := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "No he podido identificarte.")
	}

	switch data.Options[0].Name {
	case "establecer":
		return c.handleSet(s, i, userID, name, data.Options[0].Options)
	case "ver":
		return c.handleView(s, i, userID, name)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *HorarioCommand) handleSet(s *discordgo.Session, i *discordgo.InteractionCreate, userID, name string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &workschedSvc.SetShiftInput{UserID: userID, Name: name}
	for _, opt := range options {
		switch opt.Name {
		case "dia":
			input.Weekday = opt.StringValue()
		case "entrada":
			input.Entry = opt.StringValue()
		case "salida":
			input.Exit = opt.StringValue()
		case "canal":
			input.ChannelID = opt.ChannelValue(nil).ID
		}
	}

	output, err := c.worksched.SetShift(context.Background(), input)
	if err != nil {
		switch {
		case errors.Is(err, workschedSvc.ErrInvalidWeekday):
			return RespondWithError(s, i, "Día inválido. Usa: lunes, martes, miercoles, jueves, viernes, sabado o domingo.")
		case errors.Is(err, workschedSvc.ErrInvalidTime):
			return RespondWithError(s, i, "Formato de hora incorrecto. Usa HH:MM en formato 24 horas.")
		default:
			return RespondWithError(s, i, "No he podido guardar tu horario.")
		}
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{{
		Title: "📅 Horario Establecido",
		Color: 0x00ff00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Día", Value: output.Weekday, Inline: true},
			{Name: "Entrada", Value: output.Shift.Entry, Inline: true},
			{Name: "Salida", Value: output.Shift.Exit, Inline: true},
		},
	}}, nil)
}

func (c *HorarioCommand) handleView(s *discordgo.Session, i *discordgo.InteractionCreate, userID, name string) error {
	output, err := c.worksched.GetSchedule(context.Background(), &workschedSvc.GetScheduleInput{UserID: userID})
	if err != nil {
		return RespondWithError(s, i, "No he podido consultar tu horario.")
	}

	if len(output.Schedule) == 0 {
		return RespondWithEphemeralMessage(s, i,
			"No tienes horarios establecidos. Usa `/horario establecer` para crear uno.")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 Horario Semanal de %s", name),
		Color: 0x0099ff,
	}
	for _, weekday := range weekdayOrder {
		shift, ok := output.Schedule[weekday]
		if !ok || shift == nil {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📆 " + weekday,
			Value:  fmt.Sprintf("**Entrada:** %s\n**Salida:** %s", shift.Entry, shift.Exit),
			Inline: true,
		})
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, nil)
}
