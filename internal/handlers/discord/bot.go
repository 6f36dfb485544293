package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/robuso/conclave/internal/avatars"
	beernightSvc "github.com/robuso/conclave/internal/services/beernight"
	birthdaysSvc "github.com/robuso/conclave/internal/services/birthdays"
	gamewatchSvc "github.com/robuso/conclave/internal/services/gamewatch"
	playlistSvc "github.com/robuso/conclave/internal/services/playlist"
	pushupsSvc "github.com/robuso/conclave/internal/services/pushups"
	workschedSvc "github.com/robuso/conclave/internal/services/worksched"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, already configured with intents
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Guild the bot serves; commands are registered per guild
	GuildID string

	// GameWatch drives the /juegos status view
	GameWatch gamewatchSvc.Service

	// Snapshotter feeds /juegos with the live observations used for
	// the avatar strip and the idle list
	Snapshotter gamewatchSvc.Snapshotter

	// BeerNight runs drinking sessions
	BeerNight beernightSvc.Service

	// Birthdays registers and looks up birthdays
	Birthdays birthdaysSvc.Service

	// WorkSched manages work schedules
	WorkSched workschedSvc.Service

	// Pushups runs the daily push-up challenge
	Pushups pushupsSvc.Service

	// Playlist manages the song queue
	Playlist playlistSvc.Service

	// Compositor renders the combined avatar image for /juegos
	Compositor *avatars.Compositor

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.GameWatch == nil {
		return nil, errors.New("game watch service cannot be nil")
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     cfg.Logger.With().Str("component", "discord").Logger(),
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers the commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewJuegosCommand(b.config.GameWatch, b.config.Snapshotter, b.config.Compositor, b.logger),
	}
	if b.config.Birthdays != nil {
		handlers = append(handlers, NewCumpleCommand(b.config.Birthdays))
	}
	if b.config.WorkSched != nil {
		handlers = append(handlers, NewHorarioCommand(b.config.WorkSched))
	}
	if b.config.Pushups != nil {
		handlers = append(handlers, NewFlexionesCommand(b.config.Pushups))
	}
	if b.config.BeerNight != nil {
		handlers = append(handlers, NewBeerNightCommand(b.config.BeerNight))
	}
	if b.config.Playlist != nil {
		handlers = append(handlers, NewColaCommand(b.config.Playlist))
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info().Int("commands", len(b.commands)).Msg("bot running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction dispatches an interaction to its command handler
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmd, ok := b.commands[i.ApplicationCommandData().Name]
	if !ok {
		return
	}

	if err := cmd.Handle(s, i); err != nil {
		b.logger.Error().Err(err).Str("command", cmd.GetName()).Msg("command failed")
	}
}
