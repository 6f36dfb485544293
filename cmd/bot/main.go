package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/robuso/conclave/internal/avatars"
	"github.com/robuso/conclave/internal/common/clock"
	"github.com/robuso/conclave/internal/common/uuid"
	"github.com/robuso/conclave/internal/config"
	"github.com/robuso/conclave/internal/eventbridge"
	"github.com/robuso/conclave/internal/handlers/discord"
	"github.com/robuso/conclave/internal/logging"
	"github.com/robuso/conclave/internal/observer"
	beernightRepo "github.com/robuso/conclave/internal/repositories/beernight"
	birthdaysRepo "github.com/robuso/conclave/internal/repositories/birthdays"
	gamewatchRepo "github.com/robuso/conclave/internal/repositories/gamewatch"
	playlistRepo "github.com/robuso/conclave/internal/repositories/playlist"
	pushupsRepo "github.com/robuso/conclave/internal/repositories/pushups"
	schedulesRepo "github.com/robuso/conclave/internal/repositories/schedules"
	beernightSvc "github.com/robuso/conclave/internal/services/beernight"
	birthdaysSvc "github.com/robuso/conclave/internal/services/birthdays"
	gamewatchSvc "github.com/robuso/conclave/internal/services/gamewatch"
	playlistSvc "github.com/robuso/conclave/internal/services/playlist"
	pushupsSvc "github.com/robuso/conclave/internal/services/pushups"
	workschedSvc "github.com/robuso/conclave/internal/services/worksched"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(cfg.Log)

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildMessages

	sysClock := &clock.DefaultClock{}

	// Presence observer and its snapshot source
	obs, err := observer.New(&observer.Config{MonitoredRoleIDs: cfg.Watch.MonitoredRoleIDs})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create observer")
	}

	snapshotter, err := discord.NewStateSnapshotter(session, obs, cfg.Discord.GuildID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create snapshotter")
	}

	// Event bridge over the Discord API
	api, err := eventbridge.NewSessionAPI(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord API wrapper")
	}

	bridge, err := eventbridge.New(&eventbridge.Config{
		API:       api,
		Clock:     sysClock,
		GuildID:   cfg.Discord.GuildID,
		ChannelID: cfg.Watch.NotificationChannelID,
		Logger:    log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event bridge")
	}

	watchRepo, err := gamewatchRepo.NewFile(&gamewatchRepo.Config{Path: cfg.Watch.StateFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session repository")
	}

	watch, err := gamewatchSvc.New(&gamewatchSvc.Config{
		Bridge:              bridge,
		Repo:                watchRepo,
		Snapshotter:         snapshotter,
		Clock:               sysClock,
		GuildID:             cfg.Discord.GuildID,
		ActivationThreshold: cfg.Watch.ActivationThreshold,
		GracePeriod:         time.Duration(cfg.Watch.GraceSeconds) * time.Second,
		PollInterval:        time.Duration(cfg.Watch.PollIntervalSeconds) * time.Second,
		Logger:              log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game watch service")
	}

	notifier, err := discord.NewNotifier(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}

	// Redis backs the beer night session state
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	cancelPing()

	nightRepo, err := beernightRepo.NewRedis(&beernightRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create beer night repository")
	}

	beerNight, err := beernightSvc.New(&beernightSvc.Config{
		Repo:     nightRepo,
		Notifier: notifier,
		Clock:    sysClock,
		UUID:     uuid.New(),
		Logger:   log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create beer night service")
	}

	bdayRepo, err := birthdaysRepo.NewFile(&birthdaysRepo.Config{Path: cfg.Features.BirthdaysFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create birthday repository")
	}

	birthdays, err := birthdaysSvc.New(&birthdaysSvc.Config{
		Repo:      bdayRepo,
		Messenger: notifier,
		Clock:     sysClock,
		Logger:    log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create birthday service")
	}

	schedRepo, err := schedulesRepo.NewFile(&schedulesRepo.Config{Path: cfg.Features.SchedulesFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create schedule repository")
	}

	worksched, err := workschedSvc.New(&workschedSvc.Config{
		Repo:             schedRepo,
		Notifier:         notifier,
		Clock:            sysClock,
		DefaultChannelID: cfg.Features.DefaultChannelID,
		Logger:           log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create work schedule service")
	}

	var pushups pushupsSvc.Service
	if cfg.Features.PushupUserID != "" && cfg.Features.PushupChannelID != "" {
		pushRepo, err := pushupsRepo.NewFile(&pushupsRepo.Config{Path: cfg.Features.PushupsFile})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create push-up repository")
		}

		startDate, err := time.Parse("2006-01-02", cfg.Features.PushupStartDate)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid push-up start date")
		}

		pushups, err = pushupsSvc.New(&pushupsSvc.Config{
			Repo:      pushRepo,
			Notifier:  notifier,
			Clock:     sysClock,
			UserID:    cfg.Features.PushupUserID,
			ChannelID: cfg.Features.PushupChannelID,
			StartDate: startDate,
			Logger:    log.Logger,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create push-up service")
		}
	}

	queueRepo, err := playlistRepo.NewFile(&playlistRepo.Config{Path: cfg.Features.QueueFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create queue repository")
	}

	playlist, err := playlistSvc.New(&playlistSvc.Config{
		Repo:     queueRepo,
		Resolver: playlistSvc.URLResolver{},
		Logger:   log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create playlist service")
	}

	compositor, err := avatars.New(&avatars.Config{Logger: log.Logger})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create avatar compositor")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		GameWatch:     watch,
		Snapshotter:   snapshotter,
		BeerNight:     beerNight,
		Birthdays:     birthdays,
		WorkSched:     worksched,
		Pushups:       pushups,
		Playlist:      playlist,
		Compositor:    compositor,
		Logger:        log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := watch.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("failed to restore session checkpoint")
	}
	if err := playlist.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("failed to restore song queue")
	}

	go watch.Run(ctx)
	go birthdays.Run(ctx)
	go worksched.Run(ctx)
	go beerNight.Run(ctx, cfg.Discord.GuildID)
	if pushups != nil {
		go pushups.Run(ctx)
	}

	// Wait for interrupt signal to gracefully shut down
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()

	saveCtx, cancelSave := context.WithTimeout(context.Background(), 5*time.Second)
	if err := watch.Checkpoint(saveCtx); err != nil {
		log.Error().Err(err).Msg("final checkpoint failed")
	}
	cancelSave()

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}
