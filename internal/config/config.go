package config

import "github.com/caarlos0/env/v11"

// AppConfig aggregates every component's configuration.
type AppConfig struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Watch    WatchConfig
	Features FeatureConfig
	Log      LogConfig
}

// DiscordConfig holds the platform connection settings.
type DiscordConfig struct {
	Token         string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID,required,notEmpty"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// WatchConfig holds the game-session monitor settings.
type WatchConfig struct {
	// MonitoredRoleIDs are the role IDs whose holders are tracked
	MonitoredRoleIDs []string `env:"MONITORED_ROLE_IDS" envSeparator:","`

	// NotificationChannelID is where status messages are posted
	NotificationChannelID string `env:"NOTIFICATION_CHANNEL_ID,required,notEmpty"`

	// PollIntervalSeconds is the monitor tick period
	PollIntervalSeconds int `env:"POLL_INTERVAL_SECONDS" envDefault:"20"`

	// ActivationThreshold is the minimum concurrent players for an
	// active session
	ActivationThreshold int `env:"ACTIVATION_THRESHOLD" envDefault:"2"`

	// GraceSeconds is how long a below-threshold session is kept
	// before its event is torn down
	GraceSeconds int `env:"GRACE_SECONDS" envDefault:"900"`

	// StateFile is the JSON checkpoint for in-flight events
	StateFile string `env:"WATCH_STATE_FILE" envDefault:"json/active_events.json"`
}

// FeatureConfig holds the settings of the smaller cogs.
type FeatureConfig struct {
	BirthdaysFile string `env:"BIRTHDAYS_FILE" envDefault:"json/birthdays.json"`
	SchedulesFile string `env:"SCHEDULES_FILE" envDefault:"json/schedules.json"`
	PushupsFile   string `env:"PUSHUPS_FILE" envDefault:"json/pushups.json"`
	QueueFile     string `env:"QUEUE_FILE" envDefault:"json/queue.json"`

	// PushupUserID is the member on the daily push-up program
	PushupUserID string `env:"PUSHUP_USER_ID"`

	// PushupChannelID is where reminders are posted
	PushupChannelID string `env:"PUSHUP_CHANNEL_ID"`

	// PushupStartDate is day one of the program (YYYY-MM-DD)
	PushupStartDate string `env:"PUSHUP_START_DATE" envDefault:"2025-06-08"`

	// DefaultChannelID is the fallback channel for schedule
	// notifications
	DefaultChannelID string `env:"DEFAULT_CHANNEL_ID"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// LoadApp parses the full application configuration from the
// environment.
func LoadApp() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg.Discord); err != nil {
		return AppConfig{}, err
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return AppConfig{}, err
	}
	if err := env.Parse(&cfg.Watch); err != nil {
		return AppConfig{}, err
	}
	if err := env.Parse(&cfg.Features); err != nil {
		return AppConfig{}, err
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
