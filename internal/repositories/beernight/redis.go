package beernight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/robuso/conclave/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix   = "beernight:"
	guildSessionPrefix = "guild_beernight:"
)

// Config holds configuration for the Redis beer night repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed beer night repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Save stores the session. While the session is active the guild
// pointer tracks it; ending the session removes the pointer so the
// next GetCurrent comes back empty.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.BeerNight == nil {
		return errors.New("input and beer night cannot be nil")
	}

	session := input.BeerNight
	if session.ID == "" {
		return errors.New("beer night ID cannot be empty")
	}

	if session.GuildID == "" {
		return errors.New("guild ID is required")
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal beer night: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := sessionKeyPrefix + session.ID
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	guildSessionKey := guildSessionPrefix + session.GuildID
	if session.Active {
		pipe.Set(ctx, guildSessionKey, session.ID, 0)
	} else {
		pipe.Del(ctx, guildSessionKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store beer night: %w", err)
	}

	return nil
}

// GetCurrent retrieves the guild's active session
func (r *redisRepository) GetCurrent(ctx context.Context, input *GetCurrentInput) (*GetCurrentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	guildSessionKey := guildSessionPrefix + input.GuildID
	sessionID, err := r.client.Get(ctx, guildSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No session running in this guild
			return &GetCurrentOutput{BeerNight: nil}, nil
		}
		return nil, fmt.Errorf("failed to get current beer night ID: %w", err)
	}

	sessionKey := sessionKeyPrefix + sessionID
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			// Session record is gone, clear the dangling pointer
			r.client.Del(ctx, guildSessionKey)
			return &GetCurrentOutput{BeerNight: nil}, nil
		}
		return nil, fmt.Errorf("failed to get beer night: %w", err)
	}

	var session models.BeerNight
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal beer night: %w", err)
	}

	return &GetCurrentOutput{BeerNight: &session}, nil
}
