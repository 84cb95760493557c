package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/redis/go-redis/v9"
)

// settingsKey holds the singleton round settings record
const settingsKey = "round_settings"

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps self-healed settings records
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed round settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
	}, nil
}

// GetSettings retrieves the round settings from Redis. A missing record
// self-heals: a default inactive record is created and returned.
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.RoundSettings, error) {
	settingsJSON, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			settings := &models.RoundSettings{
				ActiveRound: models.RoundInactive,
				LastUpdated: r.clock.Now(),
			}
			if saveErr := r.SaveSettings(ctx, &SaveSettingsInput{Settings: settings}); saveErr != nil {
				return nil, saveErr
			}
			return settings, nil
		}
		return nil, fmt.Errorf("failed to get round settings: %w", err)
	}

	var settings models.RoundSettings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings persists the round settings to Redis
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal round settings: %w", err)
	}

	if err := r.client.Set(ctx, settingsKey, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save round settings: %w", err)
	}

	return nil
}
