package clicklog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key prefix for per-participant click lists
const clickListKeyPrefix = "link_clicks:"

// Config holds configuration for the Redis click log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed click log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddClick appends a click record to the participant's click list. Records
// are insert-only; nothing ever mutates or removes them.
func (r *redisRepository) AddClick(ctx context.Context, input *AddClickInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ParticipantID == "" {
		return errors.New("participant ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal click record: %w", err)
	}

	clickListKey := fmt.Sprintf("%s%s", clickListKeyPrefix, record.ParticipantID)
	if err := r.client.RPush(ctx, clickListKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to append click record: %w", err)
	}

	return nil
}

// GetClicksForParticipant retrieves all click records for a participant,
// newest first
func (r *redisRepository) GetClicksForParticipant(ctx context.Context, input *GetClicksForParticipantInput) (*GetClicksForParticipantOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	clickListKey := fmt.Sprintf("%s%s", clickListKeyPrefix, input.ParticipantID)
	entries, err := r.client.LRange(ctx, clickListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get click records: %w", err)
	}

	records := make([]*models.ClickRecord, 0, len(entries))
	// Walk backwards so the newest append comes out first
	for i := len(entries) - 1; i >= 0; i-- {
		var record models.ClickRecord
		if err := json.Unmarshal([]byte(entries[i]), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal click record: %w", err)
		}
		records = append(records, &record)
	}

	return &GetClicksForParticipantOutput{
		Records: records,
	}, nil
}
