package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"
	participantSetKey    = "participants"
	quotaUsedKey         = "qualified_quota"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant

	if p.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	// Save the record and track the id in the member set in one round trip
	pipe := r.client.Pipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)
	pipe.SAdd(ctx, participantSetKey, p.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ParticipantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// ListParticipants retrieves all participants from Redis, newest first
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	ids, err := r.client.SMembers(ctx, participantSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListParticipantsOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd)

	for _, id := range ids {
		participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, id)
		commands[id] = pipe.Get(ctx, participantKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(ids))
	for id, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record deleted between the set read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", id, err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", id, err)
		}

		participants = append(participants, &p)
	}

	// Newest registrations first, matching the admin dashboard ordering
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].RegisteredAt.After(participants[j].RegisteredAt)
	})

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}

// GetQuotaUsed reads the number of qualification slots consumed so far
func (r *redisRepository) GetQuotaUsed(ctx context.Context, input *GetQuotaUsedInput) (*GetQuotaUsedOutput, error) {
	count, err := r.client.Get(ctx, quotaUsedKey).Int()
	if err != nil {
		if err == redis.Nil {
			return &GetQuotaUsedOutput{Count: 0}, nil
		}
		return nil, fmt.Errorf("failed to get quota count: %w", err)
	}

	return &GetQuotaUsedOutput{
		Count: count,
	}, nil
}

// QualifyParticipant persists a qualified participant and consumes one
// qualification slot in a single MULTI/EXEC transaction, so the counter can
// never drift from the stored statuses if one half fails
func (r *redisRepository) QualifyParticipant(ctx context.Context, input *QualifyParticipantInput) (*QualifyParticipantOutput, error) {
	if input == nil || input.Participant == nil {
		return nil, errors.New("input and participant cannot be nil")
	}

	p := input.Participant

	if p.ID == "" {
		return nil, errors.New("participant ID cannot be empty")
	}

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)
	pipe.SAdd(ctx, participantSetKey, p.ID)
	incr := pipe.Incr(ctx, quotaUsedKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to qualify participant: %w", err)
	}

	return &QualifyParticipantOutput{
		Count: int(incr.Val()),
	}, nil
}

// DeleteAllParticipants removes every participant record from Redis
func (r *redisRepository) DeleteAllParticipants(ctx context.Context, input *DeleteAllParticipantsInput) error {
	ids, err := r.client.SMembers(ctx, participantSetKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get participant IDs: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, id := range ids {
		participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, id)
		pipe.Del(ctx, participantKey)
	}
	pipe.Del(ctx, participantSetKey)
	pipe.Del(ctx, quotaUsedKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}
