package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/davrost/arcana/internal/models"
)

const (
	// Key prefixes for Redis
	drawKeyPrefix       = "draw:"
	actorDrawsKeyPrefix = "actor_draws:"
	recentDrawsKey      = "recent_draws"

	// defaultRecentLimit caps GetRecentDraws when the caller does not
	defaultRecentLimit = 10
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// AddDrawRecord appends one draw to the ledger
func (r *redisRepository) AddDrawRecord(ctx context.Context, input *AddDrawRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("draw record ID cannot be empty")
	}

	if record.ActorKey == "" {
		return errors.New("draw record actor key cannot be empty")
	}

	if record.Timestamp.IsZero() {
		return errors.New("draw record timestamp cannot be zero")
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal draw record: %w", err)
	}

	score := float64(record.Timestamp.UnixMilli())

	// Store the record and index it per actor and globally
	pipe := r.client.Pipeline()

	drawKey := fmt.Sprintf("%s%s", drawKeyPrefix, record.ID)
	pipe.Set(ctx, drawKey, recordJSON, 0)

	actorKey := fmt.Sprintf("%s%s", actorDrawsKeyPrefix, record.ActorKey)
	pipe.ZAdd(ctx, actorKey, redis.Z{
		Score:  score,
		Member: record.ID,
	})

	pipe.ZAdd(ctx, recentDrawsKey, redis.Z{
		Score:  score,
		Member: record.ID,
	})

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add draw record: %w", err)
	}

	return nil
}

// GetActorDraws returns one actor's draws, oldest first
func (r *redisRepository) GetActorDraws(ctx context.Context, input *GetActorDrawsInput) (*GetActorDrawsOutput, error) {
	if input == nil || input.ActorKey == "" {
		return nil, errors.New("input and actor key cannot be empty")
	}

	actorKey := fmt.Sprintf("%s%s", actorDrawsKeyPrefix, input.ActorKey)

	drawIDs, err := r.client.ZRange(ctx, actorKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get draw IDs for actor: %w", err)
	}

	records, err := r.fetchRecords(ctx, drawIDs)
	if err != nil {
		return nil, err
	}

	return &GetActorDrawsOutput{
		Records: records,
	}, nil
}

// GetRecentDraws returns the latest draws across all actors, newest first
func (r *redisRepository) GetRecentDraws(ctx context.Context, input *GetRecentDrawsInput) (*GetRecentDrawsOutput, error) {
	limit := defaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	drawIDs, err := r.client.ZRevRange(ctx, recentDrawsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent draw IDs: %w", err)
	}

	records, err := r.fetchRecords(ctx, drawIDs)
	if err != nil {
		return nil, err
	}

	return &GetRecentDrawsOutput{
		Records: records,
	}, nil
}

// fetchRecords loads draw records by ID, preserving the given order
func (r *redisRepository) fetchRecords(ctx context.Context, drawIDs []string) ([]*models.DrawRecord, error) {
	if len(drawIDs) == 0 {
		return []*models.DrawRecord{}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(drawIDs))

	for _, drawID := range drawIDs {
		drawKey := fmt.Sprintf("%s%s", drawKeyPrefix, drawID)
		commands = append(commands, pipe.Get(ctx, drawKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get draw records: %w", err)
	}

	records := make([]*models.DrawRecord, 0, len(drawIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was trimmed between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get draw record %s: %w", drawIDs[i], err)
		}

		var record models.DrawRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draw record %s: %w", drawIDs[i], err)
		}

		records = append(records, &record)
	}

	return records, nil
}
