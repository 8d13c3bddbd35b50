package cooldown

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	cooldownKeyPrefix = "cooldown:"
)

// Config holds configuration for the Redis cooldown repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed cooldown repository
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

// Acquire claims the actor's cooldown slot with SET NX so the check and the
// write are a single step. Reading first and writing after would let two
// concurrent attempts both see an expired slot.
func (r *redisRepository) Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error) {
	if input == nil || input.ActorKey == "" {
		return nil, errors.New("input and actor key cannot be empty")
	}

	if input.TTL <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	key := fmt.Sprintf("%s%s", cooldownKeyPrefix, input.ActorKey)

	acquired, err := r.client.SetNX(ctx, key, "1", input.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire cooldown: %w", err)
	}

	return &AcquireOutput{
		Acquired: acquired,
	}, nil
}

// Remaining reports the unexpired portion of the actor's claim
func (r *redisRepository) Remaining(ctx context.Context, input *RemainingInput) (*RemainingOutput, error) {
	if input == nil || input.ActorKey == "" {
		return nil, errors.New("input and actor key cannot be empty")
	}

	key := fmt.Sprintf("%s%s", cooldownKeyPrefix, input.ActorKey)

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cooldown ttl: %w", err)
	}

	// PTTL reports negative values for a missing key or a key without expiry
	if ttl < 0 {
		return &RemainingOutput{Remaining: 0}, nil
	}

	return &RemainingOutput{
		Remaining: ttl,
	}, nil
}
