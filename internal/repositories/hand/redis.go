package hand

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	handKeyPrefix = "hand:"

	// maxAppendRetries bounds how often an append is retried when another
	// writer touches the hand mid-transaction
	maxAppendRetries = 3
)

// ErrDuplicateCard is returned when the hand already holds the card
var ErrDuplicateCard = errors.New("card already in hand")

// Config holds configuration for the Redis hand repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed hand repository
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

// GetHand returns the actor's card IDs in draw order
func (r *redisRepository) GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error) {
	if input == nil || input.ActorKey == "" {
		return nil, errors.New("input and actor key cannot be empty")
	}

	key := fmt.Sprintf("%s%s", handKeyPrefix, input.ActorKey)

	cardIDs, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get hand: %w", err)
	}

	return &GetHandOutput{
		CardIDs: cardIDs,
	}, nil
}

// AppendCard adds a card to the end of the actor's hand. The read and the
// push run under WATCH so a concurrent append aborts the transaction instead
// of slipping a duplicate in between them.
func (r *redisRepository) AppendCard(ctx context.Context, input *AppendCardInput) error {
	if input == nil || input.ActorKey == "" || input.CardID == "" {
		return errors.New("input, actor key and card ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", handKeyPrefix, input.ActorKey)

	txf := func(tx *redis.Tx) error {
		cardIDs, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		for _, id := range cardIDs {
			if id == input.CardID {
				return ErrDuplicateCard
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, key, input.CardID)
			return nil
		})
		return err
	}

	for i := 0; i < maxAppendRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}

		if errors.Is(err, redis.TxFailedErr) {
			// Lost the race, start over from a fresh read
			continue
		}

		if errors.Is(err, ErrDuplicateCard) {
			return ErrDuplicateCard
		}

		return fmt.Errorf("failed to append card: %w", err)
	}

	return fmt.Errorf("failed to append card: %w", redis.TxFailedErr)
}
