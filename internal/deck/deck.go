package deck

import (
	"errors"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sampler.go github.com/davrost/arcana/internal/deck Sampler

// ErrExhausted is returned when every catalog card is already in the hand
var ErrExhausted = errors.New("deck exhausted")

// Sampler selects the next card for a hand
type Sampler interface {
	// Draw picks one card from catalogIDs that does not appear in handIDs
	Draw(catalogIDs, handIDs []string) (string, error)
}

// RandomSampler implements Sampler with a uniform pick over the remaining
// cards
type RandomSampler struct {
	random *rand.Rand
}

// Config for the random sampler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new random sampler
func New(cfg *Config) *RandomSampler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomSampler{
		random: random,
	}
}

// Draw picks a uniformly random card the hand does not hold yet
func (s *RandomSampler) Draw(catalogIDs, handIDs []string) (string, error) {
	held := make(map[string]struct{}, len(handIDs))
	for _, id := range handIDs {
		held[id] = struct{}{}
	}

	remaining := make([]string, 0, len(catalogIDs))
	for _, id := range catalogIDs {
		if _, ok := held[id]; !ok {
			remaining = append(remaining, id)
		}
	}

	if len(remaining) == 0 {
		return "", ErrExhausted
	}

	return remaining[s.random.Intn(len(remaining))], nil
}
