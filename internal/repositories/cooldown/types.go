package cooldown

import (
	"time"
)

// AcquireInput contains parameters for claiming a cooldown slot
type AcquireInput struct {
	// ActorKey identifies the player or narrator
	ActorKey string

	// TTL is how long the claim lasts
	TTL time.Duration
}

// AcquireOutput contains the result of claiming a cooldown slot
type AcquireOutput struct {
	// Acquired is false when an unexpired claim already existed
	Acquired bool
}

// RemainingInput contains parameters for reading an active claim
type RemainingInput struct {
	// ActorKey identifies the player or narrator
	ActorKey string
}

// RemainingOutput reports the unexpired portion of a claim
type RemainingOutput struct {
	// Remaining is zero when no claim exists
	Remaining time.Duration
}
