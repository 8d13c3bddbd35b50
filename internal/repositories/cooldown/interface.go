package cooldown

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/davrost/arcana/internal/repositories/cooldown Repository

// Repository gates how often each actor may draw
type Repository interface {
	// Acquire atomically claims the actor's cooldown slot for the given TTL.
	// The claim fails when an unexpired one already exists, so two
	// overlapping draw attempts can never both pass the gate.
	Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error)

	// Remaining reports how long the actor's active claim has left
	Remaining(ctx context.Context, input *RemainingInput) (*RemainingOutput, error)
}
