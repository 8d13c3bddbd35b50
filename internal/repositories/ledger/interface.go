package ledger

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/davrost/arcana/internal/repositories/ledger Repository

// Repository keeps the append-only audit trail of completed draws
type Repository interface {
	// AddDrawRecord appends one draw to the ledger
	AddDrawRecord(ctx context.Context, input *AddDrawRecordInput) error

	// GetActorDraws returns one actor's draws, oldest first
	GetActorDraws(ctx context.Context, input *GetActorDrawsInput) (*GetActorDrawsOutput, error)

	// GetRecentDraws returns the latest draws across all actors, newest
	// first
	GetRecentDraws(ctx context.Context, input *GetRecentDrawsInput) (*GetRecentDrawsOutput, error)
}
