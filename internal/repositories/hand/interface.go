package hand

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/davrost/arcana/internal/repositories/hand Repository

// Repository persists each actor's accumulated hand of cards
type Repository interface {
	// GetHand returns the actor's card IDs in draw order. An actor who has
	// never drawn gets an empty hand, not an error.
	GetHand(ctx context.Context, input *GetHandInput) (*GetHandOutput, error)

	// AppendCard adds a card to the end of the actor's hand. It returns
	// ErrDuplicateCard when the hand already holds the card.
	AppendCard(ctx context.Context, input *AppendCardInput) error
}
