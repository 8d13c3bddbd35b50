package models

import (
	"time"
)

// DrawRecord captures one completed card draw for the audit ledger
type DrawRecord struct {
	// ID is the unique identifier for this draw
	ID string

	// ActorKey identifies who drew: a player's user ID or the narrator label
	ActorKey string

	// CardID is the catalog ID of the card that was dealt
	CardID string

	// Timestamp is when the draw completed
	Timestamp time.Time
}
