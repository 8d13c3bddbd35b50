package ledger

import (
	"github.com/davrost/arcana/internal/models"
)

// AddDrawRecordInput contains parameters for appending to the ledger
type AddDrawRecordInput struct {
	// Record is the completed draw
	Record *models.DrawRecord
}

// GetActorDrawsInput contains parameters for reading one actor's draws
type GetActorDrawsInput struct {
	// ActorKey identifies the player or narrator
	ActorKey string
}

// GetActorDrawsOutput contains one actor's draws, oldest first
type GetActorDrawsOutput struct {
	Records []*models.DrawRecord
}

// GetRecentDrawsInput contains parameters for reading the latest draws
type GetRecentDrawsInput struct {
	// Limit caps how many records come back; zero means the default
	Limit int
}

// GetRecentDrawsOutput contains the latest draws, newest first
type GetRecentDrawsOutput struct {
	Records []*models.DrawRecord
}
