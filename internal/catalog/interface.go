package catalog

import (
	"github.com/davrost/arcana/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/davrost/arcana/internal/catalog Catalog

// Catalog provides read-only access to the card set and the copy the bot
// posts
type Catalog interface {
	// ListCardIDs returns every card ID in catalog order
	ListCardIDs() []string

	// GetCard looks up a card by its ID
	GetCard(id string) (models.Card, error)

	// String returns the copy registered under key. Unknown keys return the
	// key itself so a missing entry shows up in the channel instead of
	// taking the bot down.
	String(key string) string
}
