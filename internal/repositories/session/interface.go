package session

import (
	"context"

	"github.com/davrost/arcana/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/davrost/arcana/internal/repositories/session Store

// Store persists the active session so the game thread survives restarts
type Store interface {
	// Load reads the persisted session. It returns ErrNotFound when nothing
	// usable has ever been persisted.
	Load(ctx context.Context) (*models.Session, error)

	// Save overwrites the persisted session
	Save(ctx context.Context, session *models.Session) error
}
