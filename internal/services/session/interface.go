package session

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/davrost/arcana/internal/services/session Service

// Service owns the identity of the active game thread
type Service interface {
	// Restore loads the persisted session into memory. It is called once at
	// startup; missing or unreadable state degrades to no session and is
	// never fatal.
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// Activate replaces the active session with one for the given root
	// message and persists it
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	// Current returns the active session, if any
	Current(ctx context.Context, input *CurrentInput) (*CurrentOutput, error)
}
