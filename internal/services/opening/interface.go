package opening

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/davrost/arcana/internal/services/opening Service

// Service runs the scripted opening that creates the game thread
type Service interface {
	// Run posts the root message, activates the session it defines, and
	// narrates the scripted follow-ups into its thread. Cancelling the
	// context stops the script between steps; a cancelled or failed run is
	// never resumed.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}
