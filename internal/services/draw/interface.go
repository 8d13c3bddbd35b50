package draw

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/davrost/arcana/internal/services/draw Service

// Service executes draw requests end to end: cooldown gate, card selection,
// hand and ledger writes, and the threaded announcement
type Service interface {
	// ExecuteDraw runs one draw request. The outcome (dealt, cooling down,
	// deck exhausted) comes back in the output; an error means a dependency
	// failed and nothing was announced for it.
	ExecuteDraw(ctx context.Context, input *ExecuteDrawInput) (*ExecuteDrawOutput, error)
}
