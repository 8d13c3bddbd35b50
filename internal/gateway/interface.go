package gateway

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/davrost/arcana/internal/gateway Gateway

// Gateway sends messages and reactions to the chat platform
type Gateway interface {
	// PostMessage posts text to a channel, threaded when the input carries a
	// thread timestamp
	PostMessage(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error)

	// SetReaction adds or removes an emoji reaction on a message
	SetReaction(ctx context.Context, input *SetReactionInput) error
}
