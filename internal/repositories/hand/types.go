package hand

// GetHandInput contains parameters for reading a hand
type GetHandInput struct {
	// ActorKey identifies the player or narrator
	ActorKey string
}

// GetHandOutput contains an actor's hand
type GetHandOutput struct {
	// CardIDs are the held cards in draw order
	CardIDs []string
}

// AppendCardInput contains parameters for growing a hand
type AppendCardInput struct {
	// ActorKey identifies the player or narrator
	ActorKey string

	// CardID is the card to append
	CardID string
}
