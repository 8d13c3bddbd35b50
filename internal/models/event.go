package models

// InboundEvent is one message event as delivered by the messaging platform,
// reduced to the fields the game cares about
type InboundEvent struct {
	// ChannelID is the channel the message was posted to
	ChannelID string

	// ThreadRootTimestamp is the timestamp of the thread's root message.
	// Empty for messages posted outside any thread.
	ThreadRootTimestamp string

	// EventTimestamp is the platform timestamp of the message itself
	EventTimestamp string

	// Text is the raw message text
	Text string

	// ActorID is the platform user ID of the message author
	ActorID string

	// BotOriginated indicates the message was authored by a bot, including
	// this bot's own narrated posts echoing back
	BotOriginated bool
}
