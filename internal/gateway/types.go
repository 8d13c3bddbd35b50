package gateway

// PostMessageInput contains parameters for posting a message
type PostMessageInput struct {
	// ChannelID is the destination channel
	ChannelID string

	// Text is the message body
	Text string

	// ThreadTimestamp, when non-empty, threads the message under the given
	// root message
	ThreadTimestamp string

	// DisplayName, when non-empty, overrides the bot's display name for
	// this message
	DisplayName string
}

// PostMessageOutput identifies the message that was created
type PostMessageOutput struct {
	// ChannelID is the channel the message landed in
	ChannelID string

	// Timestamp is the platform identity of the new message
	Timestamp string
}

// SetReactionInput contains parameters for toggling a reaction
type SetReactionInput struct {
	// ChannelID identifies the channel holding the target message
	ChannelID string

	// Timestamp identifies the target message
	Timestamp string

	// Name is the emoji name, without colons
	Name string

	// On adds the reaction when true and removes it when false
	On bool
}
