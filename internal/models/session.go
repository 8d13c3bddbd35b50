package models

import (
	"time"
)

// Session identifies the root message whose reply thread is the active game.
// There is at most one per process; it survives restarts through the session
// store.
type Session struct {
	// ChannelID is the channel the root message was posted to
	ChannelID string

	// MessageTimestamp is the platform timestamp of the root message. Thread
	// replies carry it as their thread root, which is how the game recognizes
	// its own thread.
	MessageTimestamp string

	// CreatedAt is when the root message was posted
	CreatedAt time.Time
}
