package session

import (
	"github.com/davrost/arcana/internal/common/clock"
	"github.com/davrost/arcana/internal/models"
	sessionRepo "github.com/davrost/arcana/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Store persists the session across restarts
	Store sessionRepo.Store

	// Clock supplies timestamps for new sessions
	Clock clock.Clock
}

// RestoreInput contains parameters for restoring persisted state
type RestoreInput struct{}

// RestoreOutput contains the result of restoring persisted state
type RestoreOutput struct {
	// Found is true when a persisted session was recovered
	Found bool

	// Session is the recovered session when Found is true
	Session *models.Session
}

// ActivateInput contains parameters for activating a new session
type ActivateInput struct {
	// ChannelID is the channel the new root message was posted to
	ChannelID string

	// MessageTimestamp is the root message's platform timestamp
	MessageTimestamp string
}

// ActivateOutput contains the result of activating a session
type ActivateOutput struct {
	// Session is the newly active session
	Session *models.Session
}

// CurrentInput contains parameters for reading the active session
type CurrentInput struct{}

// CurrentOutput contains the active session
type CurrentOutput struct {
	// Found is false when no session is active
	Found bool

	// Session is the active session when Found is true
	Session *models.Session
}
