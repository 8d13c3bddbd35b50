package opening

import (
	"time"

	"github.com/davrost/arcana/internal/catalog"
	"github.com/davrost/arcana/internal/gateway"
	"github.com/davrost/arcana/internal/models"
	sessionService "github.com/davrost/arcana/internal/services/session"
)

// DefaultStepDelay is the pause between scripted messages
const DefaultStepDelay = 3 * time.Second

// Config holds configuration for the opening service
type Config struct {
	// ChannelID is where the root message is posted
	ChannelID string

	// NarratorName labels the scripted messages; it is also what the router
	// resolves the prompt's echo to, which is how the narrator deals itself
	// the demonstration card
	NarratorName string

	// StepDelay is the pause between scripted messages; zero means
	// DefaultStepDelay
	StepDelay time.Duration

	// Gateway posts the script
	Gateway gateway.Gateway

	// SessionSvc adopts the root message as the active session
	SessionSvc sessionService.Service

	// Catalog supplies the script copy
	Catalog catalog.Catalog
}

// RunInput contains parameters for running the opening script
type RunInput struct{}

// RunOutput contains the result of the opening script
type RunOutput struct {
	// Session is the session created by the root message
	Session *models.Session
}
