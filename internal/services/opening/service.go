package opening

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/davrost/arcana/internal/catalog"
	"github.com/davrost/arcana/internal/gateway"
	"github.com/davrost/arcana/internal/models"
	sessionService "github.com/davrost/arcana/internal/services/session"
)

// OpeningError is a custom error type for opening-related errors
type OpeningError string

// Error implements the error interface
func (e OpeningError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      OpeningError = "config cannot be nil"
	ErrEmptyChannelID OpeningError = "channel ID cannot be empty"
	ErrEmptyNarrator  OpeningError = "narrator name cannot be empty"
	ErrNilGateway     OpeningError = "gateway cannot be nil"
	ErrNilSessionSvc  OpeningError = "session service cannot be nil"
	ErrNilCatalog     OpeningError = "catalog cannot be nil"
)

// service implements the Service interface
type service struct {
	channelID    string
	narratorName string
	stepDelay    time.Duration

	gateway    gateway.Gateway
	sessionSvc sessionService.Service
	catalog    catalog.Catalog
}

// New creates a new opening service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	if cfg.NarratorName == "" {
		return nil, ErrEmptyNarrator
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.SessionSvc == nil {
		return nil, ErrNilSessionSvc
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	stepDelay := cfg.StepDelay
	if stepDelay <= 0 {
		stepDelay = DefaultStepDelay
	}

	return &service{
		channelID:    cfg.ChannelID,
		narratorName: cfg.NarratorName,
		stepDelay:    stepDelay,
		gateway:      cfg.Gateway,
		sessionSvc:   cfg.SessionSvc,
		catalog:      cfg.Catalog,
	}, nil
}

// Run posts the opening script and establishes the new session
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	var session *models.Session

	steps := []step{
		{action: func(ctx context.Context) error {
			out, err := s.gateway.PostMessage(ctx, &gateway.PostMessageInput{
				ChannelID:   s.channelID,
				Text:        s.catalog.String(catalog.KeyOpening),
				DisplayName: s.narratorName,
			})
			if err != nil {
				return fmt.Errorf("failed to post opening message: %w", err)
			}

			// The root message defines the thread; it must be the active
			// session before anyone can reply to it.
			activated, err := s.sessionSvc.Activate(ctx, &sessionService.ActivateInput{
				ChannelID:        out.ChannelID,
				MessageTimestamp: out.Timestamp,
			})
			if err != nil {
				return fmt.Errorf("failed to activate session: %w", err)
			}

			session = activated.Session
			return nil
		}},
		{delay: s.stepDelay, action: func(ctx context.Context) error {
			return s.postNarrated(ctx, session, s.catalog.String(catalog.KeyNarration))
		}},
		{delay: s.stepDelay, action: func(ctx context.Context) error {
			// The prompt is the draw keyword itself; its echo triggers the
			// narrator's demonstration draw.
			return s.postNarrated(ctx, session, s.catalog.String(catalog.KeyDrawPrompt))
		}},
		{delay: s.stepDelay},
	}

	if err := runSteps(ctx, steps); err != nil {
		return nil, err
	}

	log.Printf("Opening script finished for channel %s (root %s)", session.ChannelID, session.MessageTimestamp)

	return &RunOutput{
		Session: session,
	}, nil
}

// postNarrated sends one scripted reply into the session thread under the
// narrator's name
func (s *service) postNarrated(ctx context.Context, session *models.Session, text string) error {
	_, err := s.gateway.PostMessage(ctx, &gateway.PostMessageInput{
		ChannelID:       session.ChannelID,
		Text:            text,
		ThreadTimestamp: session.MessageTimestamp,
		DisplayName:     s.narratorName,
	})
	if err != nil {
		return fmt.Errorf("failed to post narrated message: %w", err)
	}

	return nil
}
