package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/davrost/arcana/internal/common/clock"
	"github.com/davrost/arcana/internal/models"
	sessionRepo "github.com/davrost/arcana/internal/repositories/session"
)

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    SessionError = "config cannot be nil"
	ErrNilStore     SessionError = "session store cannot be nil"
	ErrNilClock     SessionError = "clock cannot be nil"
	ErrInvalidInput SessionError = "input, channel ID and message timestamp cannot be empty"
)

// service implements the Service interface
type service struct {
	store sessionRepo.Store
	clock clock.Clock

	// The event loop is single-threaded, but Activate runs from the opening
	// script while ops reads Current from its own handler goroutine.
	mu      sync.RWMutex
	current *models.Session
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		store: cfg.Store,
		clock: cfg.Clock,
	}, nil
}

// Restore loads the persisted session into memory
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, sessionRepo.ErrNotFound) {
			log.Printf("Failed to load persisted session, starting without one: %v", err)
		}
		return &RestoreOutput{}, nil
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	log.Printf("Restored session for channel %s (root %s)", session.ChannelID, session.MessageTimestamp)

	return &RestoreOutput{
		Found:   true,
		Session: session,
	}, nil
}

// Activate replaces the active session and persists it
func (s *service) Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error) {
	if input == nil || input.ChannelID == "" || input.MessageTimestamp == "" {
		return nil, ErrInvalidInput
	}

	session := &models.Session{
		ChannelID:        input.ChannelID,
		MessageTimestamp: input.MessageTimestamp,
		CreatedAt:        s.clock.Now(),
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	// A lost save only risks serving a stale thread after the next restart;
	// it must not take down the running game.
	if err := s.store.Save(ctx, session); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}

	return &ActivateOutput{
		Session: session,
	}, nil
}

// Current returns the active session, if any
func (s *service) Current(ctx context.Context, input *CurrentInput) (*CurrentOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return &CurrentOutput{}, nil
	}

	return &CurrentOutput{
		Found:   true,
		Session: s.current,
	}, nil
}
