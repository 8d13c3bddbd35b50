package slackbot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/davrost/arcana/internal/models"
	"github.com/davrost/arcana/internal/router"
	"github.com/davrost/arcana/internal/services/draw"
	"github.com/davrost/arcana/internal/services/opening"
	"github.com/davrost/arcana/internal/services/session"
)

// Bot receives Slack socket-mode events and drives the game. One goroutine
// owns the event loop, so messages are handled strictly in arrival order.
type Bot struct {
	socketClient *socketmode.Client
	channelID    string
	router       *router.Router
	drawSvc      draw.Service
	sessionSvc   session.Service
	openingSvc   opening.Service

	// sessionReady is owned by the event loop goroutine
	sessionReady bool
}

// Config holds the configuration for the bot
type Config struct {
	// SocketClient is the socket-mode connection events arrive on
	SocketClient *socketmode.Client

	// ChannelID is the channel the game plays in
	ChannelID string

	// Router classifies inbound messages
	Router *router.Router

	// DrawSvc executes draw requests
	DrawSvc draw.Service

	// SessionSvc tracks the active game thread
	SessionSvc session.Service

	// OpeningSvc posts the scripted opening
	OpeningSvc opening.Service
}

// New creates a new Slack bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SocketClient == nil {
		return nil, errors.New("socket client cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.Router == nil {
		return nil, errors.New("router cannot be nil")
	}

	if cfg.DrawSvc == nil {
		return nil, errors.New("draw service cannot be nil")
	}

	if cfg.SessionSvc == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.OpeningSvc == nil {
		return nil, errors.New("opening service cannot be nil")
	}

	return &Bot{
		socketClient: cfg.SocketClient,
		channelID:    cfg.ChannelID,
		router:       cfg.Router,
		drawSvc:      cfg.DrawSvc,
		sessionSvc:   cfg.SessionSvc,
		openingSvc:   cfg.OpeningSvc,
	}, nil
}

// Run restores persisted state, connects to Slack, and processes events until
// the context is cancelled or the connection is lost for good.
func (b *Bot) Run(ctx context.Context) error {
	if _, err := b.sessionSvc.Restore(ctx, &session.RestoreInput{}); err != nil {
		return fmt.Errorf("failed to restore session state: %w", err)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- b.socketClient.RunContext(ctx)
	}()

	log.Println("Bot is now running. Press CTRL-C to exit.")

	for {
		select {
		case <-ctx.Done():
			<-runErr
			return nil
		case err := <-runErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("socket connection closed: %w", err)
			}
			return nil
		case evt := <-b.socketClient.Events:
			b.handleSocketEvent(ctx, evt)
		}
	}
}

// handleSocketEvent dispatches one socket-mode envelope
func (b *Bot) handleSocketEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Println("Connecting to Slack...")
	case socketmode.EventTypeConnectionError:
		log.Printf("Connection failed, retrying: %v", evt.Data)
	case socketmode.EventTypeConnected:
		log.Println("Connected to Slack")
		b.ensureSession(ctx)
	case socketmode.EventTypeEventsAPI:
		payload, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			log.Printf("Ignoring unexpected Events API payload: %+v", evt.Data)
			return
		}

		// Ack immediately; Slack redelivers envelopes that are not
		// acknowledged in time, and a redelivered draw is caught by the
		// cooldown gate anyway.
		if evt.Request != nil {
			b.socketClient.Ack(*evt.Request)
		}

		b.handleEventsAPI(ctx, payload)
	}
}

// ensureSession makes sure a game thread exists once the connection is up. A
// restored session for the configured channel is resumed silently; anything
// else gets the scripted opening. Only the event loop calls this, so the
// sessionReady flag needs no locking.
func (b *Bot) ensureSession(ctx context.Context) {
	if b.sessionReady {
		return
	}

	current, err := b.sessionSvc.Current(ctx, &session.CurrentInput{})
	if err != nil {
		log.Printf("Failed to read active session: %v", err)
		return
	}

	if current.Found && current.Session.ChannelID == b.channelID {
		log.Printf("Resuming session in channel %s (thread %s)",
			current.Session.ChannelID, current.Session.MessageTimestamp)
		b.sessionReady = true
		return
	}

	out, err := b.openingSvc.Run(ctx, &opening.RunInput{})
	if err != nil {
		// Leave sessionReady unset so the next connected event retries
		log.Printf("Failed to run opening script: %v", err)
		return
	}

	log.Printf("Opened session in channel %s (thread %s)",
		out.Session.ChannelID, out.Session.MessageTimestamp)
	b.sessionReady = true
}

// handleEventsAPI unwraps an Events API callback
func (b *Bot) handleEventsAPI(ctx context.Context, payload slackevents.EventsAPIEvent) {
	if payload.Type != slackevents.CallbackEvent {
		return
	}

	switch ev := payload.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		b.handleMessage(ctx, ev)
	}
}

// playableSubtype reports whether a message subtype carries playable text.
// Everything else, edits included, is skipped so a message cannot become a
// draw after the fact.
func playableSubtype(subtype string) bool {
	return subtype == "" || subtype == "bot_message"
}

// handleMessage routes one message event through the game
func (b *Bot) handleMessage(ctx context.Context, ev *slackevents.MessageEvent) {
	if !playableSubtype(ev.SubType) {
		return
	}

	current, err := b.sessionSvc.Current(ctx, &session.CurrentInput{})
	if err != nil {
		log.Printf("Failed to read active session: %v", err)
		return
	}

	var active *models.Session
	if current.Found {
		active = current.Session
	}

	decision := b.router.Classify(inboundEvent(ev), active)
	if !decision.Relevant || decision.Command != router.CommandDraw {
		return
	}

	input := &draw.ExecuteDrawInput{
		ChannelID:        active.ChannelID,
		ThreadTimestamp:  active.MessageTimestamp,
		RequestTimestamp: ev.TimeStamp,
		ActorKey:         decision.ActorKey,
		ActorMention:     decision.ActorMention,
	}

	if _, err := b.drawSvc.ExecuteDraw(ctx, input); err != nil {
		log.Printf("Failed to execute draw for %s: %v", decision.ActorKey, err)
	}
}

// inboundEvent converts a Slack message into the transport-neutral form the
// router consumes
func inboundEvent(ev *slackevents.MessageEvent) models.InboundEvent {
	return models.InboundEvent{
		ChannelID:           ev.Channel,
		ThreadRootTimestamp: ev.ThreadTimeStamp,
		EventTimestamp:      ev.TimeStamp,
		Text:                ev.Text,
		ActorID:             ev.User,
		BotOriginated:       ev.BotID != "",
	}
}
