package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davrost/arcana/internal/models"
)

// drawKeyword is what a thread reply must say, after trimming and case
// folding, to request a card
const drawKeyword = "DRAW"

// Command is the instruction extracted from an inbound event
type Command string

const (
	// CommandNone means the event carried no recognized instruction
	CommandNone Command = ""

	// CommandDraw requests a card draw
	CommandDraw Command = "draw"
)

// Decision is the result of classifying one inbound event
type Decision struct {
	// Relevant reports whether the event belongs to the active game thread.
	// Irrelevant events carry nothing else.
	Relevant bool

	// Command is the recognized instruction
	Command Command

	// ActorKey identifies the requester in the cooldown and hand stores
	ActorKey string

	// ActorMention is how the requester is addressed in replies
	ActorMention string
}

// Config holds configuration for the router
type Config struct {
	// ChannelID is the only channel the game listens to
	ChannelID string

	// NarratorLabel stands in for a user ID when the bot's own narrated
	// posts echo back as events
	NarratorLabel string
}

// Router classifies inbound events against the active session. It holds no
// mutable state and performs no I/O.
type Router struct {
	channelID     string
	narratorLabel string
}

// New creates a new router
func New(cfg *Config) (*Router, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.NarratorLabel == "" {
		return nil, errors.New("narrator label cannot be empty")
	}

	return &Router{
		channelID:     cfg.ChannelID,
		narratorLabel: cfg.NarratorLabel,
	}, nil
}

// Classify decides whether the event belongs to the game and what it asks
// for. Rules apply in order: wrong channel and non-thread traffic is
// irrelevant, thread traffic that is not the draw keyword is relevant noise,
// and the keyword resolves to a draw attributed to the author, with the
// narrator label standing in for bot-originated posts.
func (r *Router) Classify(event models.InboundEvent, session *models.Session) Decision {
	if event.ChannelID != r.channelID {
		return Decision{}
	}

	if session == nil || event.ThreadRootTimestamp == "" || event.ThreadRootTimestamp != session.MessageTimestamp {
		return Decision{}
	}

	if strings.ToUpper(strings.TrimSpace(event.Text)) != drawKeyword {
		return Decision{Relevant: true}
	}

	if event.BotOriginated {
		return Decision{
			Relevant:     true,
			Command:      CommandDraw,
			ActorKey:     r.narratorLabel,
			ActorMention: r.narratorLabel,
		}
	}

	return Decision{
		Relevant:     true,
		Command:      CommandDraw,
		ActorKey:     event.ActorID,
		ActorMention: fmt.Sprintf("<@%s>", event.ActorID),
	}
}
