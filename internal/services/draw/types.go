package draw

import (
	"time"

	"github.com/davrost/arcana/internal/catalog"
	"github.com/davrost/arcana/internal/common/clock"
	"github.com/davrost/arcana/internal/common/uuid"
	"github.com/davrost/arcana/internal/deck"
	"github.com/davrost/arcana/internal/gateway"
	"github.com/davrost/arcana/internal/models"
	cooldownRepo "github.com/davrost/arcana/internal/repositories/cooldown"
	handRepo "github.com/davrost/arcana/internal/repositories/hand"
	ledgerRepo "github.com/davrost/arcana/internal/repositories/ledger"
)

const (
	// DefaultCooldownTTL is how long an actor waits between draws
	DefaultCooldownTTL = 30 * time.Second

	// DefaultReactionName is the emoji acknowledged on each draw request
	DefaultReactionName = "flower_playing_cards"
)

// Config holds configuration for the draw service
type Config struct {
	// CooldownTTL is how long an actor waits between draws; zero means
	// DefaultCooldownTTL
	CooldownTTL time.Duration

	// ReactionName is the acknowledgment emoji; empty means
	// DefaultReactionName
	ReactionName string

	// CooldownRepo gates draw frequency
	CooldownRepo cooldownRepo.Repository

	// HandRepo persists accumulated hands
	HandRepo handRepo.Repository

	// LedgerRepo records completed draws
	LedgerRepo ledgerRepo.Repository

	// Catalog is the card set and copy source
	Catalog catalog.Catalog

	// Sampler picks the next card
	Sampler deck.Sampler

	// Gateway posts responses and reactions
	Gateway gateway.Gateway

	// Clock timestamps ledger records
	Clock clock.Clock

	// UUIDGenerator mints draw IDs
	UUIDGenerator uuid.Generator
}

// Result classifies the outcome of one draw request
type Result string

const (
	// ResultDrawn means a card was dealt and announced
	ResultDrawn Result = "drawn"

	// ResultCoolingDown means the cooldown gate rejected the request
	ResultCoolingDown Result = "cooling_down"

	// ResultExhausted means the actor already holds every catalog card
	ResultExhausted Result = "exhausted"
)

// ExecuteDrawInput contains parameters for one draw request
type ExecuteDrawInput struct {
	// ChannelID is the channel the request arrived in
	ChannelID string

	// ThreadTimestamp is the game thread the response lands in
	ThreadTimestamp string

	// RequestTimestamp identifies the triggering message for the
	// acknowledgment reaction; empty skips the reaction
	RequestTimestamp string

	// ActorKey identifies the requester in the cooldown and hand stores
	ActorKey string

	// ActorMention is how the requester is addressed in responses
	ActorMention string
}

// ExecuteDrawOutput contains the result of one draw request
type ExecuteDrawOutput struct {
	// Result classifies what happened
	Result Result

	// Card is the dealt card when Result is ResultDrawn
	Card *models.Card
}
