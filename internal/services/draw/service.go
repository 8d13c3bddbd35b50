package draw

import (
	"context"
	"errors"
	"fmt"
	"log"
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

// service implements the Service interface
type service struct {
	cooldownTTL  time.Duration
	reactionName string

	cooldownRepo cooldownRepo.Repository
	handRepo     handRepo.Repository
	ledgerRepo   ledgerRepo.Repository
	catalog      catalog.Catalog
	sampler      deck.Sampler
	gateway      gateway.Gateway
	clock        clock.Clock
	uuidGen      uuid.Generator
}

// New creates a new draw service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CooldownRepo == nil {
		return nil, ErrNilCooldownRepo
	}

	if cfg.HandRepo == nil {
		return nil, ErrNilHandRepo
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Sampler == nil {
		return nil, ErrNilSampler
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	cooldownTTL := cfg.CooldownTTL
	if cooldownTTL <= 0 {
		cooldownTTL = DefaultCooldownTTL
	}

	reactionName := cfg.ReactionName
	if reactionName == "" {
		reactionName = DefaultReactionName
	}

	return &service{
		cooldownTTL:  cooldownTTL,
		reactionName: reactionName,
		cooldownRepo: cfg.CooldownRepo,
		handRepo:     cfg.HandRepo,
		ledgerRepo:   cfg.LedgerRepo,
		catalog:      cfg.Catalog,
		sampler:      cfg.Sampler,
		gateway:      cfg.Gateway,
		clock:        cfg.Clock,
		uuidGen:      cfg.UUIDGenerator,
	}, nil
}

// ExecuteDraw runs one draw request
func (s *service) ExecuteDraw(ctx context.Context, input *ExecuteDrawInput) (*ExecuteDrawOutput, error) {
	if input == nil || input.ChannelID == "" || input.ThreadTimestamp == "" || input.ActorKey == "" {
		return nil, ErrInvalidInput
	}

	drawID := s.uuidGen.New()
	log.Printf("Draw %s: request from %s", drawID, input.ActorKey)

	s.acknowledge(ctx, input)

	// Claiming the cooldown slot is the commit point of the gate: the claim
	// and its expiry land in one atomic write, so two rapid requests from
	// the same actor cannot both pass.
	acquired, err := s.cooldownRepo.Acquire(ctx, &cooldownRepo.AcquireInput{
		ActorKey: input.ActorKey,
		TTL:      s.cooldownTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check cooldown: %w", err)
	}

	if !acquired.Acquired {
		if err := s.sendTooSoon(ctx, input); err != nil {
			return nil, err
		}

		log.Printf("Draw %s: %s is cooling down", drawID, input.ActorKey)
		return &ExecuteDrawOutput{Result: ResultCoolingDown}, nil
	}

	hand, err := s.handRepo.GetHand(ctx, &handRepo.GetHandInput{
		ActorKey: input.ActorKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get hand: %w", err)
	}

	cardID, err := s.sampler.Draw(s.catalog.ListCardIDs(), hand.CardIDs)
	if err != nil {
		if errors.Is(err, deck.ErrExhausted) {
			// The hand stays as it is and the cooldown claim stands; the
			// actor only learns there is nothing left for them.
			if err := s.sendExhausted(ctx, input); err != nil {
				return nil, err
			}

			log.Printf("Draw %s: deck exhausted for %s", drawID, input.ActorKey)
			return &ExecuteDrawOutput{Result: ResultExhausted}, nil
		}
		return nil, fmt.Errorf("failed to select card: %w", err)
	}

	if err := s.handRepo.AppendCard(ctx, &handRepo.AppendCardInput{
		ActorKey: input.ActorKey,
		CardID:   cardID,
	}); err != nil {
		return nil, fmt.Errorf("failed to record card: %w", err)
	}

	s.recordDraw(ctx, drawID, input.ActorKey, cardID)

	card, err := s.catalog.GetCard(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up card %s: %w", cardID, err)
	}

	if err := s.announceCard(ctx, input, card); err != nil {
		return nil, err
	}

	log.Printf("Draw %s: dealt %s to %s", drawID, cardID, input.ActorKey)

	return &ExecuteDrawOutput{
		Result: ResultDrawn,
		Card:   &card,
	}, nil
}

// acknowledge toggles the reaction on the triggering message. It is purely
// cosmetic, so it runs detached and a failure is only logged.
func (s *service) acknowledge(ctx context.Context, input *ExecuteDrawInput) {
	if input.RequestTimestamp == "" {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		err := s.gateway.SetReaction(detached, &gateway.SetReactionInput{
			ChannelID: input.ChannelID,
			Timestamp: input.RequestTimestamp,
			Name:      s.reactionName,
			On:        true,
		})
		if err != nil {
			log.Printf("Failed to react to draw request: %v", err)
		}
	}()
}

// sendTooSoon tells the actor the gate is still closed, with the remaining
// wait when it can be read
func (s *service) sendTooSoon(ctx context.Context, input *ExecuteDrawInput) error {
	text := fmt.Sprintf(s.catalog.String(catalog.KeyTooSoon), input.ActorMention)

	remaining, err := s.cooldownRepo.Remaining(ctx, &cooldownRepo.RemainingInput{
		ActorKey: input.ActorKey,
	})
	if err != nil {
		log.Printf("Failed to read remaining cooldown for %s: %v", input.ActorKey, err)
	} else if remaining.Remaining > 0 {
		wait := remaining.Remaining.Round(time.Second)
		if wait < time.Second {
			wait = time.Second
		}
		text = fmt.Sprintf(s.catalog.String(catalog.KeyTooSoonWait), input.ActorMention, wait)
	}

	if _, err := s.gateway.PostMessage(ctx, &gateway.PostMessageInput{
		ChannelID:       input.ChannelID,
		Text:            text,
		ThreadTimestamp: input.ThreadTimestamp,
	}); err != nil {
		return fmt.Errorf("failed to send cooldown notice: %w", err)
	}

	return nil
}

// sendExhausted tells the actor the deck holds nothing new for them
func (s *service) sendExhausted(ctx context.Context, input *ExecuteDrawInput) error {
	text := fmt.Sprintf(s.catalog.String(catalog.KeyDeckExhausted), input.ActorMention)

	if _, err := s.gateway.PostMessage(ctx, &gateway.PostMessageInput{
		ChannelID:       input.ChannelID,
		Text:            text,
		ThreadTimestamp: input.ThreadTimestamp,
	}); err != nil {
		return fmt.Errorf("failed to send exhaustion notice: %w", err)
	}

	return nil
}

// announceCard reveals the dealt card in the game thread
func (s *service) announceCard(ctx context.Context, input *ExecuteDrawInput, card models.Card) error {
	text := fmt.Sprintf(
		s.catalog.String(catalog.KeyCardReveal),
		input.ActorMention,
		card.Name,
		card.Flavor,
		card.Requirements,
	)

	if _, err := s.gateway.PostMessage(ctx, &gateway.PostMessageInput{
		ChannelID:       input.ChannelID,
		Text:            text,
		ThreadTimestamp: input.ThreadTimestamp,
	}); err != nil {
		return fmt.Errorf("failed to announce card: %w", err)
	}

	return nil
}

// recordDraw appends the draw to the audit ledger. The ledger is advisory,
// so a failure is logged and the draw proceeds.
func (s *service) recordDraw(ctx context.Context, drawID, actorKey, cardID string) {
	err := s.ledgerRepo.AddDrawRecord(ctx, &ledgerRepo.AddDrawRecordInput{
		Record: &models.DrawRecord{
			ID:        drawID,
			ActorKey:  actorKey,
			CardID:    cardID,
			Timestamp: s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to record draw %s in ledger: %v", drawID, err)
	}
}
