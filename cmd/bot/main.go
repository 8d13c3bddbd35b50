package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/davrost/arcana/internal/catalog"
	"github.com/davrost/arcana/internal/common/clock"
	"github.com/davrost/arcana/internal/common/uuid"
	"github.com/davrost/arcana/internal/config"
	"github.com/davrost/arcana/internal/deck"
	"github.com/davrost/arcana/internal/gateway"
	"github.com/davrost/arcana/internal/handlers/slackbot"
	"github.com/davrost/arcana/internal/ops"
	"github.com/davrost/arcana/internal/repositories/cooldown"
	"github.com/davrost/arcana/internal/repositories/hand"
	"github.com/davrost/arcana/internal/repositories/ledger"
	sessionRepo "github.com/davrost/arcana/internal/repositories/session"
	"github.com/davrost/arcana/internal/router"
	drawService "github.com/davrost/arcana/internal/services/draw"
	openingService "github.com/davrost/arcana/internal/services/opening"
	sessionService "github.com/davrost/arcana/internal/services/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(cfg.Redis.Options())

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	cooldownRepo, err := cooldown.NewRedis(&cooldown.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create cooldown repository: %v", err)
	}

	handRepo, err := hand.NewRedis(&hand.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create hand repository: %v", err)
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	sessionStore, err := sessionRepo.NewFile(&sessionRepo.FileConfig{
		Path: cfg.Game.SessionFile,
	})
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Initialize the card catalog
	cardCatalog, err := catalog.New()
	if err != nil {
		log.Fatalf("Failed to load card catalog: %v", err)
	}

	// Initialize the deck sampler
	sampler := deck.New(&deck.Config{})

	systemClock := &clock.SystemClock{}

	// Initialize Slack clients
	api := slack.New(cfg.Slack.BotToken, slack.OptionAppLevelToken(cfg.Slack.AppToken))
	socketClient := socketmode.New(api)

	slackGateway, err := gateway.NewSlack(&gateway.SlackConfig{
		Client: api,
	})
	if err != nil {
		log.Fatalf("Failed to create Slack gateway: %v", err)
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		Store: sessionStore,
		Clock: systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	drawSvc, err := drawService.New(&drawService.Config{
		CooldownTTL:   cfg.Game.Cooldown,
		CooldownRepo:  cooldownRepo,
		HandRepo:      handRepo,
		LedgerRepo:    ledgerRepo,
		Catalog:       cardCatalog,
		Sampler:       sampler,
		Gateway:       slackGateway,
		Clock:         systemClock,
		UUIDGenerator: &uuid.DefaultGenerator{},
	})
	if err != nil {
		log.Fatalf("Failed to create draw service: %v", err)
	}

	openingSvc, err := openingService.New(&openingService.Config{
		ChannelID:    cfg.Game.ChannelID,
		NarratorName: cfg.Game.NarratorName,
		StepDelay:    cfg.Game.StepDelay,
		Gateway:      slackGateway,
		SessionSvc:   sessionSvc,
		Catalog:      cardCatalog,
	})
	if err != nil {
		log.Fatalf("Failed to create opening service: %v", err)
	}

	gameRouter, err := router.New(&router.Config{
		ChannelID:     cfg.Game.ChannelID,
		NarratorLabel: cfg.Game.NarratorName,
	})
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// Initialize the bot
	bot, err := slackbot.New(&slackbot.Config{
		SocketClient: socketClient,
		ChannelID:    cfg.Game.ChannelID,
		Router:       gameRouter,
		DrawSvc:      drawSvc,
		SessionSvc:   sessionSvc,
		OpeningSvc:   openingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Slack bot: %v", err)
	}

	// Optionally expose the ops endpoints
	if cfg.Ops.Enabled() {
		opsServer, err := ops.New(&ops.Config{
			Addr:        cfg.Ops.Addr,
			RedisClient: redisClient,
			SessionSvc:  sessionSvc,
			Catalog:     cardCatalog,
			LedgerRepo:  ledgerRepo,
		})
		if err != nil {
			log.Fatalf("Failed to create ops server: %v", err)
		}

		go func() {
			if err := opsServer.Run(ctx); err != nil {
				log.Printf("Ops server error: %v", err)
			}
		}()
	}

	// Run until interrupted
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot exited with error: %v", err)
	}

	log.Println("Bot has been shut down")
}
