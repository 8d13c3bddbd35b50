package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config aggregates everything the bot reads from the environment
type Config struct {
	Slack SlackConfig
	Redis RedisConfig
	Game  GameConfig
	Ops   OpsConfig
}

// Load builds the configuration from environment variables
func Load() (*Config, error) {
	slack, err := loadSlackConfig()
	if err != nil {
		return nil, err
	}

	redisCfg, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	game, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	ops := loadOpsConfig()

	return &Config{Slack: slack, Redis: redisCfg, Game: game, Ops: ops}, nil
}

// SlackConfig holds the Slack credentials
type SlackConfig struct {
	// BotToken authenticates Web API calls
	BotToken string

	// AppToken authenticates the socket-mode connection
	AppToken string
}

func loadSlackConfig() (SlackConfig, error) {
	botToken := strings.TrimSpace(os.Getenv("SLACK_BOT_TOKEN"))
	if botToken == "" {
		return SlackConfig{}, fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if !strings.HasPrefix(botToken, "xoxb-") {
		return SlackConfig{}, fmt.Errorf("SLACK_BOT_TOKEN must have the prefix %q", "xoxb-")
	}

	appToken := strings.TrimSpace(os.Getenv("SLACK_APP_TOKEN"))
	if appToken == "" {
		return SlackConfig{}, fmt.Errorf("SLACK_APP_TOKEN is required")
	}
	if !strings.HasPrefix(appToken, "xapp-") {
		return SlackConfig{}, fmt.Errorf("SLACK_APP_TOKEN must have the prefix %q", "xapp-")
	}

	return SlackConfig{BotToken: botToken, AppToken: appToken}, nil
}

// RedisConfig describes the Redis connection
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Options returns the client options for this configuration
func (c RedisConfig) Options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

func loadRedisConfig() (RedisConfig, error) {
	db, err := parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return RedisConfig{}, err
	}

	return RedisConfig{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

// GameConfig describes the game itself
type GameConfig struct {
	// ChannelID is the channel the game plays in
	ChannelID string

	// SessionFile is where the active session is persisted
	SessionFile string

	// Cooldown is how long an actor waits between draws
	Cooldown time.Duration

	// StepDelay is the pause between opening script steps
	StepDelay time.Duration

	// NarratorName is the display name on narrated posts
	NarratorName string
}

func loadGameConfig() (GameConfig, error) {
	channelID := strings.TrimSpace(os.Getenv("ARCANA_CHANNEL_ID"))
	if channelID == "" {
		return GameConfig{}, fmt.Errorf("ARCANA_CHANNEL_ID is required")
	}

	cooldown, err := parseDurationEnv("ARCANA_COOLDOWN", 30*time.Second)
	if err != nil {
		return GameConfig{}, err
	}
	if cooldown <= 0 {
		return GameConfig{}, fmt.Errorf("ARCANA_COOLDOWN must be positive, got %s", cooldown)
	}

	stepDelay, err := parseDurationEnv("ARCANA_STEP_DELAY", 3*time.Second)
	if err != nil {
		return GameConfig{}, err
	}
	if stepDelay <= 0 {
		return GameConfig{}, fmt.Errorf("ARCANA_STEP_DELAY must be positive, got %s", stepDelay)
	}

	return GameConfig{
		ChannelID:    channelID,
		SessionFile:  getEnvOrDefault("ARCANA_SESSION_FILE", "arcana-session.json"),
		Cooldown:     cooldown,
		StepDelay:    stepDelay,
		NarratorName: getEnvOrDefault("ARCANA_NARRATOR", "Madame Arcana"),
	}, nil
}

// OpsConfig describes the operational HTTP server
type OpsConfig struct {
	// Addr is the listen address; empty disables the server
	Addr string
}

// Enabled reports whether the ops server should run
func (c OpsConfig) Enabled() bool {
	return c.Addr != ""
}

func loadOpsConfig() OpsConfig {
	return OpsConfig{
		Addr: strings.TrimSpace(os.Getenv("ARCANA_OPS_ADDR")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
