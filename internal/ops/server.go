package ops

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/davrost/arcana/internal/catalog"
	ledgerRepo "github.com/davrost/arcana/internal/repositories/ledger"
	sessionService "github.com/davrost/arcana/internal/services/session"
)

// healthCheckTimeout caps how long the liveness probe waits on Redis
const healthCheckTimeout = 2 * time.Second

// Server exposes operational endpoints alongside the bot: a liveness probe
// and a read-only view of the running game
type Server struct {
	addr        string
	redisClient *redis.Client
	sessionSvc  sessionService.Service
	catalog     catalog.Catalog
	ledgerRepo  ledgerRepo.Repository
}

// Config holds the configuration for the ops server
type Config struct {
	// Addr is the listen address
	Addr string

	// RedisClient is pinged by the health check
	RedisClient *redis.Client

	// SessionSvc reads the active game thread
	SessionSvc sessionService.Service

	// Catalog sizes the deck
	Catalog catalog.Catalog

	// LedgerRepo reads the latest draws
	LedgerRepo ledgerRepo.Repository
}

// New creates a new ops server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr cannot be empty")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.SessionSvc == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	if cfg.LedgerRepo == nil {
		return nil, errors.New("ledger repository cannot be nil")
	}

	return &Server{
		addr:        cfg.Addr,
		redisClient: cfg.RedisClient,
		sessionSvc:  cfg.SessionSvc,
		catalog:     cfg.Catalog,
		ledgerRepo:  cfg.LedgerRepo,
	}, nil
}

// Handler returns the route tree
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/status", s.handleStatus)

	return r
}

// Run serves until the context is cancelled or the listener fails
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Ops server listening on %s", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// statusResponse is the /status payload
type statusResponse struct {
	Session     *sessionStatus `json:"session,omitempty"`
	DeckSize    int            `json:"deck_size"`
	RecentDraws []drawStatus   `json:"recent_draws"`
}

// sessionStatus describes the active game thread
type sessionStatus struct {
	ChannelID        string    `json:"channel_id"`
	MessageTimestamp string    `json:"message_timestamp"`
	CreatedAt        time.Time `json:"created_at"`
}

// drawStatus describes one completed draw
type drawStatus struct {
	ActorKey  string    `json:"actor_key"`
	CardID    string    `json:"card_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	current, err := s.sessionSvc.Current(r.Context(), &sessionService.CurrentInput{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read session")
		return
	}

	recent, err := s.ledgerRepo.GetRecentDraws(r.Context(), &ledgerRepo.GetRecentDrawsInput{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read recent draws")
		return
	}

	status := statusResponse{
		DeckSize:    len(s.catalog.ListCardIDs()),
		RecentDraws: make([]drawStatus, 0, len(recent.Records)),
	}

	if current.Found {
		status.Session = &sessionStatus{
			ChannelID:        current.Session.ChannelID,
			MessageTimestamp: current.Session.MessageTimestamp,
			CreatedAt:        current.Session.CreatedAt,
		}
	}

	for _, record := range recent.Records {
		status.RecentDraws = append(status.RecentDraws, drawStatus{
			ActorKey:  record.ActorKey,
			CardID:    record.CardID,
			Timestamp: record.Timestamp,
		})
	}

	respondJSON(w, http.StatusOK, status)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
