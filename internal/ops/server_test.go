package ops

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogMock "github.com/davrost/arcana/internal/catalog/mocks"
	"github.com/davrost/arcana/internal/models"
	ledgerRepo "github.com/davrost/arcana/internal/repositories/ledger"
	ledgerMock "github.com/davrost/arcana/internal/repositories/ledger/mocks"
	sessionService "github.com/davrost/arcana/internal/services/session"
	sessionMock "github.com/davrost/arcana/internal/services/session/mocks"
)

type OpsServerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
	mockSession *sessionMock.MockService
	mockCatalog *catalogMock.MockCatalog
	mockLedger  *ledgerMock.MockRepository
	server      *Server
}

func (s *OpsServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	s.mockSession = sessionMock.NewMockService(s.ctrl)
	s.mockCatalog = catalogMock.NewMockCatalog(s.ctrl)
	s.mockLedger = ledgerMock.NewMockRepository(s.ctrl)

	server, err := New(&Config{
		Addr:        "127.0.0.1:0",
		RedisClient: s.redisClient,
		SessionSvc:  s.mockSession,
		Catalog:     s.mockCatalog,
		LedgerRepo:  s.mockLedger,
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *OpsServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.redisClient.Close()
	s.miniRedis.Close()
}

func (s *OpsServerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *OpsServerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.EqualError(err, "config cannot be nil")

	cfg := func() *Config {
		return &Config{
			Addr:        "127.0.0.1:0",
			RedisClient: s.redisClient,
			SessionSvc:  s.mockSession,
			Catalog:     s.mockCatalog,
			LedgerRepo:  s.mockLedger,
		}
	}

	broken := cfg()
	broken.Addr = ""
	_, err = New(broken)
	s.EqualError(err, "addr cannot be empty")

	broken = cfg()
	broken.RedisClient = nil
	_, err = New(broken)
	s.EqualError(err, "redis client cannot be nil")

	broken = cfg()
	broken.SessionSvc = nil
	_, err = New(broken)
	s.EqualError(err, "session service cannot be nil")

	broken = cfg()
	broken.Catalog = nil
	_, err = New(broken)
	s.EqualError(err, "catalog cannot be nil")

	broken = cfg()
	broken.LedgerRepo = nil
	_, err = New(broken)
	s.EqualError(err, "ledger repository cannot be nil")
}

func (s *OpsServerTestSuite) TestHealthzHealthy() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("ok", body["status"])
}

func (s *OpsServerTestSuite) TestHealthzUnhealthyWhenRedisDown() {
	s.miniRedis.Close()

	rec := s.get("/healthz")
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("unhealthy", body["status"])
	s.NotEmpty(body["error"])
}

func (s *OpsServerTestSuite) TestStatusWithActiveSession() {
	created := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	drawn := time.Date(2024, 3, 1, 18, 5, 0, 0, time.UTC)

	s.mockSession.EXPECT().
		Current(gomock.Any(), &sessionService.CurrentInput{}).
		Return(&sessionService.CurrentOutput{
			Found: true,
			Session: &models.Session{
				ChannelID:        "C123",
				MessageTimestamp: "1700000000.000100",
				CreatedAt:        created,
			},
		}, nil)

	s.mockLedger.EXPECT().
		GetRecentDraws(gomock.Any(), &ledgerRepo.GetRecentDrawsInput{}).
		Return(&ledgerRepo.GetRecentDrawsOutput{
			Records: []*models.DrawRecord{
				{ID: "draw-2", ActorKey: "U456", CardID: "the_last_ferry", Timestamp: drawn},
				{ID: "draw-1", ActorKey: "U789", CardID: "ace_of_thorns", Timestamp: drawn.Add(-time.Minute)},
			},
		}, nil)

	s.mockCatalog.EXPECT().
		ListCardIDs().
		Return([]string{"a", "b", "c"})

	rec := s.get("/status")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body statusResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))

	s.Require().NotNil(body.Session)
	s.Equal("C123", body.Session.ChannelID)
	s.Equal("1700000000.000100", body.Session.MessageTimestamp)
	s.True(created.Equal(body.Session.CreatedAt))

	s.Equal(3, body.DeckSize)

	s.Require().Len(body.RecentDraws, 2)
	s.Equal("U456", body.RecentDraws[0].ActorKey)
	s.Equal("the_last_ferry", body.RecentDraws[0].CardID)
	s.Equal("U789", body.RecentDraws[1].ActorKey)
}

func (s *OpsServerTestSuite) TestStatusWithoutSession() {
	s.mockSession.EXPECT().
		Current(gomock.Any(), &sessionService.CurrentInput{}).
		Return(&sessionService.CurrentOutput{Found: false}, nil)

	s.mockLedger.EXPECT().
		GetRecentDraws(gomock.Any(), &ledgerRepo.GetRecentDrawsInput{}).
		Return(&ledgerRepo.GetRecentDrawsOutput{}, nil)

	s.mockCatalog.EXPECT().
		ListCardIDs().
		Return([]string{"a", "b"})

	rec := s.get("/status")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))

	_, hasSession := body["session"]
	s.False(hasSession)
	s.Equal(float64(2), body["deck_size"])
	s.Equal([]interface{}{}, body["recent_draws"])
}

func (s *OpsServerTestSuite) TestStatusLedgerFailure() {
	s.mockSession.EXPECT().
		Current(gomock.Any(), &sessionService.CurrentInput{}).
		Return(&sessionService.CurrentOutput{Found: false}, nil)

	s.mockLedger.EXPECT().
		GetRecentDraws(gomock.Any(), &ledgerRepo.GetRecentDrawsInput{}).
		Return(nil, errors.New("redis unavailable"))

	rec := s.get("/status")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func TestOpsServerSuite(t *testing.T) {
	suite.Run(t, new(OpsServerTestSuite))
}
