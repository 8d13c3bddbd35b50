package opening

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/davrost/arcana/internal/catalog"
	catalogMock "github.com/davrost/arcana/internal/catalog/mocks"
	"github.com/davrost/arcana/internal/gateway"
	gatewayMock "github.com/davrost/arcana/internal/gateway/mocks"
	"github.com/davrost/arcana/internal/models"
	sessionService "github.com/davrost/arcana/internal/services/session"
	sessionMock "github.com/davrost/arcana/internal/services/session/mocks"
)

type OpeningServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockGateway *gatewayMock.MockGateway
	mockSession *sessionMock.MockService
	mockCatalog *catalogMock.MockCatalog
	service     *service
	ctx         context.Context

	session *models.Session
}

func (s *OpeningServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGateway = gatewayMock.NewMockGateway(s.ctrl)
	s.mockSession = sessionMock.NewMockService(s.ctrl)
	s.mockCatalog = catalogMock.NewMockCatalog(s.ctrl)

	svc, err := New(&Config{
		ChannelID:    "C123",
		NarratorName: "Madame Arcana",
		StepDelay:    5 * time.Millisecond,
		Gateway:      s.mockGateway,
		SessionSvc:   s.mockSession,
		Catalog:      s.mockCatalog,
	})
	s.Require().NoError(err)
	s.service = svc

	s.ctx = context.Background()
	s.session = &models.Session{
		ChannelID:        "C123",
		MessageTimestamp: "1700000000.000100",
	}
}

func (s *OpeningServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OpeningServiceTestSuite) expectCopy() {
	s.mockCatalog.EXPECT().String(catalog.KeyOpening).Return("the candles are lit").AnyTimes()
	s.mockCatalog.EXPECT().String(catalog.KeyNarration).Return("one deck, one fate").AnyTimes()
	s.mockCatalog.EXPECT().String(catalog.KeyDrawPrompt).Return("DRAW").AnyTimes()
}

func (s *OpeningServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	cfg := func() *Config {
		return &Config{
			ChannelID:    "C123",
			NarratorName: "Madame Arcana",
			Gateway:      s.mockGateway,
			SessionSvc:   s.mockSession,
			Catalog:      s.mockCatalog,
		}
	}

	broken := cfg()
	broken.ChannelID = ""
	_, err = New(broken)
	s.ErrorIs(err, ErrEmptyChannelID)

	broken = cfg()
	broken.NarratorName = ""
	_, err = New(broken)
	s.ErrorIs(err, ErrEmptyNarrator)

	broken = cfg()
	broken.Gateway = nil
	_, err = New(broken)
	s.ErrorIs(err, ErrNilGateway)

	broken = cfg()
	broken.SessionSvc = nil
	_, err = New(broken)
	s.ErrorIs(err, ErrNilSessionSvc)

	broken = cfg()
	broken.Catalog = nil
	_, err = New(broken)
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *OpeningServiceTestSuite) TestNewAppliesDefaultDelay() {
	svc, err := New(&Config{
		ChannelID:    "C123",
		NarratorName: "Madame Arcana",
		Gateway:      s.mockGateway,
		SessionSvc:   s.mockSession,
		Catalog:      s.mockCatalog,
	})
	s.Require().NoError(err)
	s.Equal(DefaultStepDelay, svc.stepDelay)
}

func (s *OpeningServiceTestSuite) TestRunPostsScriptInOrder() {
	s.expectCopy()

	rootPost := s.mockGateway.EXPECT().
		PostMessage(s.ctx, &gateway.PostMessageInput{
			ChannelID:   "C123",
			Text:        "the candles are lit",
			DisplayName: "Madame Arcana",
		}).
		Return(&gateway.PostMessageOutput{
			ChannelID: "C123",
			Timestamp: "1700000000.000100",
		}, nil)

	activate := s.mockSession.EXPECT().
		Activate(s.ctx, &sessionService.ActivateInput{
			ChannelID:        "C123",
			MessageTimestamp: "1700000000.000100",
		}).
		Return(&sessionService.ActivateOutput{Session: s.session}, nil).
		After(rootPost)

	narration := s.mockGateway.EXPECT().
		PostMessage(s.ctx, &gateway.PostMessageInput{
			ChannelID:       "C123",
			Text:            "one deck, one fate",
			ThreadTimestamp: "1700000000.000100",
			DisplayName:     "Madame Arcana",
		}).
		Return(&gateway.PostMessageOutput{}, nil).
		After(activate)

	s.mockGateway.EXPECT().
		PostMessage(s.ctx, &gateway.PostMessageInput{
			ChannelID:       "C123",
			Text:            "DRAW",
			ThreadTimestamp: "1700000000.000100",
			DisplayName:     "Madame Arcana",
		}).
		Return(&gateway.PostMessageOutput{}, nil).
		After(narration)

	started := time.Now()
	out, err := s.service.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)

	s.Equal(s.session, out.Session)

	// Two inter-message pauses plus the trailing one
	s.GreaterOrEqual(time.Since(started), 3*5*time.Millisecond)
}

func (s *OpeningServiceTestSuite) TestRunStopsWhenRootPostFails() {
	s.expectCopy()

	s.mockGateway.EXPECT().
		PostMessage(s.ctx, gomock.Any()).
		Return(nil, errors.New("slack down"))

	_, err := s.service.Run(s.ctx, &RunInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to post opening message")
}

func (s *OpeningServiceTestSuite) TestRunStopsWhenActivateFails() {
	s.expectCopy()

	s.mockGateway.EXPECT().
		PostMessage(s.ctx, gomock.Any()).
		Return(&gateway.PostMessageOutput{
			ChannelID: "C123",
			Timestamp: "1700000000.000100",
		}, nil)

	s.mockSession.EXPECT().
		Activate(s.ctx, gomock.Any()).
		Return(nil, errors.New("bad input"))

	_, err := s.service.Run(s.ctx, &RunInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to activate session")
}

func (s *OpeningServiceTestSuite) TestRunHonorsCancellation() {
	s.expectCopy()

	ctx, cancel := context.WithCancel(s.ctx)

	// Cancel while the first step is still running; the script must stop
	// before the narration post.
	s.mockGateway.EXPECT().
		PostMessage(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *gateway.PostMessageInput) (*gateway.PostMessageOutput, error) {
			cancel()
			return &gateway.PostMessageOutput{
				ChannelID: "C123",
				Timestamp: "1700000000.000100",
			}, nil
		})

	s.mockSession.EXPECT().
		Activate(ctx, gomock.Any()).
		Return(&sessionService.ActivateOutput{Session: s.session}, nil)

	_, err := s.service.Run(ctx, &RunInput{})
	s.Require().Error(err)
	s.ErrorIs(err, context.Canceled)
}

func TestOpeningServiceSuite(t *testing.T) {
	suite.Run(t, new(OpeningServiceTestSuite))
}
