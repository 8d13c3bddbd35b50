package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/davrost/arcana/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      *redisRepository
	ctx       context.Context
	baseTime  time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.baseTime = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.miniRedis.Close()
}

func (s *RedisRepositoryTestSuite) addRecord(id, actorKey, cardID string, offset time.Duration) {
	err := s.repo.AddDrawRecord(s.ctx, &AddDrawRecordInput{
		Record: &models.DrawRecord{
			ID:        id,
			ActorKey:  actorKey,
			CardID:    cardID,
			Timestamp: s.baseTime.Add(offset),
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAddDrawRecordValidation() {
	err := s.repo.AddDrawRecord(s.ctx, nil)
	s.Error(err)

	err = s.repo.AddDrawRecord(s.ctx, &AddDrawRecordInput{})
	s.Error(err)

	err = s.repo.AddDrawRecord(s.ctx, &AddDrawRecordInput{
		Record: &models.DrawRecord{ActorKey: "U123", Timestamp: s.baseTime},
	})
	s.Error(err)

	err = s.repo.AddDrawRecord(s.ctx, &AddDrawRecordInput{
		Record: &models.DrawRecord{ID: "d1", Timestamp: s.baseTime},
	})
	s.Error(err)

	err = s.repo.AddDrawRecord(s.ctx, &AddDrawRecordInput{
		Record: &models.DrawRecord{ID: "d1", ActorKey: "U123"},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetActorDrawsOldestFirst() {
	s.addRecord("d1", "U123", "ace_of_thorns", 0)
	s.addRecord("d2", "U123", "seven_of_tides", time.Minute)
	s.addRecord("d3", "U456", "the_last_ferry", 2*time.Minute)

	out, err := s.repo.GetActorDraws(s.ctx, &GetActorDrawsInput{ActorKey: "U123"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)

	s.Equal("d1", out.Records[0].ID)
	s.Equal("ace_of_thorns", out.Records[0].CardID)
	s.Equal("d2", out.Records[1].ID)
	s.Equal("seven_of_tides", out.Records[1].CardID)
}

func (s *RedisRepositoryTestSuite) TestGetActorDrawsWhenEmpty() {
	out, err := s.repo.GetActorDraws(s.ctx, &GetActorDrawsInput{ActorKey: "U123"})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestGetRecentDrawsNewestFirst() {
	s.addRecord("d1", "U123", "ace_of_thorns", 0)
	s.addRecord("d2", "U456", "seven_of_tides", time.Minute)
	s.addRecord("d3", "Madame Arcana", "the_last_ferry", 2*time.Minute)

	out, err := s.repo.GetRecentDraws(s.ctx, &GetRecentDrawsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)

	s.Equal("d3", out.Records[0].ID)
	s.Equal("d2", out.Records[1].ID)
	s.Equal("d1", out.Records[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentDrawsHonorsLimit() {
	for i, id := range []string{"d1", "d2", "d3", "d4"} {
		s.addRecord(id, "U123", id+"_card", time.Duration(i)*time.Minute)
	}

	out, err := s.repo.GetRecentDraws(s.ctx, &GetRecentDrawsInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)

	s.Equal("d4", out.Records[0].ID)
	s.Equal("d3", out.Records[1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentDrawsWhenEmpty() {
	out, err := s.repo.GetRecentDraws(s.ctx, &GetRecentDrawsInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RedisRepositoryTestSuite) TestRecordsRoundTrip() {
	s.addRecord("d1", "U123", "ace_of_thorns", 0)

	out, err := s.repo.GetActorDraws(s.ctx, &GetActorDrawsInput{ActorKey: "U123"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)

	record := out.Records[0]
	s.Equal("d1", record.ID)
	s.Equal("U123", record.ActorKey)
	s.Equal("ace_of_thorns", record.CardID)
	s.True(record.Timestamp.Equal(s.baseTime))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
