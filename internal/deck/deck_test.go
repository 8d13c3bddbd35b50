package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type deckSuite struct {
	suite.Suite
	sampler *RandomSampler
}

func (s *deckSuite) SetupTest() {
	// Fixed seed keeps the pick order reproducible
	s.sampler = New(&Config{Seed: 42})
}

func (s *deckSuite) TestDrawReturnsCatalogCard() {
	catalog := []string{"a", "b", "c"}

	id, err := s.sampler.Draw(catalog, nil)
	s.Require().NoError(err)
	s.Contains(catalog, id)
}

func (s *deckSuite) TestDrawSkipsHeldCards() {
	catalog := []string{"a", "b", "c"}
	hand := []string{"a", "c"}

	id, err := s.sampler.Draw(catalog, hand)
	s.Require().NoError(err)
	s.Equal("b", id)
}

func (s *deckSuite) TestDrawNeverRepeatsUntilExhausted() {
	catalog := []string{"a", "b", "c", "d", "e"}
	var hand []string

	for range catalog {
		id, err := s.sampler.Draw(catalog, hand)
		s.Require().NoError(err)
		s.NotContains(hand, id)
		hand = append(hand, id)
	}

	_, err := s.sampler.Draw(catalog, hand)
	s.Require().Error(err)
	s.ErrorIs(err, ErrExhausted)
}

func (s *deckSuite) TestDrawEmptyCatalogIsExhausted() {
	_, err := s.sampler.Draw(nil, nil)
	s.Require().Error(err)
	s.ErrorIs(err, ErrExhausted)
}

func (s *deckSuite) TestDrawIgnoresUnknownHeldCards() {
	// A hand entry that left the catalog must not block the draw
	id, err := s.sampler.Draw([]string{"a"}, []string{"retired"})
	s.Require().NoError(err)
	s.Equal("a", id)
}

func (s *deckSuite) TestSeededSamplersAgree() {
	catalog := []string{"a", "b", "c", "d", "e", "f"}

	first := New(&Config{Seed: 7})
	second := New(&Config{Seed: 7})

	for i := 0; i < 10; i++ {
		got1, err := first.Draw(catalog, nil)
		s.Require().NoError(err)
		got2, err := second.Draw(catalog, nil)
		s.Require().NoError(err)
		s.Equal(got1, got2)
	}
}

func (s *deckSuite) TestDrawEventuallyCoversCatalog() {
	catalog := []string{"a", "b", "c", "d"}
	seen := make(map[string]int, len(catalog))

	for i := 0; i < 400; i++ {
		id, err := s.sampler.Draw(catalog, nil)
		s.Require().NoError(err)
		seen[id]++
	}

	for _, id := range catalog {
		s.Positive(seen[id], "card %q was never drawn", id)
	}
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(deckSuite))
}
