package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	suite.Suite
	catalog *staticCatalog
}

func (s *catalogSuite) SetupTest() {
	cat, err := New()
	s.Require().NoError(err)
	s.catalog = cat
}

func (s *catalogSuite) TestNewLoadsEmbeddedData() {
	s.NotEmpty(s.catalog.ListCardIDs())

	for _, key := range requiredKeys {
		s.NotEqual(key, s.catalog.String(key), "copy for %q should be registered", key)
	}
}

func (s *catalogSuite) TestListCardIDsAreUnique() {
	ids := s.catalog.ListCardIDs()

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		s.False(dup, "card ID %q appears more than once", id)
		seen[id] = struct{}{}
	}
}

func (s *catalogSuite) TestListCardIDsReturnsACopy() {
	ids := s.catalog.ListCardIDs()
	ids[0] = "tampered"

	s.NotEqual("tampered", s.catalog.ListCardIDs()[0])
}

func (s *catalogSuite) TestGetCard() {
	ids := s.catalog.ListCardIDs()

	card, err := s.catalog.GetCard(ids[0])
	s.Require().NoError(err)

	s.Equal(ids[0], card.ID)
	s.NotEmpty(card.Name)
	s.NotEmpty(card.Flavor)
	s.NotEmpty(card.Requirements)
}

func (s *catalogSuite) TestGetCardNotFound() {
	_, err := s.catalog.GetCard("no_such_card")
	s.Require().Error(err)
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *catalogSuite) TestStringFallsBackToKey() {
	s.Equal("no_such_key", s.catalog.String("no_such_key"))
}

func (s *catalogSuite) TestDrawPromptMatchesItself() {
	// The scripted prompt is what players are told to type, so it has to
	// survive its own round trip through the catalog.
	s.Equal("DRAW", s.catalog.String(KeyDrawPrompt))
}

func (s *catalogSuite) TestParseCardsRejectsDuplicates() {
	_, _, err := parseCards([]byte(`
cards:
  - id: twin
    name: Twin One
  - id: twin
    name: Twin Two
`))
	s.Require().Error(err)
	s.Contains(err.Error(), "duplicate card ID")
}

func (s *catalogSuite) TestParseCardsRejectsMissingName() {
	_, _, err := parseCards([]byte(`
cards:
  - id: nameless
`))
	s.Require().Error(err)
}

func (s *catalogSuite) TestParseCardsRejectsEmptyDeck() {
	_, _, err := parseCards([]byte(`cards: []`))
	s.Require().Error(err)
}

func (s *catalogSuite) TestParseStringsRejectsMissingKey() {
	_, err := parseStrings([]byte(`
strings:
  opening: hello
`))
	s.Require().Error(err)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(catalogSuite))
}
